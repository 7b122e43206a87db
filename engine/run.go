// Copyright 2026 The onramp-go Authors
// This file is part of the onramp-go library.
//
// The onramp-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The onramp-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the onramp-go library. If not, see <http://www.gnu.org/licenses/>.

package engine

import (
	"io"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osc"
	"github.com/azavea/onramp-go/snapshot"
)

// Run parses r as an osmChange document, reconciles it into a net
// action table, and assembles the augmented diff against snap. This
// is the single entry point cmd/onrampdiff drives; it opens no
// resources of its own and leaves closing snap to the caller.
func Run(r io.Reader, snap snapshot.View, opts Options, log xlog.Logger) (*etree.Document, error) {
	if log == nil {
		log = xlog.Nop()
	}
	doc, err := osc.Parse(r)
	if err != nil {
		return nil, err
	}
	table, err := osc.Reconcile(doc, log)
	if err != nil {
		return nil, err
	}
	return NewDiffAssembler(snap, opts, log).Assemble(table)
}
