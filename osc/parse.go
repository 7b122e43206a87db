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

// Package osc parses osmChange documents and reconciles their
// create/modify/delete blocks into a single net Action per element.
package osc

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Parse reads an osmChange document from r. The root element must be
// "osmChange"; anything else, or a malformed XML stream, is reported
// as a wrapped error (the MalformedOsc taxonomy kind, which is fatal
// to the caller).
func Parse(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("osc: malformed xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("osc: empty document")
	}
	if root.Tag != "osmChange" {
		return nil, fmt.Errorf("osc: root element is <%s>, want <osmChange>", root.Tag)
	}
	return doc, nil
}
