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

// Package diff implements the per-element passes of the augmented-diff
// engine: reconstructing prior state from the snapshot, decorating
// geometry, propagating implicit changes, computing bounds and
// pretty-printing the final tree.
package diff

import "github.com/azavea/onramp-go/osm"

// IncompleteElementError reports that the snapshot holds neither a
// full record nor (for a node) a location record for an element whose
// previous state reconstruction requires one. Callers treat this as
// local: warn, omit that action or side, never abort the whole diff.
type IncompleteElementError struct {
	ID osm.ID
}

func (e *IncompleteElementError) Error() string {
	return "diff: incomplete element " + e.ID.String() + ": no snapshot record"
}
