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

package diff

import "github.com/beevik/etree"

// XmlPrettyPrinter applies hierarchical indentation to a finished
// document in place, as the last pass before the tree is handed to a
// sink. Indentation is idempotent: printing an already-printed
// document reproduces the same whitespace, since it is recomputed from
// the element structure rather than accumulated.
type XmlPrettyPrinter struct {
	Spaces int
}

// NewXmlPrettyPrinter returns a printer using the given indent width.
func NewXmlPrettyPrinter(spaces int) *XmlPrettyPrinter {
	if spaces <= 0 {
		spaces = 2
	}
	return &XmlPrettyPrinter{Spaces: spaces}
}

// Print indents doc in place.
func (p *XmlPrettyPrinter) Print(doc *etree.Document) {
	doc.Indent(p.Spaces)
}
