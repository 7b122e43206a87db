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

import (
	"math"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/osm"
)

// BoundsAccumulator incrementally tracks the min/max of a sequence of
// (lon, lat) pairs, emitting a single <bounds> element from the
// result.
type BoundsAccumulator struct {
	minLat, maxLat float64
	minLon, maxLon float64
	n              int
}

// NewBoundsAccumulator returns an empty accumulator.
func NewBoundsAccumulator() *BoundsAccumulator {
	return &BoundsAccumulator{
		minLat: math.Inf(1), maxLat: math.Inf(-1),
		minLon: math.Inf(1), maxLon: math.Inf(-1),
	}
}

// Add folds one more coordinate pair into the bounds.
func (b *BoundsAccumulator) Add(lat, lon float64) {
	b.n++
	if lat < b.minLat {
		b.minLat = lat
	}
	if lat > b.maxLat {
		b.maxLat = lat
	}
	if lon < b.minLon {
		b.minLon = lon
	}
	if lon > b.maxLon {
		b.maxLon = lon
	}
}

// Empty reports whether Add was never called.
func (b *BoundsAccumulator) Empty() bool {
	return b.n == 0
}

// Element renders the accumulated bounds as a detached <bounds/>
// element. Callers must not call it on an empty accumulator.
func (b *BoundsAccumulator) Element() *etree.Element {
	e := etree.NewElement("bounds")
	e.CreateAttr("minlat", osm.FormatCoord(b.minLat))
	e.CreateAttr("minlon", osm.FormatCoord(b.minLon))
	e.CreateAttr("maxlat", osm.FormatCoord(b.maxLat))
	e.CreateAttr("maxlon", osm.FormatCoord(b.maxLon))
	return e
}

// InsertBounds scans e for descendant <nd> elements carrying lon/lat
// and, if any are found, computes their bounding box and inserts it as
// e's first child. Elements with no <nd> descendants (plain nodes, and
// the "visible=false" stub on a delete's new side) are left untouched,
// matching the invariant that only ways — and relations whose members
// were expanded into synthetic <nd>s — ever carry a <bounds> child.
func InsertBounds(e *etree.Element) {
	acc := NewBoundsAccumulator()
	for _, nd := range findAllNd(e) {
		if lat, lon, ok := osm.GetCoords(nd); ok {
			acc.Add(lat, lon)
		}
	}
	if acc.Empty() {
		return
	}
	bounds := acc.Element()
	var before etree.Token
	if children := e.ChildElements(); len(children) > 0 {
		before = children[0]
	}
	e.InsertChild(before, bounds)
}

// findAllNd walks every descendant looking for elements tagged "nd",
// regardless of depth (an <nd> can sit directly under a way, or under
// a <member type="way"> of a relation).
func findAllNd(e *etree.Element) []*etree.Element {
	var out []*etree.Element
	for _, child := range e.ChildElements() {
		if child.Tag == "nd" {
			out = append(out, child)
		}
		out = append(out, findAllNd(child)...)
	}
	return out
}
