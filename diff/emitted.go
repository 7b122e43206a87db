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
	"sort"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/osm"
)

// Emitted holds the finished "<action type=.../>" tree elements keyed
// by the element they describe, both the ones built directly from the
// OSC's net actions and the ones the propagation resolver synthesizes
// afterwards. Every key in Emitted is, by construction, unique.
type Emitted struct {
	byKey map[osm.ID]*etree.Element
}

// NewEmitted returns an empty Emitted set.
func NewEmitted() *Emitted {
	return &Emitted{byKey: make(map[osm.ID]*etree.Element)}
}

// Has reports whether key already has a finished action.
func (t *Emitted) Has(key osm.ID) bool {
	_, ok := t.byKey[key]
	return ok
}

// Get returns the finished action stored under key, if any.
func (t *Emitted) Get(key osm.ID) (*etree.Element, bool) {
	e, ok := t.byKey[key]
	return e, ok
}

// Set installs the finished action element for key.
func (t *Emitted) Set(key osm.ID, e *etree.Element) {
	t.byKey[key] = e
}

// Len returns the number of finished actions.
func (t *Emitted) Len() int {
	return len(t.byKey)
}

// Sorted returns every finished action ordered by (variant rank, id
// ascending) — the order the <osm> document's <action> children must
// appear in.
func (t *Emitted) Sorted() []*etree.Element {
	keys := make([]osm.ID, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	out := make([]*etree.Element, len(keys))
	for i, k := range keys {
		out[i] = t.byKey[k]
	}
	return out
}
