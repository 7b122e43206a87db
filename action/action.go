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

// Package action holds the Action/ActionTable types shared by the OSC
// reconciler (which produces a table) and the diff assembler (which
// consumes one). Splitting it out of both keeps the dependency graph
// one-directional: osc and diff both import action, but neither
// imports the other.
package action

import (
	"sort"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/osm"
)

// Kind is the net operation an element underwent across the OSC
// window.
type Kind uint8

const (
	Create Kind = iota + 1
	Modify
	Delete
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "create"
	case Modify:
		return "modify"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is the net effect of an OSC window on a single element,
// keyed by (variant, id).
type Action struct {
	Kind    Kind
	Element *etree.Element
}

// Table maps (variant, id) to the single net Action for that element.
// Iteration order is not meaningful; output order is imposed later by
// Sorted.
type Table struct {
	byKey map[osm.ID]Action
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{byKey: make(map[osm.ID]Action)}
}

// Get returns the action stored under key, if any.
func (t *Table) Get(key osm.ID) (Action, bool) {
	a, ok := t.byKey[key]
	return a, ok
}

// Has reports whether key has an action (used by the propagation
// resolver to test "not already in the action table").
func (t *Table) Has(key osm.ID) bool {
	_, ok := t.byKey[key]
	return ok
}

// Set installs or overwrites the action for key.
func (t *Table) Set(key osm.ID, a Action) {
	t.byKey[key] = a
}

// Delete removes key entirely (used for the create+delete
// cancellation rule).
func (t *Table) Delete(key osm.ID) {
	delete(t.byKey, key)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.byKey)
}

// Keys returns every key currently stored, in no particular order.
func (t *Table) Keys() []osm.ID {
	keys := make([]osm.ID, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	return keys
}

// Sorted returns every (key, action) pair ordered by (variant rank,
// id ascending), the order the emitted <action> elements must appear
// in. The sort is stable so equal keys (which cannot occur by
// construction) never reorder relative to each other.
func (t *Table) Sorted() []struct {
	Key    osm.ID
	Action Action
} {
	out := make([]struct {
		Key    osm.ID
		Action Action
	}, 0, len(t.byKey))
	for k, a := range t.byKey {
		out = append(out, struct {
			Key    osm.ID
			Action Action
		}{Key: k, Action: a})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.Less(out[j].Key)
	})
	return out
}
