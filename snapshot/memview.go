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

package snapshot

import "github.com/azavea/onramp-go/osm"

// MemoryView is an in-memory View used by tests and by callers that
// already have the world loaded (e.g. small fixtures). It is not the
// production path; see Store for the pebble-backed implementation.
type MemoryView struct {
	locations map[int64]Location
	nodes     map[int64]NodeRecord
	ways      map[int64]WayRecord
	relations map[int64]RelationRecord

	nodeWays      map[int64][]int64
	nodeRelations map[int64][]int64
	wayRelations  map[int64][]int64
}

// NewMemoryView returns an empty, ready-to-populate MemoryView.
func NewMemoryView() *MemoryView {
	return &MemoryView{
		locations:     make(map[int64]Location),
		nodes:         make(map[int64]NodeRecord),
		ways:          make(map[int64]WayRecord),
		relations:     make(map[int64]RelationRecord),
		nodeWays:      make(map[int64][]int64),
		nodeRelations: make(map[int64][]int64),
		wayRelations:  make(map[int64][]int64),
	}
}

// PutNode installs a full, tagged node record and its location.
func (m *MemoryView) PutNode(id int64, rec NodeRecord) {
	m.nodes[id] = rec
	m.locations[id] = Location{Lat: rec.Lat, Lon: rec.Lon, Version: rec.Meta.Version}
}

// PutLocation installs a location-only (tagless) node.
func (m *MemoryView) PutLocation(id int64, loc Location) {
	m.locations[id] = loc
}

// PutWay installs a full way record and wires the node->way reverse
// index for every referenced node.
func (m *MemoryView) PutWay(id int64, rec WayRecord) {
	m.ways[id] = rec
	for _, ref := range rec.Refs {
		m.nodeWays[ref] = appendUnique(m.nodeWays[ref], id)
	}
}

// PutRelation installs a full relation record and wires the
// node/way->relation reverse indices for every member.
func (m *MemoryView) PutRelation(id int64, rec RelationRecord) {
	m.relations[id] = rec
	for _, member := range rec.Members {
		switch member.Variant {
		case osm.Node:
			m.nodeRelations[member.Ref] = appendUnique(m.nodeRelations[member.Ref], id)
		case osm.Way:
			m.wayRelations[member.Ref] = appendUnique(m.wayRelations[member.Ref], id)
		}
	}
}

func appendUnique(s []int64, v int64) []int64 {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}

func (m *MemoryView) Location(id int64) (Location, bool) {
	loc, ok := m.locations[id]
	return loc, ok
}

func (m *MemoryView) Node(id int64) (NodeRecord, bool) {
	rec, ok := m.nodes[id]
	return rec, ok
}

func (m *MemoryView) Way(id int64) (WayRecord, bool) {
	rec, ok := m.ways[id]
	return rec, ok
}

func (m *MemoryView) Relation(id int64) (RelationRecord, bool) {
	rec, ok := m.relations[id]
	return rec, ok
}

func (m *MemoryView) NodeWays(nodeID int64) []int64      { return m.nodeWays[nodeID] }
func (m *MemoryView) NodeRelations(nodeID int64) []int64 { return m.nodeRelations[nodeID] }
func (m *MemoryView) WayRelations(wayID int64) []int64   { return m.wayRelations[wayID] }

func (m *MemoryView) Close() error { return nil }
