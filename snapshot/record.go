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

// Package snapshot is the read-only façade over the OSM world as it
// stood immediately before an OSC was produced. It exposes by-id
// lookups for the three element variants and the three reverse
// reference indices the propagation resolver walks.
package snapshot

import "github.com/azavea/onramp-go/osm"

// Location is the lightweight, tagless-safe lookup result used for
// coordinate resolution: every node has one, but only tagged nodes
// also have a full NodeRecord.
type Location struct {
	Lat     float64
	Lon     float64
	Version int64
}

// NodeRecord is the full snapshot state of a node.
type NodeRecord struct {
	Meta osm.Meta
	Lat  float64
	Lon  float64
	Tags []osm.Tag
}

// WayRecord is the full snapshot state of a way.
type WayRecord struct {
	Meta osm.Meta
	Refs []int64
	Tags []osm.Tag
}

// RelationRecord is the full snapshot state of a relation.
type RelationRecord struct {
	Meta    osm.Meta
	Members []osm.Member
	Tags    []osm.Tag
}
