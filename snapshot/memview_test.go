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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azavea/onramp-go/osm"
)

func TestPutNodeAlsoInstallsLocation(t *testing.T) {
	m := NewMemoryView()
	m.PutNode(1, NodeRecord{Lat: 1.5, Lon: 2.5, Meta: osm.Meta{Version: 3}})

	rec, ok := m.Node(1)
	require.True(t, ok)
	require.Equal(t, 1.5, rec.Lat)

	loc, ok := m.Location(1)
	require.True(t, ok)
	require.Equal(t, int64(3), loc.Version)
}

func TestPutWayWiresNodeWaysReverseIndex(t *testing.T) {
	m := NewMemoryView()
	m.PutWay(100, WayRecord{Refs: []int64{1, 2, 1}})

	require.ElementsMatch(t, []int64{100}, m.NodeWays(1))
	require.ElementsMatch(t, []int64{100}, m.NodeWays(2))
	require.Empty(t, m.NodeWays(3))
}

func TestPutRelationWiresNodeAndWayReverseIndices(t *testing.T) {
	m := NewMemoryView()
	m.PutRelation(500, RelationRecord{Members: []osm.Member{
		{Variant: osm.Node, Ref: 1, Role: "stop"},
		{Variant: osm.Way, Ref: 100, Role: "outer"},
		{Variant: osm.Relation, Ref: 999, Role: "sub"},
	}})

	require.ElementsMatch(t, []int64{500}, m.NodeRelations(1))
	require.ElementsMatch(t, []int64{500}, m.WayRelations(100))
}

func TestPutWayReverseIndexDeduplicates(t *testing.T) {
	m := NewMemoryView()
	m.PutWay(100, WayRecord{Refs: []int64{1}})
	m.PutWay(200, WayRecord{Refs: []int64{1}})
	m.PutWay(100, WayRecord{Refs: []int64{1}})

	require.ElementsMatch(t, []int64{100, 200}, m.NodeWays(1))
}

func TestLocationOnlyNodeHasNoFullRecord(t *testing.T) {
	m := NewMemoryView()
	m.PutLocation(9, Location{Lat: 1, Lon: 2, Version: 4})

	_, ok := m.Node(9)
	require.False(t, ok)

	loc, ok := m.Location(9)
	require.True(t, ok)
	require.Equal(t, int64(4), loc.Version)
}

func TestMissingLookupsReturnFalse(t *testing.T) {
	m := NewMemoryView()
	_, ok := m.Way(1)
	require.False(t, ok)
	_, ok = m.Relation(1)
	require.False(t, ok)
	_, ok = m.Node(1)
	require.False(t, ok)
}
