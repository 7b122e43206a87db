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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestLoaderPutNodeThenViewRoundTrip(t *testing.T) {
	s := openTestStore(t)
	loader := NewLoader(s)
	require.NoError(t, loader.PutNode(1, NodeRecord{Lat: 1.1, Lon: 2.2, Meta: osm.Meta{Version: 5}}))
	require.NoError(t, loader.Commit())

	view := s.NewView()
	defer view.Close()

	rec, ok := view.Node(1)
	require.True(t, ok)
	require.Equal(t, 1.1, rec.Lat)

	loc, ok := view.Location(1)
	require.True(t, ok)
	require.Equal(t, int64(5), loc.Version)
}

func TestLoaderPutWayWiresReverseIndex(t *testing.T) {
	s := openTestStore(t)
	loader := NewLoader(s)
	require.NoError(t, loader.PutWay(100, WayRecord{Refs: []int64{1, 2}}))
	require.NoError(t, loader.Commit())

	view := s.NewView()
	defer view.Close()

	require.ElementsMatch(t, []int64{100}, view.NodeWays(1))
	require.ElementsMatch(t, []int64{100}, view.NodeWays(2))
}

func TestLoaderPutRelationWiresWayReverseIndex(t *testing.T) {
	s := openTestStore(t)
	loader := NewLoader(s)
	require.NoError(t, loader.PutRelation(500, RelationRecord{
		Members: []osm.Member{{Variant: osm.Way, Ref: 100, Role: "outer"}},
	}))
	require.NoError(t, loader.Commit())

	view := s.NewView()
	defer view.Close()

	require.ElementsMatch(t, []int64{500}, view.WayRelations(100))
}

func TestViewIsPointInTimeSnapshot(t *testing.T) {
	s := openTestStore(t)
	loader := NewLoader(s)
	require.NoError(t, loader.PutNode(1, NodeRecord{Lat: 1, Lon: 1}))
	require.NoError(t, loader.Commit())

	view := s.NewView()
	defer view.Close()

	loader2 := NewLoader(s)
	require.NoError(t, loader2.PutNode(1, NodeRecord{Lat: 99, Lon: 99}))
	require.NoError(t, loader2.Commit())

	rec, ok := view.Node(1)
	require.True(t, ok)
	require.Equal(t, 1.0, rec.Lat)

	fresh := s.NewView()
	defer fresh.Close()
	rec, ok = fresh.Node(1)
	require.True(t, ok)
	require.Equal(t, 99.0, rec.Lat)
}

func TestMissingRecordReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	view := s.NewView()
	defer view.Close()

	_, ok := view.Node(404)
	require.False(t, ok)
}
