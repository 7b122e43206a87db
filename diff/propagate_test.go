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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/osm"
	"github.com/azavea/onramp-go/snapshot"
)

// TestPropagateNodeMoveReachesReferencingWay covers spec scenario 2:
// a node that moves propagates a synthetic modify to every way that
// references it.
func TestPropagateNodeMoveReachesReferencingWay(t *testing.T) {
	snap := snapshot.NewMemoryView()
	snap.PutNode(1, snapshot.NodeRecord{Lat: 10.0, Lon: 20.0, Meta: osm.Meta{Version: 1}})
	snap.PutWay(100, snapshot.WayRecord{Refs: []int64{1}})

	table := action.NewTable()
	newNode := osm.NewElement(osm.Node)
	osm.SetID(newNode, 1)
	osm.SetCoords(newNode, 10.5, 20.5)
	table.Set(osm.ID{Variant: osm.Node, Ref: 1}, action.Action{Kind: action.Modify, Element: newNode})

	recon := NewElementReconstructor(snap)
	aug := NewAugmentor(snap, table, nil)
	resolver := NewPropagationResolver(snap, recon, aug, nil)

	emitted := NewEmitted()
	require.NoError(t, resolver.Resolve(table, emitted))

	wayAction, ok := emitted.Get(osm.ID{Variant: osm.Way, Ref: 100})
	require.True(t, ok)
	require.Equal(t, "modify", wayAction.SelectAttrValue("type", ""))

	oldNd := wayAction.SelectElement("old").SelectElement("way").SelectElement("nd")
	newNd := wayAction.SelectElement("new").SelectElement("way").SelectElement("nd")
	oldLat, _, _ := osm.GetCoords(oldNd)
	newLat, _, _ := osm.GetCoords(newNd)
	require.InDelta(t, 10.0, oldLat, 1e-7)
	require.InDelta(t, 10.5, newLat, 1e-7)
}

// TestPropagateWayReshapeReachesReferencingRelation covers spec
// scenario 5: a way whose node-ref sequence changes propagates a
// synthetic modify to every relation that references it, and does not
// touch nodes that only appear in the new sequence.
func TestPropagateWayReshapeReachesReferencingRelation(t *testing.T) {
	snap := snapshot.NewMemoryView()
	snap.PutWay(50, snapshot.WayRecord{Refs: []int64{10, 11}})
	snap.PutRelation(500, snapshot.RelationRecord{Members: []osm.Member{{Variant: osm.Way, Ref: 50, Role: "outer"}}})

	table := action.NewTable()
	newWay := osm.NewElement(osm.Way)
	osm.SetID(newWay, 50)
	osm.AppendNodeRefs(newWay, []int64{10, 12})
	table.Set(osm.ID{Variant: osm.Way, Ref: 50}, action.Action{Kind: action.Modify, Element: newWay})

	recon := NewElementReconstructor(snap)
	aug := NewAugmentor(snap, table, nil)
	resolver := NewPropagationResolver(snap, recon, aug, nil)

	emitted := NewEmitted()
	require.NoError(t, resolver.Resolve(table, emitted))

	_, ok := emitted.Get(osm.ID{Variant: osm.Relation, Ref: 500})
	require.True(t, ok)

	_, ok = emitted.Get(osm.ID{Variant: osm.Node, Ref: 11})
	require.False(t, ok)
	_, ok = emitted.Get(osm.ID{Variant: osm.Node, Ref: 12})
	require.False(t, ok)
}

// TestPropagateSkipsElementsAlreadyInActionTable covers the "key
// rule": an element already named in the action table is never
// re-synthesized, even if it would otherwise be reachable.
func TestPropagateSkipsElementsAlreadyInActionTable(t *testing.T) {
	snap := snapshot.NewMemoryView()
	snap.PutNode(1, snapshot.NodeRecord{Lat: 10.0, Lon: 20.0})
	snap.PutWay(100, snapshot.WayRecord{Refs: []int64{1}})

	table := action.NewTable()
	newNode := osm.NewElement(osm.Node)
	osm.SetID(newNode, 1)
	osm.SetCoords(newNode, 10.5, 20.5)
	table.Set(osm.ID{Variant: osm.Node, Ref: 1}, action.Action{Kind: action.Modify, Element: newNode})

	explicitWay := osm.NewElement(osm.Way)
	osm.SetID(explicitWay, 100)
	osm.AppendNodeRefs(explicitWay, []int64{1})
	table.Set(osm.ID{Variant: osm.Way, Ref: 100}, action.Action{Kind: action.Modify, Element: explicitWay})

	recon := NewElementReconstructor(snap)
	aug := NewAugmentor(snap, table, nil)
	resolver := NewPropagationResolver(snap, recon, aug, nil)

	emitted := NewEmitted()
	require.NoError(t, resolver.Resolve(table, emitted))

	require.Equal(t, 0, emitted.Len())
}

// TestPropagateNoMovementNoPropagation ensures a modify that does not
// change geometry (tags-only) never synthesizes anything downstream.
func TestPropagateNoMovementNoPropagation(t *testing.T) {
	snap := snapshot.NewMemoryView()
	snap.PutNode(1, snapshot.NodeRecord{Lat: 10.0, Lon: 20.0})
	snap.PutWay(100, snapshot.WayRecord{Refs: []int64{1}})

	table := action.NewTable()
	newNode := osm.NewElement(osm.Node)
	osm.SetID(newNode, 1)
	osm.SetCoords(newNode, 10.0, 20.0)
	osm.AppendTags(newNode, []osm.Tag{{Key: "amenity", Value: "bench"}})
	table.Set(osm.ID{Variant: osm.Node, Ref: 1}, action.Action{Kind: action.Modify, Element: newNode})

	recon := NewElementReconstructor(snap)
	aug := NewAugmentor(snap, table, nil)
	resolver := NewPropagationResolver(snap, recon, aug, nil)

	emitted := NewEmitted()
	require.NoError(t, resolver.Resolve(table, emitted))

	require.Equal(t, 0, emitted.Len())
}
