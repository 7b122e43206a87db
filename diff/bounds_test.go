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

	"github.com/azavea/onramp-go/osm"
)

func TestInsertBoundsIsFirstChildAndCorrect(t *testing.T) {
	way := osm.NewElement(osm.Way)
	osm.SetID(way, 1)
	nd1 := way.CreateElement("nd")
	osm.SetCoords(nd1, 10, 20)
	nd2 := way.CreateElement("nd")
	osm.SetCoords(nd2, 12, 22)

	InsertBounds(way)

	children := way.ChildElements()
	require.Equal(t, "bounds", children[0].Tag)
	require.Equal(t, "10.0000000", children[0].SelectAttrValue("minlat", ""))
	require.Equal(t, "12.0000000", children[0].SelectAttrValue("maxlat", ""))
	require.Equal(t, "20.0000000", children[0].SelectAttrValue("minlon", ""))
	require.Equal(t, "22.0000000", children[0].SelectAttrValue("maxlon", ""))
}

func TestInsertBoundsNoOpWithoutNdDescendants(t *testing.T) {
	node := osm.NewElement(osm.Node)
	osm.SetID(node, 1)
	osm.SetCoords(node, 10, 20)

	InsertBounds(node)

	require.Empty(t, node.ChildElements())
}

func TestInsertBoundsFindsSyntheticNdUnderMember(t *testing.T) {
	rel := osm.NewElement(osm.Relation)
	osm.SetID(rel, 1)
	member := rel.CreateElement("member")
	nd := member.CreateElement("nd")
	osm.SetCoords(nd, 5, 6)

	InsertBounds(rel)

	children := rel.ChildElements()
	require.Equal(t, "bounds", children[0].Tag)
}
