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

package action

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azavea/onramp-go/osm"
)

func TestTableSetGetHasDelete(t *testing.T) {
	table := NewTable()
	key := osm.ID{Variant: osm.Node, Ref: 1}

	_, ok := table.Get(key)
	require.False(t, ok)
	require.False(t, table.Has(key))

	table.Set(key, Action{Kind: Create})
	require.True(t, table.Has(key))
	got, ok := table.Get(key)
	require.True(t, ok)
	require.Equal(t, Create, got.Kind)

	table.Delete(key)
	require.False(t, table.Has(key))
}

func TestTableSortedOrdersByVariantThenRef(t *testing.T) {
	table := NewTable()
	table.Set(osm.ID{Variant: osm.Relation, Ref: 1}, Action{Kind: Modify})
	table.Set(osm.ID{Variant: osm.Node, Ref: 5}, Action{Kind: Create})
	table.Set(osm.ID{Variant: osm.Way, Ref: 2}, Action{Kind: Delete})
	table.Set(osm.ID{Variant: osm.Node, Ref: 1}, Action{Kind: Create})

	sorted := table.Sorted()
	require.Len(t, sorted, 4)
	var keys []osm.ID
	for _, entry := range sorted {
		keys = append(keys, entry.Key)
	}
	require.Equal(t, []osm.ID{
		{Variant: osm.Node, Ref: 1},
		{Variant: osm.Node, Ref: 5},
		{Variant: osm.Way, Ref: 2},
		{Variant: osm.Relation, Ref: 1},
	}, keys)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "create", Create.String())
	require.Equal(t, "modify", Modify.String())
	require.Equal(t, "delete", Delete.String())
}
