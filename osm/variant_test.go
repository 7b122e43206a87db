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

package osm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVariantRoundTrip(t *testing.T) {
	for _, v := range []Variant{Node, Way, Relation} {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
}

func TestParseVariantUnknown(t *testing.T) {
	_, err := ParseVariant("bogus")
	require.Error(t, err)
}

func TestIDLessOrdersByVariantThenRef(t *testing.T) {
	ids := []ID{
		{Variant: Relation, Ref: 1},
		{Variant: Node, Ref: 5},
		{Variant: Way, Ref: 2},
		{Variant: Node, Ref: 1},
	}
	require.True(t, ids[1].Less(ids[2]))
	require.True(t, ids[2].Less(ids[0]))
	require.True(t, ids[3].Less(ids[1]))
	require.False(t, ids[0].Less(ids[3]))
}
