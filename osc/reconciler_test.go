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

package osc

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osm"
)

func mustParse(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(xml))
	require.NoError(t, err)
	return doc
}

func TestParseRejectsNonOsmChangeRoot(t *testing.T) {
	_, err := Parse(strings.NewReader(`<notAChange/>`))
	require.Error(t, err)
}

func TestParseRejectsMalformedXml(t *testing.T) {
	_, err := Parse(strings.NewReader(`<osmChange><create>`))
	require.Error(t, err)
}

func TestReconcileEmptyDiffReturnsSentinel(t *testing.T) {
	doc := mustParse(t, `<osmChange></osmChange>`)
	_, err := Reconcile(doc, xlog.Nop())
	require.ErrorIs(t, err, ErrEmptyDiff)
}

func TestReconcileTrailingEmptyBlockDoesNotChangeResult(t *testing.T) {
	doc := mustParse(t, `<osmChange>
		<create><node id="1" version="1" lat="10.0" lon="20.0"/></create>
		<modify></modify>
	</osmChange>`)
	table, err := Reconcile(doc, xlog.Nop())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
}

func TestReconcileCreateThenDeleteCancels(t *testing.T) {
	doc := mustParse(t, `<osmChange>
		<create><node id="2" version="1"/></create>
		<delete><node id="2" version="2"/></delete>
	</osmChange>`)
	table, err := Reconcile(doc, xlog.Nop())
	require.NoError(t, err)
	require.False(t, table.Has(osm.ID{Variant: osm.Node, Ref: 2}))
}

func TestReconcileStaleVersionIsIgnored(t *testing.T) {
	doc := mustParse(t, `<osmChange>
		<modify><node id="3" version="5" lat="1.0" lon="1.0"/></modify>
		<modify><node id="3" version="4" lat="2.0" lon="2.0"/></modify>
	</osmChange>`)
	table, err := Reconcile(doc, xlog.Nop())
	require.NoError(t, err)
	act, ok := table.Get(osm.ID{Variant: osm.Node, Ref: 3})
	require.True(t, ok)
	require.Equal(t, int64(5), osm.GetVersion(act.Element))
}

func TestReconcileNewerModifyReplacesOlder(t *testing.T) {
	doc := mustParse(t, `<osmChange>
		<modify><node id="4" version="1" lat="1.0" lon="1.0"/></modify>
		<modify><node id="4" version="2" lat="2.0" lon="2.0"/></modify>
	</osmChange>`)
	table, err := Reconcile(doc, xlog.Nop())
	require.NoError(t, err)
	act, ok := table.Get(osm.ID{Variant: osm.Node, Ref: 4})
	require.True(t, ok)
	require.Equal(t, action.Modify, act.Kind)
	require.Equal(t, int64(2), osm.GetVersion(act.Element))
}
