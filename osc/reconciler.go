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
	"errors"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osm"
)

// ErrEmptyDiff is returned by Reconcile when the OSC carries no
// create/modify/delete operations at all. Per the EmptyDiff taxonomy
// kind, this is surfaced to the caller rather than silently producing
// a degenerate, action-less diff.
var ErrEmptyDiff = errors.New("osc: document contains no operations")

func blockKind(tag string) (action.Kind, bool) {
	switch tag {
	case "create":
		return action.Create, true
	case "modify":
		return action.Modify, true
	case "delete":
		return action.Delete, true
	default:
		return 0, false
	}
}

// Reconcile folds every create/modify/delete block in doc into an
// action.Table holding at most one net Action per (variant, id) key,
// per the algorithm in the diff composition spec: later operations
// replace earlier ones, a delete arriving while the key's recorded
// action is still a create cancels the key out entirely (a create
// followed by a modify and then a delete is not cancelled), and an operation
// carrying an older version than the one already recorded is skipped
// as stale.
func Reconcile(doc *etree.Document, log xlog.Logger) (*action.Table, error) {
	if log == nil {
		log = xlog.Nop()
	}
	table := action.NewTable()

	var seen int
	for _, block := range doc.Root().ChildElements() {
		kind, ok := blockKind(block.Tag)
		if !ok {
			continue
		}
		for _, e := range block.ChildElements() {
			variant, err := osm.GetVariant(e)
			if err != nil {
				log.Warn("osc: skipping element with unrecognized tag", "tag", e.Tag)
				continue
			}
			ref, err := osm.GetID(e)
			if err != nil {
				log.Warn("osc: skipping element with no id", "variant", variant)
				continue
			}
			seen++
			key := osm.ID{Variant: variant, Ref: ref}
			fold(table, key, kind, e, log)
		}
	}
	if seen == 0 {
		return nil, ErrEmptyDiff
	}
	return table, nil
}

// fold applies one incoming (kind, element) pair to the table under
// key, implementing the reconciliation rules.
func fold(table *action.Table, key osm.ID, kind action.Kind, e *etree.Element, log xlog.Logger) {
	prev, exists := table.Get(key)
	if !exists {
		table.Set(key, action.Action{Kind: kind, Element: e})
		return
	}

	if prev.Kind == action.Create && kind == action.Delete {
		table.Delete(key)
		log.Warn("osc: element created and deleted within the same window, dropping", "element", key.String())
		return
	}

	if osm.GetVersion(e) < osm.GetVersion(prev.Element) {
		log.Warn("osc: stale operation ignored", "element", key.String(),
			"incoming_version", osm.GetVersion(e), "kept_version", osm.GetVersion(prev.Element))
		return
	}

	table.Set(key, action.Action{Kind: kind, Element: e})
}
