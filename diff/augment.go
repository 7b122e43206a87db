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
	"strconv"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osm"
	"github.com/azavea/onramp-go/snapshot"
)

// Augmentor decorates <nd> and <member> children with lon/lat so the
// diff can be rendered without further lookups. Its coordinate
// resolver implements read-your-writes: when asked for the "new" view
// it prefers a pending action over the snapshot, so newly created or
// moved nodes resolve to their new coordinates rather than stale (or
// absent) snapshot data.
type Augmentor struct {
	Snap    snapshot.View
	Actions *action.Table
	Log     xlog.Logger
}

// NewAugmentor returns an Augmentor bound to snap and the action
// table being assembled.
func NewAugmentor(snap snapshot.View, actions *action.Table, log xlog.Logger) *Augmentor {
	if log == nil {
		log = xlog.Nop()
	}
	return &Augmentor{Snap: snap, Actions: actions, Log: log}
}

// Locate resolves a node's coordinates. When useNew is true and the
// action table has a pending action for that node, its new attributes
// win; otherwise the snapshot is consulted. ok is false when neither
// source can place the node.
func (a *Augmentor) Locate(nodeID int64, useNew bool) (lat, lon float64, ok bool) {
	if useNew {
		if act, found := a.Actions.Get(osm.ID{Variant: osm.Node, Ref: nodeID}); found {
			if lat, lon, ok := osm.GetCoords(act.Element); ok {
				return lat, lon, true
			}
		}
	}
	if loc, found := a.Snap.Location(nodeID); found {
		return loc.Lat, loc.Lon, true
	}
	return 0, 0, false
}

// wayNodeRefs resolves a way's ordered node refs, preferring the
// pending action's refs when useNew and the way is in the action
// table.
func (a *Augmentor) wayNodeRefs(wayID int64, useNew bool) ([]int64, bool) {
	if useNew {
		if act, found := a.Actions.Get(osm.ID{Variant: osm.Way, Ref: wayID}); found {
			return osm.NodeRefs(act.Element), true
		}
	}
	if rec, found := a.Snap.Way(wayID); found {
		return rec.Refs, true
	}
	return nil, false
}

// Augment decorates e (a node, way or relation element) in place,
// according to the variant-specific policy in the augmentation
// contract. Failures to resolve an individual reference are logged
// and leave that reference's coordinates unset; Augment only returns
// an error when e is not a node, way or relation element.
func (a *Augmentor) Augment(e *etree.Element, useNew bool) error {
	variant, err := osm.GetVariant(e)
	if err != nil {
		return err
	}
	switch variant {
	case osm.Node:
		a.augmentNode(e, useNew)
	case osm.Way:
		a.augmentWay(e, useNew)
	case osm.Relation:
		a.augmentRelation(e, useNew)
	}
	return nil
}

func (a *Augmentor) augmentNode(e *etree.Element, useNew bool) {
	id, err := osm.GetID(e)
	if err != nil {
		return
	}
	lat, lon, ok := a.Locate(id, useNew)
	if !ok {
		a.Log.Warn("diff: unresolved node location", "node", id)
		return
	}
	osm.SetCoords(e, lat, lon)
}

func (a *Augmentor) augmentWay(e *etree.Element, useNew bool) {
	for _, nd := range e.SelectElements("nd") {
		ref, err := parseRef(nd)
		if err != nil {
			continue
		}
		lat, lon, ok := a.Locate(ref, useNew)
		if !ok {
			a.Log.Warn("diff: unresolved node location", "node", ref)
			continue
		}
		osm.SetCoords(nd, lat, lon)
	}
}

func (a *Augmentor) augmentRelation(e *etree.Element, useNew bool) {
	for _, member := range e.SelectElements("member") {
		switch member.SelectAttrValue("type", "") {
		case "node":
			ref, err := parseRef(member)
			if err != nil {
				continue
			}
			lat, lon, ok := a.Locate(ref, useNew)
			if !ok {
				a.Log.Warn("diff: unresolved node location", "node", ref)
				continue
			}
			osm.SetCoords(member, lat, lon)

		case "way":
			wayID, err := parseRef(member)
			if err != nil {
				continue
			}
			refs, ok := a.wayNodeRefs(wayID, useNew)
			if !ok {
				a.Log.Warn("diff: unresolved way for relation member expansion", "way", wayID)
				continue
			}
			for _, ref := range refs {
				nd := member.CreateElement("nd")
				if lat, lon, ok := a.Locate(ref, useNew); ok {
					osm.SetCoords(nd, lat, lon)
				} else {
					a.Log.Warn("diff: unresolved node location", "node", ref)
				}
			}

		case "relation":
			// Relations are intentionally never expanded recursively,
			// bounding the output size.
		}
	}
}

func parseRef(e *etree.Element) (int64, error) {
	return strconv.ParseInt(e.SelectAttrValue("ref", ""), 10, 64)
}
