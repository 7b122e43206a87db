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
	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/osm"
	"github.com/azavea/onramp-go/snapshot"
)

// ElementReconstructor rebuilds the previous (pre-OSC) state of an
// element from the snapshot: its geometry or member/node-ref
// children, its tags, and its metadata.
type ElementReconstructor struct {
	Snap snapshot.View
}

// NewElementReconstructor returns a reconstructor bound to snap.
func NewElementReconstructor(snap snapshot.View) *ElementReconstructor {
	return &ElementReconstructor{Snap: snap}
}

// New builds a bare "<variant id=.../>" element and populates it from
// the snapshot via Reconstruct. It is the entry point DiffAssembler
// uses for both the "old" side of a modify and the "old" side of a
// delete: either way, the previous state is whatever the snapshot
// says, never the OSC's own copy of the element.
func (r *ElementReconstructor) New(id osm.ID) (*etree.Element, error) {
	e := osm.NewElement(id.Variant)
	osm.SetID(e, id.Ref)
	if err := r.Reconstruct(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconstruct populates target in-place from the snapshot. target
// must already carry its variant (tag name) and "id" attribute;
// Reconstruct appends geometry/children/tags in snapshot order and
// sets every metadata attribute, or returns an *IncompleteElementError
// if the snapshot has no usable record at all.
func (r *ElementReconstructor) Reconstruct(target *etree.Element) error {
	variant, err := osm.GetVariant(target)
	if err != nil {
		return err
	}
	id, err := osm.GetID(target)
	if err != nil {
		return err
	}
	key := osm.ID{Variant: variant, Ref: id}

	switch variant {
	case osm.Node:
		return r.reconstructNode(target, key)
	case osm.Way:
		return r.reconstructWay(target, key)
	case osm.Relation:
		return r.reconstructRelation(target, key)
	default:
		return &IncompleteElementError{ID: key}
	}
}

func (r *ElementReconstructor) reconstructNode(target *etree.Element, key osm.ID) error {
	if rec, ok := r.Snap.Node(key.Ref); ok {
		osm.SetCoords(target, rec.Lat, rec.Lon)
		osm.AppendTags(target, rec.Tags)
		osm.SetMeta(target, rec.Meta)
		return nil
	}
	if loc, ok := r.Snap.Location(key.Ref); ok {
		// Tagless node: only a location record exists. Metadata other
		// than version is unknown; use placeholder zero values
		// uniformly (spec.md's "known limitation" notes two policies
		// existed historically — this repo picks the zero-value one).
		osm.SetCoords(target, loc.Lat, loc.Lon)
		osm.SetMeta(target, osm.Meta{Version: loc.Version})
		return nil
	}
	return &IncompleteElementError{ID: key}
}

func (r *ElementReconstructor) reconstructWay(target *etree.Element, key osm.ID) error {
	rec, ok := r.Snap.Way(key.Ref)
	if !ok {
		return &IncompleteElementError{ID: key}
	}
	osm.AppendNodeRefs(target, rec.Refs)
	osm.AppendTags(target, rec.Tags)
	osm.SetMeta(target, rec.Meta)
	return nil
}

func (r *ElementReconstructor) reconstructRelation(target *etree.Element, key osm.ID) error {
	rec, ok := r.Snap.Relation(key.Ref)
	if !ok {
		return &IncompleteElementError{ID: key}
	}
	osm.AppendMembers(target, rec.Members)
	osm.AppendTags(target, rec.Tags)
	osm.SetMeta(target, rec.Meta)
	return nil
}
