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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osm"
	"github.com/azavea/onramp-go/snapshot"
)

// PropagationResolver finds elements whose rendered geometry moves as
// a side effect of an explicit OSC action, without themselves being
// named in the OSC: a way referencing a moved node, or a relation
// referencing a moved node or a way whose node-ref sequence changed.
// Each such element gets a synthetic one-hop "modify" action whose old
// and new sides are both reconstructed from the snapshot and then
// augmented with use_new false/true respectively, so the only
// difference between them is the geometry contributed by the element
// that actually moved.
type PropagationResolver struct {
	Snap          snapshot.View
	Reconstructor *ElementReconstructor
	Augmentor     *Augmentor
	Log           xlog.Logger
}

// NewPropagationResolver returns a resolver bound to snap. recon and
// aug must share the same snapshot view and (for aug) the same source
// action table as the caller's assembly pass.
func NewPropagationResolver(snap snapshot.View, recon *ElementReconstructor, aug *Augmentor, log xlog.Logger) *PropagationResolver {
	if log == nil {
		log = xlog.Nop()
	}
	return &PropagationResolver{Snap: snap, Reconstructor: recon, Augmentor: aug, Log: log}
}

// Resolve scans the net OSC actions in table and adds a synthetic
// modify action to emitted for every way or relation whose rendered
// geometry changes as a one-hop consequence, skipping anything table
// already mentions explicitly.
func (p *PropagationResolver) Resolve(table *action.Table, emitted *Emitted) error {
	affectedWays := mapset.NewSet[int64]()
	affectedRelations := mapset.NewSet[int64]()

	for _, key := range table.Keys() {
		act, _ := table.Get(key)
		if act.Kind != action.Modify {
			continue
		}
		switch key.Variant {
		case osm.Node:
			if !p.nodeMoved(key.Ref, act.Element) {
				continue
			}
			for _, relID := range p.Snap.NodeRelations(key.Ref) {
				if !table.Has(osm.ID{Variant: osm.Relation, Ref: relID}) {
					affectedRelations.Add(relID)
				}
			}
			for _, wayID := range p.Snap.NodeWays(key.Ref) {
				if table.Has(osm.ID{Variant: osm.Way, Ref: wayID}) {
					continue
				}
				affectedWays.Add(wayID)
				for _, relID := range p.Snap.WayRelations(wayID) {
					if !table.Has(osm.ID{Variant: osm.Relation, Ref: relID}) {
						affectedRelations.Add(relID)
					}
				}
			}

		case osm.Way:
			if !p.wayReshaped(key.Ref, act.Element) {
				continue
			}
			for _, relID := range p.Snap.WayRelations(key.Ref) {
				if !table.Has(osm.ID{Variant: osm.Relation, Ref: relID}) {
					affectedRelations.Add(relID)
				}
			}
		}
	}

	for _, wayID := range affectedWays.ToSlice() {
		p.synthesize(osm.ID{Variant: osm.Way, Ref: wayID}, emitted)
	}
	for _, relID := range affectedRelations.ToSlice() {
		p.synthesize(osm.ID{Variant: osm.Relation, Ref: relID}, emitted)
	}
	return nil
}

// nodeMoved reports whether newElem's coordinates differ from
// whatever the snapshot has on record for nodeID. A node the snapshot
// has never seen (pure create masquerading as modify should not reach
// here, but defensively) is treated as moved.
func (p *PropagationResolver) nodeMoved(nodeID int64, newElem *etree.Element) bool {
	newLat, newLon, ok := osm.GetCoords(newElem)
	if !ok {
		return false
	}
	if rec, found := p.Snap.Node(nodeID); found {
		return rec.Lat != newLat || rec.Lon != newLon
	}
	if loc, found := p.Snap.Location(nodeID); found {
		return loc.Lat != newLat || loc.Lon != newLon
	}
	return true
}

// wayReshaped reports whether newElem's ordered node refs differ from
// the snapshot's refs for wayID.
func (p *PropagationResolver) wayReshaped(wayID int64, newElem *etree.Element) bool {
	newRefs := osm.NodeRefs(newElem)
	rec, found := p.Snap.Way(wayID)
	if !found {
		return len(newRefs) > 0
	}
	return !refsEqual(rec.Refs, newRefs)
}

func refsEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (p *PropagationResolver) synthesize(key osm.ID, emitted *Emitted) {
	oldE, err := p.Reconstructor.New(key)
	if err != nil {
		p.Log.Warn("diff: dropping propagated action, incomplete element", "id", key, "err", err)
		return
	}
	newE, err := p.Reconstructor.New(key)
	if err != nil {
		p.Log.Warn("diff: dropping propagated action, incomplete element", "id", key, "err", err)
		return
	}
	if err := p.Augmentor.Augment(oldE, false); err != nil {
		p.Log.Warn("diff: dropping propagated action, augment failed", "id", key, "err", err)
		return
	}
	if err := p.Augmentor.Augment(newE, true); err != nil {
		p.Log.Warn("diff: dropping propagated action, augment failed", "id", key, "err", err)
		return
	}
	emitted.Set(key, BuildModifyAction(oldE, newE))
}
