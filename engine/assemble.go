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

// Package engine sequences the diff composition passes: reconciled OSC
// actions in, a finished augmented-diff document out.
package engine

import (
	"time"

	"github.com/beevik/etree"

	"github.com/azavea/onramp-go/action"
	"github.com/azavea/onramp-go/diff"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/osm"
	"github.com/azavea/onramp-go/snapshot"
)

const (
	defaultGenerator = "onramp-go augmented diff generator; https://github.com/azavea/onramp-go"
	attribution      = "The data included in this document is from www.openstreetmap.org. The data is made available under ODbL."
)

// Options configures one diff run's document-level metadata. An empty
// Generator falls back to a built-in default and a non-positive
// IndentSpaces to 2; an empty OsmBase, ReplicationID or ReplicationURL
// is omitted from <meta> with a warning rather than failing the run.
type Options struct {
	Generator      string
	OsmBase        time.Time
	ReplicationID  string
	ReplicationURL string
	IndentSpaces   int
}

// DiffAssembler drives the full OSC-action-table-to-document pipeline
// against one read-only snapshot view.
type DiffAssembler struct {
	Snap snapshot.View
	Log  xlog.Logger
	Opts Options
}

// NewDiffAssembler returns an assembler bound to snap for a single
// diff run.
func NewDiffAssembler(snap snapshot.View, opts Options, log xlog.Logger) *DiffAssembler {
	if log == nil {
		log = xlog.Nop()
	}
	if opts.Generator == "" {
		opts.Generator = defaultGenerator
	}
	return &DiffAssembler{Snap: snap, Log: log, Opts: opts}
}

// Assemble runs passes 1 through 7 and returns the finished document.
// table is consumed read-only; the returned document owns every
// element it contains.
func (a *DiffAssembler) Assemble(table *action.Table) (*etree.Document, error) {
	recon := diff.NewElementReconstructor(a.Snap)
	aug := diff.NewAugmentor(a.Snap, table, a.Log)
	emitted := diff.NewEmitted()

	// Pass 1: build base actions.
	a.buildBaseActions(table, recon, emitted)

	// Pass 2: augment.
	a.augmentPass(aug, emitted)

	// Pass 3: propagate.
	prop := diff.NewPropagationResolver(a.Snap, recon, aug, a.Log)
	if err := prop.Resolve(table, emitted); err != nil {
		return nil, err
	}

	// Pass 4: bounds.
	a.boundsPass(emitted)

	// Pass 5 (sort) falls out of Emitted.Sorted() below.
	doc := etree.NewDocument()
	root := doc.CreateElement("osm")
	root.CreateAttr("version", "0.6")
	root.CreateAttr("generator", a.Opts.Generator)

	// Pass 6: note and meta, in that order.
	note := root.CreateElement("note")
	note.SetText(attribution)
	a.buildMeta(root)

	for _, act := range emitted.Sorted() {
		root.AddChild(act)
	}

	// Pass 7: pretty-print.
	diff.NewXmlPrettyPrinter(a.Opts.IndentSpaces).Print(doc)

	return doc, nil
}

func (a *DiffAssembler) buildMeta(root *etree.Element) {
	meta := root.CreateElement("meta")
	if !a.Opts.OsmBase.IsZero() {
		meta.CreateAttr("osm_base", osm.FormatTimestamp(a.Opts.OsmBase))
	} else {
		a.Log.Warn("engine: omitting osm_base, not provided")
	}
	if a.Opts.ReplicationID != "" {
		meta.CreateAttr("replication_id", a.Opts.ReplicationID)
	} else {
		a.Log.Warn("engine: omitting replication_id, not provided")
	}
	if a.Opts.ReplicationURL != "" {
		meta.CreateAttr("replication_url", a.Opts.ReplicationURL)
	} else {
		a.Log.Warn("engine: omitting replication_url, not provided")
	}
}

func (a *DiffAssembler) buildBaseActions(table *action.Table, recon *diff.ElementReconstructor, emitted *diff.Emitted) {
	for _, key := range table.Keys() {
		act, _ := table.Get(key)
		switch act.Kind {
		case action.Create:
			emitted.Set(key, diff.BuildCreateAction(act.Element.Copy()))
		case action.Modify:
			a.buildModify(key, act, recon, emitted)
		case action.Delete:
			a.buildDelete(key, act, recon, emitted)
		}
	}
}

func (a *DiffAssembler) buildModify(key osm.ID, act action.Action, recon *diff.ElementReconstructor, emitted *diff.Emitted) {
	oldE, err := recon.New(key)
	if err != nil {
		a.Log.Warn("engine: modify target absent from snapshot, downgrading to create", "id", key, "err", err)
		emitted.Set(key, diff.BuildCreateAction(act.Element.Copy()))
		return
	}
	emitted.Set(key, diff.BuildModifyAction(oldE, act.Element.Copy()))
}

func (a *DiffAssembler) buildDelete(key osm.ID, act action.Action, recon *diff.ElementReconstructor, emitted *diff.Emitted) {
	oldE, err := recon.New(key)
	if err != nil {
		a.Log.Warn("engine: skipping delete, element absent from snapshot", "id", key, "err", err)
		return
	}
	newStub := osm.ShallowCopy(act.Element)
	newStub.CreateAttr("visible", "false")
	emitted.Set(key, diff.BuildDeleteAction(oldE, newStub))
}

func (a *DiffAssembler) augmentPass(aug *diff.Augmentor, emitted *diff.Emitted) {
	for _, wrapper := range emitted.Sorted() {
		switch wrapper.SelectAttrValue("type", "") {
		case "create":
			if e := firstOsmChild(wrapper); e != nil {
				_ = aug.Augment(e, true)
			}
		case "modify", "delete":
			if oldWrap := wrapper.SelectElement("old"); oldWrap != nil {
				if e := firstOsmChild(oldWrap); e != nil {
					_ = aug.Augment(e, false)
				}
			}
			if newWrap := wrapper.SelectElement("new"); newWrap != nil {
				if e := firstOsmChild(newWrap); e != nil {
					_ = aug.Augment(e, true)
				}
			}
		}
	}
}

func (a *DiffAssembler) boundsPass(emitted *diff.Emitted) {
	for _, wrapper := range emitted.Sorted() {
		for _, e := range osmChildren(wrapper) {
			diff.InsertBounds(e)
		}
	}
}

func osmChildren(wrapper *etree.Element) []*etree.Element {
	var out []*etree.Element
	if wrapper.SelectAttrValue("type", "") == "create" {
		if e := firstOsmChild(wrapper); e != nil {
			out = append(out, e)
		}
		return out
	}
	if oldWrap := wrapper.SelectElement("old"); oldWrap != nil {
		if e := firstOsmChild(oldWrap); e != nil {
			out = append(out, e)
		}
	}
	if newWrap := wrapper.SelectElement("new"); newWrap != nil {
		if e := firstOsmChild(newWrap); e != nil {
			out = append(out, e)
		}
	}
	return out
}

func firstOsmChild(e *etree.Element) *etree.Element {
	for _, c := range e.ChildElements() {
		switch c.Tag {
		case "node", "way", "relation":
			return c
		}
	}
	return nil
}
