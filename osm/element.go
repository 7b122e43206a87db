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
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// CoordPrecision is the number of fractional digits every lat/lon and
// bounds coordinate is formatted with on output.
const CoordPrecision = 7

// Meta carries the metadata attributes common to every element
// variant.
type Meta struct {
	Version   int64
	UID       int64
	User      string
	Changeset int64
	Timestamp time.Time
}

// Tag is a single OSM key/value pair.
type Tag struct {
	Key   string
	Value string
}

// NewElement creates a detached element for the given variant, e.g.
// "<node/>", "<way/>" or "<relation/>".
func NewElement(v Variant) *etree.Element {
	return etree.NewElement(v.String())
}

// GetVariant reads the element's own variant from its tag name.
func GetVariant(e *etree.Element) (Variant, error) {
	return ParseVariant(e.Tag)
}

// GetID reads the "id" attribute.
func GetID(e *etree.Element) (int64, error) {
	attr := e.SelectAttrValue("id", "")
	if attr == "" {
		return 0, fmt.Errorf("osm: element <%s> missing id attribute", e.Tag)
	}
	return strconv.ParseInt(attr, 10, 64)
}

// SetID writes the "id" attribute.
func SetID(e *etree.Element, id int64) {
	e.CreateAttr("id", strconv.FormatInt(id, 10))
}

// Key returns the (variant, id) key identifying e, as used in the
// action table and every reverse index.
func Key(e *etree.Element) (ID, error) {
	v, err := GetVariant(e)
	if err != nil {
		return ID{}, err
	}
	ref, err := GetID(e)
	if err != nil {
		return ID{}, err
	}
	return ID{Variant: v, Ref: ref}, nil
}

// GetVersion reads the "version" attribute, defaulting to 0 when
// absent (new, unversioned elements that have not yet been assigned
// one by the caller).
func GetVersion(e *etree.Element) int64 {
	attr := e.SelectAttrValue("version", "")
	if attr == "" {
		return 0
	}
	v, _ := strconv.ParseInt(attr, 10, 64)
	return v
}

// GetMeta reads every metadata attribute off e. Missing attributes are
// left at their zero value; this is intentional, since placeholder
// metadata for tagless nodes is exactly the zero Meta plus a version.
func GetMeta(e *etree.Element) Meta {
	var m Meta
	m.Version = GetVersion(e)
	if uid := e.SelectAttrValue("uid", ""); uid != "" {
		m.UID, _ = strconv.ParseInt(uid, 10, 64)
	}
	m.User = e.SelectAttrValue("user", "")
	if cs := e.SelectAttrValue("changeset", ""); cs != "" {
		m.Changeset, _ = strconv.ParseInt(cs, 10, 64)
	}
	if ts := e.SelectAttrValue("timestamp", ""); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			m.Timestamp = parsed
		}
	}
	return m
}

// SetMeta writes every metadata attribute onto e, overwriting any that
// are already present.
func SetMeta(e *etree.Element, m Meta) {
	e.CreateAttr("version", strconv.FormatInt(m.Version, 10))
	e.CreateAttr("uid", strconv.FormatInt(m.UID, 10))
	e.CreateAttr("user", m.User)
	e.CreateAttr("changeset", strconv.FormatInt(m.Changeset, 10))
	e.CreateAttr("timestamp", FormatTimestamp(m.Timestamp))
}

// FormatTimestamp renders t as ISO-8601 UTC with a literal "Z" suffix,
// the wire format every OSM timestamp attribute uses.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Unix(0, 0)
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// FormatCoord renders a coordinate with exactly CoordPrecision
// fractional digits.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', CoordPrecision, 64)
}

// ParseCoord parses a coordinate attribute value.
func ParseCoord(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// SetCoords writes lat/lon attributes formatted to CoordPrecision.
func SetCoords(e *etree.Element, lat, lon float64) {
	e.CreateAttr("lat", FormatCoord(lat))
	e.CreateAttr("lon", FormatCoord(lon))
}

// GetCoords reads lat/lon attributes off e, reporting ok=false when
// either is absent or unparsable.
func GetCoords(e *etree.Element) (lat, lon float64, ok bool) {
	latAttr := e.SelectAttr("lat")
	lonAttr := e.SelectAttr("lon")
	if latAttr == nil || lonAttr == nil {
		return 0, 0, false
	}
	var err error
	lat, err = ParseCoord(latAttr.Value)
	if err != nil {
		return 0, 0, false
	}
	lon, err = ParseCoord(lonAttr.Value)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// Tags reads every <tag k=.. v=../> child of e.
func Tags(e *etree.Element) []Tag {
	children := e.SelectElements("tag")
	if len(children) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(children))
	for _, c := range children {
		tags = append(tags, Tag{
			Key:   c.SelectAttrValue("k", ""),
			Value: c.SelectAttrValue("v", ""),
		})
	}
	return tags
}

// AppendTags appends <tag k=.. v=../> children for each tag, in order.
func AppendTags(e *etree.Element, tags []Tag) {
	for _, t := range tags {
		tag := e.CreateElement("tag")
		tag.CreateAttr("k", t.Key)
		tag.CreateAttr("v", t.Value)
	}
}

// NodeRefs reads the ordered "ref" values off every <nd> child of a way
// element.
func NodeRefs(way *etree.Element) []int64 {
	children := way.SelectElements("nd")
	if len(children) == 0 {
		return nil
	}
	refs := make([]int64, 0, len(children))
	for _, c := range children {
		if v := c.SelectAttrValue("ref", ""); v != "" {
			if ref, err := strconv.ParseInt(v, 10, 64); err == nil {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// AppendNodeRefs appends <nd ref=../> children for each ref, in order.
func AppendNodeRefs(way *etree.Element, refs []int64) {
	for _, ref := range refs {
		nd := way.CreateElement("nd")
		nd.CreateAttr("ref", strconv.FormatInt(ref, 10))
	}
}

// Member is a single relation member.
type Member struct {
	Variant Variant
	Ref     int64
	Role    string
}

// Members reads the ordered members off a relation element.
func Members(rel *etree.Element) []Member {
	children := rel.SelectElements("member")
	if len(children) == 0 {
		return nil
	}
	members := make([]Member, 0, len(children))
	for _, c := range children {
		v, err := ParseVariant(c.SelectAttrValue("type", ""))
		if err != nil {
			continue
		}
		ref, _ := strconv.ParseInt(c.SelectAttrValue("ref", ""), 10, 64)
		members = append(members, Member{
			Variant: v,
			Ref:     ref,
			Role:    c.SelectAttrValue("role", ""),
		})
	}
	return members
}

// AppendMembers appends <member ref=.. role=.. type=../> children for
// each member, in order.
func AppendMembers(rel *etree.Element, members []Member) {
	for _, m := range members {
		member := rel.CreateElement("member")
		member.CreateAttr("ref", strconv.FormatInt(m.Ref, 10))
		member.CreateAttr("role", m.Role)
		member.CreateAttr("type", m.Variant.String())
	}
}

// Clone returns a deep copy of e, detached from any parent.
func Clone(e *etree.Element) *etree.Element {
	return e.Copy()
}

// ShallowCopy returns a copy of e's tag and attributes with no
// children, used to build the "visible=false" stub on the new side of
// a delete action.
func ShallowCopy(e *etree.Element) *etree.Element {
	cp := etree.NewElement(e.Tag)
	for _, a := range e.Attr {
		cp.CreateAttr(a.Key, a.Value)
	}
	return cp
}
