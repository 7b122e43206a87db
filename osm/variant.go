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

// Package osm defines the element model shared by every stage of the
// augmented-diff engine: the three OSM element variants, their
// identifying keys, and the attribute accessors the rest of the
// packages use instead of hand-rolling XML attribute parsing.
package osm

import "fmt"

// Variant is one of the three OSM element kinds. Its numeric value is
// also its sort rank (node < way < relation), per the output ordering
// invariant.
type Variant uint8

const (
	Node Variant = iota + 1
	Way
	Relation
)

// String returns the lowercase tag/attribute name used on the wire
// ("node", "way", "relation").
func (v Variant) String() string {
	switch v {
	case Node:
		return "node"
	case Way:
		return "way"
	case Relation:
		return "relation"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant maps a wire tag name to a Variant.
func ParseVariant(tag string) (Variant, error) {
	switch tag {
	case "node":
		return Node, nil
	case "way":
		return Way, nil
	case "relation":
		return Relation, nil
	default:
		return 0, fmt.Errorf("osm: unknown element variant %q", tag)
	}
}

// ID uniquely identifies an element within its variant. It is the key
// type of the action table and of every reverse index.
type ID struct {
	Variant Variant
	Ref     int64
}

func (id ID) String() string {
	return fmt.Sprintf("%s/%d", id.Variant, id.Ref)
}

// Less orders IDs by (variant rank, ref ascending), the order actions
// are sorted in before emission.
func (id ID) Less(other ID) bool {
	if id.Variant != other.Variant {
		return id.Variant < other.Variant
	}
	return id.Ref < other.Ref
}
