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

package snapshot

// View is the read-only surface the diff engine consults. A View is
// bound to a single point-in-time snapshot and must behave as if the
// pending OSC has not yet been applied to it; it is good for the
// lifetime of exactly one diff and is closed once that diff's bounds
// pass completes.
type View interface {
	// Location resolves a node's coordinates without requiring a full,
	// tagged record. ok is false if the node is unknown to the
	// snapshot.
	Location(id int64) (Location, bool)

	// Node, Way and Relation return the full record for a tagged
	// element, or ok=false if the snapshot has no full record (the id
	// is unknown, or - for a node - it is tagless and only has a
	// Location).
	Node(id int64) (NodeRecord, bool)
	Way(id int64) (WayRecord, bool)
	Relation(id int64) (RelationRecord, bool)

	// NodeWays, NodeRelations and WayRelations are the reverse
	// reference indices the propagation resolver walks one hop at a
	// time.
	NodeWays(nodeID int64) []int64
	NodeRelations(nodeID int64) []int64
	WayRelations(wayID int64) []int64

	// Close releases the snapshot's resources. It must be called
	// exactly once, after the diff's bounds pass has completed.
	Close() error
}
