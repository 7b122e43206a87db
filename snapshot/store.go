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

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/cockroachdb/pebble"

	"github.com/azavea/onramp-go/osm"
)

// Keyspace prefixes. Each logical table lives under its own leading
// byte so a single pebble instance can hold all of node/way/relation
// records plus the three reverse indices without name collisions.
const (
	prefixNodeFull     byte = 'n'
	prefixWayFull      byte = 'w'
	prefixRelationFull byte = 'r'
	prefixLocation     byte = 'l'
	prefixNodeWays     byte = 'W'
	prefixNodeRels     byte = 'R'
	prefixWayRels      byte = 'V'
)

// locationCacheBytes bounds the per-diff fastcache instance used to
// memoize repeated Location lookups (common when several relations
// reference the same junction node).
const locationCacheBytes = 16 * 1024 * 1024

// Store is a pebble-backed, on-disk View factory. The underlying
// database is opened once, at process or batch-run startup, and a
// fresh point-in-time View is opened per diff via NewView.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if absent) the pebble database rooted at dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database. It must only be called once
// every View opened against this Store has itself been closed.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewView opens exactly one pebble.Snapshot — a consistent,
// point-in-time read transaction — and wraps it in a View. This is the
// concrete mechanism behind "exactly one read transaction on the
// snapshot per diff".
func (s *Store) NewView() View {
	return &storeView{
		snap:  s.db.NewSnapshot(),
		cache: fastcache.New(locationCacheBytes),
	}
}

type storeView struct {
	snap  *pebble.Snapshot
	cache *fastcache.Cache
}

func nodeKey(prefix byte, id int64) []byte {
	key := make([]byte, 9)
	key[0] = prefix
	binary.BigEndian.PutUint64(key[1:], uint64(id))
	return key
}

func (v *storeView) get(key []byte, out any) bool {
	val, closer, err := v.snap.Get(key)
	if err != nil {
		return false
	}
	defer closer.Close()
	if err := json.Unmarshal(val, out); err != nil {
		return false
	}
	return true
}

func (v *storeView) Location(id int64) (Location, bool) {
	cacheKey := nodeKey(prefixLocation, id)
	if cached, ok := v.cache.HasGet(nil, cacheKey); ok {
		var loc Location
		if json.Unmarshal(cached, &loc) == nil {
			return loc, true
		}
	}
	var loc Location
	if !v.get(cacheKey, &loc) {
		return Location{}, false
	}
	if encoded, err := json.Marshal(loc); err == nil {
		v.cache.Set(cacheKey, encoded)
	}
	return loc, true
}

func (v *storeView) Node(id int64) (NodeRecord, bool) {
	var rec NodeRecord
	ok := v.get(nodeKey(prefixNodeFull, id), &rec)
	return rec, ok
}

func (v *storeView) Way(id int64) (WayRecord, bool) {
	var rec WayRecord
	ok := v.get(nodeKey(prefixWayFull, id), &rec)
	return rec, ok
}

func (v *storeView) Relation(id int64) (RelationRecord, bool) {
	var rec RelationRecord
	ok := v.get(nodeKey(prefixRelationFull, id), &rec)
	return rec, ok
}

func (v *storeView) idList(prefix byte, id int64) []int64 {
	var ids []int64
	v.get(nodeKey(prefix, id), &ids)
	return ids
}

func (v *storeView) NodeWays(nodeID int64) []int64      { return v.idList(prefixNodeWays, nodeID) }
func (v *storeView) NodeRelations(nodeID int64) []int64 { return v.idList(prefixNodeRels, nodeID) }
func (v *storeView) WayRelations(wayID int64) []int64   { return v.idList(prefixWayRels, wayID) }

func (v *storeView) Close() error {
	v.cache.Reset()
	return v.snap.Close()
}

// Loader is the write side used to populate a Store ahead of time
// (e.g. from an initial planet import, or incrementally as prior
// diffs are folded in). It is not used during diff composition itself
// — SnapshotView is read-only for the life of a diff — but it is the
// only supported way to produce the on-disk layout Store.Open reads.
type Loader struct {
	db    *pebble.DB
	batch *pebble.Batch
}

// NewLoader starts a write batch against an already-open Store.
func NewLoader(s *Store) *Loader {
	return &Loader{db: s.db, batch: s.db.NewIndexedBatch()}
}

func (l *Loader) put(key []byte, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return l.batch.Set(key, encoded, nil)
}

// PutNode writes a full node record plus its location entry.
func (l *Loader) PutNode(id int64, rec NodeRecord) error {
	if err := l.put(nodeKey(prefixNodeFull, id), rec); err != nil {
		return err
	}
	return l.put(nodeKey(prefixLocation, id), Location{Lat: rec.Lat, Lon: rec.Lon, Version: rec.Meta.Version})
}

// PutLocation writes a location-only (tagless) node entry.
func (l *Loader) PutLocation(id int64, loc Location) error {
	return l.put(nodeKey(prefixLocation, id), loc)
}

// PutWay writes a full way record and merges the node->way reverse
// index for every referenced node.
func (l *Loader) PutWay(id int64, rec WayRecord) error {
	if err := l.put(nodeKey(prefixWayFull, id), rec); err != nil {
		return err
	}
	for _, ref := range rec.Refs {
		if err := l.mergeIndex(prefixNodeWays, ref, id); err != nil {
			return err
		}
	}
	return nil
}

// PutRelation writes a full relation record and merges the
// node/way->relation reverse indices for every member.
func (l *Loader) PutRelation(id int64, rec RelationRecord) error {
	if err := l.put(nodeKey(prefixRelationFull, id), rec); err != nil {
		return err
	}
	for _, m := range rec.Members {
		switch m.Variant {
		case osm.Node:
			if err := l.mergeIndex(prefixNodeRels, m.Ref, id); err != nil {
				return err
			}
		case osm.Way:
			if err := l.mergeIndex(prefixWayRels, m.Ref, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Loader) mergeIndex(prefix byte, refID, targetID int64) error {
	key := nodeKey(prefix, refID)
	var ids []int64
	if val, closer, err := l.batch.Get(key); err == nil {
		json.Unmarshal(val, &ids)
		closer.Close()
	}
	for _, existing := range ids {
		if existing == targetID {
			return nil
		}
	}
	ids = append(ids, targetID)
	return l.put(key, ids)
}

// Commit flushes the batch to disk.
func (l *Loader) Commit() error {
	return l.batch.Commit(pebble.Sync)
}
