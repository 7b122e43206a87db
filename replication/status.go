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

// Package replication derives and persists the minutely sequence-id
// sidecar ("status.txt") that accompanies every augmented diff.
package replication

import (
	"context"
	"fmt"
	"time"

	"github.com/azavea/onramp-go/sink"
)

// epoch is the reference instant (2012-09-12T06:56:00Z) the minutely
// replication sequence counts minutes from; every OSM replication
// consumer agrees on this value.
const epoch = 1347432960

// SequenceID derives the minutely replication sequence number for
// now.
func SequenceID(now time.Time) int64 {
	return int64((now.Unix() - epoch) / 60)
}

// WriteStatus writes "status.txt" (the decimal sequence id, newline
// terminated) to s, alongside whatever diff object the caller already
// wrote through the same sink.
func WriteStatus(ctx context.Context, s sink.Sink, seq int64) error {
	body := []byte(fmt.Sprintf("%d\n", seq))
	if err := s.Write(ctx, "status.txt", body); err != nil {
		return fmt.Errorf("replication: writing status.txt: %w", err)
	}
	return nil
}
