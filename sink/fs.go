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

package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryInterval is how often TryLockContext re-attempts the
// advisory lock while waiting for a concurrent writer to finish.
const lockRetryInterval = 50 * time.Millisecond

// FileSink writes objects under a single base directory, taking an
// advisory lock per object so two processes writing the same path
// never interleave partial writes.
type FileSink struct {
	dir string
}

func newFileSink(address string) (*FileSink, error) {
	dir := filepath.Dir(address)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sink: creating directory %s: %w", dir, err)
	}
	return &FileSink{dir: dir}, nil
}

// Write locks path+".lock", writes data to a temp file alongside path
// and renames it into place, so a reader never observes a partially
// written object.
func (s *FileSink) Write(ctx context.Context, ref string, data []byte) error {
	path := filepath.Join(s.dir, ref)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sink: creating directory for %s: %w", path, err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("sink: locking %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("sink: could not acquire lock for %s", path)
	}
	defer lock.Unlock()

	payload, err := maybeGzip(ref, data)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".onrampdiff-tmp-*")
	if err != nil {
		return fmt.Errorf("sink: creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sink: writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("sink: closing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("sink: renaming into place %s: %w", path, err)
	}
	return nil
}
