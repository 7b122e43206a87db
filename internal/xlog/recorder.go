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

package xlog

// Entry is one recorded log call.
type Entry struct {
	Level string
	Msg   string
	KV    []any
}

// Recorder is a Logger that keeps every call in memory, for tests that
// assert on which diagnostics were emitted.
type Recorder struct {
	Entries []Entry
}

// NewRecorder returns a ready-to-use Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, kv ...any) { r.record("debug", msg, kv) }
func (r *Recorder) Info(msg string, kv ...any)  { r.record("info", msg, kv) }
func (r *Recorder) Warn(msg string, kv ...any)  { r.record("warn", msg, kv) }
func (r *Recorder) Error(msg string, kv ...any) { r.record("error", msg, kv) }

func (r *Recorder) With(kv ...any) Logger {
	return r
}

func (r *Recorder) record(level, msg string, kv []any) {
	r.Entries = append(r.Entries, Entry{Level: level, Msg: msg, KV: kv})
}

// CountLevel returns how many entries were recorded at the given level.
func (r *Recorder) CountLevel(level string) int {
	n := 0
	for _, e := range r.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
