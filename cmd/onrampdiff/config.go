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

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds every field runnable either from flags or from a YAML
// file passed via --config, so repeated invocations (a cron-driven
// minutely loop) don't have to repeat the same flags every time.
type config struct {
	Osc            string `yaml:"osc"`
	Snapshot       string `yaml:"snapshot"`
	Out            string `yaml:"out"`
	Generator      string `yaml:"generator"`
	OsmBase        string `yaml:"osm_base"`
	ReplicationID  string `yaml:"replication_id"`
	ReplicationURL string `yaml:"replication_url"`
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
}

// loadConfig reads a YAML config file. A missing path is not an
// error: it simply yields a zero config, and flags carry the full
// burden.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// overrideFrom replaces every field of cfg with the matching field of
// o whenever that field of o is non-empty, giving explicit flags
// priority over the config file.
func (cfg config) overrideFrom(o config) config {
	if o.Osc != "" {
		cfg.Osc = o.Osc
	}
	if o.Snapshot != "" {
		cfg.Snapshot = o.Snapshot
	}
	if o.Out != "" {
		cfg.Out = o.Out
	}
	if o.Generator != "" {
		cfg.Generator = o.Generator
	}
	if o.OsmBase != "" {
		cfg.OsmBase = o.OsmBase
	}
	if o.ReplicationID != "" {
		cfg.ReplicationID = o.ReplicationID
	}
	if o.ReplicationURL != "" {
		cfg.ReplicationURL = o.ReplicationURL
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	return cfg
}
