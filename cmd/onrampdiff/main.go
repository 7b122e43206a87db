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

// Command onrampdiff runs one OSC-to-augmented-diff conversion against
// a snapshot store and writes the result, plus its replication
// sequence-id sidecar, to a sink.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/azavea/onramp-go/engine"
	"github.com/azavea/onramp-go/internal/xlog"
	"github.com/azavea/onramp-go/replication"
	"github.com/azavea/onramp-go/sink"
	"github.com/azavea/onramp-go/snapshot"
)

func main() {
	if _, err := maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Printf("onrampdiff: adjusting GOMAXPROCS: %v", err)
	}

	app := &cli.App{
		Name:  "onrampdiff",
		Usage: "turn an osmChange document into an augmented diff",
		Commands: []*cli.Command{
			runCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "produce one augmented diff",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file supplying any of the flags below"},
			&cli.StringFlag{Name: "osc", Usage: "OSC file path, or \"-\" for stdin"},
			&cli.StringFlag{Name: "snapshot", Usage: "pebble snapshot store directory"},
			&cli.StringFlag{Name: "out", Usage: "sink address for the diff output"},
			&cli.StringFlag{Name: "generator", Usage: "generator attribute on the root <osm> element"},
			&cli.StringFlag{Name: "osm-base", Usage: "RFC3339 timestamp for <meta osm_base=.../>"},
			&cli.StringFlag{Name: "replication-id", Usage: "<meta replication_id=.../> value"},
			&cli.StringFlag{Name: "replication-url", Usage: "<meta replication_url=.../> value"},
			&cli.StringFlag{Name: "log-file", Usage: "rotated log file path; defaults to stderr"},
			&cli.StringFlag{Name: "log-level", Usage: "debug|info|warn|error; defaults to info"},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	fileCfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	cfg := fileCfg.overrideFrom(config{
		Osc:            c.String("osc"),
		Snapshot:       c.String("snapshot"),
		Out:            c.String("out"),
		Generator:      c.String("generator"),
		OsmBase:        c.String("osm-base"),
		ReplicationID:  c.String("replication-id"),
		ReplicationURL: c.String("replication-url"),
		LogFile:        c.String("log-file"),
		LogLevel:       c.String("log-level"),
	})

	logWriter := openLogWriter(cfg.LogFile)
	runID := uuid.New().String()
	logger := xlog.New(logWriter, cfg.LogLevel).With("run_id", runID)

	store, err := snapshot.Open(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("onrampdiff: opening snapshot store: %w", err)
	}
	defer store.Close()

	view := store.NewView()
	defer view.Close()

	r, closeInput, err := openInput(cfg.Osc)
	if err != nil {
		return fmt.Errorf("onrampdiff: opening OSC input: %w", err)
	}
	defer closeInput()

	opts := engine.Options{Generator: cfg.Generator}
	if cfg.OsmBase != "" {
		t, err := time.Parse(time.RFC3339, cfg.OsmBase)
		if err != nil {
			return fmt.Errorf("onrampdiff: parsing --osm-base: %w", err)
		}
		opts.OsmBase = t
	}
	opts.ReplicationID = cfg.ReplicationID
	opts.ReplicationURL = cfg.ReplicationURL

	doc, err := engine.Run(r, view, opts, logger)
	if err != nil {
		return fmt.Errorf("onrampdiff: assembling diff: %w", err)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("onrampdiff: serializing diff: %w", err)
	}

	s, err := sink.Resolve(cfg.Out)
	if err != nil {
		return fmt.Errorf("onrampdiff: resolving sink %s: %w", cfg.Out, err)
	}

	ctx := context.Background()
	if err := s.Write(ctx, filepath.Base(cfg.Out), buf.Bytes()); err != nil {
		return fmt.Errorf("onrampdiff: writing diff: %w", err)
	}

	seq := replication.SequenceID(time.Now())
	if err := replication.WriteStatus(ctx, s, seq); err != nil {
		return err
	}

	logger.Info("onrampdiff: diff written", "out", cfg.Out, "sequence", seq)
	return nil
}

func openLogWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     28,
		Compress:   true,
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
