// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/baymaxhuang/atomix/internal/config"
	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/meta"
	"github.com/baymaxhuang/atomix/internal/primitives"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the atomix
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine. One that exists but cannot be read is not.
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Debugf("config loaded: source=%s ns=%s", cfg.Source, ns)

	meta := meta.Meta{
		Args:     args,
		Config:   cfg,
		Context:  ctx,
		Registry: primitives.NewRegistry(),
	}

	app := &cli.Command{
		Name:  "atomix",
		Usage: "Atomix primitives command line",
		Flags: NewGlobalFlags(ns, cfg.Source),
	}

	for _, p := range primitives.Commands {
		app.Commands = append(app.Commands, primitiveCommandBuilder(meta, p.Name, p.Usage))
	}
	app.Commands = append(app.Commands,
		completionCommandBuilder(meta),
		completeCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
