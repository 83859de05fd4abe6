// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/config"
	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/meta"
	"github.com/baymaxhuang/atomix/internal/output"
	"github.com/baymaxhuang/atomix/internal/registry"
)

// primitiveCommandAction hands the command name and its positional arguments
// to the registry.
func primitiveCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	if meta.Registry == nil {
		return fmt.Errorf("%s: no command registry", cmd.Name)
	}
	config.Config.Namespace = cmd.Name

	args := cmd.Args().Slice()
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cli.ShowSubcommandHelp(cmd)
	}

	env, err := NewEnv(cmd)
	if err != nil {
		return err
	}

	tokens := append([]string{cmd.Name}, args...)
	log.Debugf("dispatching: tokens=%q server=%s", tokens, env.Client.Server())

	err = meta.Registry.Dispatch(ctx, env, tokens)
	if errors.Is(err, registry.ErrNoMatch) {
		return fmt.Errorf("%w\nusage:\n  atomix %s", err,
			strings.Join(meta.Registry.Usage(cmd.Name), "\n  atomix "))
	}
	return err
}

// NewEnv builds the dispatch environment from the resolved root flags.
func NewEnv(cmd *cli.Command) (*registry.Env, error) {
	c, err := client.New(cmd.String("server"))
	if err != nil {
		return nil, err
	}

	padding, err := config.GetInt("padding", 2)
	if err != nil {
		log.Warnf("ignoring padding: %v", err)
		padding = 2
	}
	w := writer(cmd)

	return &registry.Env{
		Client: c,
		Out:    w,
		Output: output.Options{
			Format:  cmd.String("output"),
			Color:   cmd.Bool("color") && isTerminal(w),
			Padding: padding,
		},
	}, nil
}

func primitiveCommandBuilder(meta meta.Meta, name string, usage string) *cli.Command {
	var lines []string
	if meta.Registry != nil {
		for _, pattern := range meta.Registry.Usage(name) {
			lines = append(lines, "atomix "+pattern)
		}
	}

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: strings.Join(lines, "\n"),
		// Root flags go before the command name. Everything after it is
		// positional, so values like "-1" or "--x" pass through verbatim.
		SkipFlagParsing: true,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: primitiveCommandAction,
	}
}
