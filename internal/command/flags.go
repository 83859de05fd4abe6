// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/output"
)

// NewGlobalFlags returns the root flags. ns is the command about to run and
// path the config file; both feed the config-file value sources.
func NewGlobalFlags(ns string, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NewServerFlag(ns, path),
		NewOutputFlag(ns, path),
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored table output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "atomix version info",
			HideDefault: true,
		},
	}

	return
}

// NewServerFlag constructs the "server" flag. The value resolves from the
// command line, then ATOMIX_SERVER, then the namespaced and global config
// file keys.
func NewServerFlag(ns string, path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "base URL of the coordination service REST API",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ATOMIX_SERVER"),
		),
		Value: client.DefaultServer,
	}

	if path != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
	}

	return
}

// NewOutputFlag constructs the validated "output" flag.
func NewOutputFlag(ns string, path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml, raw)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ATOMIX_OUTPUT"),
		),
		Value: output.FormatText,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if path != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. An empty ns adds only the global
// key.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
