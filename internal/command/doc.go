// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for atomix. It wires flags,
// validators, primitive dispatch, and shell completion for subcommands.
package command
