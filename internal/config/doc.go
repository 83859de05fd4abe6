// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for the atomix user
// configuration. The configuration is a YAML document named atomix.yaml in the
// user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/atomix.yaml or $HOME/.config/atomix.yaml
//   - macOS: $HOME/Library/Application Support/atomix.yaml
//   - Windows: %AppData%/atomix.yaml
//
// ATOMIX_CFG_FILE overrides the location.
package config
