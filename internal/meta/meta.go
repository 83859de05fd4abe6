// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/baymaxhuang/atomix/internal/config"
	"github.com/baymaxhuang/atomix/internal/registry"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context and the command registry that primitive
// commands dispatch through.
type Meta struct {
	Args     []string
	Config   config.Type
	Context  context.Context
	Registry *registry.Registry
}
