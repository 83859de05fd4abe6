// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package primitives

import "github.com/baymaxhuang/atomix/internal/registry"

// Commands describes each top-level primitive command.
var Commands = []struct {
	Name  string
	Usage string
}{
	{"election", "distributed leader election"},
	{"lock", "distributed lock"},
	{"map", "distributed map"},
}

// Register adds every primitive command spec to r.
func Register(r *registry.Registry) {
	for _, specs := range [][]registry.Spec{electionSpecs(), lockSpecs(), mapSpecs()} {
		for _, s := range specs {
			r.Register(s)
		}
	}
}

// NewRegistry returns a registry holding every primitive command.
func NewRegistry() *registry.Registry {
	r := registry.New()
	Register(r)
	return r
}
