// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package registry defines the command-spec table used by the primitive
// commands. Each Spec maps a token pattern such as "election {election} run"
// to a handler, and binds every {slot} to a completion resource. Specs are
// built into a trie at startup so that both dispatch and shell completion
// walk the same structure.
package registry
