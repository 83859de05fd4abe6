// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package primitives declares the election, lock and map commands. Each
// command is a registry.Spec whose handler is a Call: one HTTP request, the
// decoded body on success and a fixed failure line otherwise.
package primitives
