// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resource provides completion candidates for the parameterized slots
// of command patterns. Candidates are fetched fresh from the coordination
// service on every request and filtered by case-insensitive prefix.
package resource
