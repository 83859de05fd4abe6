// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders JSON response bodies in the formats selectable with
// --output.
package output
