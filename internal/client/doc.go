// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package client is the HTTP client for the coordination service REST API. A
// Client is built once per invocation and passed explicitly to the
// completion resources and actions that need it.
package client
