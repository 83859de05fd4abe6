// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"net/http"

	"github.com/baymaxhuang/atomix/internal/registry"
	"github.com/baymaxhuang/atomix/internal/resource"
)

const (
	locksPath = "/v1/primitives/locks"
	lockPath  = locksPath + "/{id}"
)

// Locks completes lock names.
var Locks = resource.Collection{Path: locksPath}

func lockSpecs() []registry.Spec {
	id := map[string]resource.Resource{"id": Locks}

	return []registry.Spec{
		{
			Pattern: "lock",
			Usage:   "list locks",
			Handler: Call{Method: http.MethodGet, Path: locksPath, Failure: "Failed to list locks"}.Handler(),
		},
		{
			Pattern: "lock {id} lock",
			Usage:   "acquire a lock",
			Slots:   id,
			Handler: Call{Method: http.MethodPost, Path: lockPath, Failure: "Failed to acquire lock"}.Handler(),
		},
		{
			Pattern: "lock {id} unlock",
			Usage:   "release a lock",
			Slots:   id,
			Handler: Call{Method: http.MethodDelete, Path: lockPath, Failure: "Failed to release lock"}.Handler(),
		},
	}
}
