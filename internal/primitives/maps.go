// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"net/http"

	"github.com/baymaxhuang/atomix/internal/registry"
	"github.com/baymaxhuang/atomix/internal/resource"
)

const (
	mapsPath = "/v1/primitives/maps"
	mapPath  = mapsPath + "/{map}"
	keyPath  = mapPath + "/{key}"
)

var (
	// Maps completes map names.
	Maps = resource.Collection{Path: mapsPath}
	// Keys completes the keys of the bound map.
	Keys = resource.Collection{Path: mapPath + "/keys"}
)

func mapSpecs() []registry.Spec {
	name := map[string]resource.Resource{"map": Maps}
	key := map[string]resource.Resource{"map": Maps, "key": Keys}
	text := map[string]resource.Resource{"map": Maps, "key": Keys, "text": resource.Text{}}

	return []registry.Spec{
		{
			Pattern: "map",
			Usage:   "list maps",
			Handler: Call{Method: http.MethodGet, Path: mapsPath, Failure: "Failed to list maps"}.Handler(),
		},
		{
			Pattern: "map {map} get {key}",
			Usage:   "read a key",
			Slots:   key,
			Handler: Call{Method: http.MethodGet, Path: keyPath, Print: PrintNonEmpty, Failure: "Failed to get from map"}.Handler(),
		},
		{
			Pattern: "map {map} put {key} {text}",
			Usage:   "write a key",
			Slots:   text,
			Handler: Call{Method: http.MethodPut, Path: keyPath, Body: "text", Print: PrintNonEmpty, Failure: "Failed to put to map"}.Handler(),
		},
		{
			Pattern: "map {map} remove {key}",
			Usage:   "delete a key",
			Slots:   key,
			Handler: Call{Method: http.MethodDelete, Path: keyPath, Print: PrintNonEmpty, Failure: "Failed to remove key"}.Handler(),
		},
		{
			Pattern: "map {map} size",
			Usage:   "count the entries of a map",
			Slots:   name,
			Handler: Call{Method: http.MethodGet, Path: mapPath + "/size", Failure: "Failed to read map"}.Handler(),
		},
		{
			Pattern: "map {map} clear",
			Usage:   "delete every entry of a map",
			Slots:   name,
			Handler: Call{Method: http.MethodDelete, Path: mapPath, Print: PrintNothing, Failure: "Failed to clear map"}.Handler(),
		},
	}
}
