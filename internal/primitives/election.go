// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"net/http"

	"github.com/baymaxhuang/atomix/internal/registry"
	"github.com/baymaxhuang/atomix/internal/resource"
)

const (
	electionsPath = "/v1/primitives/elections"
	electionPath  = electionsPath + "/{election}"
	candidatePath = electionPath + "/{candidate}"
)

var (
	// Elections completes election names.
	Elections = resource.Collection{Path: electionsPath}
	// Candidates completes the candidates of the bound election.
	Candidates = resource.Collection{Path: electionPath}
)

func electionSpecs() []registry.Spec {
	election := map[string]resource.Resource{"election": Elections}
	candidate := map[string]resource.Resource{"election": Elections, "candidate": Candidates}

	return []registry.Spec{
		{
			Pattern: "election",
			Usage:   "list elections",
			Handler: Call{Method: http.MethodGet, Path: electionsPath, Failure: "Failed to list elections"}.Handler(),
		},
		{
			Pattern: "election {election} run",
			Usage:   "enter an election",
			Slots:   election,
			Handler: Call{Method: http.MethodPost, Path: electionPath, Failure: "Failed to enter election"}.Handler(),
		},
		{
			Pattern: "election {election} leader",
			Usage:   "show the current leader",
			Slots:   election,
			Handler: Call{Method: http.MethodGet, Path: electionPath, Failure: "Failed to find leader"}.Handler(),
		},
		{
			Pattern: "election {election} listen {candidate}",
			Usage:   "wait for an election change seen by a candidate",
			Slots:   candidate,
			Handler: Call{Method: http.MethodGet, Path: candidatePath, Failure: "Failed to listen for election"}.Handler(),
		},
		{
			Pattern: "election {election} anoint {candidate}",
			Usage:   "make a candidate the leader",
			Slots:   candidate,
			Handler: Call{Method: http.MethodPost, Path: candidatePath + "/anoint", Print: PrintNothing, Failure: "Failed to anoint leader"}.Handler(),
		},
		{
			Pattern: "election {election} evict {candidate}",
			Usage:   "remove a candidate from the election",
			Slots:   candidate,
			Handler: Call{Method: http.MethodPost, Path: candidatePath + "/evict", Print: PrintNothing, Failure: "Failed to evict candidate"}.Handler(),
		},
		{
			Pattern: "election {election} promote {candidate}",
			Usage:   "move a candidate up the priority list",
			Slots:   candidate,
			Handler: Call{Method: http.MethodPost, Path: candidatePath + "/promote", Print: PrintNothing, Failure: "Failed to promote candidate"}.Handler(),
		},
		{
			Pattern: "election {election} withdraw {candidate}",
			Usage:   "withdraw a candidate",
			Slots:   candidate,
			Handler: Call{Method: http.MethodDelete, Path: candidatePath, Print: PrintNothing, Failure: "Failed to withdraw from election"}.Handler(),
		},
	}
}
