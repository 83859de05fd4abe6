// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/baymaxhuang/atomix/internal/command"
	"github.com/baymaxhuang/atomix/internal/config"
	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// isCompletion reports whether args invoke one of the completion commands,
// whose arguments pass through untouched.
func isCompletion(args []string) bool {
	return len(args) > 1 && (args[1] == "completion" || args[1] == "__complete")
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if isCompletion(args) {
		return args
	}
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if !isCompletion(args) && handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands the first @set argument after the command into the
// whitespace-split entries of the config key <command>.<set>. An @token with
// no such key is left alone so it can still be used as a value.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i, a := range args[2:] {
		if !strings.HasPrefix(a, "@") {
			continue
		}
		key := args[1] + "." + a[1:]
		entries, err := config.GetStringSlice(key)
		if err != nil {
			log.Debugf("set %s not expanded: %v", a, err)
			return args
		}

		idx := i + 2
		expanded := append([]string{}, args[:idx]...)
		for _, entry := range entries {
			expanded = append(expanded, strings.Fields(entry)...)
		}
		return append(expanded, args[idx+1:]...)
	}
	return args
}
