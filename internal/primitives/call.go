// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"context"
	"fmt"
	"os"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/output"
	"github.com/baymaxhuang/atomix/internal/registry"
	"github.com/baymaxhuang/atomix/internal/resource"
)

// Print selects what a successful Call writes.
type Print int

const (
	// PrintBody always renders the decoded body.
	PrintBody Print = iota
	// PrintNonEmpty renders the body unless it is empty.
	PrintNonEmpty
	// PrintNothing stays silent on success.
	PrintNothing
)

// Call is an action that issues exactly one request. Any status other than
// 200 prints Failure and is not an error.
type Call struct {
	Method  string
	Path    string
	Body    string
	Print   Print
	Failure string
}

// Run implements registry.Handler. Body, when set, names the slot whose value
// is sent as a text/plain request body.
func (c Call) Run(ctx context.Context, env *registry.Env, args resource.Args) error {
	path, err := client.Path(c.Path, args)
	if err != nil {
		return err
	}

	var body []byte
	contentType := ""
	if c.Body != "" {
		body = []byte(args[c.Body])
		contentType = "text/plain"
	}

	resp, err := env.Client.Do(ctx, c.Method, path, body, contentType)
	if err != nil {
		return err
	}

	w := env.Out
	if w == nil {
		w = os.Stdout
	}

	if !resp.OK() {
		log.Debugf("%s %s: status=%d", c.Method, path, resp.StatusCode)
		_, err := fmt.Fprintln(w, c.Failure)
		return err
	}

	switch c.Print {
	case PrintNothing:
		return nil
	case PrintNonEmpty:
		if len(resp.Body) == 0 {
			return nil
		}
	}
	return output.Emit(w, resp.Body, env.Output)
}

// Handler returns Run as a registry.Handler.
func (c Call) Handler() registry.Handler {
	return c.Run
}
