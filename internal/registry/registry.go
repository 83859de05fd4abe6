// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/output"
	"github.com/baymaxhuang/atomix/internal/resource"
)

// ErrNoMatch is returned when a token list matches no registered pattern.
var ErrNoMatch = errors.New("no matching command")

// Env carries the handles a handler needs for one invocation.
type Env struct {
	Client *client.Client
	Out    io.Writer
	Output output.Options
}

// Handler executes a matched command.
type Handler func(ctx context.Context, env *Env, args resource.Args) error

// Spec declares one command pattern such as "map {map} get {key}". Every
// {slot} in Pattern needs an entry in Slots.
type Spec struct {
	Pattern string
	Usage   string
	Slots   map[string]resource.Resource
	Handler Handler
}

// Match is the result of a successful Lookup.
type Match struct {
	Spec *Spec
	Args resource.Args
}

// Registry maps command patterns to handlers through a token trie.
type Registry struct {
	root  *node
	specs []*Spec
}

type node struct {
	literals map[string]*node
	param    *paramEdge
	spec     *Spec
}

type paramEdge struct {
	slot     string
	resource resource.Resource
	next     *node
}

func newNode() *node {
	return &node{literals: make(map[string]*node)}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{root: newNode()}
}

// Register adds spec to the trie. It panics on a malformed or duplicate
// pattern, on a slot without a resource, or when a parameter position is
// already claimed by a slot of another name.
func (r *Registry) Register(spec Spec) {
	tokens := strings.Fields(spec.Pattern)
	if len(tokens) == 0 {
		panic("registry: empty pattern")
	}
	if spec.Handler == nil {
		panic(fmt.Sprintf("registry: pattern %q has no handler", spec.Pattern))
	}
	if isSlot(tokens[0]) {
		panic(fmt.Sprintf("registry: pattern %q must start with a literal", spec.Pattern))
	}

	s := &spec
	n := r.root
	for _, tok := range tokens {
		if !isSlot(tok) {
			if strings.ContainsAny(tok, "{}") {
				panic(fmt.Sprintf("registry: malformed token %q in %q", tok, spec.Pattern))
			}
			child, ok := n.literals[tok]
			if !ok {
				child = newNode()
				n.literals[tok] = child
			}
			n = child
			continue
		}

		slot := tok[1 : len(tok)-1]
		res, ok := spec.Slots[slot]
		if !ok || res == nil {
			panic(fmt.Sprintf("registry: slot %q in %q has no resource", slot, spec.Pattern))
		}
		if n.param == nil {
			n.param = &paramEdge{slot: slot, resource: res, next: newNode()}
		} else if n.param.slot != slot {
			panic(fmt.Sprintf("registry: slot %q in %q conflicts with {%s}", slot, spec.Pattern, n.param.slot))
		}
		n = n.param.next
	}

	if n.spec != nil {
		panic(fmt.Sprintf("registry: pattern %q already registered", spec.Pattern))
	}
	n.spec = s
	r.specs = append(r.specs, s)
}

// Lookup matches tokens against the registered patterns. Literal edges are
// tried before the parameter edge at every depth.
func (r *Registry) Lookup(tokens []string) (Match, bool) {
	args := resource.Args{}
	spec := lookup(r.root, tokens, args)
	if spec == nil {
		return Match{}, false
	}
	return Match{Spec: spec, Args: args}, true
}

func lookup(n *node, tokens []string, args resource.Args) *Spec {
	if len(tokens) == 0 {
		return n.spec
	}
	tok, rest := tokens[0], tokens[1:]

	if child, ok := n.literals[tok]; ok {
		if s := lookup(child, rest, args); s != nil {
			return s
		}
	}
	if n.param != nil {
		args[n.param.slot] = tok
		if s := lookup(n.param.next, rest, args); s != nil {
			return s
		}
		delete(args, n.param.slot)
	}
	return nil
}

// Dispatch looks tokens up and runs the matched handler.
func (r *Registry) Dispatch(ctx context.Context, env *Env, tokens []string) error {
	m, ok := r.Lookup(tokens)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(tokens, " "))
	}
	return m.Spec.Handler(ctx, env, m.Args)
}

// position is a trie node reached by binding tokens, with the slots bound on
// the way.
type position struct {
	node *node
	args resource.Args
}

// walk collects every node reachable by consuming tokens. More than one node
// is possible when a token is both a literal and a slot value.
func (r *Registry) walk(tokens []string) []position {
	var out []position
	var visit func(n *node, rest []string, args resource.Args)
	visit = func(n *node, rest []string, args resource.Args) {
		if len(rest) == 0 {
			out = append(out, position{node: n, args: args})
			return
		}
		if child, ok := n.literals[rest[0]]; ok {
			visit(child, rest[1:], args)
		}
		if n.param != nil {
			bound := make(resource.Args, len(args)+1)
			for k, v := range args {
				bound[k] = v
			}
			bound[n.param.slot] = rest[0]
			visit(n.param.next, rest[1:], bound)
		}
	}
	visit(r.root, tokens, resource.Args{})
	return out
}

// Complete returns the candidates for the token following tokens: matching
// literals first, sorted, then the slot resource's candidates in server order.
func (r *Registry) Complete(ctx context.Context, g resource.Getter, tokens []string, prefix string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	positions := r.walk(tokens)
	for _, p := range positions {
		for _, lit := range matchingLiterals(p.node, prefix) {
			add(lit)
		}
	}
	for _, p := range positions {
		if p.node.param == nil {
			continue
		}
		for name := range p.node.param.resource.Complete(ctx, g, p.args, prefix) {
			add(name)
		}
	}
	return out
}

// Suggest returns the remainder of the first candidate Complete would offer
// first, consulting the slot resource only when no literal matches.
func (r *Registry) Suggest(ctx context.Context, g resource.Getter, tokens []string, prefix string) (string, bool) {
	positions := r.walk(tokens)
	for _, p := range positions {
		if s, ok := resource.Suggest(matchingLiterals(p.node, prefix), prefix); ok {
			return s, true
		}
	}
	for _, p := range positions {
		if p.node.param == nil {
			continue
		}
		if s, ok := p.node.param.resource.Suggest(ctx, g, p.args, prefix); ok {
			return s, true
		}
	}
	return "", false
}

func matchingLiterals(n *node, prefix string) []string {
	lits := make([]string, 0, len(n.literals))
	for lit := range n.literals {
		lits = append(lits, lit)
	}
	sort.Strings(lits)
	return slices.Collect(resource.Match(lits, prefix))
}

// Roots returns the first token of every pattern, sorted.
func (r *Registry) Roots() []string {
	return matchingLiterals(r.root, "")
}

// Specs returns the registered specs in registration order.
func (r *Registry) Specs() []*Spec {
	return slices.Clone(r.specs)
}

// Usage returns the patterns that start with root, in registration order.
func (r *Registry) Usage(root string) []string {
	var out []string
	for _, s := range r.specs {
		if first, _, _ := strings.Cut(s.Pattern, " "); first == root {
			out = append(out, s.Pattern)
		}
	}
	return out
}

func isSlot(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}") &&
		!strings.ContainsAny(tok[1:len(tok)-1], "{} ")
}
