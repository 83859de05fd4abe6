// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"iter"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/resource"
)

// staticResource completes from a fixed list and records the args it saw.
type staticResource struct {
	names []string
	seen  []resource.Args
}

func (s *staticResource) Suggest(_ context.Context, _ resource.Getter, args resource.Args, prefix string) (string, bool) {
	s.seen = append(s.seen, args)
	return resource.Suggest(s.names, prefix)
}

func (s *staticResource) Complete(_ context.Context, _ resource.Getter, args resource.Args, prefix string) iter.Seq[string] {
	s.seen = append(s.seen, args)
	return resource.Match(s.names, prefix)
}

type nopGetter struct{}

func (nopGetter) Get(context.Context, string) (*client.Response, error) {
	return &client.Response{StatusCode: http.StatusNotFound}, nil
}

func named(name string, hits *[]string) Handler {
	return func(_ context.Context, _ *Env, _ resource.Args) error {
		*hits = append(*hits, name)
		return nil
	}
}

func newTestRegistry(hits *[]string) (*Registry, *staticResource, *staticResource) {
	maps := &staticResource{names: []string{"users", "Orders", "sessions"}}
	keys := &staticResource{names: []string{"alice", "amy", "bob"}}
	r := New()
	r.Register(Spec{Pattern: "map", Handler: named("list", hits)})
	r.Register(Spec{Pattern: "map {map} get {key}", Slots: map[string]resource.Resource{"map": maps, "key": keys}, Handler: named("get", hits)})
	r.Register(Spec{Pattern: "map {map} put {key} {text}", Slots: map[string]resource.Resource{"map": maps, "key": keys, "text": resource.Text{}}, Handler: named("put", hits)})
	r.Register(Spec{Pattern: "map {map} size", Slots: map[string]resource.Resource{"map": maps}, Handler: named("size", hits)})
	r.Register(Spec{Pattern: "map {map} clear", Slots: map[string]resource.Resource{"map": maps}, Handler: named("clear", hits)})
	r.Register(Spec{Pattern: "lock {id} lock", Slots: map[string]resource.Resource{"id": &staticResource{names: []string{"a-lock", "b-lock"}}}, Handler: named("lock", hits)})
	return r, maps, keys
}

func TestLookup(t *testing.T) {
	var hits []string
	r, _, _ := newTestRegistry(&hits)

	tests := []struct {
		name     string
		tokens   []string
		pattern  string
		wantArgs resource.Args
		wantOK   bool
	}{
		{"bare root", []string{"map"}, "map", resource.Args{}, true},
		{"get", []string{"map", "users", "get", "alice"}, "map {map} get {key}", resource.Args{"map": "users", "key": "alice"}, true},
		{"put", []string{"map", "m", "put", "k", "hello world"}, "map {map} put {key} {text}", resource.Args{"map": "m", "key": "k", "text": "hello world"}, true},
		{"slot value equal to literal", []string{"map", "size", "size"}, "map {map} size", resource.Args{"map": "size"}, true},
		{"lock", []string{"lock", "foo", "lock"}, "lock {id} lock", resource.Args{"id": "foo"}, true},
		{"unknown root", []string{"queue", "q"}, "", nil, false},
		{"unknown verb", []string{"map", "m", "merge"}, "", nil, false},
		{"missing slot", []string{"map", "m", "get"}, "", nil, false},
		{"extra tokens", []string{"map", "m", "size", "now"}, "", nil, false},
		{"empty", nil, "", nil, false},
		{"literal is case sensitive", []string{"MAP"}, "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := r.Lookup(tt.tokens)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.pattern, m.Spec.Pattern)
			assert.Equal(t, tt.wantArgs, m.Args)
		})
	}
}

func TestDispatch(t *testing.T) {
	var hits []string
	r, _, _ := newTestRegistry(&hits)

	require.NoError(t, r.Dispatch(context.Background(), &Env{}, []string{"map", "m", "clear"}))
	assert.Equal(t, []string{"clear"}, hits)

	err := r.Dispatch(context.Background(), &Env{}, []string{"map", "m", "explode"})
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "map m explode")
}

func TestComplete(t *testing.T) {
	var hits []string
	r, maps, keys := newTestRegistry(&hits)
	ctx := context.Background()
	g := nopGetter{}

	assert.Equal(t, []string{"lock", "map"}, r.Complete(ctx, g, nil, ""))
	assert.Equal(t, []string{"map"}, r.Complete(ctx, g, nil, "M"))
	assert.Equal(t, []string{"Orders"}, r.Complete(ctx, g, []string{"map"}, "o"))
	assert.Equal(t, []string{"clear", "get", "put", "size"}, r.Complete(ctx, g, []string{"map", "users"}, ""))
	assert.Equal(t, []string{"alice", "amy"}, r.Complete(ctx, g, []string{"map", "users", "get"}, "a"))
	assert.Empty(t, r.Complete(ctx, g, []string{"map", "users", "put", "alice"}, ""))
	assert.Empty(t, r.Complete(ctx, g, []string{"queue"}, ""))
	assert.Empty(t, r.Complete(ctx, g, []string{"map", "users", "size"}, ""))

	require.NotEmpty(t, keys.seen)
	assert.Equal(t, resource.Args{"map": "users"}, keys.seen[len(keys.seen)-1])
	assert.Equal(t, resource.Args{}, maps.seen[0])
}

func TestSuggest(t *testing.T) {
	var hits []string
	r, _, _ := newTestRegistry(&hits)
	ctx := context.Background()
	g := nopGetter{}

	tests := []struct {
		name   string
		tokens []string
		prefix string
		want   string
		ok     bool
	}{
		{"root literal", nil, "lo", "ck", true},
		{"verb literal", []string{"map", "users"}, "s", "ize", true},
		{"slot resource", []string{"lock"}, "a", "-lock", true},
		{"slot keeps case", []string{"map"}, "or", "ders", true},
		{"nothing", []string{"map", "users"}, "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Suggest(ctx, g, tt.tokens, tt.prefix)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterPanics(t *testing.T) {
	res := map[string]resource.Resource{"id": resource.Text{}}
	h := func(context.Context, *Env, resource.Args) error { return nil }

	tests := []struct {
		name  string
		setup func(r *Registry)
		spec  Spec
	}{
		{"empty pattern", nil, Spec{Pattern: "  ", Handler: h}},
		{"no handler", nil, Spec{Pattern: "lock"}},
		{"leading slot", nil, Spec{Pattern: "{id} lock", Slots: res, Handler: h}},
		{"slot without resource", nil, Spec{Pattern: "lock {name} lock", Slots: res, Handler: h}},
		{"malformed token", nil, Spec{Pattern: "lock {id lock", Slots: res, Handler: h}},
		{
			"duplicate",
			func(r *Registry) { r.Register(Spec{Pattern: "lock {id} lock", Slots: res, Handler: h}) },
			Spec{Pattern: "lock {id} lock", Slots: res, Handler: h},
		},
		{
			"conflicting slot name",
			func(r *Registry) { r.Register(Spec{Pattern: "lock {id} lock", Slots: res, Handler: h}) },
			Spec{Pattern: "lock {key} unlock", Slots: map[string]resource.Resource{"key": resource.Text{}}, Handler: h},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			if tt.setup != nil {
				tt.setup(r)
			}
			assert.Panics(t, func() { r.Register(tt.spec) })
		})
	}
}

func TestRootsSpecsUsage(t *testing.T) {
	var hits []string
	r, _, _ := newTestRegistry(&hits)

	assert.Equal(t, []string{"lock", "map"}, r.Roots())
	assert.Len(t, r.Specs(), 6)
	assert.Equal(t, "map", r.Specs()[0].Pattern)
	assert.Equal(t, []string{"lock {id} lock"}, r.Usage("lock"))
	assert.Equal(t, []string{
		"map",
		"map {map} get {key}",
		"map {map} put {key} {text}",
		"map {map} size",
		"map {map} clear",
	}, r.Usage("map"))
	assert.Empty(t, r.Usage("election"))
}
