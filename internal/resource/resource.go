// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/log"
)

// Args binds slot names of a command pattern to the tokens that filled them.
type Args map[string]string

// Getter fetches a path from the coordination service. *client.Client
// satisfies it.
type Getter interface {
	Get(ctx context.Context, path string) (*client.Response, error)
}

// Resource supplies completion candidates for one parameterized slot. Args
// holds the slots bound to the left of it, e.g. the map name when completing
// a key.
type Resource interface {
	// Suggest returns the remainder of the first candidate matching prefix.
	Suggest(ctx context.Context, g Getter, args Args, prefix string) (string, bool)
	// Complete yields every candidate matching prefix in server order.
	Complete(ctx context.Context, g Getter, args Args, prefix string) iter.Seq[string]
}

// Collection is a Resource backed by a GET returning a JSON array of names.
// Path may reference earlier slots, as in "/v1/primitives/maps/{map}/keys".
type Collection struct {
	Path string
}

// Names fetches the collection. Any failure, including a non-200 status,
// yields an empty list.
func (c Collection) Names(ctx context.Context, g Getter, args Args) []string {
	path, err := client.Path(c.Path, args)
	if err != nil {
		log.Debugf("collection path: err=%v", err)
		return nil
	}

	resp, err := g.Get(ctx, path)
	if err != nil {
		log.Debugf("collection fetch: path=%s err=%v", path, err)
		return nil
	}
	if !resp.OK() {
		log.Debugf("collection fetch: path=%s status=%d", path, resp.StatusCode)
		return nil
	}

	return decodeNames(resp.Body)
}

// Suggest implements Resource.
func (c Collection) Suggest(ctx context.Context, g Getter, args Args, prefix string) (string, bool) {
	return Suggest(c.Names(ctx, g, args), prefix)
}

// Complete implements Resource. The collection is fetched once per call; the
// returned sequence may be ranged over repeatedly.
func (c Collection) Complete(ctx context.Context, g Getter, args Args, prefix string) iter.Seq[string] {
	return Match(c.Names(ctx, g, args), prefix)
}

// Text is a free-form slot such as a map value. It never completes.
type Text struct{}

// Suggest implements Resource.
func (Text) Suggest(context.Context, Getter, Args, string) (string, bool) {
	return "", false
}

// Complete implements Resource.
func (Text) Complete(context.Context, Getter, Args, string) iter.Seq[string] {
	return func(func(string) bool) {}
}

// Match yields the names that start with prefix, ignoring case, in their
// original order.
func Match(names []string, prefix string) iter.Seq[string] {
	names = slices.Clone(names)
	return func(yield func(string) bool) {
		for _, name := range names {
			if foldPrefixLen(name, prefix) >= 0 {
				if !yield(name) {
					return
				}
			}
		}
	}
}

// Suggest returns what remains of the first name matching prefix once the
// typed prefix is cut off.
func Suggest(names []string, prefix string) (string, bool) {
	for _, name := range names {
		if n := foldPrefixLen(name, prefix); n >= 0 {
			return name[n:], true
		}
	}
	return "", false
}

// foldPrefixLen compares s and prefix rune by rune in lower case and returns
// the byte length of the matching head of s, or -1.
func foldPrefixLen(s, prefix string) int {
	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return -1
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if unicode.ToLower(sr) != unicode.ToLower(pr) {
			return -1
		}
		i += size
	}
	return i
}

// decodeNames keeps the string members of a JSON array. Anything else decodes
// to an empty list.
func decodeNames(body []byte) []string {
	if !gjson.ValidBytes(body) {
		return nil
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil
	}

	var names []string
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			names = append(names, value.String())
		}
		return true
	})
	return names
}
