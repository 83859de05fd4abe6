// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/baymaxhuang/atomix/internal/client"
	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/meta"
	"github.com/baymaxhuang/atomix/internal/resource"
)

// Both scripts hand the words up to and including the cursor to the hidden
// __complete command, which prints one candidate per line.

const bashCompletionScript = `# bash completion for atomix
_atomix()
{
    local IFS=$'\n'
    COMPREPLY=( $(atomix __complete -- "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null) )
    return 0
}

complete -F _atomix atomix
`

const zshCompletionScript = `#compdef atomix

_atomix() {
  local -a candidates
  candidates=(${(f)"$(atomix __complete -- "${(@)words[2,CURRENT]}" 2>/dev/null)"})
  (( ${#candidates} )) && compadd -a candidates
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _atomix atomix
`

// Shells offered after "completion".
var shells = []string{"bash", "zsh"}

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(cmd.Root().ErrWriter, "usage: atomix completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "atomix completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}

// completeCommandAction prints completion candidates for the last word given,
// one per line. With --suggest it prints only the remainder of the best
// candidate. Lookups that fail print nothing.
func completeCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()

	suggest := false
	if len(args) > 0 && args[0] == "--suggest" {
		suggest = true
		args = args[1:]
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	current := ""
	if len(args) > 0 {
		current = args[len(args)-1]
		args = args[:len(args)-1]
	}
	words, server := stripFlags(args)
	if server == "" {
		server = cmd.String("server")
	}
	log.Debugf("complete: words=%v current=%q server=%s suggest=%t", words, current, server, suggest)

	w := writer(cmd)
	if suggest {
		if s, ok := suggestion(ctx, cmd, words, current, server); ok {
			fmt.Fprintln(w, s)
		}
		return nil
	}
	for _, c := range candidates(ctx, cmd, words, current, server) {
		fmt.Fprintln(w, c)
	}
	return nil
}

// candidates returns what may follow words, filtered by current.
func candidates(ctx context.Context, cmd *cli.Command, words []string, current string, server string) []string {
	reg := GetMeta(cmd).Registry

	switch {
	case strings.HasPrefix(current, "-"):
		return slices.Collect(resource.Match(flagNames(cmd.Root()), current))
	case len(words) == 0:
		var roots []string
		if reg != nil {
			roots = reg.Roots()
		}
		roots = append(roots, "completion")
		sort.Strings(roots)
		return slices.Collect(resource.Match(roots, current))
	case words[0] == "completion":
		if len(words) == 1 {
			return slices.Collect(resource.Match(shells, current))
		}
		return nil
	case reg == nil:
		return nil
	}

	c, err := client.New(server)
	if err != nil {
		log.Debugf("complete: %v", err)
		return nil
	}
	return reg.Complete(ctx, c, words, current)
}

func suggestion(ctx context.Context, cmd *cli.Command, words []string, current string, server string) (string, bool) {
	reg := GetMeta(cmd).Registry
	if len(words) > 0 && words[0] != "completion" && !strings.HasPrefix(current, "-") && reg != nil {
		c, err := client.New(server)
		if err != nil {
			log.Debugf("complete: %v", err)
			return "", false
		}
		return reg.Suggest(ctx, c, words, current)
	}

	return resource.Suggest(candidates(ctx, cmd, words, current, server), current)
}

// stripFlags drops root flags and their values from words, returning the
// --server value if one was given.
func stripFlags(words []string) (rest []string, server string) {
	for i := 0; i < len(words); i++ {
		w := words[i]
		if !strings.HasPrefix(w, "-") || w == "-" {
			rest = append(rest, w)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(w, "-"), "=")
		switch name {
		case "server", "s", "output", "o":
			if !hasValue && i+1 < len(words) {
				i++
				value = words[i]
			}
			if name == "server" || name == "s" {
				server = value
			}
		}
	}
	return
}

// flagNames lists every spelling of cmd's flags, "--long" and "-s" forms.
func flagNames(cmd *cli.Command) []string {
	var names []string
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}
	}
	sort.Strings(names)
	return names
}

func completeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:            "__complete",
		Usage:           "print completion candidates",
		Hidden:          true,
		SkipFlagParsing: true,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completeCommandAction,
	}
}
