// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a Markdown reference page for each atomix command
// from the command registry. An optional examples file adds per-command
// descriptions and examples.
//
//	go run ./tools/docsgen <docs dir> [examples.yaml]
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/baymaxhuang/atomix/internal/primitives"
	"github.com/baymaxhuang/atomix/internal/registry"
)

type Extras struct {
	Commands map[string]Extra `yaml:"commands"`
}

type Extra struct {
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Form struct {
	Pattern string
	Usage   string
}

type TemplateData struct {
	Extra
	ID      string
	Short   string
	Forms   []Form
	Date    string
	Version string
}

const pageTemplate = `# atomix {{ .ID }}

{{ .Short }}

{{ if .Description }}{{ .Description }}

{{ end }}## Usage

| Command | Description |
|---|---|
{{ range .Forms }}| ` + "`atomix {{ .Pattern }}`" + ` | {{ .Usage }} |
{{ end }}
## Global flags

| Flag | Description |
|---|---|
| ` + "`-s, --server`" + ` | base URL of the coordination service REST API (ATOMIX_SERVER) |
| ` + "`-o, --output`" + ` | output format: text, json, yaml or raw (ATOMIX_OUTPUT) |
| ` + "`-c, --color`" + ` | enable colored table output |
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}{{ range .Notes }}
> {{ . }}
{{ end }}
---
atomix {{ .Version }} generated {{ .Date }}
`

var page = template.Must(template.New("page").Parse(pageTemplate))

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir> [examples.yaml]")
		os.Exit(1)
	}
	docs := os.Args[1]

	var extras Extras
	if len(os.Args) > 2 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, &extras); err != nil {
			panic(err)
		}
	}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	reg := primitives.NewRegistry()
	for _, cmd := range primitives.Commands {
		metadata := TemplateData{
			Extra:   extras.Commands[cmd.Name],
			ID:      cmd.Name,
			Short:   cmd.Usage,
			Forms:   forms(reg, cmd.Name),
			Date:    time.Now().Format("January 2, 2006"),
			Version: getVersion(),
		}

		path := filepath.Join(folder, cmd.Name+".md")
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := render(file, metadata); err != nil {
			panic(err)
		}
		file.Close()
	}
}

func render(w io.Writer, data TemplateData) error {
	return page.Execute(w, data)
}

// forms lists the registered patterns under root with their usage text.
func forms(reg *registry.Registry, root string) []Form {
	var out []Form
	for _, s := range reg.Specs() {
		if first, _, _ := strings.Cut(s.Pattern, " "); first == root {
			out = append(out, Form{Pattern: s.Pattern, Usage: s.Usage})
		}
	}
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
