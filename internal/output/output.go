// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/baymaxhuang/atomix/internal/config"
	"github.com/baymaxhuang/atomix/internal/log"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatRaw  = "raw"
)

// Formats lists the valid --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatRaw}

var (
	ErrInvalidJSON   = errors.New("response is not valid JSON")
	ErrUnknownFormat = errors.New("unknown output format")
)

// Options controls how a response body is rendered.
type Options struct {
	Format  string
	Color   bool
	Padding int
}

// Emit decodes body as JSON and writes it to w in the requested format. The
// raw format writes body untouched without decoding it.
func Emit(w io.Writer, body []byte, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	if format == FormatRaw {
		_, err := w.Write(body)
		return err
	}

	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%w: %q", ErrInvalidJSON, truncate(string(body), 64))
	}
	doc := gjson.ParseBytes(body)

	switch format {
	case FormatJSON:
		pretty := doc.Get("@pretty").Raw
		_, err := fmt.Fprintln(w, strings.TrimRight(pretty, "\n"))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(doc.Value())
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatText:
		return writeText(w, doc, opts)
	default:
		return fmt.Errorf("%w %q, must be one of %v", ErrUnknownFormat, format, Formats)
	}
}

// ValidateFormat reports whether value names a known format.
func ValidateFormat(value string) error {
	if !slices.Contains(Formats, value) {
		return fmt.Errorf("must be one of %v", Formats)
	}
	return nil
}

// writeText prints scalars bare, arrays of scalars one per line, and objects
// or arrays of objects as tables.
func writeText(w io.Writer, doc gjson.Result, opts Options) error {
	switch {
	case doc.IsObject():
		var rows [][]string
		doc.ForEach(func(key, value gjson.Result) bool {
			rows = append(rows, []string{key.String(), ResultToString(value)})
			return true
		})
		return TableWriter(w, nil, rows, opts)

	case doc.IsArray():
		items := doc.Array()
		if len(items) > 0 && allObjects(items) {
			headers, rows := objectRows(items)
			return TableWriter(w, headers, rows, opts)
		}
		for _, item := range items {
			if _, err := fmt.Fprintln(w, ResultToString(item)); err != nil {
				return err
			}
		}
		return nil

	default:
		_, err := fmt.Fprintln(w, ResultToString(doc))
		return err
	}
}

// ResultToString renders a JSON value for a single text cell or line. Strings
// lose their quotes; nested values stay compact JSON.
func ResultToString(value gjson.Result, emptyValue ...string) string {
	if !value.Exists() {
		if len(emptyValue) > 0 {
			return emptyValue[0]
		}
		return ""
	}
	if value.Type == gjson.String {
		return value.String()
	}
	return value.Raw
}

func allObjects(items []gjson.Result) bool {
	for _, item := range items {
		if !item.IsObject() {
			return false
		}
	}
	return true
}

// objectRows builds table rows from an array of objects. Columns appear in
// the order their keys are first seen.
func objectRows(items []gjson.Result) ([]string, [][]string) {
	var headers []string
	seen := map[string]bool{}
	for _, item := range items {
		item.ForEach(func(key, _ gjson.Result) bool {
			if k := key.String(); !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
			return true
		})
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = ResultToString(item.Get(gjson.Escape(h)), "-")
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// TableWriter renders rows with optional headers, honoring color and padding
// options.
func TableWriter(w io.Writer, headers []string, rows [][]string, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// Styles stay empty without color so pipes and files get plain text.
	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Bold(true).Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	pad := opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers().
		Rows(rows...)

	if len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	log.Tracef("table: headers=%v rows=%d", headers, len(rows))
	// lipgloss pads cells with non-breaking spaces.
	_, err := fmt.Fprintln(w, strings.ReplaceAll(t.String(), "\u00a0", " "))
	return err
}

// getColors returns configured color values for table rendering, falling back
// to defaults picked for the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
