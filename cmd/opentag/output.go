package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/martinemde/opentag/tagbench"
	"github.com/martinemde/opentag/tagparser"
	"gopkg.in/yaml.v3"
)

// tagDocument is the serialized form of a parsed tag.
type tagDocument struct {
	Name       string            `json:"name" yaml:"name" toml:"name"`
	Attributes map[string]string `json:"attributes" yaml:"attributes" toml:"attributes"`
}

func newTagDocument(tag *tagparser.Tag) tagDocument {
	return tagDocument{Name: tag.Name, Attributes: tag.Attributes.Map()}
}

// tagWriter writes a stream of tags in one format. JSON is written one object
// per line, YAML as a multi-document stream, TOML as blank-line separated
// documents and text as the canonical tag rendering.
type tagWriter struct {
	w      io.Writer
	format string
	n      int
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func newTagWriter(w io.Writer, format string) *tagWriter {
	tw := &tagWriter{w: w, format: format}
	switch format {
	case "json":
		tw.json = json.NewEncoder(w)
	case "yaml":
		tw.yaml = yaml.NewEncoder(w)
		tw.yaml.SetIndent(2)
	}
	return tw
}

func (tw *tagWriter) Write(tag *tagparser.Tag) error {
	defer func() { tw.n++ }()

	switch tw.format {
	case "json":
		return tw.json.Encode(newTagDocument(tag))
	case "yaml":
		return tw.yaml.Encode(newTagDocument(tag))
	case "toml":
		if tw.n > 0 {
			if _, err := io.WriteString(tw.w, "\n"); err != nil {
				return err
			}
		}
		return toml.NewEncoder(tw.w).Encode(newTagDocument(tag))
	case "text":
		_, err := fmt.Fprintln(tw.w, tag.String())
		return err
	default:
		return fmt.Errorf("unsupported format %q", tw.format)
	}
}

// Close flushes any buffered output.
func (tw *tagWriter) Close() error {
	if tw.yaml != nil {
		return tw.yaml.Close()
	}
	return nil
}

// diagnostic renders err with the offending input line and a caret under the
// failing column. Errors other than *tagparser.SyntaxError are returned as is.
func diagnostic(input string, err error) string {
	var se *tagparser.SyntaxError
	if !errors.As(err, &se) {
		return err.Error()
	}

	lines := strings.Split(input, "\n")
	if se.Pos.Line < 1 || se.Pos.Line > len(lines) {
		return err.Error()
	}
	line := lines[se.Pos.Line-1]

	var caret strings.Builder
	col := 1
	for _, r := range line {
		if col >= se.Pos.Column {
			break
		}
		if r == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
		col++
	}
	for ; col < se.Pos.Column; col++ {
		caret.WriteByte(' ')
	}
	caret.WriteByte('^')

	return fmt.Sprintf("%s\n  %s\n  %s", err, line, caret.String())
}

// benchReport is the serialized form of a bench run.
type benchReport struct {
	RunID   string            `json:"run_id" yaml:"run_id" toml:"run_id"`
	Results []tagbench.Result `json:"results" yaml:"results" toml:"results"`
}

func writeBenchReport(w io.Writer, format string, report benchReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(report)
	case "text":
		_, err := fmt.Fprintln(w, benchTable(report.Results))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func benchTable(results []tagbench.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Hasher,
			strconv.Itoa(r.Attributes),
			strconv.Itoa(r.Iterations),
			strconv.FormatFloat(r.NsPerOp(), 'f', 1, 64),
			strconv.FormatFloat(r.AttributesPerSec(), 'f', 0, 64),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("HASHER", "ATTRIBUTES", "ITERATIONS", "NS/OP", "ATTRIBUTES/SEC").
		Rows(rows...).
		Render()
}
