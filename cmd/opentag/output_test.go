package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/martinemde/opentag/tagbench"
	"github.com/martinemde/opentag/tagparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, input string) *tagparser.Tag {
	t.Helper()
	tag, err := tagparser.Parse(input)
	require.NoError(t, err, "input: %s", input)
	return tag
}

func TestTagWriterText(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, "text")
	require.NoError(t, tw.Write(mustParse(t, `<div width="40", height = "30">`)))
	require.NoError(t, tw.Write(mustParse(t, `<br >`)))
	require.NoError(t, tw.Close())
	assert.Equal(t, "<div height=\"30\", width=\"40\">\n<br >\n", buf.String())
}

func TestTagWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, "json")
	require.NoError(t, tw.Write(mustParse(t, `<a href="https://adamchalmers.com" >`)))
	require.NoError(t, tw.Write(mustParse(t, `<div >`)))
	require.NoError(t, tw.Close())

	assert.Equal(t,
		`{"name":"a","attributes":{"href":"https://adamchalmers.com"}}`+"\n"+
			`{"name":"div","attributes":{}}`+"\n",
		buf.String())
}

func TestTagWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, "yaml")
	require.NoError(t, tw.Write(mustParse(t, `<div width="40" >`)))
	require.NoError(t, tw.Write(mustParse(t, `<img src="a.png">`)))
	require.NoError(t, tw.Close())

	dec := yaml.NewDecoder(&buf)
	var docs []tagDocument
	for {
		var doc tagDocument
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)
	assert.Equal(t, tagDocument{Name: "div", Attributes: map[string]string{"width": "40"}}, docs[0])
	assert.Equal(t, tagDocument{Name: "img", Attributes: map[string]string{"src": "a.png"}}, docs[1])
}

func TestTagWriterTOML(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, "toml")
	require.NoError(t, tw.Write(mustParse(t, `<div width="40", height="30">`)))
	require.NoError(t, tw.Close())

	var doc tagDocument
	_, err := toml.Decode(buf.String(), &doc)
	require.NoError(t, err)
	assert.Equal(t, "div", doc.Name)
	assert.Equal(t, map[string]string{"width": "40", "height": "30"}, doc.Attributes)
}

func TestTagWriterUnknownFormat(t *testing.T) {
	tw := newTagWriter(io.Discard, "xml")
	require.Error(t, tw.Write(mustParse(t, `<div >`)))
}

func TestDiagnostic(t *testing.T) {
	_, err := tagparser.Parse(`<div>`)
	require.Error(t, err)
	assert.Equal(t, "line 1, col 5: expected ' ', got '>'\n  <div>\n      ^", diagnostic(`<div>`, err))
}

func TestDiagnosticMultiline(t *testing.T) {
	input := "<div a=\"1\",\n\tb>"
	_, err := tagparser.Parse(input)
	require.Error(t, err)
	assert.Equal(t, "line 2, col 3: expected '=', got '>'\n  \tb>\n  \t ^", diagnostic(input, err))
}

func TestDiagnosticAtEOF(t *testing.T) {
	input := `<div width="40`
	_, err := tagparser.Parse(input)
	require.Error(t, err)
	assert.Equal(t, "line 1, col 15: expected closing '\"', got EOF\n  <div width=\"40\n                ^", diagnostic(input, err))
}

func TestDiagnosticOtherError(t *testing.T) {
	assert.Equal(t, "boom", diagnostic("x", errors.New("boom")))
}

func TestWriteBenchReport(t *testing.T) {
	report := benchReport{
		RunID: "run-1",
		Results: []tagbench.Result{
			{Hasher: "fnv", Attributes: 2, InputBytes: 28, Iterations: 128, Elapsed: time.Millisecond},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBenchReport(&buf, "json", report))
	var decoded benchReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report, decoded)

	buf.Reset()
	require.NoError(t, writeBenchReport(&buf, "text", report))
	out := buf.String()
	assert.Contains(t, out, "HASHER")
	assert.Contains(t, out, "fnv")
	assert.Contains(t, out, "7812.5")

	buf.Reset()
	require.NoError(t, writeBenchReport(&buf, "yaml", report))
	assert.Contains(t, buf.String(), "run_id: run-1")

	buf.Reset()
	require.NoError(t, writeBenchReport(&buf, "toml", report))
	assert.Contains(t, buf.String(), `run_id = "run-1"`)
	assert.Contains(t, buf.String(), "[[results]]")

	require.Error(t, writeBenchReport(io.Discard, "xml", report))
}
