package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

const sample = "# Title\n\nHello **world** and [link](http://x.io).\n\n```\npackage main\n\nfunc main() {}\n```\n"

func parseSample(t *testing.T, input string) *runner.Result {
	t.Helper()

	cfg := config.NewConfig()
	cfg.DetectLanguages = config.Bool(true)

	result, err := runner.New(nil).RunReader(context.Background(), "doc.md", strings.NewReader(input), runner.Options{Config: cfg})
	require.NoError(t, err)
	require.False(t, result.HasFailures())
	return result
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) string {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	if opts.Color == "" {
		opts.Color = config.ColorNever
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), result))
	return buf.String()
}

func findBlock(t *testing.T, blocks []reporter.BlockNode, kind string) reporter.BlockNode {
	t.Helper()

	for _, block := range blocks {
		if block.Kind == kind {
			return block
		}
	}
	t.Fatalf("no %s block in %+v", kind, blocks)
	return reporter.BlockNode{}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatTree, false},
		{"tree", reporter.FormatTree, false},
		{"json", reporter.FormatJSON, false},
		{"yaml", reporter.FormatYAML, false},
		{"plain", reporter.FormatPlain, false},
		{"summary", reporter.FormatSummary, false},
		{"sarif", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		want   any
	}{
		{reporter.FormatTree, &reporter.TreeReporter{}},
		{"", &reporter.TreeReporter{}},
		{reporter.FormatJSON, &reporter.JSONReporter{}},
		{reporter.FormatYAML, &reporter.YAMLReporter{}},
		{reporter.FormatPlain, &reporter.PlainReporter{}},
		{reporter.FormatSummary, &reporter.SummaryReporter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			require.NoError(t, err)
			assert.IsType(t, tt.want, rep)
		})
	}

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatJSON}, parseSample(t, sample))

	var decoded reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "1.0.0", decoded.Version)
	require.Len(t, decoded.Files, 1)
	file := decoded.Files[0]
	assert.Equal(t, "doc.md", file.Path)
	assert.Empty(t, file.Error)

	heading := findBlock(t, file.Blocks, "heading")
	assert.Equal(t, 1, heading.Level)
	assert.Equal(t, [2]int{1, 1}, heading.Lines)
	assert.Equal(t, "Title", heading.Text)

	para := findBlock(t, file.Blocks, "paragraph")
	assert.Contains(t, para.Spans, reporter.SpanNode{Text: "world", Style: []string{"bold"}})
	assert.Contains(t, para.Spans, reporter.SpanNode{Text: "link", Style: []string{"link"}, URL: "http://x.io"})

	code := findBlock(t, file.Blocks, "code")
	assert.Empty(t, code.Language)
	assert.Equal(t, "go", code.Detected)

	assert.Equal(t, 1, decoded.Summary.FilesParsed)
	assert.Equal(t, 1, decoded.Summary.BlocksByKind["heading"])
	assert.Equal(t, 1, decoded.Summary.CodeLanguages["go"])
	assert.Contains(t, out, "\n  \"files\"")
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, parseSample(t, sample))

	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output is a single line")

	var decoded reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	blocks := decoded.Files[0].Blocks
	assert.Empty(t, findBlock(t, blocks, "heading").Text)
	assert.NotEmpty(t, findBlock(t, blocks, "code").Text)
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatYAML}, parseSample(t, sample))

	assert.True(t, strings.HasPrefix(out, "version: 1.0.0\n"), out)
	assert.Contains(t, out, "lines: [1, 1]")

	var decoded reporter.Output
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, 1, findBlock(t, decoded.Files[0].Blocks, "heading").Level)
	assert.Equal(t, "go", findBlock(t, decoded.Files[0].Blocks, "code").Detected)
}

func TestStructured_ListsAndTables(t *testing.T) {
	t.Parallel()

	input := "- a\n  - b\n- c\n\n| h1 | h2 |\n| -- | -- |\n| x | |\n"
	output := reporter.BuildOutput(parseSample(t, input), "", false)
	blocks := output.Files[0].Blocks

	list := findBlock(t, blocks, "list")
	require.Len(t, list.Items, 2)
	assert.Equal(t, "a", list.Items[0].Text)
	assert.Equal(t, "-", list.Items[0].Marker)
	require.Len(t, list.Items[0].Children, 1)
	assert.Equal(t, "b", list.Items[0].Children[0].Text)

	table := findBlock(t, blocks, "table")
	require.Len(t, table.Header, 2)
	assert.Equal(t, "h1", table.Header[0][0].Text)
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], 2)
	assert.Empty(t, table.Rows[0][1])
}

func TestBuildOutput_PathsAndErrors(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/docs/a.md", Error: errors.New("permission denied")},
			{Path: runner.StdinPath, Error: errors.New("too large")},
		},
		Stats: runner.Stats{FilesFailed: 2},
	}

	output := reporter.BuildOutput(result, "/work", false)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "docs/a.md", output.Files[0].Path)
	assert.Equal(t, "permission denied", output.Files[0].Error)
	assert.NotNil(t, output.Files[0].Blocks)
	assert.Empty(t, output.Files[0].Blocks)
	assert.Equal(t, runner.StdinPath, output.Files[1].Path)
	assert.Equal(t, 2, output.Summary.FilesFailed)

	empty := reporter.BuildOutput(nil, "", false)
	assert.NotNil(t, empty.Files)
	assert.NotNil(t, empty.Summary.BlocksByKind)
}

func TestPlainReporter(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatPlain}, parseSample(t, "# Title\n\nHello **world**\n"))
	assert.NotContains(t, out, "==>")
	assert.Contains(t, out, "Title\n")
	assert.Contains(t, out, "Hello world\n")
	assert.NotContains(t, out, "**")

	multi := parseSample(t, "one\n")
	multi.Files = append(multi.Files, parseSample(t, "two\n").Files...)
	multi.Files[1].Path = "other.md"

	out = report(t, reporter.Options{Format: reporter.FormatPlain}, multi)
	assert.Equal(t, "==> doc.md <==\none\n\n==> other.md <==\ntwo\n", out)
}

func TestTreeReporter(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatTree, Width: 120, ShowSummary: true}, parseSample(t, sample))

	assert.True(t, strings.HasPrefix(out, "doc.md ("), out)
	assert.Contains(t, out, "heading level=1")
	assert.Contains(t, out, "code detected=go")
	assert.Contains(t, out, "{bold:world}")
	assert.Contains(t, out, "Parsed 1 file")
	assert.NotContains(t, out, "\x1b[", "color is disabled")
}

func TestTreeReporter_FileError(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "bad.md", Error: errors.New("boom")}},
		Stats: runner.Stats{FilesFailed: 1},
	}

	out := report(t, reporter.Options{Format: reporter.FormatTree, Width: 80}, result)
	assert.Equal(t, "bad.md: boom\n", out)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out := report(t, reporter.Options{Format: reporter.FormatSummary}, parseSample(t, sample))
	assert.True(t, strings.HasPrefix(out, "Parsed 1 file, "), out)
	assert.Contains(t, out, "blocks")
	assert.Contains(t, out, "go 1")
}

func TestReporters_NilResult(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{
		reporter.FormatTree, reporter.FormatPlain, reporter.FormatSummary,
	} {
		assert.Empty(t, report(t, reporter.Options{Format: format}, nil), format)
	}
}
