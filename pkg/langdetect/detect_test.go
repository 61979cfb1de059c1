package langdetect_test

import (
	"testing"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang sh",
			content:  "#!/bin/sh\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: "python",
		},
		{
			name:     "go code",
			content:  "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: "go",
		},
		{
			name:     "python code",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: "python",
		},
		{
			name:     "javascript code",
			content:  "const x = () => { return 42; };\nconsole.log(x());",
			expected: "javascript",
		},
		{
			name:     "json object",
			content:  `{"key": "value", "number": 123}`,
			expected: "json",
		},
		{
			name:     "yaml content",
			content:  "key: value\nother: 123\nlist:\n  - item1\n  - item2",
			expected: "yaml",
		},
		{
			name:     "rust code",
			content:  "fn main() {\n    println!(\"Hello, world!\");\n}",
			expected: "rust",
		},
		{
			name:     "plain text fallback",
			content:  "just some text without any code patterns",
			expected: "text",
		},
		{
			name:     "empty content fallback",
			content:  "",
			expected: "text",
		},
		{
			name:     "sql query",
			content:  "SELECT * FROM users WHERE id = 1;",
			expected: "sql",
		},
		{
			name:     "html content",
			content:  "<!DOCTYPE html>\n<html>\n<head><title>Test</title></head>\n<body></body>\n</html>",
			expected: "html",
		},
		{
			name:     "dockerfile",
			content:  "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build",
			expected: "dockerfile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect([]byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	// Content looks like Python but has bash shebang
	content := []byte("#!/bin/bash\ndef foo():\n    pass")
	result := langdetect.Detect(content)

	if result != "bash" {
		t.Errorf("Detect() = %q, want %q (shebang should take precedence)", result, "bash")
	}
}

func TestDetect_NormalizesLanguageNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "shell normalizes to bash",
			content: "#!/bin/sh\necho test",
			want:    "bash",
		},
		{
			name:    "languages are lowercase",
			content: "package main\n\nfunc main() {}",
			want:    "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect([]byte(tt.content))

			if result != tt.want {
				t.Errorf("Detect() = %q, want %q", result, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"go", "go"},
		{"Go", "go"},
		{"golang", "go"},
		{"js", "javascript"},
		{"sh", "bash"},
		{"yml", "yaml"},
		{"python title=demo.py", "python"},
		{"no-such-lang", "no-such-lang"},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Canonical(tt.info); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.info, got, tt.want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	doc := doctree.NewDocument("", []doctree.Block{
		doctree.NewParagraph("intro", nil).WithLines(1, 1),
		doctree.NewCode("js", "let x = 1").WithLines(2, 4),
		doctree.NewCode("", "package main").WithLines(5, 7),
	})

	anns := langdetect.Annotate(doc)
	if len(anns) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(anns))
	}

	want := []langdetect.Annotation{
		{Block: 1, Line: 2, Declared: "js", Language: "javascript"},
		{Block: 2, Line: 5, Declared: "", Language: "go", Detected: true},
	}
	for i := range want {
		if anns[i] != want[i] {
			t.Errorf("annotation %d = %+v, want %+v", i, anns[i], want[i])
		}
	}

	index := langdetect.ByBlock(anns)
	if index[2].Language != "go" {
		t.Errorf("ByBlock()[2] = %+v", index[2])
	}
	if _, ok := index[0]; ok {
		t.Error("paragraph must not be annotated")
	}

	if langdetect.Annotate(nil) != nil {
		t.Error("Annotate(nil) should be nil")
	}
}

func BenchmarkDetect(b *testing.B) {
	code := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}")
	for b.Loop() {
		langdetect.Detect(code)
	}
}
