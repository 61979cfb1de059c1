package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/mdtree/pkg/runner"
)

// makeTree writes each relative path under a fresh temp dir and returns the dir.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("# "+f+"\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
	return dir
}

// relAll maps absolute paths back to slash-separated paths under dir.
func relAll(t *testing.T, dir string, paths []string) []string {
	t.Helper()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tree := []string{
		"readme.md",
		"docs/guide.md",
		"docs/api.markdown",
		"docs/deep/notes.MD",
		"src/main.go",
		"notes.txt",
		".hidden.md",
		".github/pr.md",
		"vendor/pkg/doc.md",
		"node_modules/lib/readme.md",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "defaults",
			opts: runner.Options{},
			want: []string{
				"docs/api.markdown", "docs/deep/notes.MD", "docs/guide.md",
				"node_modules/lib/readme.md", "readme.md", "vendor/pkg/doc.md",
			},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".txt"}},
			want: []string{"notes.txt"},
		},
		{
			name: "exclude directories",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**", "node_modules/**"}},
			want: []string{"docs/api.markdown", "docs/deep/notes.MD", "docs/guide.md", "readme.md"},
		},
		{
			name: "exclude anywhere",
			opts: runner.Options{ExcludeGlobs: []string{"**/deep", "readme.md"}},
			want: []string{"docs/api.markdown", "docs/guide.md", "vendor/pkg/doc.md"},
		},
		{
			name: "include",
			opts: runner.Options{IncludeGlobs: []string{"docs/**"}},
			want: []string{"docs/api.markdown", "docs/deep/notes.MD", "docs/guide.md"},
		},
		{
			name: "include by base name",
			opts: runner.Options{IncludeGlobs: []string{"*.markdown"}},
			want: []string{"docs/api.markdown"},
		},
		{
			name: "skip vendored",
			opts: runner.Options{SkipVendored: true, Paths: []string{"node_modules", "docs"}},
			want: []string{"docs/api.markdown", "docs/deep/notes.MD", "docs/guide.md"},
		},
		{
			name: "multiple paths deduplicated",
			opts: runner.Options{Paths: []string{"docs", "docs/guide.md", "readme.md", "."}, ExcludeGlobs: []string{"**/*.markdown"}},
			want: []string{
				"docs/deep/notes.MD", "docs/guide.md",
				"node_modules/lib/readme.md", "readme.md", "vendor/pkg/doc.md",
			},
		},
		{
			name: "explicit file bypasses extension filter",
			opts: runner.Options{Paths: []string{"notes.txt"}},
			want: []string{"notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := makeTree(t, tree...)
			opts := tt.opts
			opts.WorkingDir = dir

			got, err := runner.Discover(context.Background(), opts)
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}

			if rel := relAll(t, dir, got); !slices.Equal(rel, tt.want) {
				t.Errorf("Discover() = %v, want %v", rel, tt.want)
			}
			if !slices.IsSorted(got) {
				t.Errorf("Discover() result not sorted: %v", got)
			}
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "a.md")

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, Paths: []string{"missing"}})
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
	})

	t.Run("bad glob", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, ExcludeGlobs: []string{"["}})
		if err == nil || !strings.Contains(err.Error(), "compile glob") {
			t.Fatalf("expected glob error, got %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "real/doc.md")
	external := makeTree(t, "external.md")

	if err := os.Symlink(filepath.Join(dir, "real", "doc.md"), filepath.Join(dir, "link.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(external, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	ctx := context.Background()
	opts := runner.Options{WorkingDir: dir}

	got, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if rel := relAll(t, dir, got); !slices.Equal(rel, []string{"link.md", "real/doc.md"}) {
		t.Errorf("without FollowSymlinks got %v", rel)
	}

	opts.FollowSymlinks = true
	got, err = runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(got) != 3 || !slices.ContainsFunc(got, func(p string) bool { return strings.HasSuffix(p, "external.md") }) {
		t.Errorf("with FollowSymlinks got %v", got)
	}
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	if got := runner.DefaultExtensions(); !slices.Equal(got, []string{".md", ".markdown"}) {
		t.Errorf("DefaultExtensions() = %v", got)
	}
}
