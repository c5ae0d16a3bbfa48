package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaderlang/ilgen/config"
)

func TestLoadEntryPoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.toml")
	const manifest = `
[compile]
entry-points = [
  { name = "vs_main", stage = "vertex" },
  { name = "fs_main", stage = "fragment" },
]
`
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opts.EntryPoints) != 2 {
		t.Fatalf("len(EntryPoints) = %d, want 2", len(opts.EntryPoints))
	}

	names := opts.EntryPointNames()
	if !names["vs_main"] || !names["fs_main"] {
		t.Fatalf("EntryPointNames() = %v, want vs_main and fs_main present", names)
	}
	if names["missing"] {
		t.Fatalf("EntryPointNames() reported an entry point that was never declared")
	}
}

func TestLoadMissingCompileSectionIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.toml")
	if err := os.WriteFile(path, []byte("# no [compile] section\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opts.EntryPoints) != 0 {
		t.Fatalf("len(EntryPoints) = %d, want 0 for a manifest with no [compile] section", len(opts.EntryPoints))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load("/nonexistent/shader.toml"); err == nil {
		t.Fatalf("Load of a nonexistent file returned no error")
	}
}
