package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCombine(t *testing.T) {
	sep := string(Separator())
	got := Combine("a", "b", "c.txt")
	want := strings.Join([]string{"a", "b", "c.txt"}, sep)
	if got != want {
		t.Fatalf("Combine = %q, want %q", got, want)
	}
}

func TestFullPathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := FullPath(filepath.Join("~", "pkgs"))
	if err != nil {
		t.Fatalf("FullPath error: %v", err)
	}
	if got != filepath.Join(home, "pkgs") {
		t.Fatalf("FullPath = %q", got)
	}
}

func TestFullPathAbsolute(t *testing.T) {
	got, err := FullPath("relative/path")
	if err != nil {
		t.Fatalf("FullPath error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

func TestLocateExecutableSearchesPath(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "faketool")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
	t.Setenv("PATH", dir)
	t.Setenv("PATHEXT", "")

	got, found := LocateExecutable("faketool")
	if !found {
		t.Fatalf("expected tool to be found")
	}
	if got != tool {
		t.Fatalf("LocateExecutable = %q, want %q", got, tool)
	}
}

func TestLocateExecutableTriesPathext(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "faketool.cmd")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
	t.Setenv("PATH", dir)
	t.Setenv("PATHEXT", ".COM"+string(os.PathListSeparator)+".CMD")

	got, found := LocateExecutable("faketool")
	if !found {
		t.Fatalf("expected tool to be found via PATHEXT")
	}
	if got != tool {
		t.Fatalf("LocateExecutable = %q, want %q", got, tool)
	}
}

func TestLocateExecutableMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("PATHEXT", "")

	if _, found := LocateExecutable("definitely-not-here"); found {
		t.Fatalf("expected tool to be missing")
	}
	if _, found := LocateExecutable(""); found {
		t.Fatalf("empty name must not resolve")
	}
}

func TestLocateExecutablePrefersCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	pathDir := t.TempDir()
	for _, d := range []string{dir, pathDir} {
		tool := filepath.Join(d, "faketool")
		if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write tool: %v", err)
		}
	}
	t.Chdir(dir)
	t.Setenv("PATH", pathDir)
	t.Setenv("PATHEXT", "")

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	got, found := LocateExecutable("faketool")
	if !found {
		t.Fatalf("expected tool to be found")
	}
	if filepath.Dir(got) != cwd {
		t.Fatalf("expected current-directory match, got %q", got)
	}
}
