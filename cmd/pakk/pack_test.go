package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestPackComposesToolArgs(t *testing.T) {
	dir := writeProject(t, testConfig)
	manifest := filepath.Join(dir, "pkg.nuspec")
	if err := os.WriteFile(manifest, []byte("<package/>"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	binDir := t.TempDir()
	argsFile := filepath.Join(t.TempDir(), "nuget-args.txt")
	writeArgsStub(t, binDir, "nuget", argsFile)
	t.Setenv("PATH", binDir)

	_, _, err := runPakk(t, dir, "", "pack", "pkg.nuspec", "--base-path", ".")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	want := []string{
		"pack", "pkg.nuspec",
		"-basepath", ".",
		"-outputdirectory", "packages",
		"-version", "1.2.3",
	}
	if got := stubArgs(t, argsFile); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected args %v, got %v", want, got)
	}
}

func TestPackMissingManifest(t *testing.T) {
	dir := writeProject(t, testConfig)
	_, _, err := runPakk(t, dir, "", "pack", "missing.nuspec")
	if err == nil || !strings.Contains(err.Error(), "missing.nuspec does not exist") {
		t.Fatalf("expected missing manifest error, got %v", err)
	}
}

func TestPackRequiresManifest(t *testing.T) {
	dir := writeProject(t, testConfig)
	_, _, err := runPakk(t, dir, "", "pack")
	if err == nil || !strings.Contains(err.Error(), "manifest path is required") {
		t.Fatalf("expected manifest error, got %v", err)
	}
}
