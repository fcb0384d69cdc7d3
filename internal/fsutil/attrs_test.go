package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAttributesReadOnlyAndHidden(t *testing.T) {
	dir := t.TempDir()
	visible := filepath.Join(dir, "visible.txt")
	hidden := filepath.Join(dir, ".hidden.txt")
	writeTestFile(t, visible, "x")
	writeTestFile(t, hidden, "x")
	if err := os.Chmod(visible, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if !IsReadOnlyFile(visible) {
		t.Fatalf("expected read-only attribute")
	}
	if IsHiddenFile(visible) {
		t.Fatalf("unexpected hidden attribute")
	}
	if !IsHiddenFile(hidden) {
		t.Fatalf("expected hidden attribute")
	}
	if IsSystemFile(visible) || IsEncryptedFile(visible) {
		t.Fatalf("unexpected system/encrypted attributes on plain file")
	}
}

func TestEnsureAndRemoveReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeTestFile(t, path, "x")

	if err := EnsureAttributes(path, AttrReadOnly); err != nil {
		t.Fatalf("EnsureAttributes error: %v", err)
	}
	if !IsReadOnlyFile(path) {
		t.Fatalf("expected file to be read-only")
	}
	if err := RemoveAttributes(path, AttrReadOnly); err != nil {
		t.Fatalf("RemoveAttributes error: %v", err)
	}
	if IsReadOnlyFile(path) {
		t.Fatalf("expected file to be writable again")
	}
}

func TestEnsureAttributesRejectsUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeTestFile(t, path, "x")

	if err := EnsureAttributes(path, AttrHidden); err == nil {
		t.Fatalf("expected error for hidden attribute")
	}
	if err := EnsureAttributes(path, AttrEncrypted); err == nil {
		t.Fatalf("expected error for encrypted attribute")
	}
}

func TestRemoveSystemAttributeBestEffort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeTestFile(t, path, "x")

	// Clearing the immutable flag is best effort, so a plain file on any
	// filesystem reports success.
	if err := RemoveAttributes(path, AttrSystem); err != nil {
		t.Fatalf("RemoveAttributes error: %v", err)
	}
	if IsSystemFile(path) {
		t.Fatalf("unexpected system attribute on plain file")
	}
}

func TestAttributeString(t *testing.T) {
	if got := (AttrReadOnly | AttrHidden).String(); got != "readonly|hidden" {
		t.Fatalf("String = %q", got)
	}
	if got := Attribute(0).String(); got != "none" {
		t.Fatalf("zero String = %q", got)
	}
}
