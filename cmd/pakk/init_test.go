package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/templates"
)

func stubTerminal(t *testing.T, value bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return value }
	t.Cleanup(func() { isTerminal = orig })
}

func stubWizard(t *testing.T) *[]string {
	t.Helper()
	orig := runWizard
	roots := []string{}
	runWizard = func(root string) error {
		roots = append(roots, root)
		return nil
	}
	t.Cleanup(func() { runWizard = orig })
	return &roots
}

func TestInitCreatesFiles(t *testing.T) {
	stubTerminal(t, false)
	dir := t.TempDir()

	out, _, err := runPakk(t, dir, "", "init")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "Wrote pakk.toml") || !strings.Contains(out, "Wrote .pakk.env") {
		t.Fatalf("unexpected output %q", out)
	}

	template, err := templates.Read(config.FileName)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	written, err := os.ReadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if string(written) != string(template) {
		t.Fatal("written config does not match template")
	}
	if _, err := os.Stat(filepath.Join(dir, config.EnvFileName)); err != nil {
		t.Fatalf("expected env file: %v", err)
	}
}

func TestInitSeedsAtRepoRoot(t *testing.T) {
	stubTerminal(t, false)
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	nested := filepath.Join(repo, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	if _, _, err := runPakk(t, nested, "", "init"); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo, config.FileName)); err != nil {
		t.Fatalf("expected config at checkout root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(nested, config.FileName)); !os.IsNotExist(err) {
		t.Fatalf("expected no config in nested directory, err=%v", err)
	}
}

func TestInitKeepsIdenticalExisting(t *testing.T) {
	stubTerminal(t, false)
	dir := t.TempDir()
	if _, _, err := runPakk(t, dir, "", "init"); err != nil {
		t.Fatalf("first init: %v", err)
	}
	out, _, err := runPakk(t, dir, "", "init")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "Kept existing pakk.toml.") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInitOverwriteRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)
	dir := writeProject(t, testConfig)
	_, _, err := runPakk(t, dir, "", "init")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestInitForceOverwrites(t *testing.T) {
	stubTerminal(t, false)
	dir := writeProject(t, testConfig)
	if _, _, err := runPakk(t, dir, "", "init", "--force"); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	template, err := templates.Read(config.FileName)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	written, err := os.ReadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if string(written) != string(template) {
		t.Fatal("expected template content after --force")
	}
}

func TestInitPromptDeclineKeepsExisting(t *testing.T) {
	stubTerminal(t, true)
	stubWizard(t)
	dir := writeProject(t, testConfig)

	out, _, err := runPakk(t, dir, "n\nn\n", "init")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "Existing pakk.toml differs from the template:") {
		t.Fatalf("expected diff header in %q", out)
	}
	if !strings.Contains(out, "Kept existing pakk.toml.") {
		t.Fatalf("expected keep notice in %q", out)
	}
	written, err := os.ReadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(written) != testConfig {
		t.Fatal("existing config was modified")
	}
}

func TestInitRunsWizardOnAccept(t *testing.T) {
	stubTerminal(t, true)
	roots := stubWizard(t)
	dir := t.TempDir()

	if _, _, err := runPakk(t, dir, "y\n", "init"); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(*roots) != 1 {
		t.Fatalf("expected wizard to run once, ran %d times", len(*roots))
	}
}

func TestInitNoWizardSkipsPrompt(t *testing.T) {
	stubTerminal(t, true)
	roots := stubWizard(t)
	dir := t.TempDir()

	out, _, err := runPakk(t, dir, "", "init", "--no-wizard")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.Contains(out, "setup wizard") {
		t.Fatalf("expected no wizard prompt in %q", out)
	}
	if len(*roots) != 0 {
		t.Fatal("wizard should not run with --no-wizard")
	}
}
