package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/clients/nuget"
	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
	"github.com/conn-castle/pakk/internal/root"
)

var getwd = os.Getwd

// project holds the resolved root directory and its loaded configuration,
// with .pakk.env overrides already applied.
type project struct {
	Root    string
	Config  *config.Config
	Secrets map[string]string
}

// loadProject walks up from the working directory to the nearest pakk.toml
// and loads it together with any .pakk.env file beside it.
func loadProject() (*project, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	dir, found, err := root.FindProjectRoot(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New(messages.RootMissingConfig)
	}
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}
	secrets := map[string]string{}
	envPath := filepath.Join(dir, config.EnvFileName)
	if fsutil.FileExists(envPath) {
		secrets, err = config.LoadEnv(envPath)
		if err != nil {
			return nil, err
		}
		cfg.ApplyEnv(secrets)
	}
	return &project{Root: dir, Config: cfg, Secrets: secrets}, nil
}

// ensureOutputDirectory creates the output directory, resolving relative
// paths against the project root. An empty value is left to the tool.
func ensureOutputDirectory(root, dir string) error {
	if dir == "" {
		return nil
	}
	if !filepath.IsAbs(dir) {
		dir = fsutil.Combine(root, dir)
	}
	return fsutil.EnsureDirectory(dir)
}

// runner builds a tool runner bound to the command's output streams. The
// quiet flag wins over the config's verbose setting.
func (p *project) runner(cmd *cobra.Command) nuget.Runner {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return nuget.Runner{
		Env:     nuget.BuildEnv(os.Environ(), p.Secrets),
		Verbose: p.Config.Verbose && !quiet,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
}

// runTool runs the wrapped tool with the compiled line plus any passthrough
// args. When the tool itself exits nonzero it has already written its own
// error output, so pakk exits with the same code without adding a second
// message.
func (p *project) runTool(cmd *cobra.Command, line string, passArgs []string) error {
	err := p.runner(cmd).Run(line, passArgs...)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &SilentExitError{Code: exitErr.ExitCode()}
	}
	return err
}
