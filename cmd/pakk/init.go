package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
	"github.com/conn-castle/pakk/internal/root"
	"github.com/conn-castle/pakk/internal/templates"
	"github.com/conn-castle/pakk/internal/terminal"
	"github.com/conn-castle/pakk/internal/wizard"
)

var isTerminal = terminal.IsInteractive

var runWizard = func(root string) error {
	return wizard.Run(root, wizard.NewHuhUI())
}

func newInitCmd() *cobra.Command {
	var force bool
	var noWizard bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			dir, err := root.FindRepoRoot(cwd)
			if err != nil {
				return err
			}
			if err := seedConfig(cmd, dir, force); err != nil {
				return err
			}
			if err := seedEnvFile(cmd, dir); err != nil {
				return err
			}
			if noWizard || !isTerminal() {
				return nil
			}
			run, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), messages.WizardRunPrompt, true)
			if err != nil {
				return err
			}
			if !run {
				return nil
			}
			return runWizard(dir)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&noWizard, "no-wizard", false, messages.InitFlagNoWizard)

	return cmd
}

// seedConfig writes the pakk.toml template, prompting before replacing an
// existing file that differs from it.
func seedConfig(cmd *cobra.Command, dir string, force bool) error {
	template, err := templates.Read(config.FileName)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	path := filepath.Join(dir, config.FileName)
	if !fsutil.FileExists(path) {
		return writeTemplate(out, path, string(template))
	}
	existing, err := fsutil.ReadFileText(path)
	if err != nil {
		return err
	}
	if existing == string(template) {
		_, err := fmt.Fprintln(out, messages.InitKeptExisting)
		return err
	}
	if force {
		return writeTemplate(out, path, string(template))
	}
	if !isTerminal() {
		return errors.New(messages.InitOverwriteRequiresTerminal)
	}
	if _, err := fmt.Fprintln(out, messages.InitExistingDiffersHeader); err != nil {
		return err
	}
	diff := udiff.Unified(config.FileName, config.FileName+" (template)", existing, string(template))
	if _, err := fmt.Fprintln(out, strings.TrimSpace(diff)); err != nil {
		return err
	}
	overwrite, err := promptYesNo(cmd.InOrStdin(), out, messages.InitOverwritePrompt, false)
	if err != nil {
		return err
	}
	if !overwrite {
		_, err := fmt.Fprintln(out, messages.InitKeptExisting)
		return err
	}
	return writeTemplate(out, path, string(template))
}

// seedEnvFile writes the commented .pakk.env placeholder when none exists.
func seedEnvFile(cmd *cobra.Command, dir string) error {
	path := filepath.Join(dir, config.EnvFileName)
	if fsutil.FileExists(path) {
		return nil
	}
	template, err := templates.Read("pakk.env")
	if err != nil {
		return err
	}
	return writeTemplate(cmd.OutOrStdout(), path, string(template))
}

func writeTemplate(out io.Writer, path, content string) error {
	if err := fsutil.WriteFileText(path, content, fsutil.EncodingUTF8, fsutil.Options{}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, messages.WroteFileFmt, filepath.Base(path))
	return err
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if _, err := fmt.Fprintf(out, format, prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
