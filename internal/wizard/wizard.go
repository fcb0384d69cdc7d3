package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/envfile"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
	"github.com/conn-castle/pakk/internal/templates"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")
)

// Run starts the interactive setup flow in root.
// A missing pakk.toml is seeded from the embedded template before the
// prompts run, so the wizard always patches real content.
func Run(root string, ui UI) error {
	return RunWithWriter(root, ui, os.Stdout)
}

// RunWithWriter is Run with user-facing output directed at out.
func RunWithWriter(root string, ui UI, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	configPath := filepath.Join(root, config.FileName)
	envPath := filepath.Join(root, config.EnvFileName)

	content, err := currentConfigContent(configPath)
	if err != nil {
		return err
	}

	cfg, err := config.Parse([]byte(content), configPath)
	if err != nil {
		// A broken config should not lock the user out of the wizard;
		// seed the prompts from the template defaults instead.
		cfg, err = config.LoadTemplate()
		if err != nil {
			cfg = &config.Config{}
		}
	}

	choices := NewChoices(cfg)
	if err := promptFlow(ui, choices); err != nil {
		return exitQuietly(err, out)
	}

	if err := confirmAndApply(configPath, envPath, content, ui, choices, out); err != nil {
		return exitQuietly(err, out)
	}
	return nil
}

// exitQuietly maps back/cancel to a clean no-change exit.
func exitQuietly(err error, out io.Writer) error {
	if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}
	return err
}

func currentConfigContent(configPath string) (string, error) {
	if fsutil.FileExists(configPath) {
		return fsutil.ReadFileText(configPath)
	}
	data, err := templates.Read(config.FileName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type flowStep int

const (
	stepSource flowStep = iota
	stepOutputDir
	stepPrerelease
	stepAPIKey
	stepCount
)

// promptFlow walks the steps with Esc-to-back navigation. Each step's
// selections are snapshotted so going back restores the previous state.
func promptFlow(ui UI, choices *Choices) error {
	step := stepSource
	for {
		snapshot := choices.Clone()
		var err error

		switch step {
		case stepSource:
			err = promptSource(ui, choices)
		case stepOutputDir:
			err = ui.Input(messages.WizardOutputDirTitle, &choices.OutputDirectory)
		case stepPrerelease:
			err = promptChannel(ui, choices)
		case stepAPIKey:
			err = ui.SecretInput(messages.WizardAPIKeyTitle, &choices.APIKey)
		default:
			return nil
		}

		if err == nil {
			if step == stepCount-1 {
				return nil
			}
			step++
			continue
		}

		if !errors.Is(err, errWizardBack) {
			return err
		}

		if snapshot != nil {
			*choices = *snapshot
		}

		if step == stepSource {
			exit, confirmErr := confirmExitOnFirstStepEscape(ui)
			if confirmErr != nil {
				return confirmErr
			}
			if exit {
				return errWizardCancelled
			}
			continue
		}
		step--
	}
}

func promptSource(ui UI, choices *Choices) error {
	if err := ui.Input(messages.WizardFeedNameTitle, &choices.SourceName); err != nil {
		return err
	}
	if strings.TrimSpace(choices.SourceName) == "" {
		return fmt.Errorf(messages.WizardSourceNameRequired)
	}
	if err := ui.Input(messages.WizardFeedURLTitle, &choices.SourceURL); err != nil {
		return err
	}
	if strings.TrimSpace(choices.SourceURL) == "" {
		return fmt.Errorf(messages.WizardSourceURLRequired)
	}
	return nil
}

// promptChannel offers the stable and prerelease channels as a pick list
// seeded with the current setting.
func promptChannel(ui UI, choices *Choices) error {
	channel := messages.WizardChannelStable
	if choices.Prerelease {
		channel = messages.WizardChannelPrerelease
	}
	options := []string{messages.WizardChannelStable, messages.WizardChannelPrerelease}
	if err := ui.Select(messages.WizardPrereleaseTitle, options, &channel); err != nil {
		return err
	}
	choices.Prerelease = channel == messages.WizardChannelPrerelease
	return nil
}

func confirmExitOnFirstStepEscape(ui UI) (bool, error) {
	exit := true
	if err := ui.Confirm(messages.WizardFirstStepExitPrompt, &exit); err != nil {
		if errors.Is(err, errWizardBack) {
			return false, nil
		}
		return false, err
	}
	return exit, nil
}

func confirmAndApply(configPath, envPath, current string, ui UI, choices *Choices, out io.Writer) error {
	if err := ui.Note(messages.WizardSummaryTitle, choices.Summary()); err != nil {
		return err
	}

	next, err := PatchConfig(current, choices)
	if err != nil {
		return err
	}
	currentEnv, nextEnv, err := patchEnv(envPath, choices)
	if err != nil {
		return err
	}

	preview := buildPreview(current, next, currentEnv, nextEnv)
	if err := ui.Note(messages.WizardPreviewTitle, preview); err != nil {
		return err
	}

	apply := true
	if err := ui.Confirm(messages.WizardApplyPrompt, &apply); err != nil {
		return err
	}
	if !apply {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := fsutil.WriteFileText(configPath, next, fsutil.EncodingUTF8, fsutil.Options{}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.WizardWroteConfigFmt, configPath)
	if nextEnv != currentEnv {
		if err := fsutil.WriteFileText(envPath, nextEnv, fsutil.EncodingUTF8, fsutil.Options{}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, messages.WizardWroteConfigFmt, envPath)
	}

	_, _ = color.New(color.FgGreen).Fprintln(out, messages.WizardCompleted)
	return nil
}

// patchEnv folds the API key secret into the env file content. The key
// never lands in pakk.toml.
func patchEnv(envPath string, choices *Choices) (current string, next string, err error) {
	if fsutil.FileExists(envPath) {
		current, err = fsutil.ReadFileText(envPath)
		if err != nil {
			return "", "", err
		}
		if _, parseErr := envfile.Parse(current); parseErr != nil {
			return "", "", fmt.Errorf(messages.WizardInvalidEnvFileFmt, envPath, parseErr)
		}
	}
	next = current
	if choices.APIKey != "" {
		next = envfile.Patch(current, map[string]string{config.EnvAPIKey: choices.APIKey})
	}
	return current, next, nil
}

func buildPreview(currentConfig, nextConfig, currentEnv, nextEnv string) string {
	parts := make([]string, 0, 2)
	if diff := strings.TrimSpace(udiff.Unified(
		config.FileName+" (current)",
		config.FileName+" (proposed)",
		currentConfig,
		nextConfig,
	)); diff != "" {
		parts = append(parts, diff)
	}
	if diff := strings.TrimSpace(udiff.Unified(
		config.EnvFileName+" (current)",
		config.EnvFileName+" (proposed)",
		currentEnv,
		nextEnv,
	)); diff != "" {
		parts = append(parts, diff)
	}
	if len(parts) == 0 {
		return messages.WizardNoChanges
	}
	return strings.Join(parts, "\n\n")
}
