package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/clients/nuget"
	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/messages"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passArgs := splitAtDash(cmd, args)
			if len(positional) != 1 || positional[0] == "" {
				return errors.New(messages.InstallPackageRequired)
			}
			proj, err := loadProject()
			if err != nil {
				return err
			}
			if err := applyInstallFlags(cmd, proj.Config); err != nil {
				return err
			}
			if err := ensureOutputDirectory(proj.Root, proj.Config.OutputDirectory); err != nil {
				return err
			}
			line := nuget.InstallArgs(*proj.Config, positional[0])
			return proj.runTool(cmd, line, passArgs)
		},
	}
	cmd.Flags().String("source", "", messages.InstallFlagSource)
	cmd.Flags().String("version", "", messages.InstallFlagVersion)
	cmd.Flags().StringP("output-directory", "o", "", messages.InstallFlagOutputDir)
	cmd.Flags().Bool("prerelease", false, messages.InstallFlagPrerelease)
	cmd.Flags().BoolP("force", "f", false, messages.InstallFlagForce)
	return cmd
}

// applyInstallFlags overlays the install command's flags onto the loaded
// config. Only flags the user set change anything.
func applyInstallFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("source") {
		value, err := cmd.Flags().GetString("source")
		if err != nil {
			return err
		}
		cfg.Sources = splitSourceFlag(value)
	}
	if cmd.Flags().Changed("version") {
		cfg.Version, _ = cmd.Flags().GetString("version")
	}
	if cmd.Flags().Changed("output-directory") {
		cfg.OutputDirectory, _ = cmd.Flags().GetString("output-directory")
	}
	if cmd.Flags().Changed("prerelease") {
		cfg.Prerelease, _ = cmd.Flags().GetBool("prerelease")
	}
	if cmd.Flags().Changed("force") {
		cfg.Force, _ = cmd.Flags().GetBool("force")
	}
	return nil
}

// splitSourceFlag turns a semicolon separated --source value into ad-hoc
// source entries that replace the configured list for this invocation.
func splitSourceFlag(value string) []config.Source {
	sources := []config.Source{}
	for _, url := range strings.Split(value, ";") {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		sources = append(sources, config.Source{Name: "cli", URL: url})
	}
	return sources
}
