package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/clients/nuget"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
)

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.PackUse,
		Short: messages.PackShort,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passArgs := splitAtDash(cmd, args)
			if len(positional) != 1 || positional[0] == "" {
				return errors.New(messages.PackManifestRequired)
			}
			manifest := positional[0]
			if !fsutil.FileExists(manifest) {
				return fmt.Errorf(messages.PackManifestMissingFmt, manifest)
			}
			proj, err := loadProject()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output-directory") {
				proj.Config.OutputDirectory, _ = cmd.Flags().GetString("output-directory")
			}
			if cmd.Flags().Changed("base-path") {
				proj.Config.PackCommand.BasePath, _ = cmd.Flags().GetString("base-path")
			}
			if err := ensureOutputDirectory(proj.Root, proj.Config.OutputDirectory); err != nil {
				return err
			}
			line := nuget.PackArgs(*proj.Config, manifest)
			return proj.runTool(cmd, line, passArgs)
		},
	}
	cmd.Flags().StringP("output-directory", "o", "", messages.PackFlagOutputDir)
	cmd.Flags().String("base-path", "", messages.PackFlagBasePath)
	return cmd
}
