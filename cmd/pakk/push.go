package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/clients/nuget"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
)

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.PushUse,
		Short: messages.PushShort,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passArgs := splitAtDash(cmd, args)
			if len(positional) != 1 || positional[0] == "" {
				return errors.New(messages.PushPackageRequired)
			}
			pkg := positional[0]
			if !fsutil.FileExists(pkg) {
				return fmt.Errorf(messages.PushPackageMissingFmt, pkg)
			}
			proj, err := loadProject()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				proj.Config.PushCommand.Source, _ = cmd.Flags().GetString("source")
			}
			if cmd.Flags().Changed("timeout") {
				proj.Config.PushCommand.Timeout, _ = cmd.Flags().GetInt("timeout")
			}
			line := nuget.PushArgs(*proj.Config, pkg)
			return proj.runTool(cmd, line, passArgs)
		},
	}
	cmd.Flags().String("source", "", messages.PushFlagSource)
	cmd.Flags().Int("timeout", 0, messages.PushFlagTimeout)
	return cmd
}
