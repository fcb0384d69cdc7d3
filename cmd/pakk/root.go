package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("quiet", "q", false, messages.QuietFlag)
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newPackCmd())
	cmd.AddCommand(newPushCmd())
	cmd.AddCommand(newSourceCmd())
	return cmd
}
