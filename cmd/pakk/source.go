package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pakk/internal/config"
	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
)

func newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.SourceUse,
		Short: messages.SourceShort,
	}
	cmd.AddCommand(newSourceAddCmd())
	cmd.AddCommand(newSourceRemoveCmd())
	cmd.AddCommand(newSourceListCmd())
	return cmd
}

func newSourceAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SourceAddUse,
		Short: messages.SourceAddShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, url := args[0], args[1]
			if name == "" || url == "" {
				return errors.New(messages.SourceAddArgs)
			}
			return patchSources(cmd, func(content string) (string, error) {
				return config.AddSource(content, name, url)
			}, fmt.Sprintf(messages.SourceAddedFmt, name, url))
		},
	}
}

func newSourceRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SourceRemoveUse,
		Short: messages.SourceRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return errors.New(messages.SourceRemoveArgs)
			}
			return patchSources(cmd, func(content string) (string, error) {
				return config.RemoveSource(content, name)
			}, fmt.Sprintf(messages.SourceRemovedFmt, name))
		},
	}
}

func newSourceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SourceListUse,
		Short: messages.SourceListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject()
			if err != nil {
				return err
			}
			if len(proj.Config.Sources) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), messages.SourceListEmpty)
				return err
			}
			for _, src := range proj.Config.Sources {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), messages.SourceListEntryFmt, src.Name, src.URL); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// patchSources applies an edit to the project's pakk.toml and writes the
// result back, printing the done message on success.
func patchSources(cmd *cobra.Command, edit func(string) (string, error), done string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	path := filepath.Join(proj.Root, config.FileName)
	content, err := fsutil.ReadFileText(path)
	if err != nil {
		return err
	}
	next, err := edit(content)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileText(path, next, fsutil.EncodingUTF8, fsutil.Options{}); err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), done)
	return err
}
