package main

import "github.com/spf13/cobra"

// splitAtDash separates positional args from the args that appeared after a
// standalone "--" and should be forwarded to the underlying tool verbatim.
func splitAtDash(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
