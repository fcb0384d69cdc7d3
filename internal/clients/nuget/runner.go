package nuget

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"

	"github.com/conn-castle/pakk/internal/fsutil"
	"github.com/conn-castle/pakk/internal/messages"
)

// ToolName is the executable pakk wraps for feed operations.
const ToolName = "nuget"

var locateTool = fsutil.LocateExecutable

// Runner spawns the wrapped feed client.
type Runner struct {
	// Tool overrides ToolName, mainly for tests.
	Tool string
	// Env is the child environment; nil inherits the parent's.
	Env []string
	// Verbose echoes the command line before running it.
	Verbose bool

	Stdout io.Writer
	Stderr io.Writer
}

// Run splits the compiled argument line with shell quoting rules and runs
// the tool with inherited stdio. Extra arguments are appended to the argv
// verbatim, after the split, so caller-supplied values keep their spacing
// and quotes.
func (r Runner) Run(argLine string, extra ...string) error {
	tool := r.Tool
	if tool == "" {
		tool = ToolName
	}
	path, ok := locateTool(tool)
	if !ok {
		return fmt.Errorf(messages.ToolNotFoundFmt, tool)
	}

	args, err := shlex.Split(argLine)
	if err != nil {
		return fmt.Errorf(messages.ToolFailedFmt, tool, err)
	}
	args = append(args, extra...)

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if r.Verbose {
		display := argLine
		if len(extra) > 0 {
			display += " " + strings.Join(extra, " ")
		}
		fmt.Fprintf(stderr, messages.RunningToolFmt, path, display)
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = r.Env

	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.ToolFailedFmt, tool, err)
	}
	return nil
}
