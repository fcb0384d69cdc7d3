//go:build !windows

package terminal

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestIsTerminalFilePipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminalFile(r) || IsTerminalFile(w) {
		t.Fatal("pipe ends must not look like terminals")
	}
}

func TestIsTerminalFilePTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsTerminalFile(tty) {
		t.Fatal("pty slave should look like a terminal")
	}
}
