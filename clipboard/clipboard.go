// Package clipboard mediates yank and paste between the editor and the
// outside world. It prefers the system clipboard and degrades to OSC52
// escape sequences over SSH, where no system clipboard is reachable;
// an in-process register backs both so a yank is never lost.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

type Clipboard struct {
	// register holds the last yank for when no system clipboard is
	// available.
	register string
	ssh      bool
	// out receives OSC52 sequences, typically the terminal.
	out io.Writer
}

func New(out io.Writer) *Clipboard {
	if out == nil {
		out = os.Stdout
	}
	return &Clipboard{ssh: sshSession(), out: out}
}

func sshSession() bool {
	for _, v := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// Yank stores text. Over SSH only OSC52 can reach the user's clipboard;
// locally the system clipboard is tried first.
func (c *Clipboard) Yank(text string) error {
	c.register = text
	if c.ssh {
		return c.yankOSC52(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return c.yankOSC52(text)
	}
	return nil
}

func (c *Clipboard) yankOSC52(text string) error {
	_, err := io.WriteString(c.out, osc52.New(text).String())
	return err
}

// Paste returns the clipboard text. OSC52 has no usable read channel,
// so the system clipboard is consulted and the register is the
// fallback.
func (c *Clipboard) Paste() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return c.register
}

// IsSSH reports whether an SSH session was detected.
func (c *Clipboard) IsSSH() bool { return c.ssh }
