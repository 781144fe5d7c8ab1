package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/shlex"

	"ked/encoding"
)

// commandDesc describes one entry of the command registry.
type commandDesc struct {
	name         string
	aliases      []string
	description  string
	requiredArgs int
	run          func(e *Editor, args []string) error
}

var commands = []commandDesc{
	{
		name:        "quit",
		aliases:     []string{"q"},
		description: "quit the editor",
		run: func(e *Editor, _ []string) error {
			e.Quit()
			return nil
		},
	},
	{
		name:         "open",
		aliases:      []string{"e"},
		description:  "open a file",
		requiredArgs: 1,
		run: func(e *Editor, args []string) error {
			buf, err := LoadFileBuffer(args[0])
			if err != nil {
				return err
			}
			e.OpenBuffer(buf)
			return nil
		},
	},
	{
		name:        "write",
		aliases:     []string{"w"},
		description: "write the current buffer contents to disk",
		run: func(e *Editor, _ []string) error {
			return e.WindowBuffer(e.FocusedWindow()).Save()
		},
	},
}

// LoadFileBuffer reads path into a new buffer, transcoding to UTF-8
// when the file is in a detectable legacy encoding. The buffer
// remembers the charset so Save writes the file back the same way.
// Nothing is created on error.
func LoadFileBuffer(name string) (*Buffer, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cs := encoding.Detect(data)
	decoded, err := encoding.DecodeToUTF8(data, cs)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s as %s: %w", name, cs, err)
	}
	buf := NewFileBuffer(path, name, string(decoded))
	buf.Charset = cs
	return buf, nil
}

// RunCommandLine tokenizes a submitted command line and dispatches it.
// An empty line is a reportable error, not a panic.
func (e *Editor) RunCommandLine(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("failed to parse command '%s'", line)
	}
	return e.RunCommand(args)
}

// RunCommand dispatches an already-tokenized command.
func (e *Editor) RunCommand(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	name := args[0]
	for i := range commands {
		cmd := &commands[i]
		if cmd.name != name && !slices.Contains(cmd.aliases, name) {
			continue
		}
		if len(args)-1 < cmd.requiredArgs {
			return fmt.Errorf("command '%s' requires %d argument(s)", name, cmd.requiredArgs)
		}
		return cmd.run(e, args[1:])
	}
	return fmt.Errorf("command '%s' doesn't exist", name)
}
