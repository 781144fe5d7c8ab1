package editor

import "errors"

var (
	// Movement boundary failures. These are recoverable: the dispatcher
	// turns them into a status-line message and keeps running.
	ErrSelectionEmpty = errors.New("selection is empty")
	ErrNoPrevLine     = errors.New("no previous line")
	ErrNoNextLine     = errors.New("no next line")

	// History failures.
	ErrNothingToUndo   = errors.New("nothing left to undo")
	ErrRedoUnsupported = errors.New("redo is not implemented")

	// Command failures.
	ErrNoCommand = errors.New("no command given")
)
