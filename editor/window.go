package editor

// Mode is the interaction state of a window. Exactly one mode is active
// per window; it gates which actions are semantically valid.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeAppend
	// ModeGoto consumes exactly one motion key, then drops back to
	// normal. The selecting variant extends instead of collapsing.
	ModeGoto
	ModeGotoSelecting
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeAppend:
		return "append"
	case ModeGoto:
		return "goto"
	case ModeGotoSelecting:
		return "goto+"
	case ModeCommand:
		return "command"
	}
	return "unknown"
}

// GotoSelecting reports whether a goto-family mode extends selections.
func (m Mode) GotoSelecting() bool { return m == ModeGotoSelecting }

// BufferID, WindowID and SelectionID are the stable identities the
// editor state hands out instead of pointers.
type (
	BufferID    = Handle[Buffer]
	WindowID    = Handle[Window]
	SelectionID = Handle[Selection]
)

// Window is one view onto a buffer: it owns its selections and mode but
// references the buffer by identity, so several windows may share one
// document.
type Window struct {
	Buffer     BufferID
	Mode       Mode
	Selections Arena[Selection]
	// Primary is the selection that drives scroll-follow and clipboard
	// yanks.
	Primary SelectionID
	// Command accumulates the command-line text while in command mode.
	Command string
	// Top is the first visible line, recomputed by the view on each
	// draw.
	Top Line
}

// NewWindow creates a window over buf with a single collapsed primary
// selection at the document origin.
func NewWindow(buf BufferID) *Window {
	w := &Window{
		Buffer: buf,
		Mode:   ModeNormal,
		Top:    1,
	}
	w.Primary = w.Selections.Insert(NewSelection())
	return w
}

// PrimarySelection returns the window's primary selection.
func (w *Window) PrimarySelection() *Selection {
	return w.Selections.Must(w.Primary)
}
