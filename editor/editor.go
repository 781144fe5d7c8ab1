package editor

// Severity classifies a pending user-facing message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Message is a one-shot notification for the status line. Whoever
// displays it consumes it.
type Message struct {
	Severity Severity
	Text     string
}

// Editor is the whole in-process editing state: every buffer and window
// lives in an arena here, and all mutation flows through methods on
// this value. It is single threaded; the event loop applies one action
// at a time.
type Editor struct {
	Buffers Arena[Buffer]
	Windows Arena[Window]
	// Tabs is the ordered list of open windows; Focused indexes into
	// it.
	Tabs    []WindowID
	Focused int

	// ScreenHeight is the last text-area height reported by the view.
	// Zero means no draw has happened yet; page scrolling is a no-op
	// until then.
	ScreenHeight int

	message  *Message
	wantQuit bool
}

// New creates an editor holding a single scratch buffer in a single
// focused window.
func New() *Editor {
	e := &Editor{}
	buf := e.Buffers.Insert(*NewScratchBuffer())
	win := e.Windows.Insert(*NewWindow(buf))
	e.Tabs = []WindowID{win}
	return e
}

// FocusedWindowID returns the identity of the focused window.
func (e *Editor) FocusedWindowID() WindowID {
	return e.Tabs[e.Focused]
}

// FocusedWindow returns the focused window.
func (e *Editor) FocusedWindow() *Window {
	return e.Windows.Must(e.FocusedWindowID())
}

// WindowBuffer returns the buffer viewed by w.
func (e *Editor) WindowBuffer(w *Window) *Buffer {
	return e.Buffers.Must(w.Buffer)
}

// FocusNextTab cycles focus forward through the tab list.
func (e *Editor) FocusNextTab() {
	e.Focused = (e.Focused + 1) % len(e.Tabs)
}

// FocusPrevTab cycles focus backward, wrapping from the first tab to
// the last.
func (e *Editor) FocusPrevTab() {
	e.Focused = (e.Focused + len(e.Tabs) - 1) % len(e.Tabs)
}

// ShowMessage stages a message for the status line, replacing any
// pending one.
func (e *Editor) ShowMessage(sev Severity, text string) {
	e.message = &Message{Severity: sev, Text: text}
}

// TakeMessage returns the pending message and clears it. Reading is
// consuming: the second caller sees nothing.
func (e *Editor) TakeMessage() (Message, bool) {
	if e.message == nil {
		return Message{}, false
	}
	m := *e.message
	e.message = nil
	return m, true
}

// Quit requests process exit. The event loop observes it via WantQuit.
func (e *Editor) Quit() {
	e.wantQuit = true
}

// WantQuit reports whether a quit has been requested.
func (e *Editor) WantQuit() bool {
	return e.wantQuit
}

// MoveSelection moves one selection's cursor; without drag the anchor
// collapses onto it. Errors surface to the caller with any partial
// motion already applied.
func (e *Editor) MoveSelection(winID WindowID, selID SelectionID, m Movement, drag bool) error {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	return win.Selections.Must(selID).MoveTo(buf.Content, m, drag)
}

// MoveSelections moves every selection of the window, stopping at the
// first failure.
func (e *Editor) MoveSelections(winID WindowID, m Movement, drag bool) error {
	win := e.Windows.Must(winID)
	for _, selID := range win.Selections.Handles() {
		if err := e.MoveSelection(winID, selID, m, drag); err != nil {
			return err
		}
	}
	return nil
}

// ShiftSelection moves both endpoints of one selection by the same
// movement, preserving its extent.
func (e *Editor) ShiftSelection(winID WindowID, selID SelectionID, m Movement) error {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	sel := win.Selections.Must(selID)
	if err := sel.Start.MoveTo(buf.Content, m); err != nil {
		return err
	}
	return sel.End.MoveTo(buf.Content, m)
}

// ShiftSelections shifts every selection of the window.
func (e *Editor) ShiftSelections(winID WindowID, m Movement) error {
	win := e.Windows.Must(winID)
	for _, selID := range win.Selections.Handles() {
		if err := e.ShiftSelection(winID, selID, m); err != nil {
			return err
		}
	}
	return nil
}

// InsertCharBefore inserts c at the selection's anchor.
func (e *Editor) InsertCharBefore(winID WindowID, selID SelectionID, c rune) {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	buf.InsertCharAt(win.Selections.Must(selID).Start, c)
}

// InsertCharAfter inserts c at the selection's cursor.
func (e *Editor) InsertCharAfter(winID WindowID, selID SelectionID, c rune) {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	buf.InsertCharAt(win.Selections.Must(selID).End, c)
}

// DeleteSelections removes the text under every selection of the
// window, collapsing each to its former start.
func (e *Editor) DeleteSelections(winID WindowID) {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	for _, selID := range win.Selections.Handles() {
		win.Selections.Must(selID).RemoveFrom(buf)
	}
}

// OrderSelections orders every selection of the window.
func (e *Editor) OrderSelections(winID WindowID) {
	win := e.Windows.Must(winID)
	for _, selID := range win.Selections.Handles() {
		win.Selections.Must(selID).Order()
	}
}

// FlipSelections swaps anchor and cursor of every selection.
func (e *Editor) FlipSelections(winID WindowID) {
	win := e.Windows.Must(winID)
	for _, selID := range win.Selections.Handles() {
		win.Selections.Must(selID).Flip()
	}
}

// Undo reverses the most recent edit on the window's buffer. Because
// several windows may view one buffer, every selection in every window
// over that buffer is re-validated afterwards; line and column numbers
// may now point past new boundaries.
func (e *Editor) Undo(winID WindowID) error {
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	if err := buf.Undo(); err != nil {
		return err
	}
	for _, otherID := range e.Windows.Handles() {
		other := e.Windows.Must(otherID)
		if other.Buffer != win.Buffer {
			continue
		}
		for _, selID := range other.Selections.Handles() {
			other.Selections.Must(selID).Validate(buf.Content)
		}
	}
	return nil
}

// PrimarySelectionText returns the text under the focused window's
// primary selection. The clipboard layer yanks through this.
func (e *Editor) PrimarySelectionText() string {
	win := e.FocusedWindow()
	buf := e.WindowBuffer(win)
	return win.PrimarySelection().Valid(buf.Content).Text(buf.Content)
}

// InsertTextAtSelections pastes s at the cursor of every selection of
// the focused window as one undoable edit per selection.
func (e *Editor) InsertTextAtSelections(s string) {
	if s == "" {
		return
	}
	winID := e.FocusedWindowID()
	win := e.Windows.Must(winID)
	buf := e.WindowBuffer(win)
	for _, selID := range win.Selections.Handles() {
		sel := win.Selections.Must(selID)
		sel.Validate(buf.Content)
		buf.InsertTextAt(sel.End, s)
	}
}

// OpenBuffer registers a loaded buffer, wraps it in a new window,
// appends the window to the tab list and focuses it.
func (e *Editor) OpenBuffer(buf *Buffer) WindowID {
	bufID := e.Buffers.Insert(*buf)
	winID := e.Windows.Insert(*NewWindow(bufID))
	e.Tabs = append(e.Tabs, winID)
	e.Focused = len(e.Tabs) - 1
	return winID
}
