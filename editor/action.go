package editor

import "fmt"

// ActionKind enumerates the closed set of atomic editor operations the
// input layer can produce. New kinds get a case in Apply; the default
// case panics so a missed one fails fast.
type ActionKind int

const (
	// Tab and buffer scope.
	ActionFocusPrevTab ActionKind = iota
	ActionFocusNextTab
	ActionUndo
	ActionRedo

	// Selection scope: applied to every selection of the focused
	// window.
	ActionInsertAtStart
	ActionInsertAtEnd
	ActionDelete
	ActionMove
	ActionShiftStart
	ActionShiftEnd
	ActionShift
	ActionOrder
	ActionFlip

	// Scroll scope: moves the primary selection by a screenful. A
	// no-op until the view has reported a height.
	ActionPageUp
	ActionPageDown
	ActionHalfPageUp
	ActionHalfPageDown

	// Window scope.
	ActionSwitchMode

	// Command-line scope: only legal in command mode.
	ActionCommandChar
	ActionCommandClear
	ActionCommandTab
	ActionCommandReturn
	ActionCommandBackspace
)

// Action is one atomic operation. Kind selects which auxiliary field is
// meaningful: Rune for character insertion and command-line input,
// Movement for motion, Mode for mode switches.
type Action struct {
	Kind     ActionKind
	Rune     rune
	Movement Movement
	Mode     Mode
}

// Convenience constructors for the kinds that carry a payload.

func InsertAtStart(c rune) Action { return Action{Kind: ActionInsertAtStart, Rune: c} }
func InsertAtEnd(c rune) Action   { return Action{Kind: ActionInsertAtEnd, Rune: c} }
func Move(m Movement) Action      { return Action{Kind: ActionMove, Movement: m} }
func ShiftStart(m Movement) Action {
	return Action{Kind: ActionShiftStart, Movement: m}
}
func ShiftEnd(m Movement) Action     { return Action{Kind: ActionShiftEnd, Movement: m} }
func Shift(m Movement) Action        { return Action{Kind: ActionShift, Movement: m} }
func SwitchMode(m Mode) Action       { return Action{Kind: ActionSwitchMode, Mode: m} }
func CommandChar(c rune) Action      { return Action{Kind: ActionCommandChar, Rune: c} }

// Perform applies actions in order against the focused window. The
// first error aborts the rest of the sequence and becomes the pending
// message; actions already applied stay applied. Multi-action
// keystrokes therefore share the partial-application policy of
// multi-unit movement.
func (e *Editor) Perform(actions ...Action) {
	for _, a := range actions {
		if err := e.Apply(a); err != nil {
			e.ShowMessage(SeverityError, err.Error())
			return
		}
	}
}

// Apply executes one action against the focused window.
func (e *Editor) Apply(a Action) error {
	winID := e.FocusedWindowID()
	win := e.Windows.Must(winID)
	switch a.Kind {
	case ActionFocusPrevTab:
		e.FocusPrevTab()
	case ActionFocusNextTab:
		e.FocusNextTab()
	case ActionUndo:
		return e.Undo(winID)
	case ActionRedo:
		return e.WindowBuffer(win).Redo()

	case ActionInsertAtStart:
		for _, selID := range win.Selections.Handles() {
			e.InsertCharBefore(winID, selID, a.Rune)
		}
	case ActionInsertAtEnd:
		for _, selID := range win.Selections.Handles() {
			e.InsertCharAfter(winID, selID, a.Rune)
		}
	case ActionDelete:
		e.DeleteSelections(winID)
	case ActionMove:
		return e.MoveSelections(winID, a.Movement, win.Mode.GotoSelecting())
	case ActionShiftStart:
		buf := e.WindowBuffer(win)
		for _, selID := range win.Selections.Handles() {
			if err := win.Selections.Must(selID).Start.MoveTo(buf.Content, a.Movement); err != nil {
				return err
			}
		}
	case ActionShiftEnd:
		return e.MoveSelections(winID, a.Movement, true)
	case ActionShift:
		return e.ShiftSelections(winID, a.Movement)
	case ActionOrder:
		e.OrderSelections(winID)
	case ActionFlip:
		e.FlipSelections(winID)

	case ActionPageUp:
		return e.scroll(winID, MoveUp, e.ScreenHeight)
	case ActionPageDown:
		return e.scroll(winID, MoveDown, e.ScreenHeight)
	case ActionHalfPageUp:
		return e.scroll(winID, MoveUp, e.ScreenHeight/2)
	case ActionHalfPageDown:
		return e.scroll(winID, MoveDown, e.ScreenHeight/2)

	case ActionSwitchMode:
		win.Mode = a.Mode

	case ActionCommandChar:
		e.commandWindow(win).Command += string(a.Rune)
	case ActionCommandClear:
		e.commandWindow(win).Command = ""
		win.Mode = ModeNormal
	case ActionCommandTab:
		// Completion is not implemented; the key is reserved.
		e.commandWindow(win)
	case ActionCommandReturn:
		line := e.commandWindow(win).Command
		win.Command = ""
		win.Mode = ModeNormal
		return e.RunCommandLine(line)
	case ActionCommandBackspace:
		w := e.commandWindow(win)
		if w.Command == "" {
			win.Mode = ModeNormal
			break
		}
		runes := []rune(w.Command)
		w.Command = string(runes[:len(runes)-1])

	default:
		panic(fmt.Sprintf("editor: unknown action kind %d", a.Kind))
	}
	return nil
}

// scroll moves the primary selection by lines in the given direction.
// Before the first draw no height is known and the action does nothing.
func (e *Editor) scroll(winID WindowID, kind MovementKind, lines int) error {
	if e.ScreenHeight == 0 || lines == 0 {
		return nil
	}
	win := e.Windows.Must(winID)
	return e.MoveSelection(winID, win.Primary, Movement{Kind: kind, Count: lines}, false)
}

// commandWindow asserts the command-mode precondition of the
// command-line actions. Delivering one in any other mode is a bug in
// the key mapping, not a runtime condition.
func (e *Editor) commandWindow(win *Window) *Window {
	if win.Mode != ModeCommand {
		panic(fmt.Sprintf("editor: command-line action outside command mode (mode %s)", win.Mode))
	}
	return win
}
