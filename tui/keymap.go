package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ked/editor"
)

// appOp is a key result the editor core cannot express: clipboard
// traffic is the app's business, not the dispatcher's.
type appOp int

const (
	opNone appOp = iota
	opYank
	opPaste
)

// keymap translates one key event into the action sequence for the
// focused window's mode. A nil result with opNone means the key is
// unbound and ignored.
func keymap(mode editor.Mode, msg tea.KeyMsg) ([]editor.Action, appOp) {
	// Arrow keys, scrolling and tab focus work the same way in normal
	// and both insert-family modes.
	switch mode {
	case editor.ModeNormal, editor.ModeInsert, editor.ModeAppend:
		switch msg.Type {
		case tea.KeyLeft:
			return []editor.Action{editor.Move(editor.Left(1))}, opNone
		case tea.KeyDown:
			return []editor.Action{editor.Move(editor.Down(1))}, opNone
		case tea.KeyUp:
			return []editor.Action{editor.Move(editor.Up(1))}, opNone
		case tea.KeyRight:
			return []editor.Action{editor.Move(editor.Right(1))}, opNone
		case tea.KeyShiftLeft:
			return []editor.Action{editor.ShiftEnd(editor.Left(1))}, opNone
		case tea.KeyShiftDown:
			return []editor.Action{editor.ShiftEnd(editor.Down(1))}, opNone
		case tea.KeyShiftUp:
			return []editor.Action{editor.ShiftEnd(editor.Up(1))}, opNone
		case tea.KeyShiftRight:
			return []editor.Action{editor.ShiftEnd(editor.Right(1))}, opNone
		case tea.KeyCtrlU:
			return []editor.Action{{Kind: editor.ActionHalfPageUp}}, opNone
		case tea.KeyCtrlD:
			return []editor.Action{{Kind: editor.ActionHalfPageDown}}, opNone
		case tea.KeyCtrlB, tea.KeyPgUp:
			return []editor.Action{{Kind: editor.ActionPageUp}}, opNone
		case tea.KeyCtrlF, tea.KeyPgDown:
			return []editor.Action{{Kind: editor.ActionPageDown}}, opNone
		case tea.KeyCtrlP:
			return []editor.Action{{Kind: editor.ActionFocusPrevTab}}, opNone
		case tea.KeyCtrlN:
			return []editor.Action{{Kind: editor.ActionFocusNextTab}}, opNone
		}
	}

	switch mode {
	case editor.ModeNormal:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return nil, opNone
		}
		switch msg.Runes[0] {
		case 'i':
			return []editor.Action{
				{Kind: editor.ActionOrder},
				editor.SwitchMode(editor.ModeInsert),
			}, opNone
		case 'c':
			return []editor.Action{
				{Kind: editor.ActionDelete},
				editor.SwitchMode(editor.ModeInsert),
			}, opNone
		case 'a':
			return []editor.Action{
				{Kind: editor.ActionOrder},
				editor.SwitchMode(editor.ModeAppend),
			}, opNone
		case 'A':
			return []editor.Action{
				editor.Move(editor.LineEnd),
				editor.SwitchMode(editor.ModeInsert),
			}, opNone
		case 'o':
			// Open a line below: park on the newline, insert one, step
			// onto the fresh line.
			return []editor.Action{
				editor.Move(editor.LineEnd),
				editor.InsertAtEnd('\n'),
				editor.Move(editor.Down(1)),
				editor.Move(editor.LineStart),
				editor.SwitchMode(editor.ModeInsert),
			}, opNone
		case 'g':
			return []editor.Action{editor.SwitchMode(editor.ModeGoto)}, opNone
		case 'G':
			return []editor.Action{editor.SwitchMode(editor.ModeGotoSelecting)}, opNone
		case ':':
			return []editor.Action{editor.SwitchMode(editor.ModeCommand)}, opNone
		case 'h':
			return []editor.Action{editor.Move(editor.Left(1))}, opNone
		case 'j':
			return []editor.Action{editor.Move(editor.Down(1))}, opNone
		case 'k':
			return []editor.Action{editor.Move(editor.Up(1))}, opNone
		case 'l':
			return []editor.Action{editor.Move(editor.Right(1))}, opNone
		case 'H':
			return []editor.Action{editor.ShiftEnd(editor.Left(1))}, opNone
		case 'J':
			return []editor.Action{editor.ShiftEnd(editor.Down(1))}, opNone
		case 'K':
			return []editor.Action{editor.ShiftEnd(editor.Up(1))}, opNone
		case 'L':
			return []editor.Action{editor.ShiftEnd(editor.Right(1))}, opNone
		case ';':
			return []editor.Action{{Kind: editor.ActionOrder}}, opNone
		case 'd':
			return []editor.Action{{Kind: editor.ActionDelete}}, opNone
		case 'u':
			return []editor.Action{{Kind: editor.ActionUndo}}, opNone
		case 'U':
			return []editor.Action{{Kind: editor.ActionRedo}}, opNone
		case 'y':
			return nil, opYank
		case 'p':
			return nil, opPaste
		}
		return nil, opNone

	case editor.ModeGoto, editor.ModeGotoSelecting:
		// Goto consumes exactly one key, motion or not, then drops back
		// to normal. The motion runs before the mode switch so the
		// selecting variant still extends.
		back := editor.SwitchMode(editor.ModeNormal)
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'h':
				return []editor.Action{editor.Move(editor.LineStart), back}, opNone
			case 'j':
				return []editor.Action{editor.Move(editor.FileEnd), back}, opNone
			case 'k':
				return []editor.Action{editor.Move(editor.FileStart), back}, opNone
			case 'l':
				return []editor.Action{editor.Move(editor.LineEnd), back}, opNone
			}
		}
		return []editor.Action{back}, opNone

	case editor.ModeInsert, editor.ModeAppend:
		switch msg.Type {
		case tea.KeyEsc:
			return []editor.Action{editor.SwitchMode(editor.ModeNormal)}, opNone
		case tea.KeyBackspace:
			return []editor.Action{
				editor.Move(editor.Left(1)),
				{Kind: editor.ActionDelete},
			}, opNone
		case tea.KeyEnter:
			return typedRune(mode, '\n'), opNone
		case tea.KeyTab:
			return typedRune(mode, '\t'), opNone
		case tea.KeySpace:
			return typedRune(mode, ' '), opNone
		case tea.KeyRunes:
			var actions []editor.Action
			for _, r := range msg.Runes {
				actions = append(actions, typedRune(mode, r)...)
			}
			return actions, opNone
		}
		return nil, opNone

	case editor.ModeCommand:
		switch msg.Type {
		case tea.KeyEsc:
			return []editor.Action{{Kind: editor.ActionCommandClear}}, opNone
		case tea.KeyTab:
			return []editor.Action{{Kind: editor.ActionCommandTab}}, opNone
		case tea.KeyEnter:
			return []editor.Action{{Kind: editor.ActionCommandReturn}}, opNone
		case tea.KeyBackspace:
			return []editor.Action{{Kind: editor.ActionCommandBackspace}}, opNone
		case tea.KeySpace:
			return []editor.Action{editor.CommandChar(' ')}, opNone
		case tea.KeyRunes:
			var actions []editor.Action
			for _, r := range msg.Runes {
				actions = append(actions, editor.CommandChar(r))
			}
			return actions, opNone
		}
		return nil, opNone
	}
	return nil, opNone
}

// typedRune is one self-inserted character in insert or append mode.
// Insert puts the character at the anchor and shifts the selection
// right over it; append drags the cursor right first and inserts there.
func typedRune(mode editor.Mode, r rune) []editor.Action {
	if mode == editor.ModeAppend {
		return []editor.Action{
			editor.ShiftEnd(editor.Right(1)),
			editor.InsertAtEnd(r),
		}
	}
	return []editor.Action{
		editor.InsertAtStart(r),
		editor.Shift(editor.Right(1)),
	}
}
