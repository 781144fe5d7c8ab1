package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ked/editor"
	"ked/syntax"
)

func (a *App) View() string {
	if a.width == 0 || a.height < 3 {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.tabLine())
	b.WriteByte('\n')
	b.WriteString(a.textArea())
	b.WriteString(a.statusLine())
	return b.String()
}

// tabLine renders one entry per open window, the focused one in bold.
func (a *App) tabLine() string {
	e := a.Editor
	var b strings.Builder
	for i, winID := range e.Tabs {
		win := e.Windows.Must(winID)
		name := e.WindowBuffer(win).Name
		if i == e.Focused {
			b.WriteString(a.styles.TabActive.Render(name))
		} else {
			b.WriteString(a.styles.Tab.Render(name))
		}
	}
	line := b.String()
	if pad := a.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// textArea renders the focused window's visible lines. The window's top
// line follows the primary selection so the cursor stays on screen.
func (a *App) textArea() string {
	e := a.Editor
	win := e.FocusedWindow()
	buf := e.WindowBuffer(win)
	content := buf.Content
	h := a.height - 2

	// Scroll-follow against the primary cursor.
	cursor := win.PrimarySelection().Valid(content).End.Line
	if cursor < win.Top {
		win.Top = cursor
	} else if cursor.OneBased() > win.Top.OneBased()+h-1 {
		win.Top = editor.LineFromOneBased(cursor.OneBased() - h + 1)
	}

	// Clamp endpoints once; content may have shifted under the
	// selections since they last moved.
	var sels []editor.Selection
	for _, selID := range win.Selections.Handles() {
		sels = append(sels, win.Selections.Must(selID).Valid(content))
	}

	hl := a.highlighter(win.Buffer, buf)
	tabWidth := a.cfg.Editor.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		idx := win.Top.ZeroBased() + row
		if idx < content.LineCount() {
			b.WriteString(a.renderLine(content.LineRunes(idx), idx, sels, hl, tabWidth))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (a *App) renderLine(runes []rune, lineIdx int, sels []editor.Selection, hl *syntax.Highlighter, tabWidth int) string {
	spans := hl.LineSpans(string(runes))
	var b strings.Builder
	col := 0
	for fileCol, r := range runes {
		cell := string(r)
		cellWidth := runewidth.RuneWidth(r)
		switch {
		case r == '\n':
			// The newline is an addressable slot; give it a visible
			// cell so a selection parked on it shows up.
			cell = " "
			cellWidth = 1
		case r == '\t':
			cell = strings.Repeat(" ", tabWidth)
			cellWidth = tabWidth
		case a.ascii && r > unicode.MaxASCII:
			// The terminal's locale cannot render multibyte glyphs;
			// show a placeholder instead of mojibake.
			cell = "?"
			cellWidth = 1
		}
		if col+cellWidth > a.width {
			break
		}
		col += cellWidth

		pos := editor.Position{
			Line: editor.LineFromZeroBased(lineIdx),
			Col:  editor.ColFromZeroBased(fileCol),
		}
		selected := false
		for _, s := range sels {
			if s.Contains(pos) {
				selected = true
				break
			}
		}
		switch {
		case selected:
			b.WriteString(a.styles.Selection.Render(cell))
		default:
			if color := syntax.ColorAt(spans, fileCol); color != "" {
				b.WriteString(color)
				b.WriteString(cell)
				b.WriteString("\033[0m")
			} else {
				b.WriteString(cell)
			}
		}
	}
	return b.String()
}

// statusLine renders the pending message if there is one, consuming it,
// and otherwise the mode indicator plus any command line in progress.
func (a *App) statusLine() string {
	e := a.Editor
	if msg, ok := e.TakeMessage(); ok {
		text := a.styles.Error.Render(" " + msg.Text + " ")
		return a.padStatus(text)
	}

	win := e.FocusedWindow()
	modeStyle := a.styles.StatusMode
	if win.Mode == editor.ModeInsert || win.Mode == editor.ModeAppend {
		modeStyle = a.styles.StatusModeInsert
	}
	var b strings.Builder
	b.WriteString(modeStyle.Render(" " + win.Mode.String() + " "))
	if win.Mode == editor.ModeCommand {
		b.WriteString(a.styles.StatusBar.Render(" :" + win.Command))
	}
	return a.padStatus(b.String())
}

func (a *App) padStatus(s string) string {
	if pad := a.width - lipgloss.Width(s); pad > 0 {
		s += a.styles.StatusBar.Render(strings.Repeat(" ", pad))
	}
	return s
}
