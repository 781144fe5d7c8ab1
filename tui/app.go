// Package tui runs the terminal front end: it decodes key events into
// editor actions, drives the single-threaded editing core from the
// bubbletea event loop, and renders the tab line, text area and status
// bar.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ked/clipboard"
	"ked/config"
	"ked/editor"
	"ked/syntax"
)

// App is the bubbletea model wrapping the editor state.
type App struct {
	Editor *editor.Editor

	cfg    *config.Config
	styles Styles
	clip   *clipboard.Clipboard

	// One highlighter per buffer, created lazily from the buffer's
	// path.
	highlighters map[editor.BufferID]*syntax.Highlighter

	// Terminal capabilities resolved against the config overrides.
	trueColor bool
	ascii     bool

	width  int
	height int
}

// New creates the app around a fresh editor holding the scratch buffer.
func New(cfg *config.Config) *App {
	caps := config.GetCapabilities()
	theme := cfg.Theme.GetResolved()
	return &App{
		Editor:       editor.New(),
		cfg:          cfg,
		styles:       NewStyles(theme),
		clip:         clipboard.New(nil),
		highlighters: make(map[editor.BufferID]*syntax.Highlighter),
		trueColor:    caps.ShouldUseTrueColor(cfg.Editor.TrueColor),
		ascii:        caps.ShouldUseASCII(cfg.Editor.ForceASCII),
	}
}

// OpenInitial loads the file named on the command line, staging the
// error as a status message instead of failing startup.
func (a *App) OpenInitial(path string) {
	buf, err := editor.LoadFileBuffer(path)
	if err != nil {
		a.Editor.ShowMessage(editor.SeverityError, err.Error())
		return
	}
	a.Editor.OpenBuffer(buf)
	a.cfg.AddRecentFile(path)
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Tab line and status bar take one row each.
		a.Editor.ScreenHeight = max(msg.Height-2, 0)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		mode := a.Editor.FocusedWindow().Mode
		actions, op := keymap(mode, msg)
		switch op {
		case opYank:
			a.yank()
		case opPaste:
			a.paste()
		default:
			if len(actions) > 0 {
				before := len(a.Editor.Tabs)
				a.Editor.Perform(actions...)
				if len(a.Editor.Tabs) > before {
					a.recordOpened()
				}
			}
		}
		if a.Editor.WantQuit() {
			return a, tea.Quit
		}
	}
	return a, nil
}

// yank copies the primary selection to the clipboard.
func (a *App) yank() {
	if err := a.clip.Yank(a.Editor.PrimarySelectionText()); err != nil {
		a.Editor.ShowMessage(editor.SeverityError, err.Error())
	}
}

// paste inserts the clipboard text at every selection.
func (a *App) paste() {
	a.Editor.InsertTextAtSelections(a.clip.Paste())
}

// recordOpened tracks a buffer opened through the command line in the
// recent-files list.
func (a *App) recordOpened() {
	buf := a.Editor.WindowBuffer(a.Editor.FocusedWindow())
	if buf.Path != "" {
		a.cfg.AddRecentFile(buf.Path)
	}
}

// highlighter returns the syntax highlighter for a buffer, creating it
// on first use.
func (a *App) highlighter(id editor.BufferID, buf *editor.Buffer) *syntax.Highlighter {
	if h, ok := a.highlighters[id]; ok {
		return h
	}
	h := syntax.New(buf.Path)
	h.SetEnabled(a.cfg.Editor.SyntaxHighlight)
	h.SetTrueColor(a.trueColor)
	s := a.styles.Theme.Syntax
	h.SetColors(syntax.Colors{
		Keyword:  s.Keyword,
		String:   s.String,
		Comment:  s.Comment,
		Number:   s.Number,
		Operator: s.Operator,
		Function: s.Function,
		Type:     s.Type,
		Error:    a.styles.Theme.UI.ErrorFg,
	})
	a.highlighters[id] = h
	return h
}
