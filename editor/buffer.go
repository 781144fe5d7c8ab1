package editor

import (
	"fmt"
	"os"

	"ked/encoding"
)

// Buffer owns one document: its text content, an optional backing file
// path, a display name, and the edit history. All content mutation goes
// through the History so every change stays undoable.
type Buffer struct {
	// Path is the backing file, or empty for a scratch buffer.
	Path string
	// Name is the display name shown in the tab line.
	Name string
	// Charset is the encoding the backing file was loaded in; Save
	// writes it back the same way. Nil means plain UTF-8.
	Charset *encoding.Charset
	// Content is the document text. Nothing outside this package
	// mutates it except through the methods below.
	Content *Text
	History History
}

// NewScratchBuffer creates the unnamed buffer the editor starts with:
// no path, and a single newline so the position arithmetic always has
// one addressable slot.
func NewScratchBuffer() *Buffer {
	return &Buffer{
		Name:    "scratch",
		Content: NewText("\n"),
	}
}

// NewFileBuffer creates a buffer holding content loaded from path.
func NewFileBuffer(path, name, content string) *Buffer {
	return &Buffer{
		Path:    path,
		Name:    name,
		Content: NewText(content),
	}
}

// InsertCharAt inserts c at pos, recording the edit.
func (b *Buffer) InsertCharAt(pos Position, c rune) {
	b.History.InsertChar(b.Content, pos, c)
}

// InsertTextAt inserts s at pos as one recorded edit.
func (b *Buffer) InsertTextAt(pos Position, s string) {
	if s == "" {
		return
	}
	b.History.InsertText(b.Content, pos, s)
}

// Undo reverses the most recent edit. The caller is responsible for
// re-validating any selections that view this buffer afterwards.
func (b *Buffer) Undo() error {
	return b.History.Undo(b.Content)
}

// Redo is deliberately absent: the history is a branchless undo stack.
// The method exists so the keybinding reports something sensible.
func (b *Buffer) Redo() error {
	return ErrRedoUnsupported
}

// Save writes the full content back to the buffer's path, re-encoded
// into the charset the file was loaded with.
func (b *Buffer) Save() error {
	if b.Path == "" {
		return fmt.Errorf("cannot save a scratch buffer")
	}
	data, err := encoding.EncodeFromUTF8([]byte(b.Content.String()), b.Charset)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(b.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
