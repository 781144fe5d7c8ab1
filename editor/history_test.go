package editor

import (
	"errors"
	"testing"
)

func TestHistoryInsertUndo(t *testing.T) {
	text := NewText("ab\n")
	var h History
	h.InsertChar(text, pos(1, 2), 'x')
	if got, want := text.String(), "axb\n"; got != want {
		t.Fatalf("after InsertChar = %q, want %q", got, want)
	}
	if err := h.Undo(text); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := text.String(), "ab\n"; got != want {
		t.Errorf("after undo = %q, want %q", got, want)
	}
}

func TestHistoryInsertTextSingleUndo(t *testing.T) {
	text := NewText("ab\n")
	var h History
	h.InsertText(text, pos(1, 3), "cd")
	if got, want := text.String(), "abcd\n"; got != want {
		t.Fatalf("after InsertText = %q, want %q", got, want)
	}
	if h.Len() != 1 {
		t.Fatalf("history length = %d, want 1", h.Len())
	}
	if err := h.Undo(text); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := text.String(), "ab\n"; got != want {
		t.Errorf("after undo = %q, want %q", got, want)
	}
}

func TestHistoryUndoMultiByte(t *testing.T) {
	text := NewText("a\n")
	var h History
	h.InsertText(text, pos(1, 2), "héllo")
	if err := h.Undo(text); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	// The undo must remove by rune count, not byte count.
	if got, want := text.String(), "a\n"; got != want {
		t.Errorf("after undo = %q, want %q", got, want)
	}
}

func TestHistoryUndoEmpty(t *testing.T) {
	text := NewText("ab\n")
	var h History
	err := h.Undo(text)
	if !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Undo on empty history error = %v, want %v", err, ErrNothingToUndo)
	}
	if got, want := text.String(), "ab\n"; got != want {
		t.Errorf("content after failed undo = %q, want %q", got, want)
	}
}

func TestDeleteThenUndoScenario(t *testing.T) {
	b := &Buffer{Name: "t", Content: NewText("ab\ncd\n")}
	s := NewSelection()

	if err := s.MoveTo(b.Content, Right(1), false); err != nil {
		t.Fatalf("Right(1): %v", err)
	}
	if s.End != pos(1, 2) {
		t.Fatalf("cursor = %v, want (1,2)", s.End)
	}
	if err := s.MoveTo(b.Content, Right(2), false); err != nil {
		t.Fatalf("Right(2): %v", err)
	}
	if s.End != pos(2, 1) {
		t.Fatalf("cursor = %v, want (2,1)", s.End)
	}

	s.RemoveFrom(b)
	if got, want := b.Content.String(), "ab\nd\n"; got != want {
		t.Fatalf("after delete = %q, want %q", got, want)
	}

	if err := b.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := b.Content.String(), "ab\ncd\n"; got != want {
		t.Errorf("after undo = %q, want %q", got, want)
	}
}
