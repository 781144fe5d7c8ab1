package editor

import "testing"

func TestSelectionOrderIdempotent(t *testing.T) {
	s := Selection{Start: pos(2, 2), End: pos(1, 1)}
	s.Order()
	once := s
	s.Order()
	if s != once {
		t.Errorf("Order applied twice = %+v, want %+v", s, once)
	}
	if s.End.Less(s.Start) {
		t.Errorf("after Order, start %v > end %v", s.Start, s.End)
	}
}

func TestSelectionContains(t *testing.T) {
	s := Selection{Start: pos(2, 2), End: pos(1, 2)}
	tests := []struct {
		pos  Position
		want bool
	}{
		{pos(1, 1), false},
		{pos(1, 2), true},
		{pos(1, 3), true},
		{pos(2, 2), true},
		{pos(2, 3), false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSelectionCharRange(t *testing.T) {
	text := NewText("ab\ncd\n")
	// Unordered endpoints; the range is inclusive of the far endpoint.
	s := Selection{Start: pos(2, 1), End: pos(1, 2)}
	start, end := s.CharRange(text)
	if start != 1 || end != 4 {
		t.Errorf("CharRange = [%d, %d), want [1, 4)", start, end)
	}
	if got, want := s.Text(text), "b\nc"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestSelectionRemoveAndUndo(t *testing.T) {
	b := &Buffer{Name: "t", Content: NewText("ab\ncd\n")}
	s := Selection{Start: pos(1, 2), End: pos(2, 1)}
	saved := s

	s.RemoveFrom(b)
	if got, want := b.Content.String(), "ad\n"; got != want {
		t.Fatalf("content after RemoveFrom = %q, want %q", got, want)
	}
	if want := pos(1, 2); s.Start != want || s.End != want {
		t.Errorf("selection after RemoveFrom = %+v, want collapsed at %v", s, want)
	}

	if err := b.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := b.Content.String(), "ab\ncd\n"; got != want {
		t.Errorf("content after undo = %q, want %q", got, want)
	}
	// The prior bounds select the same text again.
	if got, want := saved.Text(b.Content), "b\nc"; got != want {
		t.Errorf("saved bounds select %q after undo, want %q", got, want)
	}
}

func TestSelectionRemoveWholeDocumentReinstatesTerminator(t *testing.T) {
	b := &Buffer{Name: "t", Content: NewText("ab\n")}
	s := Selection{Start: pos(1, 1), End: pos(1, 3)}
	s.RemoveFrom(b)
	if got := b.Content.String(); got != "\n" {
		t.Fatalf("content after removing everything = %q, want %q", got, "\n")
	}
	if want := pos(1, 1); s.Start != want || s.End != want {
		t.Errorf("selection = %+v, want collapsed at %v", s, want)
	}
}

func TestSelectionMoveToDrag(t *testing.T) {
	text := NewText("ab\ncd\n")
	s := Selection{Start: pos(1, 1), End: pos(1, 1)}
	if err := s.MoveTo(text, Right(2), true); err != nil {
		t.Fatalf("MoveTo drag: %v", err)
	}
	if s.Start != pos(1, 1) || s.End != pos(1, 3) {
		t.Errorf("after drag move = %+v, want anchor (1,1) cursor (1,3)", s)
	}
	if err := s.MoveTo(text, Right(1), false); err != nil {
		t.Fatalf("MoveTo collapse: %v", err)
	}
	if s.Start != pos(2, 1) || s.End != pos(2, 1) {
		t.Errorf("after collapsing move = %+v, want both at (2,1)", s)
	}
}
