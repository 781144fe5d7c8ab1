package editor

import (
	"errors"
	"testing"
)

func pos(line, col int) Position {
	return Position{Line: LineFromOneBased(line), Col: ColFromOneBased(col)}
}

func TestMoveToBasic(t *testing.T) {
	text := NewText("ab\ncd\n")
	tests := []struct {
		name    string
		start   Position
		move    Movement
		want    Position
		wantErr error
	}{
		{"right within line", pos(1, 1), Right(1), pos(1, 2), nil},
		{"right onto newline", pos(1, 2), Right(1), pos(1, 3), nil},
		{"right wraps to next line", pos(1, 3), Right(1), pos(2, 1), nil},
		{"right at file end", pos(2, 3), Right(1), pos(2, 3), ErrNoNextLine},
		{"left within line", pos(1, 2), Left(1), pos(1, 1), nil},
		{"left wraps to prev line end", pos(2, 1), Left(1), pos(1, 3), nil},
		{"left at file start", pos(1, 1), Left(1), pos(1, 1), ErrNoPrevLine},
		{"down", pos(1, 2), Down(1), pos(2, 2), nil},
		{"up", pos(2, 2), Up(1), pos(1, 2), nil},
		{"up clamps", pos(2, 1), Up(10), pos(1, 1), nil},
		{"up on first line", pos(1, 2), Up(1), pos(1, 2), ErrNoPrevLine},
		{"line start", pos(1, 3), LineStart, pos(1, 1), nil},
		{"line end parks on newline", pos(2, 1), LineEnd, pos(2, 3), nil},
		{"file start", pos(2, 2), FileStart, pos(1, 1), nil},
		{"file end", pos(1, 2), FileEnd, pos(2, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			err := p.MoveTo(text, tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveTo(%v) error = %v, want %v", tt.move, err, tt.wantErr)
			}
			if p != tt.want {
				t.Errorf("MoveTo(%v) from %v = %v, want %v", tt.move, tt.start, p, tt.want)
			}
		})
	}
}

func TestMoveToPreservesValidity(t *testing.T) {
	text := NewText("ab\ncd\n")
	movements := []Movement{
		Left(1), Left(2), Right(1), Right(2), Up(1), Down(1),
		LineStart, LineEnd, FileStart, FileEnd,
	}
	for line := 1; line <= text.LineCount(); line++ {
		for col := 1; col <= LineFromOneBased(line).Chars(text); col++ {
			for _, m := range movements {
				p := pos(line, col)
				if err := p.MoveTo(text, m); err != nil {
					continue
				}
				if !p.IsValid(text) {
					t.Errorf("MoveTo(%v) from %v produced invalid position %v", m, pos(line, col), p)
				}
			}
		}
	}
}

func TestRightThenLeftIsInverse(t *testing.T) {
	text := NewText("ab\ncd\nef\n")
	starts := []Position{pos(1, 1), pos(1, 2), pos(2, 1), pos(2, 3)}
	for _, start := range starts {
		for n := 1; n <= 4; n++ {
			p := start
			if err := p.MoveTo(text, Right(n)); err != nil {
				continue
			}
			if err := p.MoveTo(text, Left(n)); err != nil {
				t.Fatalf("Left(%d) after Right(%d) from %v: %v", n, n, start, err)
			}
			if p != start {
				t.Errorf("Right(%d) then Left(%d) from %v = %v, want %v", n, n, start, p, start)
			}
		}
	}
}

func TestRightPartialApplication(t *testing.T) {
	text := NewText("ab\ncd\n")
	p := pos(2, 2)
	err := p.MoveTo(text, Right(5))
	if !errors.Is(err, ErrNoNextLine) {
		t.Fatalf("Right(5) error = %v, want %v", err, ErrNoNextLine)
	}
	// The unit that reached the newline stays applied.
	if want := pos(2, 3); p != want {
		t.Errorf("position after failed Right(5) = %v, want %v", p, want)
	}
}

func TestDownStopsBeforeTrailingEmptyLine(t *testing.T) {
	text := NewText("a\nb\nc\n")
	p := pos(1, 1)
	if err := p.MoveTo(text, Down(10)); err != nil {
		t.Fatalf("Down(10) error = %v, want nil", err)
	}
	if want := pos(3, 1); p != want {
		t.Errorf("Down(10) from line 1 = %v, want %v", p, want)
	}
	if err := p.MoveTo(text, Down(1)); !errors.Is(err, ErrNoNextLine) {
		t.Errorf("Down(1) on last non-empty line error = %v, want %v", err, ErrNoNextLine)
	}
}

func TestFileEndSkipsTrailingEmptyLine(t *testing.T) {
	tests := []struct {
		text string
		want Position
	}{
		{"ab\ncd\n", pos(2, 1)},
		{"ab\ncd", pos(2, 1)},
		{"ab\n", pos(1, 1)},
		{"\n", pos(1, 1)},
	}
	for _, tt := range tests {
		p := pos(1, 1)
		if err := p.MoveTo(NewText(tt.text), FileEnd); err != nil {
			t.Fatalf("FileEnd on %q: %v", tt.text, err)
		}
		if p != tt.want {
			t.Errorf("FileEnd on %q = %v, want %v", tt.text, p, tt.want)
		}
	}
}

func TestLineEndOnTrailingEmptyLine(t *testing.T) {
	// A position stranded on the empty final line must repair to the
	// previous line's end, not blow up computing a zero column.
	text := NewText("ab\n")
	p := pos(2, 1)
	if err := p.MoveTo(text, LineEnd); err != nil {
		t.Fatalf("LineEnd on the empty final line: %v", err)
	}
	if want := pos(1, 3); p != want {
		t.Errorf("LineEnd from %v = %v, want %v", pos(2, 1), p, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		in   Position
		want Position
	}{
		{"valid untouched", "ab\ncd\n", pos(1, 2), pos(1, 2)},
		{"snaps to line end", "ab\ncd\n", pos(1, 9), pos(1, 3)},
		{"empty last line walks up", "ab\ncd\n", pos(3, 1), pos(2, 3)},
		{"line past document", "ab\ncd\n", pos(9, 1), pos(2, 1)},
		{"empty document clamps to origin", "", pos(1, 5), pos(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate(NewText(tt.text))
			if p != tt.want {
				t.Errorf("Validate(%v) on %q = %v, want %v", tt.in, tt.text, p, tt.want)
			}
		})
	}
}

func TestValidateFixRestoresTerminator(t *testing.T) {
	b := &Buffer{Name: "t", Content: NewText("")}
	p := pos(1, 5)
	p.ValidateFix(b)
	if want := pos(1, 1); p != want {
		t.Errorf("ValidateFix position = %v, want %v", p, want)
	}
	if got := b.Content.String(); got != "\n" {
		t.Errorf("content after ValidateFix = %q, want %q", got, "\n")
	}
	if b.History.Len() != 1 {
		t.Errorf("history length = %d, want 1 (terminator insertion must be undoable)", b.History.Len())
	}
}
