package editor

import "fmt"

// Line is a 1-based line number. The zero value is not a valid Line;
// construct one with LineFromOneBased or LineFromZeroBased.
type Line int

// LineFromOneBased converts a 1-based line number.
func LineFromOneBased(n int) Line {
	if n < 1 {
		panic(fmt.Sprintf("editor: line number %d out of range", n))
	}
	return Line(n)
}

// LineFromZeroBased converts a 0-based line index.
func LineFromZeroBased(n int) Line {
	return LineFromOneBased(n + 1)
}

// OneBased returns the 1-based line number.
func (l Line) OneBased() int { return int(l) }

// ZeroBased returns the 0-based line index.
func (l Line) ZeroBased() int { return int(l) - 1 }

// IsFirst reports whether this is the first line of the document.
func (l Line) IsFirst() bool { return l == 1 }

// IsLast reports whether this is the last line of t.
func (l Line) IsLast(t *Text) bool { return l.OneBased() == t.LineCount() }

// IsEmpty reports whether the line has no characters at all. Only the
// final line of a document can be empty; every other line carries at
// least its newline.
func (l Line) IsEmpty(t *Text) bool { return t.LineChars(l.ZeroBased()) == 0 }

// CharOffset returns the character offset of the start of the line.
func (l Line) CharOffset(t *Text) int { return t.LineStartChar(l.ZeroBased()) }

// Chars returns the character count of the line including its
// terminator.
func (l Line) Chars(t *Text) int { return t.LineChars(l.ZeroBased()) }

// Col is a 1-based column number. Column n addresses the n-th character
// of a line; the line's own newline is its last addressable column.
type Col int

// ColFromOneBased converts a 1-based column number.
func ColFromOneBased(n int) Col {
	if n < 1 {
		panic(fmt.Sprintf("editor: column number %d out of range", n))
	}
	return Col(n)
}

// ColFromZeroBased converts a 0-based column index.
func ColFromZeroBased(n int) Col { return ColFromOneBased(n + 1) }

// OneBased returns the 1-based column number.
func (c Col) OneBased() int { return int(c) }

// ZeroBased returns the 0-based column index.
func (c Col) ZeroBased() int { return int(c) - 1 }

// IsFirst reports whether this is the first column of a line.
func (c Col) IsFirst() bool { return c == 1 }

// Position is a character slot in a document. A Position may point one
// past the last printable character of its line, landing on the line's
// own newline.
type Position struct {
	Line Line
	Col  Col
}

// Origin returns the position of the first character of a document.
func Origin() Position {
	return Position{Line: 1, Col: 1}
}

// Less orders positions by (line, column).
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// CharOffset returns the absolute character offset of the position.
func (p Position) CharOffset(t *Text) int {
	return p.Line.CharOffset(t) + p.Col.ZeroBased()
}

// IsValid reports whether the position addresses an existing character
// slot of t.
func (p Position) IsValid(t *Text) bool {
	if p.Line.OneBased() > t.LineCount() {
		return false
	}
	return p.Col.OneBased() <= p.Line.Chars(t)
}

// Validate repairs a position that an edit elsewhere has left pointing
// past the end of its line or past the end of the document. It clamps
// without touching the text: an invalid position on a non-empty line
// snaps to the line end, on an empty line it walks up to the end of the
// previous line, and in a document with no characters at all it parks
// at the origin. Mutation paths must use ValidateFix instead so the
// empty-document case is repaired rather than merely clamped.
func (p *Position) Validate(t *Text) {
	if p.Line.OneBased() > t.LineCount() {
		p.mustMove(t, FileEnd)
	}
	if p.IsValid(t) {
		return
	}
	if p.Line.IsEmpty(t) {
		if !p.Line.IsFirst() {
			p.mustMove(t, Up(1))
			p.mustMove(t, LineEnd)
		} else {
			// Document holds zero characters. Park at the origin; the
			// mutating path reinstates the terminator.
			p.Line = 1
			p.Col = 1
		}
	} else {
		p.mustMove(t, LineEnd)
	}
}

// ValidateFix repairs a position like Validate, but when the document
// has degenerated to zero characters it restores the minimal valid
// document by inserting a newline through the buffer's history.
func (p *Position) ValidateFix(b *Buffer) {
	t := b.Content
	if p.Line.OneBased() > t.LineCount() {
		p.mustMove(t, FileEnd)
	}
	if p.IsValid(t) {
		return
	}
	if p.Line.IsEmpty(t) {
		if !p.Line.IsFirst() {
			p.mustMove(t, Up(1))
			p.mustMove(t, LineEnd)
		} else {
			p.Line = 1
			p.Col = 1
			b.InsertCharAt(*p, '\n')
		}
	} else {
		p.mustMove(t, LineEnd)
	}
}

// mustMove applies a movement that the caller knows cannot fail.
func (p *Position) mustMove(t *Text, m Movement) {
	if err := p.MoveTo(t, m); err != nil {
		panic(fmt.Sprintf("editor: internal movement failed: %v", err))
	}
}

// MovementKind selects the direction of a Movement.
type MovementKind int

const (
	MoveLeft MovementKind = iota
	MoveRight
	MoveUp
	MoveDown
	MoveLineStart
	MoveLineEnd
	MoveFileStart
	MoveFileEnd
)

// Movement is a directional intent with an optional repeat count.
type Movement struct {
	Kind  MovementKind
	Count int
}

// Left moves n characters left, wrapping to the previous line end.
func Left(n int) Movement { return Movement{Kind: MoveLeft, Count: n} }

// Right moves n characters right, wrapping to the next line start.
func Right(n int) Movement { return Movement{Kind: MoveRight, Count: n} }

// Up moves n lines up, clamped to the first line.
func Up(n int) Movement { return Movement{Kind: MoveUp, Count: n} }

// Down moves n lines down, stopping before a trailing empty line.
func Down(n int) Movement { return Movement{Kind: MoveDown, Count: n} }

// The count-free movements are shared values.
var (
	LineStart = Movement{Kind: MoveLineStart}
	LineEnd   = Movement{Kind: MoveLineEnd}
	FileStart = Movement{Kind: MoveFileStart}
	FileEnd   = Movement{Kind: MoveFileEnd}
)

// MoveTo resolves a movement against t and updates the position.
//
// A multi-unit Left/Right request is applied one unit at a time; if a
// unit fails the error is returned immediately and the units already
// applied stay applied. Callers that need all-or-nothing motion must
// work on a copy.
func (p *Position) MoveTo(t *Text, m Movement) error {
	switch m.Kind {
	case MoveLeft:
		if m.Count == 0 {
			return nil
		}
		for i := 0; i < m.Count; i++ {
			p.Validate(t)
			if p.Col.IsFirst() {
				if p.Line.IsFirst() {
					return ErrNoPrevLine
				}
				p.mustMove(t, Up(1))
				p.mustMove(t, LineEnd)
			} else {
				p.Col--
			}
		}
	case MoveRight:
		if m.Count == 0 {
			return nil
		}
		for i := 0; i < m.Count; i++ {
			p.Validate(t)
			if p.Col.OneBased() == p.Line.Chars(t) {
				if err := p.MoveTo(t, Down(1)); err != nil {
					return err
				}
				p.Col = 1
			} else {
				p.Col++
			}
		}
	case MoveUp:
		if m.Count == 0 {
			return nil
		}
		n := min(m.Count, p.Line.ZeroBased())
		if n == 0 {
			return ErrNoPrevLine
		}
		p.Line -= Line(n)
	case MoveDown:
		if m.Count == 0 {
			return nil
		}
		moved := false
		for i := 0; i < m.Count; i++ {
			next := p.Line + 1
			if p.Line.IsLast(t) || next.Chars(t) == 0 {
				break
			}
			p.Line = next
			moved = true
		}
		if !moved {
			return ErrNoNextLine
		}
	case MoveLineStart:
		p.Col = 1
	case MoveLineEnd:
		// A position stranded on the empty final line has no line end
		// to land on; repair it to the previous line's end instead.
		if n := p.Line.Chars(t); n == 0 {
			p.Validate(t)
		} else {
			p.Col = ColFromOneBased(n)
		}
	case MoveFileStart:
		p.Line = 1
		p.Col = 1
	case MoveFileEnd:
		last := LineFromOneBased(t.LineCount())
		if last.IsEmpty(t) && !last.IsFirst() {
			last--
		}
		p.Line = last
		p.Col = 1
	default:
		panic(fmt.Sprintf("editor: unknown movement kind %d", m.Kind))
	}
	return nil
}
