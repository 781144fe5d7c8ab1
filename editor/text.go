package editor

// Text is the character storage backing a Buffer. It keeps the document
// as a flat rune slice plus an index of line-start offsets, giving the
// line-oriented access the movement code needs: lines are addressed
// 0-based internally, every line except possibly the last includes its
// terminating newline, and a document with a trailing newline therefore
// ends with an empty final line.
type Text struct {
	runes      []rune
	lineStarts []int // rune offset of each line start; always at least [0]
}

// NewText creates text storage holding s.
func NewText(s string) *Text {
	t := &Text{runes: []rune(s)}
	t.reindex()
	return t
}

// reindex rebuilds the line-start table after an edit.
func (t *Text) reindex() {
	t.lineStarts = t.lineStarts[:0]
	t.lineStarts = append(t.lineStarts, 0)
	for i, r := range t.runes {
		if r == '\n' {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}
}

// Len returns the total number of characters in the document.
func (t *Text) Len() int {
	return len(t.runes)
}

// LineCount returns the number of lines. A document ending in a newline
// counts the empty text after it as a final line, so "ab\n" has two.
func (t *Text) LineCount() int {
	return len(t.lineStarts)
}

// LineStartChar returns the character offset of the start of the given
// 0-based line. Out-of-range lines clamp to the document end.
func (t *Text) LineStartChar(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(t.lineStarts) {
		return len(t.runes)
	}
	return t.lineStarts[line]
}

// LineChars returns the character count of the given 0-based line,
// including its terminating newline if present. Out-of-range lines
// report zero.
func (t *Text) LineChars(line int) int {
	if line < 0 || line >= len(t.lineStarts) {
		return 0
	}
	if line == len(t.lineStarts)-1 {
		return len(t.runes) - t.lineStarts[line]
	}
	return t.lineStarts[line+1] - t.lineStarts[line]
}

// LineRunes returns the runes of the given 0-based line, including the
// terminator. The slice aliases the underlying storage; callers must
// not hold it across edits.
func (t *Text) LineRunes(line int) []rune {
	if line < 0 || line >= len(t.lineStarts) {
		return nil
	}
	start := t.lineStarts[line]
	return t.runes[start : start+t.LineChars(line)]
}

// Slice returns the characters in [start, end) as a string. The bounds
// are clamped to the document.
func (t *Text) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(t.runes) {
		end = len(t.runes)
	}
	if start >= end {
		return ""
	}
	return string(t.runes[start:end])
}

// Insert inserts s at the given character offset.
func (t *Text) Insert(offset int, s string) {
	if s == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.runes) {
		offset = len(t.runes)
	}
	ins := []rune(s)
	t.runes = append(t.runes, ins...) // grow
	copy(t.runes[offset+len(ins):], t.runes[offset:])
	copy(t.runes[offset:], ins)
	t.reindex()
}

// Remove deletes the characters in [start, end) and returns them.
func (t *Text) Remove(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(t.runes) {
		end = len(t.runes)
	}
	if start >= end {
		return ""
	}
	removed := string(t.runes[start:end])
	t.runes = append(t.runes[:start], t.runes[end:]...)
	t.reindex()
	return removed
}

// String returns the whole document.
func (t *Text) String() string {
	return string(t.runes)
}
