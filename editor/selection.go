package editor

// Selection is a pair of positions over one buffer. Start is the
// anchor; End is the drag cursor, the endpoint that moves under plain
// motion. A selection always materializes to at least one character:
// its character range is min..max+1 inclusive of the endpoint.
//
// Start and End are not required to be ordered; Order is applied
// explicitly where a caller needs start <= end.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection returns a collapsed selection at the document origin.
func NewSelection() Selection {
	return Selection{Start: Origin(), End: Origin()}
}

// Order swaps the endpoints if needed so Start <= End in document
// order. Idempotent.
func (s *Selection) Order() {
	if s.End.Less(s.Start) {
		s.Flip()
	}
}

// Ordered returns an ordered copy.
func (s Selection) Ordered() Selection {
	s.Order()
	return s
}

// Flip unconditionally swaps anchor and cursor.
func (s *Selection) Flip() {
	s.Start, s.End = s.End, s.Start
}

// Contains reports whether pos falls inside the selection, endpoints
// included.
func (s Selection) Contains(pos Position) bool {
	s.Order()
	return !pos.Less(s.Start) && !s.End.Less(pos)
}

// CharRange returns the half-open character range [start, end) the
// selection materializes to: the ordered endpoints, inclusive of the
// character under the far endpoint.
func (s Selection) CharRange(t *Text) (int, int) {
	s.Order()
	return s.Start.CharOffset(t), s.End.CharOffset(t) + 1
}

// Text returns the selected characters.
func (s Selection) Text(t *Text) string {
	start, end := s.CharRange(t)
	return t.Slice(start, end)
}

// Valid returns a copy with both endpoints clamped against t, leaving
// the receiver untouched. The renderer uses this to test containment
// against content that may have shifted under the selection.
func (s Selection) Valid(t *Text) Selection {
	s.Validate(t)
	return s
}

// Validate clamps both endpoints against t.
func (s *Selection) Validate(t *Text) {
	s.Start.Validate(t)
	s.End.Validate(t)
}

// ValidateFix repairs both endpoints, restoring the document terminator
// through b's history if the document has degenerated to empty.
func (s *Selection) ValidateFix(b *Buffer) {
	s.Start.ValidateFix(b)
	s.End.ValidateFix(b)
}

// RemoveFrom deletes the selected characters from b through its
// history, then collapses the selection to a point at the former start
// and repairs it so it stays addressable.
func (s *Selection) RemoveFrom(b *Buffer) {
	s.Validate(b.Content)
	s.Order()
	b.History.RemoveSelection(b.Content, *s)
	s.End = s.Start
	s.ValidateFix(b)
}

// MoveTo moves the drag cursor by m. Without drag the anchor collapses
// onto the cursor, turning the selection into a bare caret move. The
// collapse happens even when the movement fails partway, so the
// selection tracks whatever partial motion was applied.
func (s *Selection) MoveTo(t *Text, m Movement, drag bool) error {
	err := s.End.MoveTo(t, m)
	if !drag {
		s.Start = s.End
	}
	return err
}
