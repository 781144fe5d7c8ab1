package editor

// EditKind distinguishes the two recorded edit shapes.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
)

// Edit records one buffer mutation with enough information to compute
// its inverse: the position it happened at and the exact text inserted
// or removed.
type Edit struct {
	Kind EditKind
	Pos  Position
	Text string
}

// History is an append-only log of edits supporting single-step undo.
// There is no redo channel: an edit made after an undo permanently
// discards the undone edit.
type History struct {
	edits []Edit
}

// Push appends an edit to the log.
func (h *History) Push(e Edit) {
	h.edits = append(h.edits, e)
}

// Len returns the number of recorded edits.
func (h *History) Len() int {
	return len(h.edits)
}

// InsertChar inserts c into t at pos and records the edit.
func (h *History) InsertChar(t *Text, pos Position, c rune) {
	h.InsertText(t, pos, string(c))
}

// InsertText inserts s into t at pos and records a single edit, so one
// undo reverses the whole insertion.
func (h *History) InsertText(t *Text, pos Position, s string) {
	t.Insert(pos.CharOffset(t), s)
	h.Push(Edit{Kind: EditInsert, Pos: pos, Text: s})
}

// RemoveSelection deletes sel's character range from t and records the
// removed text.
func (h *History) RemoveSelection(t *Text, sel Selection) {
	start, end := sel.CharRange(t)
	removed := t.Remove(start, end)
	h.Push(Edit{Kind: EditDelete, Pos: sel.Ordered().Start, Text: removed})
}

// Undo pops the most recent edit and applies its inverse to t. It
// returns ErrNothingToUndo when the log is empty.
func (h *History) Undo(t *Text) error {
	if len(h.edits) == 0 {
		return ErrNothingToUndo
	}
	e := h.edits[len(h.edits)-1]
	h.edits = h.edits[:len(h.edits)-1]
	switch e.Kind {
	case EditInsert:
		off := e.Pos.CharOffset(t)
		t.Remove(off, off+len([]rune(e.Text)))
	case EditDelete:
		t.Insert(e.Pos.CharOffset(t), e.Text)
	}
	return nil
}
