package chess

// Castling holds the remaining castling rights of each side as KsideCastle
// and QsideCastle bits.
type Castling [2]MoveFlags

// Kings holds the tracked king square of each side, NoSquare when absent.
type Kings [2]Square

// Entry is the snapshot taken before a move is applied. Position is filled
// in after the move with the resulting board serialization.
type Entry struct {
	Move       *Move
	Position   string
	Kings      Kings
	Turn       Colour
	Castling   Castling
	EPSquare   Square
	HalfMoves  int
	MoveNumber int
}

// History is the LIFO stack of applied moves.
type History struct {
	entries []Entry
}

// Push appends an entry and returns its index.
func (h *History) Push(e Entry) int {
	h.entries = append(h.entries, e)
	return len(h.entries) - 1
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// SetPosition records the post-move serialization on entry i.
func (h *History) SetPosition(i int, position string) {
	h.entries[i].Position = position
}

// Last returns the most recent entry without removing it.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded plies.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Reset drops every entry.
func (h *History) Reset() {
	h.entries = h.entries[:0]
}
