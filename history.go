package cubesim

// History is the ordered log of committed moves. Order is significant:
// solving replays the reversed, direction-negated sequence. Appends
// happen only when a rotation commits, never mid-animation.
type History struct {
	moves []Move
}

// Append records a committed move.
func (h *History) Append(m Move) {
	h.moves = append(h.moves, m)
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the recorded moves in commit order.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Reversed returns the sequence that undoes the history.
func (h *History) Reversed() []Move {
	return ReverseMoves(h.moves)
}

// Clear discards all recorded moves.
func (h *History) Clear() {
	h.moves = h.moves[:0]
}

// Notation returns the history as a space-separated notation string.
func (h *History) Notation() string {
	return FormatMoves(h.moves)
}
