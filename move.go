package cubesim

import (
	"math"
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right  (+x)
	FaceL Face = "L" // Left   (-x)
	FaceU Face = "U" // Up     (+y)
	FaceD Face = "D" // Down   (-y)
	FaceF Face = "F" // Front  (+z)
	FaceB Face = "B" // Back   (-z)
)

// FaceSelector identifies one outer 3x3 face by axis and layer.
// Layer 0 selects the middle slice along the axis; middle slices never
// appear in moves and exist only for center-cubie classification.
type FaceSelector struct {
	Axis  Axis
	Layer int
}

// faceEntry fixes the relationship between a face letter, its grid
// selector, and rotation sign.
//
// AngleSign is the sign of the rotation angle about the positive axis
// that a clockwise turn (viewed from outside the face) produces. The six
// entries encode the right-hand-rule convention the viewer expects
// visually; keep them as a table, not a formula.
type faceEntry struct {
	Face      Face
	Axis      Axis
	Layer     int
	AngleSign int
}

var faceTable = [6]faceEntry{
	{FaceR, AxisX, +1, -1},
	{FaceL, AxisX, -1, +1},
	{FaceU, AxisY, +1, -1},
	{FaceD, AxisY, -1, +1},
	{FaceF, AxisZ, +1, -1},
	{FaceB, AxisZ, -1, +1},
}

// Faces lists the six face letters in table order.
var Faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Selector returns the face's (axis, layer) selector.
func (f Face) Selector() FaceSelector {
	for _, e := range faceTable {
		if e.Face == f {
			return FaceSelector{e.Axis, e.Layer}
		}
	}
	return FaceSelector{}
}

// faceFor returns the table entry for a selector, or nil for middle slices.
func faceFor(axis Axis, layer int) *faceEntry {
	for i := range faceTable {
		if faceTable[i].Axis == axis && faceTable[i].Layer == layer {
			return &faceTable[i]
		}
	}
	return nil
}

// Direction of a quarter turn relative to the turned face.
type Direction int

const (
	CW  Direction = 1  // Clockwise viewed from outside the face
	CCW Direction = -1 // Counter-clockwise viewed from outside the face
)

// Move represents a single quarter turn of one face.
type Move struct {
	Axis  Axis
	Layer int // -1 or +1
	Dir   Direction
}

// MoveFor builds a move from a face letter and direction.
func MoveFor(face Face, dir Direction) Move {
	sel := face.Selector()
	return Move{Axis: sel.Axis, Layer: sel.Layer, Dir: dir}
}

// Face returns the face letter for this move, or "" for an invalid layer.
func (m Move) Face() Face {
	if e := faceFor(m.Axis, m.Layer); e != nil {
		return e.Face
	}
	return ""
}

// Angle returns the signed rotation angle in radians about the positive
// axis that performs this move.
func (m Move) Angle() float64 {
	return float64(m.angleQuarters()) * math.Pi / 2
}

// angleQuarters returns the signed number of quarter turns about the
// positive axis (+1 or -1) for this move, 0 for an invalid move.
func (m Move) angleQuarters() int {
	e := faceFor(m.Axis, m.Layer)
	if e == nil {
		return 0
	}
	return e.AngleSign * int(m.Dir)
}

// moveForQuarter builds the move whose rotation about the positive axis
// has the given sign, on the given face. Inverse of angleQuarters.
func moveForQuarter(axis Axis, layer, sign int) Move {
	e := faceFor(axis, layer)
	if e == nil {
		return Move{}
	}
	return Move{Axis: axis, Layer: layer, Dir: Direction(e.AngleSign * sign)}
}

// Rotation returns the exact grid rotation this move applies to the
// cubies of its layer.
func (m Move) Rotation() Rot3 {
	q := m.angleQuarters()
	if q == 0 {
		return RotIdentity
	}
	return QuarterTurn(m.Axis, q)
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	face := m.Face()
	if face == "" {
		return "?"
	}
	if m.Dir == CCW {
		return string(face) + "'"
	}
	return string(face)
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	m.Dir = -m.Dir
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', U, U'.
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	dir := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = CCW
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return MoveFor(face, dir), nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Half-turn notation (R2) expands to two clockwise quarter turns so the
// result stays reversible move by move. Invalid tokens are skipped.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		if len(part) == 2 && part[1] == '2' {
			m, err := ParseMove(part[:1])
			if err != nil {
				continue
			}
			moves = append(moves, m, m)
			continue
		}
		m, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// ReverseMoves returns the sequence that undoes the given moves: the
// order is reversed and every direction negated.
func ReverseMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
