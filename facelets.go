package cubesim

// NetFace indexes the six faces of a facelet snapshot.
type NetFace int

const (
	NetU NetFace = 0 // Up (White)
	NetD NetFace = 1 // Down (Yellow)
	NetF NetFace = 2 // Front (Green)
	NetB NetFace = 3 // Back (Blue)
	NetR NetFace = 4 // Right (Red)
	NetL NetFace = 5 // Left (Orange)
)

func (f NetFace) String() string {
	switch f {
	case NetU:
		return "U"
	case NetD:
		return "D"
	case NetF:
		return "F"
	case NetB:
		return "B"
	case NetR:
		return "R"
	case NetL:
		return "L"
	default:
		return "?"
	}
}

// netSolvedColor returns the color of a net face when solved.
func netSolvedColor(f NetFace) Color {
	switch f {
	case NetU:
		return White
	case NetD:
		return Yellow
	case NetF:
		return Green
	case NetB:
		return Blue
	case NetR:
		return Red
	case NetL:
		return Orange
	default:
		return White
	}
}

// netSelector maps a net face to its grid selector.
func netSelector(f NetFace) FaceSelector {
	switch f {
	case NetU:
		return FaceSelector{AxisY, +1}
	case NetD:
		return FaceSelector{AxisY, -1}
	case NetF:
		return FaceSelector{AxisZ, +1}
	case NetB:
		return FaceSelector{AxisZ, -1}
	case NetR:
		return FaceSelector{AxisX, +1}
	default:
		return FaceSelector{AxisX, -1}
	}
}

// netGridPoint returns the grid position showing at facelet index 0..8 of
// a face, using the conventional net orientation: each face is read
// top-to-bottom, left-to-right as printed by String.
func netGridPoint(f NetFace, idx int) Vec3i {
	row := idx / 3
	col := idx % 3
	switch f {
	case NetU:
		return Vec3i{col - 1, +1, row - 1}
	case NetD:
		return Vec3i{col - 1, -1, 1 - row}
	case NetF:
		return Vec3i{col - 1, 1 - row, +1}
	case NetB:
		return Vec3i{1 - col, 1 - row, -1}
	case NetR:
		return Vec3i{+1, 1 - row, 1 - col}
	default: // NetL
		return Vec3i{-1, 1 - row, col - 1}
	}
}

// Facelets is a sticker-level snapshot of the cube, read off the cubie
// grid. Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color.
type Facelets struct {
	// Faces[face][position] = color
	Faces [6][9]Color
}

// Facelets projects the cubie grid onto a facelet snapshot.
func (c *Cube) Facelets() Facelets {
	var out Facelets
	for f := NetU; f <= NetL; f++ {
		sel := netSelector(f)
		for idx := 0; idx < 9; idx++ {
			p := netGridPoint(f, idx)
			cb := c.CubieAt(p)
			if cb == nil {
				out.Faces[f][idx] = ColorNone
				continue
			}
			out.Faces[f][idx] = cb.VisibleSticker(sel.Axis, sel.Layer)
		}
	}
	return out
}

// IsSolved reports whether every face is uniformly its solved color.
func (fl Facelets) IsSolved() bool {
	for f := NetU; f <= NetL; f++ {
		want := netSolvedColor(f)
		for i := 0; i < 9; i++ {
			if fl.Faces[f][i] != want {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube net.
func (fl Facelets) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += fl.Faces[NetU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []NetFace{NetL, NetF, NetR, NetB} {
			for col := 0; col < 3; col++ {
				result += fl.Faces[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += fl.Faces[NetD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
