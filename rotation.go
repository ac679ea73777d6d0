package cubesim

// Axis identifies one of the three grid axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Vec3i is an integer grid vector. Cubie positions live in {-1,0,1}^3.
type Vec3i [3]int

// Add returns v + w.
func (v Vec3i) Add(w Vec3i) Vec3i {
	return Vec3i{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Neg returns -v.
func (v Vec3i) Neg() Vec3i {
	return Vec3i{-v[0], -v[1], -v[2]}
}

// AxisUnit returns the unit vector along the given axis with the given sign.
func AxisUnit(axis Axis, sign int) Vec3i {
	var v Vec3i
	v[axis] = sign
	return v
}

// Rot3 is a rotation matrix with integer entries. The 24 orientations a
// cubie can take are exactly the Rot3 values reachable by composing
// quarter turns, so orientation arithmetic is exact and immune to
// floating-point drift.
type Rot3 [3][3]int

// RotIdentity is the identity rotation.
var RotIdentity = Rot3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// quarterTurns[axis] is the +90 degree rotation about that axis
// (right-hand rule, thumb along the positive axis).
var quarterTurns = [3]Rot3{
	AxisX: {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	AxisY: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	AxisZ: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

// QuarterTurn returns the rotation for sign*90 degrees about the axis.
// sign must be +1 or -1.
func QuarterTurn(axis Axis, sign int) Rot3 {
	r := quarterTurns[axis]
	if sign < 0 {
		r = r.Inverse()
	}
	return r
}

// Mul returns r * s (apply s first, then r).
func (r Rot3) Mul(s Rot3) Rot3 {
	var out Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r[i][k] * s[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverse returns the inverse rotation. For rotation matrices the
// inverse is the transpose.
func (r Rot3) Inverse() Rot3 {
	var out Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[j][i]
		}
	}
	return out
}

// Apply rotates the vector.
func (r Rot3) Apply(v Vec3i) Vec3i {
	var out Vec3i
	for i := 0; i < 3; i++ {
		out[i] = r[i][0]*v[0] + r[i][1]*v[1] + r[i][2]*v[2]
	}
	return out
}

// IsIdentity reports whether r is the identity rotation.
func (r Rot3) IsIdentity() bool {
	return r == RotIdentity
}
