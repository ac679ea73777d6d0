package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3Of converts an integer grid vector to a float vector.
func Vec3Of(v Vec3i) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// AxisVec returns the float unit vector along the positive axis.
func AxisVec(a Axis) mgl64.Vec3 {
	var v mgl64.Vec3
	v[a] = 1
	return v
}

// QuatForRot converts an exact grid rotation to a quaternion.
func QuatForRot(r Rot3) mgl64.Quat {
	var m mgl64.Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[j*4+i] = float64(r[i][j]) // column-major
		}
	}
	m[15] = 1
	return mgl64.Mat4ToQuat(m)
}

// RotForQuat snaps a quaternion to the nearest of the 24 grid rotations
// by rounding its matrix entries. Valid only for quaternions already
// close to a grid rotation, which is all the commit step ever sees.
func RotForQuat(q mgl64.Quat) Rot3 {
	m := q.Mat4()
	var r Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = int(math.Round(m[j*4+i]))
		}
	}
	return r
}

// SnapToGrid rounds a float position to the nearest integer grid point,
// eliminating floating drift accumulated during animation.
func SnapToGrid(v mgl64.Vec3) Vec3i {
	return Vec3i{
		int(math.Round(v[0])),
		int(math.Round(v[1])),
		int(math.Round(v[2])),
	}
}

// dominantAxis returns the axis with the greatest absolute component and
// the sign of that component.
func dominantAxis(v mgl64.Vec3) (Axis, int) {
	axis := AxisX
	best := math.Abs(v[0])
	for a := AxisY; a <= AxisZ; a++ {
		if abs := math.Abs(v[int(a)]); abs > best {
			best = abs
			axis = a
		}
	}
	if v[axis] < 0 {
		return axis, -1
	}
	return axis, +1
}
