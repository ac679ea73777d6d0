package cubesim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// gridRotations generates the full orientation group by closing the
// quarter-turn generators under composition.
func gridRotations() []Rot3 {
	seen := map[Rot3]bool{RotIdentity: true}
	frontier := []Rot3{RotIdentity}
	for len(frontier) > 0 {
		var next []Rot3
		for _, r := range frontier {
			for axis := AxisX; axis <= AxisZ; axis++ {
				for _, sign := range []int{1, -1} {
					c := QuarterTurn(axis, sign).Mul(r)
					if !seen[c] {
						seen[c] = true
						next = append(next, c)
					}
				}
			}
		}
		frontier = next
	}
	out := make([]Rot3, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	return out
}

func TestGridRotationGroupHas24Elements(t *testing.T) {
	if got := len(gridRotations()); got != 24 {
		t.Errorf("orientation group size = %d, want 24", got)
	}
}

func TestQuarterTurnFourthPower(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		r := RotIdentity
		for i := 0; i < 4; i++ {
			r = QuarterTurn(axis, 1).Mul(r)
		}
		if !r.IsIdentity() {
			t.Errorf("axis %v: four quarter turns should be identity", axis)
		}
	}
}

func TestQuarterTurnInverse(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		cw := QuarterTurn(axis, 1)
		ccw := QuarterTurn(axis, -1)
		if !cw.Mul(ccw).IsIdentity() {
			t.Errorf("axis %v: CW then CCW should be identity", axis)
		}
		if cw.Inverse() != ccw {
			t.Errorf("axis %v: Inverse should equal the opposite turn", axis)
		}
	}
}

func TestQuarterTurnFixesOwnAxis(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		u := AxisUnit(axis, 1)
		if QuarterTurn(axis, 1).Apply(u) != u {
			t.Errorf("axis %v: rotation should fix its own axis", axis)
		}
	}
}

func TestQuarterTurnRightHandRule(t *testing.T) {
	// +90 about x sends +y to +z; about y sends +z to +x; about z
	// sends +x to +y.
	tests := []struct {
		axis Axis
		in   Vec3i
		out  Vec3i
	}{
		{AxisX, Vec3i{0, 1, 0}, Vec3i{0, 0, 1}},
		{AxisY, Vec3i{0, 0, 1}, Vec3i{1, 0, 0}},
		{AxisZ, Vec3i{1, 0, 0}, Vec3i{0, 1, 0}},
	}
	for _, tt := range tests {
		if got := QuarterTurn(tt.axis, 1).Apply(tt.in); got != tt.out {
			t.Errorf("axis %v: %v -> %v, want %v", tt.axis, tt.in, got, tt.out)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	for _, r := range gridRotations() {
		v := Vec3i{1, -1, 1}
		got := r.Apply(v)
		if got[0]*got[0]+got[1]*got[1]+got[2]*got[2] != 3 {
			t.Errorf("rotation %v does not preserve length: %v", r, got)
		}
	}
}

func TestQuatForRotRoundTrip(t *testing.T) {
	for _, r := range gridRotations() {
		if got := RotForQuat(QuatForRot(r)); got != r {
			t.Errorf("quaternion round trip: %v -> %v", r, got)
		}
	}
}

func TestQuatForRotMatchesApply(t *testing.T) {
	// The float rotation must act the same way as the integer one.
	v := Vec3i{1, -1, 0}
	for _, r := range gridRotations() {
		want := Vec3Of(r.Apply(v))
		got := QuatForRot(r).Rotate(Vec3Of(v))
		if SnapToGrid(got) != SnapToGrid(want) {
			t.Errorf("rotation %v: quat gives %v, matrix gives %v", r, got, want)
		}
	}
}

func TestSnapToGrid(t *testing.T) {
	got := SnapToGrid(mgl64.Vec3{1.001, -0.998, 0.003})
	if got != (Vec3i{1, -1, 0}) {
		t.Errorf("SnapToGrid = %v, want {1 -1 0}", got)
	}
}
