package cubesim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIdentityViewMapping(t *testing.T) {
	view := mgl64.QuatIdent()
	want := map[RelDirection]Face{
		RelFront: FaceF,
		RelBack:  FaceB,
		RelRight: FaceR,
		RelLeft:  FaceL,
		RelUp:    FaceU,
		RelDown:  FaceD,
	}
	got := ViewMapping(view)
	for d, f := range want {
		if got[d] != f {
			t.Errorf("%v = %v, want %v", d, got[d], f)
		}
	}
}

func TestHalfYawSwapsFrontAndBack(t *testing.T) {
	view := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})
	got := ViewMapping(view)

	if got[RelFront] != FaceB {
		t.Errorf("front = %v, want B after 180 degree yaw", got[RelFront])
	}
	if got[RelBack] != FaceF {
		t.Errorf("back = %v, want F after 180 degree yaw", got[RelBack])
	}
	if got[RelRight] != FaceL || got[RelLeft] != FaceR {
		t.Error("180 degree yaw should swap left and right")
	}
	if got[RelUp] != FaceU || got[RelDown] != FaceD {
		t.Error("yaw about the vertical must not move up and down")
	}
}

func TestQuarterYawMapping(t *testing.T) {
	// Turning the cube a quarter to the left brings the right face around
	// to the front... or the left face, depending on yaw sign. Both signs
	// must stay consistent with the x axis.
	for _, sign := range []float64{1, -1} {
		view := mgl64.QuatRotate(sign*math.Pi/2, mgl64.Vec3{0, 1, 0})
		got := ViewMapping(view)
		if got[RelFront] != FaceR && got[RelFront] != FaceL {
			t.Errorf("quarter yaw: front = %v, want R or L", got[RelFront])
		}
		if got[RelUp] != FaceU {
			t.Errorf("quarter yaw: up = %v, want U", got[RelUp])
		}
		// Opposite directions map to opposite faces.
		f := got[RelFront].Selector()
		b := got[RelBack].Selector()
		if f.Axis != b.Axis || f.Layer != -b.Layer {
			t.Errorf("front %v and back %v should be opposite", got[RelFront], got[RelBack])
		}
	}
}

func TestViewMappingIsBijective(t *testing.T) {
	views := []mgl64.Quat{
		mgl64.QuatIdent(),
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}),
		mgl64.QuatRotate(0.4, mgl64.Vec3{0, 1, 0}).
			Mul(mgl64.QuatRotate(-0.3, mgl64.Vec3{1, 0, 0})),
	}
	for _, view := range views {
		got := ViewMapping(view)
		seen := make(map[Face]bool)
		for d := RelFront; d <= RelDown; d++ {
			if seen[got[d]] {
				t.Errorf("view %v: face %v mapped twice", view, got[d])
			}
			seen[got[d]] = true
		}
	}
}

func TestSmallTiltKeepsIdentityMapping(t *testing.T) {
	// A slight orbit must not flip the mapping; classification is by
	// dominant axis, not exact alignment.
	view := mgl64.QuatRotate(0.2, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(-0.15, mgl64.Vec3{1, 0, 0}))
	got := ViewMapping(view)
	if got[RelFront] != FaceF || got[RelUp] != FaceU || got[RelRight] != FaceR {
		t.Errorf("small tilt changed the mapping: %v", got)
	}
}
