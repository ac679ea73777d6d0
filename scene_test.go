package cubesim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestMemSceneCreateCubie(t *testing.T) {
	s := NewMemScene()
	id := s.CreateCubie(Vec3i{1, -1, 0})
	if !vecNear(s.LocalPosition(id), mgl64.Vec3{1, -1, 0}) {
		t.Errorf("cubie local position = %v", s.LocalPosition(id))
	}
	if !vecNear(s.WorldPosition(id), mgl64.Vec3{1, -1, 0}) {
		t.Errorf("cubie world position = %v", s.WorldPosition(id))
	}
}

func TestReparentPreservesWorldTransform(t *testing.T) {
	s := NewMemScene()
	cubie := s.CreateCubie(Vec3i{1, 1, 1})
	group := s.CreateGroup()
	s.SetGroupRotation(group, AxisY, math.Pi/3)

	before := s.WorldPosition(cubie)
	s.Reparent(cubie, group)
	after := s.WorldPosition(cubie)

	if !vecNear(before, after) {
		t.Errorf("world position jumped on reparent: %v -> %v", before, after)
	}

	// Preservation means the local frame absorbed the inverse of the
	// group's rotation.
	wantLocal := mgl64.QuatRotate(-math.Pi/3, mgl64.Vec3{0, 1, 0}).Rotate(mgl64.Vec3{1, 1, 1})
	if !vecNear(s.LocalPosition(cubie), wantLocal) {
		t.Errorf("local position under rotated group = %v, want %v",
			s.LocalPosition(cubie), wantLocal)
	}
}

func TestGroupRotationCarriesCubie(t *testing.T) {
	s := NewMemScene()
	cubie := s.CreateCubie(Vec3i{1, 1, 1})
	group := s.CreateGroup()
	s.Reparent(cubie, group)

	// Rotating the group carries the cubie with it.
	s.SetGroupRotation(group, AxisY, math.Pi/2)
	moved := s.WorldPosition(cubie)
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}).Rotate(mgl64.Vec3{1, 1, 1})
	if !vecNear(moved, want) {
		t.Errorf("rotated world position = %v, want %v", moved, want)
	}

	// Reparenting back to the root bakes the rotation into the local
	// transform.
	s.Reparent(cubie, s.Root())
	if !vecNear(s.WorldPosition(cubie), want) {
		t.Errorf("world position jumped on reparent back: %v", s.WorldPosition(cubie))
	}
	if !vecNear(s.LocalPosition(cubie), want) {
		t.Errorf("local position after reparent to root = %v, want %v",
			s.LocalPosition(cubie), want)
	}
}

func TestWorldTransformComposesThroughRoot(t *testing.T) {
	s := NewMemScene()
	cubie := s.CreateCubie(Vec3i{0, 0, 1})

	// A view rotation on the root must show up in every world position.
	yaw := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})
	s.SetLocal(s.Root(), mgl64.Vec3{}, yaw)

	got := s.WorldPosition(cubie)
	if !vecNear(got, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("world position under 180 degree yaw = %v, want {0 0 -1}", got)
	}
	if s.LocalPosition(cubie) != (mgl64.Vec3{0, 0, 1}) {
		t.Error("view rotation must not disturb local positions")
	}
}

func TestRemoveNode(t *testing.T) {
	s := NewMemScene()
	id := s.CreateGroup()
	s.Remove(id)
	if s.LocalPosition(id) != (mgl64.Vec3{}) {
		t.Error("removed node should read as zero")
	}
}
