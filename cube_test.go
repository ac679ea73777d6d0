package cubesim

import (
	"testing"
)

func newTestCube() *Cube {
	return NewCube(NewMemScene())
}

func TestNewCubeIsSolved(t *testing.T) {
	c := newTestCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.CheckGrid() {
		t.Error("New cube should satisfy the grid invariant")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := newTestCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourTurnsReturnToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		c := newTestCube()
		m := MoveFor(face, CW)
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.Facelets().String())
		}
	}
}

func TestMoveInverseLaw(t *testing.T) {
	for _, face := range Faces {
		for _, dir := range []Direction{CW, CCW} {
			c := newTestCube()
			m := MoveFor(face, dir)
			c.Apply(m)
			c.Apply(m.Inverse())
			if !c.IsSolved() {
				t.Errorf("%s then %s should return to solved", m, m.Inverse())
				t.Log(c.Facelets().String())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := newTestCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.Facelets().String())
	}
}

func TestGridInvariantAfterMoves(t *testing.T) {
	c := newTestCube()
	c.ApplyNotation("R U2 F' D L B' R' U F2 L'")
	if !c.CheckGrid() {
		t.Error("Grid invariant broken after move sequence")
	}
}

func TestHistoryReversalReturnsToSolved(t *testing.T) {
	c := newTestCube()
	moves := ParseMoves("R U R' U' F D' L2 B U'")
	c.ApplyMoves(moves)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	c.ApplyMoves(ReverseMoves(moves))
	if !c.IsSolved() {
		t.Error("Reversed, direction-negated sequence should solve the cube")
		t.Log(c.Facelets().String())
	}
}

func TestCubiesOnFaceReturnsNine(t *testing.T) {
	c := newTestCube()
	for _, face := range Faces {
		sel := face.Selector()
		got := c.CubiesOnFace(sel.Axis, sel.Layer)
		if len(got) != 9 {
			t.Errorf("%v face should have 9 cubies, got %d", face, len(got))
		}
	}

	// Positions move, so membership must track the live state.
	c.Apply(R)
	got := c.CubiesOnFace(AxisX, 1)
	if len(got) != 9 {
		t.Errorf("R face should still have 9 cubies after R, got %d", len(got))
	}
}

func TestClassifyKinds(t *testing.T) {
	c := newTestCube()

	tests := []struct {
		pos       Vec3i
		sel       FaceSelector
		kind      CubieKind
		neighbors int
	}{
		{Vec3i{0, 0, 1}, FaceSelector{AxisZ, 1}, KindCenter, 0},
		{Vec3i{0, 1, 1}, FaceSelector{AxisZ, 1}, KindEdge, 1},
		{Vec3i{1, 1, 1}, FaceSelector{AxisZ, 1}, KindCorner, 2},
		{Vec3i{-1, 1, -1}, FaceSelector{AxisY, 1}, KindCorner, 2},
	}

	for _, tt := range tests {
		cb := c.CubieAt(tt.pos)
		if cb == nil {
			t.Fatalf("no cubie at %v", tt.pos)
		}
		info := c.Classify(tt.sel, cb)
		if info.Kind != tt.kind {
			t.Errorf("cubie %v: kind = %v, want %v", tt.pos, info.Kind, tt.kind)
		}
		if len(info.Neighbors) != tt.neighbors {
			t.Errorf("cubie %v: %d neighbors, want %d", tt.pos, len(info.Neighbors), tt.neighbors)
		}
		for _, n := range info.Neighbors {
			if n == tt.sel {
				t.Errorf("cubie %v: neighbors must exclude the clicked face", tt.pos)
			}
		}
	}
}

func TestUTurnMovesFrontToLeft(t *testing.T) {
	c := newTestCube()
	c.Apply(U)

	// The cubie that started front-center-top is now on the left face.
	cb := c.CubieAt(Vec3i{-1, 1, 0})
	if cb == nil || cb.Home != (Vec3i{0, 1, 1}) {
		t.Error("U should carry the front-top edge to the left face")
	}
	// Its green sticker now shows on the left face.
	if cb != nil && cb.VisibleSticker(AxisX, -1) != Green {
		t.Errorf("front-top edge should show green on the left after U, got %v",
			cb.VisibleSticker(AxisX, -1))
	}
}

func TestStickersTravelWithCubie(t *testing.T) {
	c := newTestCube()
	c.Apply(R)

	// The front-right edge (green/red) moves to the top-right after R.
	cb := c.CubieAt(Vec3i{1, 1, 0})
	if cb == nil || cb.Home != (Vec3i{1, 0, 1}) {
		t.Fatal("R should carry the front-right edge to the top")
	}
	if got := cb.VisibleSticker(AxisY, 1); got != Green {
		t.Errorf("green sticker should face up after R, got %v", got)
	}
	if got := cb.VisibleSticker(AxisX, 1); got != Red {
		t.Errorf("red sticker should stay on the right after R, got %v", got)
	}
}
