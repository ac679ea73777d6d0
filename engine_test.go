package cubesim

import (
	"math"
	"testing"
)

func newTestEngine() (*Engine, *Cube, *History) {
	cube := NewCube(NewMemScene())
	history := &History{}
	return NewEngine(cube, history, 0.05), cube, history
}

// pump advances the engine in small frames until it goes idle with an
// empty queue.
func pump(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if e.Idle() && e.QueueLen() == 0 {
			return
		}
		e.Update(0.01)
	}
	t.Fatal("engine did not go idle")
}

func TestRequestCommitsMove(t *testing.T) {
	e, cube, history := newTestEngine()

	e.Request(R, true, nil)
	if e.Idle() {
		t.Error("Engine should be animating after Request")
	}
	pump(t, e)

	if history.Len() != 1 {
		t.Fatalf("history length = %d, want 1", history.Len())
	}
	if got := history.Moves()[0]; got != R {
		t.Errorf("recorded move = %s, want %s", got, R)
	}

	want := NewCube(NewMemScene())
	want.Apply(R)
	if cube.Facelets() != want.Facelets() {
		t.Error("Animated R should produce the same state as logical R")
		t.Log(cube.Facelets().String())
	}
}

func TestCommitSnapsToGrid(t *testing.T) {
	e, cube, _ := newTestEngine()

	e.Request(R, true, nil)
	e.Request(U, true, nil)
	pump(t, e)

	if !cube.CheckGrid() {
		t.Error("Grid invariant broken after animated moves")
	}
	// Local transforms must be exactly on the grid, not just close.
	scene := cube.Scene()
	for _, cb := range cube.Cubies {
		pos := scene.LocalPosition(cb.Node)
		for i := 0; i < 3; i++ {
			if pos[i] != math.Round(pos[i]) {
				t.Fatalf("cubie %v position %v not snapped", cb.Home, pos)
			}
		}
	}
}

func TestQueueIsFIFO(t *testing.T) {
	e, _, _ := newTestEngine()

	var committed []string
	e.OnCommit(func(m Move) {
		committed = append(committed, m.Notation())
	})

	seq := []Move{R, U, RPrime, UPrime}
	for _, m := range seq {
		e.Request(m, true, nil)
	}
	if e.QueueLen() != 3 {
		t.Errorf("queue length = %d, want 3", e.QueueLen())
	}
	pump(t, e)

	want := []string{"R", "U", "R'", "U'"}
	if len(committed) != len(want) {
		t.Fatalf("committed %d moves, want %d", len(committed), len(want))
	}
	for i := range want {
		if committed[i] != want[i] {
			t.Errorf("commit order[%d] = %s, want %s", i, committed[i], want[i])
		}
	}
}

func TestUnrecordedRequestSkipsHistory(t *testing.T) {
	e, _, history := newTestEngine()

	e.Request(R, false, nil)
	pump(t, e)

	if history.Len() != 0 {
		t.Errorf("history length = %d, want 0 for unrecorded move", history.Len())
	}
}

func TestDoneCallbackChaining(t *testing.T) {
	e, cube, _ := newTestEngine()

	// Sequential execution: each move requested from the previous commit.
	moves := []Move{R, U, RPrime, UPrime}
	var step func(i int)
	step = func(i int) {
		if i == len(moves) {
			return
		}
		e.Request(moves[i], true, func() { step(i + 1) })
	}
	step(0)
	pump(t, e)

	want := NewCube(NewMemScene())
	want.ApplyMoves(moves)
	if cube.Facelets() != want.Facelets() {
		t.Error("Chained animated sequence diverged from logical sequence")
	}
}

func TestDoneCallbackRequestWaitsBehindQueue(t *testing.T) {
	e, _, _ := newTestEngine()

	var committed []string
	e.OnCommit(func(m Move) {
		committed = append(committed, m.Notation())
	})

	// A request issued from a done callback must not jump ahead of
	// requests that were already queued when the callback fired.
	e.Request(F, true, func() {
		e.Request(DPrime, true, nil)
	})
	e.Request(R, true, nil)
	e.Request(U, true, nil)
	pump(t, e)

	want := []string{"F", "R", "U", "D'"}
	if len(committed) != len(want) {
		t.Fatalf("committed %d moves, want %d", len(committed), len(want))
	}
	for i := range want {
		if committed[i] != want[i] {
			t.Errorf("commit order[%d] = %s, want %s", i, committed[i], want[i])
		}
	}
}

func TestBeginManualWhileBusy(t *testing.T) {
	e, _, _ := newTestEngine()

	e.Request(R, true, nil)
	if err := e.BeginManual(AxisY, 1); err != ErrEngineBusy {
		t.Errorf("BeginManual while animating = %v, want ErrEngineBusy", err)
	}
	pump(t, e)

	if err := e.BeginManual(AxisY, 1); err != nil {
		t.Errorf("BeginManual while idle = %v, want nil", err)
	}
}

func TestManualSnap(t *testing.T) {
	deg := math.Pi / 180

	tests := []struct {
		name  string
		angle float64
		want  []string
	}{
		{"below half quarter snaps back", 40 * deg, nil},
		{"past half quarter snaps on", 50 * deg, []string{"R'"}},
		{"half turn records two moves", 185 * deg, []string{"R'", "R'"}},
		{"negative snaps to negative", -100 * deg, []string{"R"}},
		{"three quarters records one inverse", 270 * deg, []string{"R"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, cube, history := newTestEngine()
			if err := e.BeginManual(AxisX, 1); err != nil {
				t.Fatal(err)
			}
			e.SetManualAngle(tt.angle)
			e.FinishManual()
			pump(t, e)

			got := history.Moves()
			if len(got) != len(tt.want) {
				t.Fatalf("recorded %d moves, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].Notation() != tt.want[i] {
					t.Errorf("move[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
			if !cube.CheckGrid() {
				t.Error("Grid invariant broken after manual snap")
			}

			// Replaying the recorded moves on a fresh cube must reproduce
			// the committed state.
			want := NewCube(NewMemScene())
			want.ApplyMoves(got)
			if cube.Facelets() != want.Facelets() {
				t.Error("Committed state diverged from recorded moves")
			}
		})
	}
}

func TestManualAngleTracksGesture(t *testing.T) {
	e, _, _ := newTestEngine()

	if err := e.BeginManual(AxisZ, -1); err != nil {
		t.Fatal(err)
	}
	if !e.ManualActive() {
		t.Error("ManualActive should be true after BeginManual")
	}
	e.SetManualAngle(0.3)
	e.SetManualAngle(0.7)
	if got := e.ManualAngle(); got != 0.7 {
		t.Errorf("ManualAngle = %v, want 0.7", got)
	}
	e.FinishManual()
	if e.ManualActive() {
		t.Error("ManualActive should be false once the snap tween starts")
	}
	pump(t, e)
}

func TestRequestDuringManualWaits(t *testing.T) {
	e, _, history := newTestEngine()

	if err := e.BeginManual(AxisX, 1); err != nil {
		t.Fatal(err)
	}
	e.SetManualAngle(quarter)
	e.Request(U, true, nil)
	if e.QueueLen() != 1 {
		t.Errorf("queue length = %d, want 1 while manual rotation active", e.QueueLen())
	}
	e.FinishManual()
	pump(t, e)

	if history.Len() != 2 {
		t.Fatalf("history length = %d, want 2", history.Len())
	}
	if got := history.Moves()[1]; got != U {
		t.Errorf("queued move committed as %s, want %s", got, U)
	}
}
