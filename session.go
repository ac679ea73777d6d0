package cubesim

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Semantic status strings emitted to the UI layer. Rendering them is the
// host's concern.
const (
	StatusReady         = "Ready"
	StatusScrambling    = "Scrambling..."
	StatusSolving       = "Solving..."
	StatusSolved        = "Solved!"
	StatusAlreadySolved = "Already solved"
)

// Simulator ties the cube model, rotation engine and gesture interpreter
// together behind a callback-based API.
//
// Create one with New, feed it normalized pointer and key events, and
// call Update once per display frame:
//
//	sim := cubesim.New()
//	sim.OnMove(func(m cubesim.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//	sim.Scramble()
//	for running {
//	    sim.Update(dt)
//	}
//
// The simulator is single-threaded and cooperative: all methods must be
// called from the same goroutine that calls Update.
type Simulator struct {
	cube    *Cube
	scene   Scene
	engine  *Engine
	history *History
	interp  *Interpreter
	gesture Gesture
	camera  *Camera
	cfg     *config
	rng     *rand.Rand

	status string
	busy   bool

	onMove   func(Move)
	onSolved func()
	onStatus func(string)
	onBusy   func(bool)
}

// New creates a solved cube simulation.
func New(opts ...Option) *Simulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	scene := cfg.scene
	if scene == nil {
		scene = NewMemScene()
	}
	camera := cfg.camera
	if camera == nil {
		camera = NewCamera(800, 600)
	}
	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}

	s := &Simulator{
		scene:   scene,
		camera:  camera,
		cfg:     cfg,
		history: &History{},
		rng:     rand.New(rand.NewSource(seed)),
		status:  StatusReady,
	}
	s.cube = NewCube(scene)
	s.engine = NewEngine(s.cube, s.history, cfg.duration)
	s.interp = NewInterpreter(s.cube, s.engine, camera, cfg.highlighter)
	s.interp.Sensitivity = cfg.sensitivity
	s.interp.DragThreshold = cfg.dragThreshold

	s.engine.OnCommit(s.moveCommitted)
	return s
}

func (s *Simulator) moveCommitted(m Move) {
	if s.onMove != nil {
		s.onMove(m)
	}
	if !s.busy && s.cube.IsSolved() {
		s.setStatus(StatusSolved)
		if s.onSolved != nil {
			s.onSolved()
		}
	}
}

// Accessors

// Cube returns the logical cube model.
func (s *Simulator) Cube() *Cube { return s.cube }

// History returns the move history.
func (s *Simulator) History() *History { return s.history }

// Engine returns the rotation engine.
func (s *Simulator) Engine() *Engine { return s.engine }

// Camera returns the picking camera.
func (s *Simulator) Camera() *Camera { return s.camera }

// Scene returns the scene backing the simulation.
func (s *Simulator) Scene() Scene { return s.scene }

// Status returns the current status string.
func (s *Simulator) Status() string { return s.status }

// Busy reports whether a scramble or solve sequence is running;
// interactive controls should be disabled while true.
func (s *Simulator) Busy() bool { return s.busy }

// IsSolved reports whether the cube shows all colors on their canonical
// faces.
func (s *Simulator) IsSolved() bool { return s.cube.IsSolved() }

// Facelets returns a sticker-level snapshot for display.
func (s *Simulator) Facelets() Facelets { return s.cube.Facelets() }

// Event callbacks

// OnMove sets a callback fired for each committed, recorded move.
func (s *Simulator) OnMove(cb func(Move)) { s.onMove = cb }

// OnSolved sets a callback fired when a user move solves the cube.
func (s *Simulator) OnSolved(cb func()) { s.onSolved = cb }

// OnStatus sets a callback fired when the status string changes.
func (s *Simulator) OnStatus(cb func(string)) { s.onStatus = cb }

// OnBusy sets a callback fired when scramble/solve sequences start and
// finish; hosts use it to enable and disable controls.
func (s *Simulator) OnBusy(cb func(bool)) { s.onBusy = cb }

func (s *Simulator) setStatus(status string) {
	if s.status == status {
		return
	}
	s.status = status
	if s.onStatus != nil {
		s.onStatus(status)
	}
}

func (s *Simulator) setBusy(busy bool) {
	if s.busy == busy {
		return
	}
	s.busy = busy
	if s.onBusy != nil {
		s.onBusy(busy)
	}
}

// Frame loop

// Update advances animation by dt seconds. Call once per display frame.
func (s *Simulator) Update(dt float64) {
	s.engine.Update(dt)
}

// Pointer input. Coordinates are pixels in the camera viewport.

// PointerDown feeds a press sample. Returns true when the pointer now
// owns face rotation; false leaves it free for camera orbit.
func (s *Simulator) PointerDown(pointer int, x, y float64) bool {
	return s.interp.PointerDown(&s.gesture, pointer, x, y)
}

// PointerMove feeds a drag sample.
func (s *Simulator) PointerMove(pointer int, x, y float64) {
	s.interp.PointerMove(&s.gesture, pointer, x, y)
}

// PointerUp releases the gesture, snapping any in-progress rotation to
// the nearest quarter turn.
func (s *Simulator) PointerUp(pointer int) {
	s.interp.PointerUp(&s.gesture, pointer)
}

// Keyboard input

// HandleKey dispatches a view-relative face key: f, b, r, l, u, d turn
// whatever face currently occupies that direction, clockwise, or
// counter-clockwise with shift. Unknown keys are ignored.
func (s *Simulator) HandleKey(key string, shift bool) {
	var rel RelDirection
	switch key {
	case "f", "F":
		rel = RelFront
	case "b", "B":
		rel = RelBack
	case "r", "R":
		rel = RelRight
	case "l", "L":
		rel = RelLeft
	case "u", "U":
		rel = RelUp
	case "d", "D":
		rel = RelDown
	default:
		return
	}
	face := FaceAtDirection(s.ViewOrientation(), rel)
	dir := CW
	if shift {
		dir = CCW
	}
	s.Execute(MoveFor(face, dir))
}

// Programmatic moves

// Execute queues moves for animated, recorded execution.
func (s *Simulator) Execute(moves ...Move) {
	for _, m := range moves {
		if m.Face() == "" {
			continue
		}
		s.engine.Request(m, true, nil)
	}
}

// ExecuteNotation parses and executes a space-separated move sequence.
// Tokens outside the canonical alphabet are ignored.
func (s *Simulator) ExecuteNotation(seq string) {
	s.Execute(ParseMoves(seq)...)
}

// Scramble, solve, reset

// Scramble queues a random scramble: for each move one of the six face
// letters is sampled uniformly and a fair coin decides the
// counter-clockwise suffix. Moves run sequentially, each waiting for the
// previous commit. Silently refused while the engine is busy or moves
// are queued.
func (s *Simulator) Scramble() {
	if s.busy || !s.engine.Idle() || s.engine.QueueLen() > 0 {
		return
	}
	moves := s.randomMoves(s.cfg.scrambleLen)
	s.setBusy(true)
	s.setStatus(StatusScrambling)
	s.runSequence(moves, true, func() {
		s.setBusy(false)
		s.setStatus(StatusReady)
	})
}

func (s *Simulator) randomMoves(n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		face := Faces[s.rng.Intn(len(Faces))]
		dir := CW
		if s.rng.Intn(2) == 1 {
			dir = CCW
		}
		moves[i] = MoveFor(face, dir)
	}
	return moves
}

// runSequence executes moves strictly one after another by chaining
// completion callbacks, then calls finish.
func (s *Simulator) runSequence(moves []Move, record bool, finish func()) {
	var step func(i int)
	step = func(i int) {
		if i == len(moves) {
			if finish != nil {
				finish()
			}
			return
		}
		s.engine.Request(moves[i], record, func() { step(i + 1) })
	}
	step(0)
}

// Solve unwinds the move history: the recorded sequence is reversed,
// every direction negated, and replayed without re-recording, returning
// the cube to the solved state. Reports "Already solved" without
// animating when the history is empty. Silently refused while busy.
//
// Under SolveReset the cube reinitializes outright instead.
func (s *Simulator) Solve() {
	if s.busy || !s.engine.Idle() || s.engine.QueueLen() > 0 {
		return
	}

	if s.cfg.solveMode == SolveReset {
		if s.history.Len() == 0 {
			s.setStatus(StatusAlreadySolved)
			return
		}
		s.Reset()
		s.setStatus(StatusSolved)
		return
	}

	if s.history.Len() == 0 {
		s.setStatus(StatusAlreadySolved)
		return
	}

	seq := s.history.Reversed()
	s.history.Clear()
	s.setBusy(true)
	s.setStatus(StatusSolving)
	s.runSequence(seq, false, func() {
		s.setBusy(false)
		s.setStatus(StatusSolved)
		if s.onSolved != nil && s.cube.IsSolved() {
			s.onSolved()
		}
	})
}

// Reset reinitializes the cube to the solved identity, discarding the
// history and queue. Permitted only while idle with an empty queue.
func (s *Simulator) Reset() {
	if !s.engine.Idle() {
		return
	}
	s.engine.ClearQueue()
	s.cube.Init()
	s.history.Clear()
	s.gesture.Reset()
	s.setStatus(StatusReady)
}

// View orientation

// ViewOrientation returns the cube's current view rotation.
func (s *Simulator) ViewOrientation() mgl64.Quat {
	return s.scene.WorldOrientation(s.scene.Root())
}

// SetViewOrientation replaces the cube's view rotation.
func (s *Simulator) SetViewOrientation(q mgl64.Quat) {
	root := s.scene.Root()
	s.scene.SetLocal(root, s.scene.LocalPosition(root), q)
}

// OrbitView rotates the view by yaw about the world vertical and pitch
// about the world horizontal, in radians.
func (s *Simulator) OrbitView(yaw, pitch float64) {
	q := mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}).
		Mul(mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})).
		Mul(s.ViewOrientation())
	s.SetViewOrientation(q)
}

// ViewMapping returns which canonical face currently occupies each
// view-relative direction.
func (s *Simulator) ViewMapping() map[RelDirection]Face {
	return ViewMapping(s.ViewOrientation())
}
