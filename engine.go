package cubesim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const quarter = math.Pi / 2

// rotationRequest is a queued face rotation.
type rotationRequest struct {
	move   Move
	record bool
	done   func()
}

// activeRotation is the single in-flight layer rotation.
type activeRotation struct {
	axis   Axis
	layer  int
	group  NodeID
	cubies []*Cubie
	tween  *gween.Tween // nil while a gesture drives the angle directly
	angle  float64
	record bool
	done   func()
}

// Engine animates face rotations one at a time.
//
// State machine per rotation: Idle -> Animating -> Committing -> Idle.
// Requests arriving while a rotation is in flight are enqueued verbatim
// and serviced strictly FIFO. Progress advances only through Update,
// which the host calls once per display frame; the engine is
// single-threaded and cooperative, never locked.
type Engine struct {
	cube    *Cube
	scene   Scene
	history *History

	duration float32 // seconds per quarter turn
	queue    []rotationRequest
	cur      *activeRotation

	// onCommit fires once per recorded move at commit time.
	onCommit func(Move)
}

// NewEngine creates an engine over the cube's scene.
func NewEngine(cube *Cube, history *History, duration float32) *Engine {
	return &Engine{
		cube:     cube,
		scene:    cube.Scene(),
		history:  history,
		duration: duration,
	}
}

// OnCommit sets a callback fired for each recorded move as it commits.
func (e *Engine) OnCommit(cb func(Move)) {
	e.onCommit = cb
}

// Idle reports whether no rotation is in flight.
func (e *Engine) Idle() bool {
	return e.cur == nil
}

// QueueLen returns the number of pending rotation requests.
func (e *Engine) QueueLen() int {
	return len(e.queue)
}

// ClearQueue discards pending requests. Used only by full reinitialize.
func (e *Engine) ClearQueue() {
	e.queue = nil
}

// Request starts a rotation, or enqueues it if one is already in
// flight. It never fails: during Idle the animation begins
// synchronously, otherwise the request waits its FIFO turn.
func (e *Engine) Request(m Move, record bool, done func()) {
	req := rotationRequest{move: m, record: record, done: done}
	if e.cur != nil {
		e.queue = append(e.queue, req)
		return
	}
	e.start(req)
}

// start detaches the target layer into a transient rotation group and
// begins tweening toward the quarter-turn target.
func (e *Engine) start(req rotationRequest) {
	m := req.move
	act := e.attach(m.Axis, m.Layer)
	act.record = req.record
	act.done = req.done
	act.tween = gween.New(0, float32(m.Angle()), e.duration, ease.OutCubic)
	e.cur = act
}

// attach moves the 9 layer cubies under a fresh rotation group. The
// group sits at the root origin with identity orientation, so each
// cubie's local position is preserved exactly across the reparenting.
func (e *Engine) attach(axis Axis, layer int) *activeRotation {
	cubies := e.cube.CubiesOnFace(axis, layer)
	group := e.scene.CreateGroup()
	for _, cb := range cubies {
		e.scene.Reparent(cb.Node, group)
	}
	return &activeRotation{
		axis:   axis,
		layer:  layer,
		group:  group,
		cubies: cubies,
	}
}

// Update advances the in-flight animation by dt seconds.
func (e *Engine) Update(dt float64) {
	if e.cur == nil || e.cur.tween == nil {
		return
	}
	v, finished := e.cur.tween.Update(float32(dt))
	e.cur.angle = float64(v)
	e.scene.SetGroupRotation(e.cur.group, e.cur.axis, e.cur.angle)
	if finished {
		e.commit()
	}
}

// commit reabsorbs the rotation group into the cube frame and makes the
// move logical: each cubie's world transform is captured, the node is
// reparented back under the root, the local position is rounded to the
// grid and the local orientation snapped to the nearest of the 24 grid
// rotations. That snap is what makes colors stick to the correct cell
// after the turn and erases any floating drift.
func (e *Engine) commit() {
	cur := e.cur
	root := e.scene.Root()

	for _, cb := range cur.cubies {
		e.scene.Reparent(cb.Node, root)
		pos := SnapToGrid(e.scene.LocalPosition(cb.Node))
		rot := RotForQuat(e.scene.LocalOrientation(cb.Node))
		cb.Pos = pos
		cb.Rot = rot
		e.scene.SetLocal(cb.Node, Vec3Of(pos), QuatForRot(rot))
	}
	e.scene.Remove(cur.group)

	if cur.record {
		for _, m := range movesForAngle(cur.axis, cur.layer, cur.angle) {
			e.history.Append(m)
			if e.onCommit != nil {
				e.onCommit(m)
			}
		}
	}

	// Dequeue before running the callback: a Request issued from done
	// lands behind anything already waiting.
	done := cur.done
	e.cur = nil
	if len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		e.start(next)
	}
	if done != nil {
		done()
	}
}

// movesForAngle converts a committed group angle (already a multiple of
// 90 degrees) into the quarter-turn moves to log. A half turn logs two
// quarter turns so history reversal stays move-by-move; a net zero turn
// logs nothing; three quarters one way is recorded as one quarter the
// other way.
func movesForAngle(axis Axis, layer int, angle float64) []Move {
	q := int(math.Round(angle / quarter))
	q %= 4
	switch q {
	case 3:
		q = -1
	case -3:
		q = 1
	}
	if q == 0 {
		return nil
	}
	sign := 1
	if q < 0 {
		sign = -1
		q = -q
	}
	moves := make([]Move, q)
	for i := range moves {
		moves[i] = moveForQuarter(axis, layer, sign)
	}
	return moves
}

// Manual rotation: the gesture interpreter drives the angle directly
// while a swipe is in progress, then hands back to the tween to snap.

// BeginManual detaches a layer for gesture-driven rotation. Returns
// ErrEngineBusy if a rotation is already in flight; gesture rotation and
// discrete animation are mutually exclusive in time.
func (e *Engine) BeginManual(axis Axis, layer int) error {
	if e.cur != nil {
		return ErrEngineBusy
	}
	e.cur = e.attach(axis, layer)
	e.cur.record = true
	return nil
}

// ManualActive reports whether a gesture-driven rotation is in progress.
func (e *Engine) ManualActive() bool {
	return e.cur != nil && e.cur.tween == nil
}

// SetManualAngle sets the in-progress gesture angle in radians about the
// positive axis.
func (e *Engine) SetManualAngle(angle float64) {
	if !e.ManualActive() {
		return
	}
	e.cur.angle = angle
	e.scene.SetGroupRotation(e.cur.group, e.cur.axis, angle)
}

// ManualAngle returns the current gesture angle.
func (e *Engine) ManualAngle() float64 {
	if e.cur == nil {
		return 0
	}
	return e.cur.angle
}

// FinishManual snaps the accumulated gesture angle to the nearest
// multiple of 90 degrees and animates the remainder with the same
// ease-out curve, committing on arrival.
func (e *Engine) FinishManual() {
	if !e.ManualActive() {
		return
	}
	target := math.Round(e.cur.angle/quarter) * quarter
	e.cur.tween = gween.New(float32(e.cur.angle), float32(target), e.duration, ease.OutCubic)
}
