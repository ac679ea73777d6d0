package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GesturePhase tracks where a pointer gesture is in its lifecycle.
type GesturePhase int

const (
	// GestureIdle: no pointer owns the cube.
	GestureIdle GesturePhase = iota
	// GestureArmed: a pointer hit a cubie; the rotation target is
	// resolved (center, edge) or deferred behind the drag threshold
	// (corner), but no layer has been detached yet.
	GestureArmed
	// GestureRotating: a layer follows the pointer.
	GestureRotating
)

// Gesture is the bookkeeping for one pointer interaction. It is an
// explicit value object owned by the caller, not package state, so
// multiple simulations can run gestures side by side.
type Gesture struct {
	Phase   GesturePhase
	Pointer int

	startX, startY float64
	lastX, lastY   float64

	cubie   *Cubie
	clicked FaceSelector
	info    FaceInfo

	axis  Axis
	layer int

	hitWorld mgl64.Vec3
	depth    float64
}

// Reset returns the gesture to idle.
func (g *Gesture) Reset() {
	*g = Gesture{}
}

// Interpreter converts pointer drags into face rotation requests on the
// engine. It only reads cube positions and types; all grid mutation
// happens inside the engine's commit.
type Interpreter struct {
	cube        *Cube
	engine      *Engine
	camera      *Camera
	scene       Scene
	highlighter Highlighter

	// Sensitivity scales world-space swipe distance to rotation angle.
	Sensitivity float64
	// DragThreshold is the minimum cumulative drag, in pixels, before a
	// corner cubie's rotation target is resolved.
	DragThreshold float64
}

// NewInterpreter wires an interpreter over the cube, engine and camera.
func NewInterpreter(cube *Cube, engine *Engine, camera *Camera, hl Highlighter) *Interpreter {
	if hl == nil {
		hl = NopHighlighter{}
	}
	return &Interpreter{
		cube:          cube,
		engine:        engine,
		camera:        camera,
		scene:         cube.Scene(),
		highlighter:   hl,
		Sensitivity:   2.0,
		DragThreshold: 8.0,
	}
}

// PointerDown feeds a press sample. Returns true when the pointer hit a
// cubie and now owns face rotation; false leaves the pointer free for
// camera orbit. A second simultaneous pointer is ignored while one owns
// the cube.
func (it *Interpreter) PointerDown(g *Gesture, pointer int, x, y float64) bool {
	if g.Phase != GestureIdle {
		return false
	}

	cubie, hitLocal, ok := it.pick(x, y)
	if !ok {
		return false
	}

	// Face normal in the cube's own frame: dominant axis of the offset
	// from the cubie center.
	offset := hitLocal.Sub(Vec3Of(cubie.Pos))
	axis, sign := dominantAxis(offset)
	sel := FaceSelector{Axis: axis, Layer: sign}

	// Guard against tolerance edge cases at cubie corners: the hit
	// cubie must really be on the resolved face.
	onFace := false
	for _, cb := range it.cube.CubiesOnFace(sel.Axis, sel.Layer) {
		if cb == cubie {
			onFace = true
			break
		}
	}
	if !onFace {
		return false
	}

	root := it.scene.Root()
	view := it.scene.WorldOrientation(root)
	hitWorld := it.scene.WorldPosition(root).Add(view.Rotate(hitLocal))

	g.Phase = GestureArmed
	g.Pointer = pointer
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	g.cubie = cubie
	g.clicked = sel
	g.info = it.cube.Classify(sel, cubie)
	g.hitWorld = hitWorld
	g.depth = it.camera.Depth(hitWorld)

	it.highlighter.Highlight(cubie.Node, sel)
	return true
}

// PointerMove feeds a drag sample for the owning pointer.
func (it *Interpreter) PointerMove(g *Gesture, pointer int, x, y float64) {
	if g.Phase == GestureIdle || g.Pointer != pointer {
		return
	}

	if g.Phase == GestureArmed {
		if !it.arm(g, x, y) {
			g.lastX, g.lastY = x, y
			return
		}
	}

	dx := x - g.lastX
	dy := y - g.lastY
	g.lastX, g.lastY = x, y

	worldDelta := it.camera.UnprojectDelta(dx, dy, g.depth)
	tangent := it.tangent(g)
	// Accumulate, never recompute from gesture start: circular or
	// back-and-forth swipe paths must not cause jumps.
	delta := worldDelta.Dot(tangent) * it.Sensitivity
	it.engine.SetManualAngle(it.engine.ManualAngle() + delta)
}

// arm resolves the rotation target and detaches the layer. Returns false
// while resolution is still pending (corner below threshold, or engine
// busy with a queued animation).
func (it *Interpreter) arm(g *Gesture, x, y float64) bool {
	var target FaceSelector
	switch g.info.Kind {
	case KindCorner:
		// The clicked face alone is ambiguous on a corner: three legal
		// rotations touch it. Wait for enough total displacement, then
		// resolve from the overall swipe direction.
		dx := x - g.startX
		dy := y - g.startY
		if math.Hypot(dx, dy) < it.DragThreshold {
			return false
		}
		target = SelectCornerNeighbor(g.info.Neighbors, dx, dy)
	case KindEdge:
		if len(g.info.Neighbors) != 1 {
			return false
		}
		target = g.info.Neighbors[0]
	default:
		// A center cubie pins its own face.
		target = g.clicked
	}

	if err := it.engine.BeginManual(target.Axis, target.Layer); err != nil {
		return false
	}
	g.axis = target.Axis
	g.layer = target.Layer
	g.Phase = GestureRotating
	return true
}

// PointerUp completes the gesture: the accumulated angle snaps to the
// nearest quarter turn and commits. A gesture that never armed a layer
// is a no-op.
func (it *Interpreter) PointerUp(g *Gesture, pointer int) {
	if g.Phase == GestureIdle || g.Pointer != pointer {
		return
	}
	if g.Phase == GestureRotating {
		it.engine.FinishManual()
	}
	it.highlighter.Clear()
	g.Reset()
}

// pick casts a pointer ray into the scene and returns the nearest hit
// cubie and the hit point in the cube's local frame.
func (it *Interpreter) pick(x, y float64) (*Cubie, mgl64.Vec3, bool) {
	ray := it.camera.PickRay(x, y)

	// Transform the ray into the cube's unrotated frame so grid math
	// ignores the current view orientation.
	root := it.scene.Root()
	inv := it.scene.WorldOrientation(root).Inverse()
	origin := inv.Rotate(ray.Origin.Sub(it.scene.WorldPosition(root)))
	dir := inv.Rotate(ray.Direction)
	local := Ray{Origin: origin, Direction: dir}

	half := mgl64.Vec3{0.5, 0.5, 0.5}
	var best *Cubie
	bestT := math.MaxFloat64
	for _, cb := range it.cube.Cubies {
		center := Vec3Of(cb.Pos)
		tMin, tMax := intersectAABB(local, center.Sub(half), center.Add(half))
		if tMin > tMax || tMax < 0 {
			continue
		}
		if tMin < bestT {
			bestT = tMin
			best = cb
		}
	}
	if best == nil {
		return nil, mgl64.Vec3{}, false
	}
	hit := local.Origin.Add(local.Direction.Mul(bestT))
	return best, hit, true
}

// tangent returns the world-space direction along which pointer motion
// maps to positive rotation: the unit vector perpendicular to both the
// rotation axis and the radius from the axis to the touched point.
func (it *Interpreter) tangent(g *Gesture) mgl64.Vec3 {
	view := it.scene.WorldOrientation(it.scene.Root())
	axis := view.Rotate(AxisVec(g.axis))

	radius := g.hitWorld.Sub(axis.Mul(g.hitWorld.Dot(axis)))
	if radius.Len() > 1e-6 {
		return axis.Cross(radius).Normalize()
	}

	// Degenerate case: the touched cubie sits on the rotation axis
	// (a center cubie spun about its own axis). Derive a stable tangent
	// from the camera frame instead, falling back from right to up when
	// the axis runs near-parallel to right.
	t := axis.Cross(it.camera.Right())
	if t.Len() < 1e-6 {
		t = axis.Cross(it.camera.UpVec())
	}
	return t.Normalize()
}

// SelectCornerNeighbor picks which of a corner cubie's neighbor faces to
// rotate, from the total pointer displacement since gesture start. A
// mostly-horizontal swipe spins a horizontal layer (the neighbor on the
// vertical axis); a mostly-vertical swipe spins a vertical layer.
// Deterministic for a fixed displacement.
func SelectCornerNeighbor(neighbors []FaceSelector, dx, dy float64) FaceSelector {
	if len(neighbors) == 0 {
		return FaceSelector{}
	}
	preferY := math.Abs(dx) > math.Abs(dy)
	for _, n := range neighbors {
		if preferY == (n.Axis == AxisY) {
			return n
		}
	}
	return neighbors[0]
}
