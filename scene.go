package cubesim

import "github.com/go-gl/mathgl/mgl64"

// NodeID is an opaque handle to a node owned by a Scene.
type NodeID int

// NoNode is the nil node handle.
const NoNode NodeID = -1

// Scene is the boundary to the rendering/display surface. The core never
// renders pixels; it manipulates scene nodes through this interface and a
// real renderer mirrors the node graph however it likes.
//
// Transform conventions: every node has a local position and orientation
// relative to its parent; the root node's orientation carries the user's
// view rotation of the whole cube.
type Scene interface {
	// Root returns the cube frame node all cubies hang off.
	Root() NodeID

	// CreateCubie creates a sub-cube node at the given grid point,
	// parented to the root.
	CreateCubie(pos Vec3i) NodeID

	// CreateGroup creates a transient rotation group at the root origin
	// with identity orientation.
	CreateGroup() NodeID

	// Remove deletes a node. Children must be reparented first.
	Remove(id NodeID)

	// Reparent moves a node under a new parent, preserving its world
	// transform exactly so there is no visual jump.
	Reparent(id, parent NodeID)

	// SetGroupRotation sets a node's local orientation to a rotation of
	// angle radians about the positive axis.
	SetGroupRotation(id NodeID, axis Axis, angle float64)

	// SetLocal overwrites a node's local transform.
	SetLocal(id NodeID, pos mgl64.Vec3, rot mgl64.Quat)

	// Local transform accessors.
	LocalPosition(id NodeID) mgl64.Vec3
	LocalOrientation(id NodeID) mgl64.Quat

	// World transform accessors (composed through the parent chain).
	WorldPosition(id NodeID) mgl64.Vec3
	WorldOrientation(id NodeID) mgl64.Quat
}

// Highlighter is the cosmetic boundary for touch feedback: lighten the
// touched face of a cubie while a swipe is in progress, restore on
// release. Implementations live with the renderer.
type Highlighter interface {
	Highlight(id NodeID, face FaceSelector)
	Clear()
}

// NopHighlighter ignores all highlight requests.
type NopHighlighter struct{}

func (NopHighlighter) Highlight(NodeID, FaceSelector) {}
func (NopHighlighter) Clear() {}

// memNode is a node in the in-memory scene graph.
type memNode struct {
	parent NodeID
	pos    mgl64.Vec3
	rot    mgl64.Quat
}

// MemScene is the default Scene: a minimal in-memory scene graph with
// quaternion frames. It backs headless simulation, tests, and the TUI,
// and doubles as the reference semantics for renderer implementations.
type MemScene struct {
	nodes map[NodeID]*memNode
	next  NodeID
}

// NewMemScene creates a scene containing only the root node.
func NewMemScene() *MemScene {
	s := &MemScene{nodes: make(map[NodeID]*memNode)}
	s.nodes[0] = &memNode{parent: NoNode, rot: mgl64.QuatIdent()}
	s.next = 1
	return s
}

// Root returns the cube frame node.
func (s *MemScene) Root() NodeID { return 0 }

func (s *MemScene) add(parent NodeID, pos mgl64.Vec3, rot mgl64.Quat) NodeID {
	id := s.next
	s.next++
	s.nodes[id] = &memNode{parent: parent, pos: pos, rot: rot}
	return id
}

// CreateCubie creates a sub-cube node at the given grid point.
func (s *MemScene) CreateCubie(pos Vec3i) NodeID {
	return s.add(s.Root(), Vec3Of(pos), mgl64.QuatIdent())
}

// CreateGroup creates a transient rotation group at the root origin.
func (s *MemScene) CreateGroup() NodeID {
	return s.add(s.Root(), mgl64.Vec3{}, mgl64.QuatIdent())
}

// Remove deletes a node.
func (s *MemScene) Remove(id NodeID) {
	delete(s.nodes, id)
}

// Reparent moves a node under a new parent, preserving its world
// transform exactly.
func (s *MemScene) Reparent(id, parent NodeID) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	wp := s.WorldPosition(id)
	wr := s.WorldOrientation(id)
	pp := s.WorldPosition(parent)
	pr := s.WorldOrientation(parent)
	inv := pr.Inverse()
	n.parent = parent
	n.pos = inv.Rotate(wp.Sub(pp))
	n.rot = inv.Mul(wr)
}

// SetGroupRotation sets a node's local orientation to angle radians about
// the positive axis.
func (s *MemScene) SetGroupRotation(id NodeID, axis Axis, angle float64) {
	if n, ok := s.nodes[id]; ok {
		n.rot = mgl64.QuatRotate(angle, AxisVec(axis))
	}
}

// SetLocal overwrites a node's local transform.
func (s *MemScene) SetLocal(id NodeID, pos mgl64.Vec3, rot mgl64.Quat) {
	if n, ok := s.nodes[id]; ok {
		n.pos = pos
		n.rot = rot
	}
}

// LocalPosition returns a node's position relative to its parent.
func (s *MemScene) LocalPosition(id NodeID) mgl64.Vec3 {
	if n, ok := s.nodes[id]; ok {
		return n.pos
	}
	return mgl64.Vec3{}
}

// LocalOrientation returns a node's orientation relative to its parent.
func (s *MemScene) LocalOrientation(id NodeID) mgl64.Quat {
	if n, ok := s.nodes[id]; ok {
		return n.rot
	}
	return mgl64.QuatIdent()
}

// WorldPosition composes the node's position through the parent chain.
func (s *MemScene) WorldPosition(id NodeID) mgl64.Vec3 {
	n, ok := s.nodes[id]
	if !ok {
		return mgl64.Vec3{}
	}
	if n.parent == NoNode {
		return n.pos
	}
	pr := s.WorldOrientation(n.parent)
	return s.WorldPosition(n.parent).Add(pr.Rotate(n.pos))
}

// WorldOrientation composes the node's orientation through the parent chain.
func (s *MemScene) WorldOrientation(id NodeID) mgl64.Quat {
	n, ok := s.nodes[id]
	if !ok {
		return mgl64.QuatIdent()
	}
	if n.parent == NoNode {
		return n.rot
	}
	return s.WorldOrientation(n.parent).Mul(n.rot)
}
