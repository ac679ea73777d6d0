package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	// ColorNone marks an interior cubie face with no sticker.
	ColorNone Color = 0xFF
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// faceColors[dirIndex] is the canonical color of each outer face.
var faceColors = [6]Color{Red, Orange, White, Yellow, Green, Blue}

// dirIndex maps an axis-aligned unit direction to a 0..5 slot:
// +x, -x, +y, -y, +z, -z.
func dirIndex(axis Axis, sign int) int {
	i := int(axis) * 2
	if sign < 0 {
		i++
	}
	return i
}

// CanonicalColor returns the solved color of the outer face on the given
// axis and side.
func CanonicalColor(axis Axis, sign int) Color {
	return faceColors[dirIndex(axis, sign)]
}

// positional tolerance when matching live positions to grid layers;
// absorbs floating rounding left over from animation.
const posTolerance = 0.1

// CubieKind classifies a cubie by how many outer faces it touches.
type CubieKind int

const (
	KindCore   CubieKind = 0 // the hidden middle cubie
	KindCenter CubieKind = 1
	KindEdge   CubieKind = 2
	KindCorner CubieKind = 3
)

func (k CubieKind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "?"
	}
}

// FaceInfo is the tagged result of classifying a cubie against a clicked
// face: the clicked selector plus the other outer faces the cubie
// belongs to. Centers have no neighbors, edges one, corners two.
type FaceInfo struct {
	Kind      CubieKind
	Axis      Axis
	Layer     int
	Neighbors []FaceSelector
}

// Cubie is one of the 27 sub-cubes.
//
// Pos is the logical grid position, the only state that matters for
// solved/scrambled correctness. Rot is the exact orientation, one of the
// 24 grid rotations. Sticker colors are assigned once at creation from
// the home position and never recomputed: orientation changes are purely
// geometric, colors travel with the physical sub-cube.
type Cubie struct {
	Home Vec3i
	Pos  Vec3i
	Rot  Rot3
	Node NodeID

	stickers [6]Color // indexed by dirIndex of the local face direction
}

// Sticker returns the color on the cubie's local face direction, or
// ColorNone for interior faces.
func (c *Cubie) Sticker(axis Axis, sign int) Color {
	return c.stickers[dirIndex(axis, sign)]
}

// VisibleSticker returns the color currently showing on the given world
// face direction, accounting for the cubie's orientation.
func (c *Cubie) VisibleSticker(axis Axis, sign int) Color {
	local := c.Rot.Inverse().Apply(AxisUnit(axis, sign))
	la, ls := dominantAxisInt(local)
	return c.stickers[dirIndex(la, ls)]
}

func dominantAxisInt(v Vec3i) (Axis, int) {
	for a := AxisX; a <= AxisZ; a++ {
		if v[a] > 0 {
			return a, +1
		}
		if v[a] < 0 {
			return a, -1
		}
	}
	return AxisX, +1
}

// Cube is the logical 3x3x3 model: 27 cubies on the {-1,0,1}^3 grid,
// mirrored into scene nodes through the Scene boundary.
type Cube struct {
	Cubies []*Cubie
	scene  Scene
}

// NewCube creates a solved cube wired to the given scene.
func NewCube(scene Scene) *Cube {
	c := &Cube{scene: scene}
	c.Init()
	return c
}

// Init resets to the solved state: every cubie at its canonical grid
// point with identity orientation. Existing scene nodes are discarded
// and regenerated deterministically; nothing is restored from snapshots.
func (c *Cube) Init() {
	for _, cb := range c.Cubies {
		if cb.Node != NoNode {
			c.scene.Remove(cb.Node)
		}
	}
	c.Cubies = make([]*Cubie, 0, 27)

	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				home := Vec3i{x, y, z}
				cb := &Cubie{
					Home: home,
					Pos:  home,
					Rot:  RotIdentity,
					Node: c.scene.CreateCubie(home),
				}
				for i := range cb.stickers {
					cb.stickers[i] = ColorNone
				}
				for a := AxisX; a <= AxisZ; a++ {
					if s := home[a]; s != 0 {
						cb.stickers[dirIndex(a, s)] = CanonicalColor(a, s)
					}
				}
				c.Cubies = append(c.Cubies, cb)
			}
		}
	}
}

// Scene returns the scene the cube's nodes live in.
func (c *Cube) Scene() Scene { return c.scene }

// localPosition returns a cubie's live position in the cube frame,
// composed through whatever the node is currently parented to.
func (c *Cube) localPosition(cb *Cubie) mgl64.Vec3 {
	root := c.scene.Root()
	wp := c.scene.WorldPosition(cb.Node)
	rp := c.scene.WorldPosition(root)
	inv := c.scene.WorldOrientation(root).Inverse()
	return inv.Rotate(wp.Sub(rp))
}

// CubiesOnFace returns the 9 cubies whose live coordinate along the axis
// matches the layer, within tolerance. Always recomputed from live
// positions; positions change after every move so caching would go stale.
func (c *Cube) CubiesOnFace(axis Axis, layer int) []*Cubie {
	out := make([]*Cubie, 0, 9)
	for _, cb := range c.Cubies {
		p := c.localPosition(cb)
		if math.Abs(p[axis]-float64(layer)) < posTolerance {
			out = append(out, cb)
		}
	}
	return out
}

// CubieAt returns the cubie whose logical position matches, or nil.
func (c *Cube) CubieAt(pos Vec3i) *Cubie {
	for _, cb := range c.Cubies {
		if cb.Pos == pos {
			return cb
		}
	}
	return nil
}

// Classify resolves a cubie against a clicked face selector: its kind
// (by count of outer faces touched) and the other face selectors it
// belongs to.
func (c *Cube) Classify(sel FaceSelector, cb *Cubie) FaceInfo {
	info := FaceInfo{Axis: sel.Axis, Layer: sel.Layer}
	count := 0
	p := c.localPosition(cb)
	for a := AxisX; a <= AxisZ; a++ {
		for _, s := range [2]int{+1, -1} {
			if math.Abs(p[a]-float64(s)) < posTolerance {
				count++
				if a != sel.Axis || s != sel.Layer {
					info.Neighbors = append(info.Neighbors, FaceSelector{a, s})
				}
			}
		}
	}
	info.Kind = CubieKind(count)
	return info
}

// Apply performs a move on the logical grid and snaps the matching scene
// nodes, without animation. The engine animates and then calls the same
// rotation arithmetic at commit time.
func (c *Cube) Apply(m Move) {
	rot := m.Rotation()
	if rot.IsIdentity() {
		return
	}
	for _, cb := range c.Cubies {
		if cb.Pos[m.Axis] != m.Layer {
			continue
		}
		cb.Pos = rot.Apply(cb.Pos)
		cb.Rot = rot.Mul(cb.Rot)
		c.scene.SetLocal(cb.Node, Vec3Of(cb.Pos), QuatForRot(cb.Rot))
	}
}

// ApplyMoves applies a sequence of moves.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
// Invalid tokens are skipped.
func (c *Cube) ApplyNotation(s string) {
	c.ApplyMoves(ParseMoves(s))
}

// IsSolved reports whether every visible sticker shows its canonical
// face color.
func (c *Cube) IsSolved() bool {
	for _, cb := range c.Cubies {
		for a := AxisX; a <= AxisZ; a++ {
			s := cb.Pos[a]
			if s == 0 {
				continue
			}
			if cb.VisibleSticker(a, s) != CanonicalColor(a, s) {
				return false
			}
		}
	}
	return true
}

// CheckGrid verifies the grid invariant: the 27 cubies occupy the 27
// distinct points of {-1,0,1}^3 exactly once.
func (c *Cube) CheckGrid() bool {
	if len(c.Cubies) != 27 {
		return false
	}
	seen := make(map[Vec3i]bool, 27)
	for _, cb := range c.Cubies {
		for a := AxisX; a <= AxisZ; a++ {
			if cb.Pos[a] < -1 || cb.Pos[a] > 1 {
				return false
			}
		}
		if seen[cb.Pos] {
			return false
		}
		seen[cb.Pos] = true
	}
	return true
}
