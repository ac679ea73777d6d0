package cubesim

import "github.com/go-gl/mathgl/mgl64"

// RelDirection is a view-relative direction: where a face appears to the
// viewer right now, regardless of how the cube has been orbited.
type RelDirection int

const (
	RelFront RelDirection = iota
	RelBack
	RelRight
	RelLeft
	RelUp
	RelDown
)

func (d RelDirection) String() string {
	switch d {
	case RelFront:
		return "front"
	case RelBack:
		return "back"
	case RelRight:
		return "right"
	case RelLeft:
		return "left"
	case RelUp:
		return "up"
	case RelDown:
		return "down"
	default:
		return "?"
	}
}

// relVector returns the canonical world unit vector for a view-relative
// direction, matching the solved orientation: front toward the viewer
// (+z), up toward +y, right toward +x.
func relVector(d RelDirection) mgl64.Vec3 {
	switch d {
	case RelFront:
		return mgl64.Vec3{0, 0, 1}
	case RelBack:
		return mgl64.Vec3{0, 0, -1}
	case RelRight:
		return mgl64.Vec3{1, 0, 0}
	case RelLeft:
		return mgl64.Vec3{-1, 0, 0}
	case RelUp:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, -1, 0}
	}
}

// FaceAtDirection returns the canonical face currently occupying the
// given view-relative direction under the cube's view orientation:
// the inverse view rotation is applied to the direction and the result
// classified by dominant axis and sign.
func FaceAtDirection(view mgl64.Quat, d RelDirection) Face {
	v := view.Inverse().Rotate(relVector(d))
	axis, sign := dominantAxis(v)
	if e := faceFor(axis, sign); e != nil {
		return e.Face
	}
	return FaceF
}

// ViewMapping computes the full view-relative mapping for all six
// directions. Recomputed on demand; never cached across view changes.
func ViewMapping(view mgl64.Quat) map[RelDirection]Face {
	out := make(map[RelDirection]Face, 6)
	for d := RelFront; d <= RelDown; d++ {
		out[d] = FaceAtDirection(view, d)
	}
	return out
}
