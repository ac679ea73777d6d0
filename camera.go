package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a world-space picking ray.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Camera is a perspective camera used for picking and unprojection. The
// core never projects pixels; it only needs the inverse path from screen
// coordinates back into the world.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical field of view, degrees
	Width    float64 // viewport size, pixels
	Height   float64
}

// NewCamera creates a camera looking at the origin from a standard
// three-quarter vantage point.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Position: mgl64.Vec3{3, 3, 7},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
		FOV:      45,
		Width:    width,
		Height:   height,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the unit vector pointing screen-right.
func (c *Camera) Right() mgl64.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// UpVec returns the unit vector pointing screen-up.
func (c *Camera) UpVec() mgl64.Vec3 {
	return c.Right().Cross(c.Forward())
}

// PickRay casts a ray from the pointer position through the camera into
// the world.
func (c *Camera) PickRay(x, y float64) Ray {
	// Normalized device coordinates, y flipped
	nx := (2.0*x)/c.Width - 1.0
	ny := 1.0 - (2.0*y)/c.Height

	forward := c.Forward()
	right := c.Right()
	up := c.UpVec()

	aspect := c.Width / c.Height
	tanHalfFov := math.Tan(mgl64.DegToRad(c.FOV) / 2.0)

	dir := forward.
		Add(right.Mul(nx * aspect * tanHalfFov)).
		Add(up.Mul(ny * tanHalfFov)).
		Normalize()

	return Ray{Origin: c.Position, Direction: dir}
}

// WorldPerPixel returns the world-space size of one pixel at the given
// view depth.
func (c *Camera) WorldPerPixel(depth float64) float64 {
	tanHalfFov := math.Tan(mgl64.DegToRad(c.FOV) / 2.0)
	return 2.0 * depth * tanHalfFov / c.Height
}

// UnprojectDelta converts a screen-space pointer displacement into a
// world-space displacement on the plane at the given view depth.
func (c *Camera) UnprojectDelta(dx, dy, depth float64) mgl64.Vec3 {
	wpp := c.WorldPerPixel(depth)
	return c.Right().Mul(dx * wpp).Add(c.UpVec().Mul(-dy * wpp))
}

// Depth returns the perpendicular view depth of a world point.
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	return p.Sub(c.Position).Dot(c.Forward())
}

// intersectAABB performs the slab test of a ray against an axis-aligned
// box given by its min and max corners. Returns entry and exit
// distances; no hit when entry > exit.
func intersectAABB(ray Ray, minB, maxB mgl64.Vec3) (float64, float64) {
	tMin := 0.0
	tMax := math.MaxFloat64
	for i := 0; i < 3; i++ {
		invDir := 1.0 / (ray.Direction[i] + 1e-12)
		t1 := (minB[i] - ray.Origin[i]) * invDir
		t2 := (maxB[i] - ray.Origin[i]) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}
	return tMin, tMax
}
