// Package physics is the kinematic collision backend. Bodies are swept as
// axis aligned boxes against static level geometry, one axis at a time.
package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule is an upright capsule. Height is the length of the cylindrical
// segment, so the full standing height is Height + 2*Radius.
type Capsule struct {
	Height float32 `yaml:"height"`
	Radius float32 `yaml:"radius"`
}

// HalfExtents returns the half size of the box the capsule is swept as.
func (c Capsule) HalfExtents() mgl32.Vec3 {
	return mgl32.Vec3{c.Radius, c.Height/2 + c.Radius, c.Radius}
}

// Box returns the bounding box of the capsule centred on pos.
func (c Capsule) Box(pos mgl32.Vec3) cube.BBox {
	h := c.HalfExtents()
	lo := pos.Sub(h)
	hi := pos.Add(h)
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}

// Valid reports whether the capsule has a usable size.
func (c Capsule) Valid() bool {
	return c.Radius > 0 && c.Height >= 0
}
