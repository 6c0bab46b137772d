package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// Steering heads for the target but slides along obstacles on the ground
// plane. Obstacles live in a chipmunk space where world X maps to X and world
// Z maps to Y.
type Steering struct {
	space     *cp.Space
	Radius    float64
	Lookahead float64
}

func NewSteering(radius, lookahead float32) *Steering {
	return &Steering{
		space:     cp.NewSpace(),
		Radius:    float64(radius),
		Lookahead: float64(lookahead),
	}
}

// AddObstacle registers the ground-plane footprint of a static box.
func (s *Steering) AddObstacle(min, max mgl32.Vec3) {
	bb := cp.BB{L: float64(min.X()), B: float64(min.Z()), R: float64(max.X()), T: float64(max.Z())}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	s.space.AddShape(shape)
}

func (s *Steering) Direction(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	want, ok := flatten(to.Sub(from))
	if !ok {
		return mgl32.Vec3{}, false
	}

	dist := float64(to.Sub(from).Len())
	reach := math.Min(s.Lookahead, dist)
	if reach <= 0 {
		return want, true
	}

	start := cp.Vector{X: float64(from.X()), Y: float64(from.Z())}
	desired := cp.Vector{X: float64(want.X()), Y: float64(want.Z())}
	end := start.Add(desired.Mult(reach))

	hit := s.space.SegmentQueryFirst(start, end, s.Radius, cp.SHAPE_FILTER_ALL)
	if hit.Shape == nil {
		return want, true
	}

	tangent := hit.Normal.Perp()
	if tangent.Dot(desired) < 0 {
		tangent = tangent.Neg()
	}
	if tangent.LengthSq() < 1e-12 {
		return mgl32.Vec3{}, false
	}
	tangent = tangent.Normalize()
	return flatten(mgl32.Vec3{float32(tangent.X), 0, float32(tangent.Y)})
}
