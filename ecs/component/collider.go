package component

import "github.com/go-gl/mathgl/mgl32"

// StaticCollider is an axis-aligned box of level geometry. Floor boxes are
// walked on and are not steered around.
type StaticCollider struct {
	Min   mgl32.Vec3
	Max   mgl32.Vec3
	Floor bool
}

var StaticColliderComponent = NewComponent[StaticCollider]()
