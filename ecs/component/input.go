package component

import "github.com/go-gl/mathgl/mgl32"

// Input is one tick of player intent. Move components are in [-1, 1] and not
// necessarily normalized; +Y is forward and +X is right. Jump is true only on
// the tick the button went down.
type Input struct {
	Move   mgl32.Vec2
	Jump   bool
	Sprint bool
	Camera CameraActions
}

var InputComponent = NewComponent[Input]()
