package component

// ProjectionKind selects how a camera maps the scene to the screen.
type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Projection holds render-facing camera parameters. FOV is the vertical field
// of view in radians and only applies to perspective projections.
type Projection struct {
	Kind ProjectionKind
	FOV  float32
	Near float32
	Far  float32
}

var ProjectionComponent = NewComponent[Projection]()

// Visibility is written by the core and read only by the renderer.
type Visibility struct {
	Visible bool
}

var VisibilityComponent = NewComponent[Visibility]()
