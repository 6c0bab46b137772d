package component

// PlayerTag marks the controlled entity subject to camera visibility rules.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
