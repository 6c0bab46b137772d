package component

// CharacterAnimations names the clips a character can play.
type CharacterAnimations struct {
	Idle   string
	Walk   string
	Aerial string
}

var CharacterAnimationsComponent = NewComponent[CharacterAnimations]()

// Animation is the selected clip handed to the playback engine.
type Animation struct {
	Current string
	// Changed is true on the tick Current switched.
	Changed bool
}

var AnimationComponent = NewComponent[Animation]()

// Model references the resolved scene asset of a character.
type Model struct {
	Asset string
	Scene string
	Scale float32
}

var ModelComponent = NewComponent[Model]()
