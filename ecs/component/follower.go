package component

// Follower marks an NPC whose walker direction comes from navigation toward
// the player.
type Follower struct {
	StopDistance float32
}

var FollowerComponent = NewComponent[Follower]()
