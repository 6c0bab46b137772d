package ecs

import "strconv"

// Entity is a handle to a live object in a World. The low 32 bits hold the
// slot and the high 32 bits the slot's generation, so a handle kept past
// DestroyEntity stops resolving once the slot is reused.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders the handle as slot and generation, e.g. "3v1", which keeps
// log lines readable after slots are recycled.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e names a slot at all. It says nothing about whether
// the entity is still alive; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}
