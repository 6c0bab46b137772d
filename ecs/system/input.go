package system

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
)

// InputSource produces one intent record per tick. Device polling lives
// behind this interface.
type InputSource interface {
	Poll() component.Input
}

type InputSourceFunc func() component.Input

func (f InputSourceFunc) Poll() component.Input {
	return f()
}

// InputSystem captures the tick's intent into every Input component and
// mirrors the camera actions onto the active rig.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Input
	if i.source != nil {
		in = i.source.Poll()
	}
	in.Move = sanitizeMove(in.Move)
	if !finite2(in.Camera.Look) {
		in.Camera.Look = mgl32.Vec2{}
	}
	if math32.IsNaN(in.Camera.Zoom) || math32.IsInf(in.Camera.Zoom, 0) {
		in.Camera.Zoom = 0
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})

	if _, rig, ok := activeRig(w); ok {
		rig.Actions = in.Camera
	}
}

func sanitizeMove(v mgl32.Vec2) mgl32.Vec2 {
	if !finite2(v) {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{mgl32.Clamp(v.X(), -1, 1), mgl32.Clamp(v.Y(), -1, 1)}
}

func finite2(v mgl32.Vec2) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// QueueInput replays queued intent records, one per Poll, then idles.
type QueueInput struct {
	mu    sync.Mutex
	queue []component.Input
}

func NewQueueInput(inputs ...component.Input) *QueueInput {
	return &QueueInput{queue: append([]component.Input(nil), inputs...)}
}

func (q *QueueInput) Push(inputs ...component.Input) {
	q.mu.Lock()
	q.queue = append(q.queue, inputs...)
	q.mu.Unlock()
}

func (q *QueueInput) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

func (q *QueueInput) Poll() component.Input {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.queue) == 0 {
		return component.Input{}
	}
	in := q.queue[0]
	q.queue = q.queue[1:]
	return in
}
