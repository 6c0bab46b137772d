package system

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestInputSystemSanitizes(t *testing.T) {
	tests := []struct {
		name     string
		in       component.Input
		wantMove mgl32.Vec2
		wantLook mgl32.Vec2
		wantZoom float32
	}{
		{
			name:     "clamps move",
			in:       component.Input{Move: mgl32.Vec2{3, -2}},
			wantMove: mgl32.Vec2{1, -1},
		},
		{
			name:     "drops non-finite move",
			in:       component.Input{Move: mgl32.Vec2{math32.NaN(), 1}},
			wantMove: mgl32.Vec2{},
		},
		{
			name:     "drops non-finite camera actions",
			in:       component.Input{Camera: component.CameraActions{Look: mgl32.Vec2{math32.Inf(1), 0}, Zoom: math32.NaN()}},
			wantLook: mgl32.Vec2{},
		},
		{
			name:     "passes camera actions to the rig",
			in:       component.Input{Camera: component.CameraActions{Look: mgl32.Vec2{4, -2}, Zoom: 1}},
			wantLook: mgl32.Vec2{4, -2},
			wantZoom: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, component.ThirdPerson{Distance: 5})
			s.run(NewInputSystem(NewQueueInput(tc.in)))

			in := s.input(t)
			assert.Equal(t, tc.wantMove, in.Move)
			assert.Equal(t, tc.wantLook, s.rig(t).Actions.Look)
			assert.Equal(t, tc.wantZoom, s.rig(t).Actions.Zoom)
		})
	}
}

func TestInputSystemNilSource(t *testing.T) {
	s := newScene(t, component.ThirdPerson{Distance: 5})
	s.input(t).Move = mgl32.Vec2{1, 0}

	s.run(NewInputSystem(nil))
	assert.Equal(t, component.Input{}, *s.input(t))
}

func TestQueueInputReplaysInOrder(t *testing.T) {
	q := NewQueueInput(component.Input{Jump: true})
	q.Push(component.Input{Sprint: true})
	assert.Equal(t, 2, q.Len())

	assert.True(t, q.Poll().Jump)
	assert.True(t, q.Poll().Sprint)
	assert.Equal(t, component.Input{}, q.Poll())
	assert.Zero(t, q.Len())
}
