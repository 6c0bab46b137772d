package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/embodiment/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickLookScale converts a full right-stick deflection to pixels of
	// mouse movement per tick.
	stickLookScale = 12
)

// deviceInput samples keyboard, mouse and the first gamepad once per frame
// and hands the result to the simulation once per tick. A frame can run zero
// or several ticks, so one-shot actions are held until a tick takes them.
type deviceInput struct {
	lastX, lastY int
	dragging     bool
	pending      component.Input
}

func newDeviceInput() *deviceInput {
	return &deviceInput{}
}

// Sample reads the devices for this frame.
func (d *deviceInput) Sample() {
	d.pending = mergeInput(d.pending, d.read())
}

// Poll returns the sampled input. Held state repeats on every tick; jump,
// look, zoom and mode switches are delivered once.
func (d *deviceInput) Poll() component.Input {
	in := d.pending
	d.pending.Jump = false
	d.pending.Camera = component.CameraActions{}
	return in
}

func mergeInput(held, frame component.Input) component.Input {
	out := frame
	out.Jump = held.Jump || frame.Jump
	out.Camera.Look = held.Camera.Look.Add(frame.Camera.Look)
	out.Camera.Zoom = held.Camera.Zoom + frame.Camera.Zoom
	if frame.Camera.Switch == component.CameraModeNone {
		out.Camera.Switch = held.Camera.Switch
	}
	return out
}

func (d *deviceInput) read() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move[1] += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move[1] -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move[0] += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move[0] -= 1
	}
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	in.Camera.Look = d.mouseLook()
	_, wheelY := ebiten.Wheel()
	in.Camera.Zoom = float32(wheelY)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		in.Camera.Switch = component.CameraModeFirstPerson
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		in.Camera.Switch = component.CameraModeThirdPerson
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		in.Camera.Switch = component.CameraModeFixedAngle
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		pollGamepad(gamepads[0], &in)
	}
	return in
}

// mouseLook returns the cursor delta while the right button is held.
func (d *deviceInput) mouseLook() mgl32.Vec2 {
	x, y := ebiten.CursorPosition()
	defer func() { d.lastX, d.lastY = x, y }()

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		d.dragging = false
		return mgl32.Vec2{}
	}
	if !d.dragging {
		d.dragging = true
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{float32(x - d.lastX), float32(y - d.lastY)}
}

func pollGamepad(id ebiten.GamepadID, in *component.Input) {
	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > stickDeadzone {
		// Stick +Y points down.
		in.Move = mgl32.Vec2{float32(lx), float32(-ly)}
	}

	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		in.Camera.Look = in.Camera.Look.Add(mgl32.Vec2{float32(rx), float32(ry)}.Mul(stickLookScale))
	}

	in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.Sprint = in.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick)

	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
		in.Camera.Zoom += 0.1
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
		in.Camera.Zoom -= 0.1
	}

	switch {
	case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop):
		in.Camera.Switch = component.CameraModeFirstPerson
	case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight):
		in.Camera.Switch = component.CameraModeThirdPerson
	case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom):
		in.Camera.Switch = component.CameraModeFixedAngle
	}
}
