package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode names a camera kind in input and prefab data.
type CameraMode string

const (
	CameraModeNone        CameraMode = ""
	CameraModeFirstPerson CameraMode = "first_person"
	CameraModeThirdPerson CameraMode = "third_person"
	CameraModeFixedAngle  CameraMode = "fixed_angle"
)

// CameraKind is the closed set of viewing modes. Behavior that depends on the
// mode type-switches over FirstPerson, ThirdPerson and FixedAngle.
type CameraKind interface {
	Mode() CameraMode
	isCameraKind()
}

// FirstPerson places the eye inside the target at EyeHeight above its origin.
type FirstPerson struct {
	EyeHeight float32
}

// ThirdPerson orbits the target at Distance.
type ThirdPerson struct {
	Distance float32
}

// FixedAngle views the target from a constant world-space Offset.
type FixedAngle struct {
	Offset mgl32.Vec3
}

func (FirstPerson) Mode() CameraMode { return CameraModeFirstPerson }
func (ThirdPerson) Mode() CameraMode { return CameraModeThirdPerson }
func (FixedAngle) Mode() CameraMode  { return CameraModeFixedAngle }

func (FirstPerson) isCameraKind() {}
func (ThirdPerson) isCameraKind() {}
func (FixedAngle) isCameraKind()  {}

// CameraActions is the camera part of one tick of player intent. Look is a
// pointer delta (+X right, +Y down). Positive Zoom moves the camera closer.
type CameraActions struct {
	Look   mgl32.Vec2
	Zoom   float32
	Switch CameraMode
}

// CameraSettings tunes how the rig reacts to actions.
type CameraSettings struct {
	Sensitivity float32    `yaml:"sensitivity"`
	ZoomSpeed   float32    `yaml:"zoom_speed"`
	Distance    float32    `yaml:"distance"`
	MinDistance float32    `yaml:"min_distance"`
	MaxDistance float32    `yaml:"max_distance"`
	EyeHeight   float32    `yaml:"eye_height"`
	FixedOffset mgl32.Vec3 `yaml:"fixed_offset,flow"`
}

func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		Sensitivity: 0.003,
		ZoomSpeed:   1,
		Distance:    5,
		MinDistance: 1.5,
		MaxDistance: 12,
		EyeHeight:   0.6,
		FixedOffset: mgl32.Vec3{0, 8, 8},
	}
}

// CameraRig owns the viewing mode and orientation. Only the rig update writes
// Kind, Yaw and Pitch; Actions is written by the input stage and consumed by
// the rig update of the same tick.
type CameraRig struct {
	Kind    CameraKind
	Yaw     float32
	Pitch   float32
	Target  string
	Actions CameraActions

	Settings CameraSettings
}

var CameraRigComponent = NewComponent[CameraRig]()

// Up returns the rig's vertical reference.
func (r *CameraRig) Up() mgl32.Vec3 {
	return AxisUp
}

// Orientation returns the yaw-then-pitch rotation of the rig.
func (r *CameraRig) Orientation() mgl32.Quat {
	if fixed, ok := r.Kind.(FixedAngle); ok {
		dir := fixed.Offset.Mul(-1)
		if dir.LenSqr() > 1e-12 {
			var t Transform
			t.Rotation = mgl32.QuatIdent()
			if t.LookAt(dir, r.Up()) {
				return t.Rotation
			}
		}
	}
	yaw := mgl32.QuatRotate(r.Yaw, AxisUp)
	pitch := mgl32.QuatRotate(r.Pitch, mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Forward returns the direction the camera looks in.
func (r *CameraRig) Forward() mgl32.Vec3 {
	return r.Orientation().Rotate(AxisForward)
}

// Mode returns the active mode name, or CameraModeNone when unset.
func (r *CameraRig) Mode() CameraMode {
	if r.Kind == nil {
		return CameraModeNone
	}
	return r.Kind.Mode()
}

// ClampPitch keeps the pitch just short of straight up or down.
func ClampPitch(pitch float32) float32 {
	const limit = math32.Pi/2 - 0.01
	return mgl32.Clamp(pitch, -limit, limit)
}
