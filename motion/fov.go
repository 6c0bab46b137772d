package motion

import "github.com/milk9111/embodiment/common"

// FOVCurve maps body speed to a perspective field of view in radians.
type FOVCurve struct {
	MaxSpeed float32 `yaml:"max_speed_for_fov"`
	Min      float32 `yaml:"min_fov"`
	Max      float32 `yaml:"max_fov"`
}

func DefaultFOVCurve() FOVCurve {
	return FOVCurve{MaxSpeed: 10, Min: 0.75, Max: 1.7}
}

// FieldOfView eases quadratically from Min at rest to Max at MaxSpeed and
// above. speedSq is the squared velocity magnitude.
func (c FOVCurve) FieldOfView(speedSq float32) float32 {
	if c.MaxSpeed <= 0 {
		return c.Min
	}
	scale := common.Clamp01(speedSq / (c.MaxSpeed * c.MaxSpeed))
	if scale >= 1 {
		return c.Max
	}
	scale *= scale
	return common.Lerp(c.Min, c.Max, scale)
}
