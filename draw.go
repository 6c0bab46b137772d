package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"golang.org/x/image/colornames"
)

// pixelsPerUnit is the zoom of the top-down debug view.
const pixelsPerUnit = 24

var floorFill = color.RGBA{R: 60, G: 70, B: 60, A: 255}

// drawWorld renders the XZ plane from above, centered on the player.
func drawWorld(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(colornames.Black)

	var center mgl32.Vec3
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			center = t.Position
		}
	}
	toScreen := func(p mgl32.Vec3) (float32, float32) {
		return baseWidth/2 + (p.X()-center.X())*pixelsPerUnit, baseHeight/2 + (p.Z()-center.Z())*pixelsPerUnit
	}

	ecs.ForEach(w, component.StaticColliderComponent.Kind(), func(_ ecs.Entity, c *component.StaticCollider) {
		x0, y0 := toScreen(c.Min)
		x1, y1 := toScreen(c.Max)
		if c.Floor {
			vector.FillRect(screen, x0, y0, x1-x0, y1-y0, floorFill, false)
			return
		}
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, colornames.Saddlebrown, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Burlywood, false)
	})

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.KinematicBodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, body *component.KinematicBody) {
		fill := colornames.Steelblue
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			fill = colornames.Crimson
		}
		if vis, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok && !vis.Visible {
			fill = colornames.Dimgray
		}

		r := body.Shape.Radius * pixelsPerUnit
		x, y := toScreen(t.Position)
		vector.FillRect(screen, x-r, y-r, 2*r, 2*r, fill, false)
		if !body.Grounded {
			vector.StrokeRect(screen, x-r, y-r, 2*r, 2*r, 2, colornames.Gold, false)
		}

		f := t.Forward()
		vector.StrokeLine(screen, x, y, x+f.X()*2*r, y+f.Z()*2*r, 2, colornames.White, true)
	})

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.CameraRigComponent.Kind(), func(_ ecs.Entity, t *component.Transform, rig *component.CameraRig) {
		x, y := toScreen(t.Position)
		vector.StrokeRect(screen, x-4, y-4, 8, 8, 1, colornames.Lightgreen, false)
		f := rig.Forward()
		vector.StrokeLine(screen, x, y, x+f.X()*pixelsPerUnit, y+f.Z()*pixelsPerUnit, 1, colornames.Lightgreen, true)
	})
}
