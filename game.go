package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/embodiment/config"
	"github.com/milk9111/embodiment/ecs"
	"github.com/milk9111/embodiment/ecs/component"
	"github.com/milk9111/embodiment/logger"
	"github.com/milk9111/embodiment/prefabs"
	"github.com/milk9111/embodiment/session"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var errQuit = errors.New("quit")

type Game struct {
	session *session.Session
	input   *deviceInput
	watcher *prefabs.Watcher

	clipboardReady bool
	lastEvent      string
	lastUpdate     time.Time
}

func NewGame(cfg config.Config, levelName string, watch bool) (*Game, error) {
	g := &Game{input: newDeviceInput()}

	s, err := session.New(cfg, session.Options{
		Input:     g.input,
		Log:       logger.L(),
		EventSink: g.onEvent,
	})
	if err != nil {
		return nil, err
	}
	if err := s.LoadLevel(levelName); err != nil {
		return nil, err
	}
	g.session = s

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logger.L().WithError(err).Warn("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	g.clipboardReady = clipboard.Init() == nil
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) onEvent(evt ecs.Event) {
	g.lastEvent = fmt.Sprintf("%s %v", evt.Type, evt.Entity)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	g.pollReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && g.clipboardReady {
		clipboard.Write(clipboard.FmtText, []byte(g.snapshot()))
	}

	now := time.Now()
	elapsed := time.Second / time.Duration(g.session.Config().TickRate)
	if !g.lastUpdate.IsZero() {
		elapsed = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now

	g.input.Sample()
	g.session.Advance(elapsed)
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.session.Reload(change); err != nil {
				logger.L().WithError(err).Warn("reload failed")
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.L().WithError(err).Warn("prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.session.World())
	ebitenutil.DebugPrint(screen, g.snapshot())
}

// snapshot is the HUD text: FPS, camera mode, and the player's movement
// state.
func (g *Game) snapshot() string {
	w := g.session.World()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f  FPS: %.1f  tick: %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), w.Tick())

	if cam, ok := g.session.Camera(); ok {
		rig, _ := ecs.Get(w, cam, component.CameraRigComponent.Kind())
		fmt.Fprintf(&b, "camera: %s  yaw %.2f  pitch %.2f", rig.Mode(), rig.Yaw, rig.Pitch)
		if p, ok := ecs.Get(w, cam, component.ProjectionComponent.Kind()); ok {
			fmt.Fprintf(&b, "  fov %.3f", p.FOV)
		}
		b.WriteString("\n")
	}
	if player, ok := g.session.Player(); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			fmt.Fprintf(&b, "player: pos %.2f %.2f %.2f\n", t.Position.X(), t.Position.Y(), t.Position.Z())
		}
		if body, ok := ecs.Get(w, player, component.KinematicBodyComponent.Kind()); ok {
			fmt.Fprintf(&b, "speed %.2f  grounded %v\n", body.Velocity.Len(), body.Grounded)
		}
		if jump, ok := ecs.Get(w, player, component.JumpComponent.Kind()); ok {
			fmt.Fprintf(&b, "jump: %s\n", jump.Machine.Phase)
		}
		if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
			fmt.Fprintf(&b, "anim: %s\n", anim.Current)
		}
	}
	if g.lastEvent != "" {
		fmt.Fprintf(&b, "last event: %s\n", g.lastEvent)
	}
	b.WriteString("WASD move  Space jump  Shift sprint  RMB look  wheel zoom  1/2/3 camera  F2 copy")
	return b.String()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
