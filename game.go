package main

import (
	"log"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/common"
	"github.com/milk9111/roomdash/dash"
	"github.com/milk9111/roomdash/geom"
	"github.com/milk9111/roomdash/prefabs"
	"github.com/milk9111/roomdash/script"
)

// tick is the fixed simulation step; ebiten runs Update at 60 TPS.
const tick = time.Second / 60

type shot struct {
	from cp.Vector
	to   cp.Vector
	ttl  int
}

type Game struct {
	frames int
	debug  bool
	paused bool

	input *Input

	roomFile   string
	roomSpec   *prefabs.RoomSpec
	playerSpec *prefabs.PlayerSpec
	obstacles  []geom.Obstacle
	bounds     cp.BB

	ctrl *dash.Controller

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	autopilot   *script.Autopilot
	autopilotOn bool

	shots []shot
}

func NewGame(roomFile, autopilotPath string, debug bool) *Game {
	g := &Game{
		debug:    debug,
		input:    NewInput(),
		roomFile: roomFile,
	}

	g.loadRoom()
	g.loadPlayer()

	tuning := loadTuning()
	g.ctrl = dash.NewController(dash.Config{
		Obstacles:   func() []geom.Obstacle { return g.obstacles },
		Bounds:      func() cp.BB { return g.bounds },
		AgentRadius: g.playerSpec.Radius,
		Speed:       g.playerSpec.Speed(),
		Position:    cp.Vector{X: g.roomSpec.Spawn.X, Y: g.roomSpec.Spawn.Y},
		Tuning:      tuning,
		OnFire:      g.onFire,
	})
	// repair the spawn point in case the layout placed it inside an obstacle
	g.ctrl.SetPosition(g.ctrl.Position())

	if autopilotPath != "" {
		ap, err := script.Load(autopilotPath)
		if err != nil {
			log.Printf("failed to load autopilot %s: %v", autopilotPath, err)
		} else {
			g.autopilot = ap
			g.autopilotOn = true
		}
	}

	if w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.AutopilotPressed && g.autopilot != nil {
		g.autopilotOn = !g.autopilotOn
	}

	if g.autopilotOn && g.autopilot != nil {
		if err := g.autopilot.Update(g.controls()); err != nil {
			log.Printf("autopilot error: %v", err)
			g.autopilotOn = false
		}
	} else {
		if g.input.MoveHeld {
			g.ctrl.RequestMove(cp.Vector{X: g.input.CursorX, Y: g.input.CursorY}, g.input.DirectModifier)
		}
		if g.input.FirePressed {
			g.ctrl.RequestFire(cp.Vector{X: g.input.CursorX, Y: g.input.CursorY})
		}
	}

	g.ctrl.Update(tick)

	live := g.shots[:0]
	for _, s := range g.shots {
		s.ttl--
		if s.ttl > 0 {
			live = append(live, s)
		}
	}
	g.shots = live

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// controls adapts the movement controller to the autopilot surface.
func (g *Game) controls() script.Controls {
	return script.Controls{
		Move: func(x, y float64, direct bool) {
			g.ctrl.RequestMove(cp.Vector{X: x, Y: y}, direct)
		},
		Fire: func(x, y float64) {
			g.ctrl.RequestFire(cp.Vector{X: x, Y: y})
		},
		Busy: func() bool { return g.ctrl.Busy() },
		Position: func() (float64, float64) {
			p := g.ctrl.Position()
			return p.X, p.Y
		},
	}
}

func (g *Game) onFire(target cp.Vector) {
	g.shots = append(g.shots, shot{from: g.ctrl.Position(), to: target, ttl: 12})
}

func (g *Game) loadRoom() {
	spec, err := prefabs.LoadRoomSpec(g.roomFile)
	if err != nil {
		log.Printf("failed to load room %s: %v", g.roomFile, err)
		spec = &prefabs.RoomSpec{
			Name:   "empty",
			Margin: 64,
			Spawn:  prefabs.PointSpec{X: common.BaseWidth / 2, Y: common.BaseHeight / 2},
		}
	}
	g.roomSpec = spec
	g.obstacles = spec.BuildObstacles()
	g.bounds = cp.BB{
		L: spec.Margin,
		B: spec.Margin,
		R: common.BaseWidth - spec.Margin,
		T: common.BaseHeight - spec.Margin,
	}
}

func (g *Game) loadPlayer() {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("failed to load player spec: %v", err)
		spec = &prefabs.PlayerSpec{Radius: 12, DashSpeed: 600}
	}
	g.playerSpec = spec
}

func loadTuning() dash.Tuning {
	spec, err := prefabs.LoadTuningSpec()
	if err != nil {
		log.Printf("failed to load tuning spec: %v", err)
		return dash.DefaultTuning()
	}
	return spec.Tuning()
}

// drainWatcher applies prefab edits. Room changes rebuild the grid before any
// path query this tick and re-separate the agent from the new layout.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	log.Printf("reloading %s", name)
	switch {
	case strings.HasSuffix(name, ".tengo"):
		if g.autopilot == nil {
			return
		}
		ap, err := script.Load(g.autopilot.Path())
		if err != nil {
			log.Printf("failed to reload autopilot: %v", err)
			return
		}
		g.autopilot = ap
	case strings.Contains(name, "tuning"):
		g.ctrl.SetTuning(loadTuning())
	case strings.Contains(name, "player"):
		g.loadPlayer()
		g.ctrl.SetSpeed(g.playerSpec.Speed())
	default:
		g.loadRoom()
		g.ctrl.RebuildGrid()
		g.ctrl.SetPosition(g.ctrl.Position())
	}
}
