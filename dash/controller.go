package dash

import (
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
	"github.com/milk9111/roomdash/nav"
)

// Config wires a Controller to its host. Obstacles and Bounds are queried
// fresh on every planning call so the host stays the owner of room geometry.
type Config struct {
	Obstacles   func() []geom.Obstacle
	Bounds      func() cp.BB
	AgentRadius float64
	// Speed is the dash speed in world units per second, after any external
	// speed-multiplier upgrades are applied by the host.
	Speed    float64
	Position cp.Vector
	Tuning   Tuning
	// OnFire is invoked when a fire request passes the shared input gate.
	OnFire func(target cp.Vector)
}

// Controller is the movement orchestrator: it owns the navigation grid and
// the agent position, and advances one named state per tick
// (idle, route_following, glide_following, direct_tween).
//
// Absence of a path is never an error here; every planning failure lands in a
// glide or tween fallback. The single hard failure is a start position
// outside the grid, which leaves the agent where it is.
type Controller struct {
	obstacles func() []geom.Obstacle
	bounds    func() cp.BB
	radius    float64
	speed     float64
	tuning    Tuning
	onFire    func(cp.Vector)

	grid *nav.Grid

	pos   cp.Vector
	state dashState

	// route cursor, reset on every new dash command
	route       []cp.Vector
	routeIndex  int
	goal        cp.Vector
	replanSteps int
	stallAnchor cp.Vector
	stallTimer  time.Duration

	// glide / tween playback
	segments   []segment
	segIndex   int
	segElapsed time.Duration
}

func NewController(cfg Config) *Controller {
	c := &Controller{
		obstacles: cfg.Obstacles,
		bounds:    cfg.Bounds,
		radius:    cfg.AgentRadius,
		speed:     cfg.Speed,
		tuning:    cfg.Tuning.withDefaults(),
		onFire:    cfg.OnFire,
		pos:       cfg.Position,
		state:     stateIdle,
	}
	if c.obstacles == nil {
		c.obstacles = func() []geom.Obstacle { return nil }
	}
	if c.bounds == nil {
		c.bounds = func() cp.BB { return cp.BB{} }
	}
	c.RebuildGrid()
	return c
}

// RebuildGrid rasterizes the current room geometry into a fresh navigation
// grid. The host must call this whenever bounds or obstacles change, before
// the next move request in the same tick.
func (c *Controller) RebuildGrid() {
	c.grid = nav.BuildGrid(c.bounds(), c.tuning.CellSize, c.obstacles(), c.radius)
}

// SetTuning swaps the tuning constants (hot reload) and rebuilds the grid in
// case the cell size changed.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t.withDefaults()
	c.RebuildGrid()
}

// SetSpeed updates the dash speed for subsequent segments.
func (c *Controller) SetSpeed(speed float64) {
	c.speed = speed
}

// SetPosition teleports the agent, repairing the point through the overlap
// resolver first. Any in-flight motion is discarded.
func (c *Controller) SetPosition(p cp.Vector) {
	p, _ = geom.Separate(p, c.obstacles(), c.radius, c.tuning.SeparationMargin, c.bounds())
	c.pos = p
	c.clearMotion()
	c.setState(stateIdle)
}

// RequestMove starts a dash toward target, superseding any motion already in
// flight. forceDirect skips grid planning and issues a glide/tween straight
// away.
func (c *Controller) RequestMove(target cp.Vector, forceDirect bool) {
	target = geom.ClampToBB(target, c.bounds())
	c.clearMotion()

	if c.pos.Near(target, c.tuning.ArriveEpsilon) {
		c.setState(stateIdle)
		return
	}

	if forceDirect || len(c.obstacles()) == 0 {
		c.beginDirect(target)
		return
	}

	if _, _, ok := c.grid.Locate(c.pos); !ok {
		// unreachable start, the one hard failure: no movement
		log.Printf("dash: start (%.1f, %.1f) outside navigation grid, ignoring move", c.pos.X, c.pos.Y)
		c.setState(stateIdle)
		return
	}

	c.goal = target
	c.replanSteps = 0
	path := nav.FindPath(c.grid, c.obstacles(), c.radius, c.pos, target)
	if len(path) >= 2 {
		c.route = path
		c.routeIndex = 1
		c.setState(stateRouteFollowing)
		return
	}
	c.beginDirect(target)
}

// RequestFire shares the dash input gate: it is ignored while a dash is in
// flight. The actual shot is the host's business via Config.OnFire.
func (c *Controller) RequestFire(target cp.Vector) bool {
	if c.Busy() {
		return false
	}
	if c.onFire != nil {
		c.onFire(target)
	}
	return true
}

// Update advances the active state by dt. All work is synchronous; nothing
// is carried across ticks except the state itself.
func (c *Controller) Update(dt time.Duration) {
	c.state.Update(c, dt)
}

func (c *Controller) Position() cp.Vector {
	return c.pos
}

// Busy reports whether a dash is in flight, gating new fire input.
func (c *Controller) Busy() bool {
	return c.state != stateIdle
}

func (c *Controller) StateName() string {
	return c.state.Name()
}

// DebugPath returns the waypoints still ahead of the agent, for the debug
// overlay. Empty when idle.
func (c *Controller) DebugPath() []cp.Vector {
	switch c.state {
	case stateRouteFollowing:
		if c.routeIndex >= len(c.route) {
			return nil
		}
		out := make([]cp.Vector, len(c.route)-c.routeIndex)
		copy(out, c.route[c.routeIndex:])
		return out
	case stateGlideFollowing, stateDirectTween:
		out := make([]cp.Vector, 0, len(c.segments)-c.segIndex)
		for i := c.segIndex; i < len(c.segments); i++ {
			out = append(out, c.segments[i].to)
		}
		return out
	}
	return nil
}

// Grid exposes the current navigation grid for the debug overlay.
func (c *Controller) Grid() *nav.Grid {
	return c.grid
}

func (c *Controller) setState(s dashState) {
	c.state.Exit(c)
	c.state = s
	c.state.Enter(c)
}

func (c *Controller) clearMotion() {
	c.route = nil
	c.routeIndex = 0
	c.replanSteps = 0
	c.stallTimer = 0
	c.segments = nil
	c.segIndex = 0
	c.segElapsed = 0
}

// beginDirect issues a straight dash that slides along the first obstacle it
// hits, or a plain tween when the line is clear.
func (c *Controller) beginDirect(target cp.Vector) {
	c.goal = target
	segs, glided := buildGlide(c.pos, target, c.obstacles(), c.bounds(), c.radius, c.speed, c.tuning)
	c.playSegments(segs)
	if glided {
		c.setState(stateGlideFollowing)
	} else {
		c.setState(stateDirectTween)
	}
}

// beginForcedTween tweens straight to target without collision checks; used
// by stall fallback and the smart-move step bound, where termination matters
// more than avoidance.
func (c *Controller) beginForcedTween(target cp.Vector) {
	c.goal = target
	c.playSegments([]segment{makeSegment(c.pos, target, c.speed, c.tuning)})
	c.setState(stateDirectTween)
}

func (c *Controller) playSegments(segs []segment) {
	c.route = nil
	c.routeIndex = 0
	c.segments = segs
	c.segIndex = 0
	c.segElapsed = 0
}

func (c *Controller) advanceSegments(dt time.Duration) {
	c.segElapsed += dt
	for c.segIndex < len(c.segments) {
		seg := c.segments[c.segIndex]
		if c.segElapsed < seg.duration {
			c.pos = seg.at(c.segElapsed)
			return
		}
		c.pos = seg.to
		c.segElapsed -= seg.duration
		c.segIndex++
	}
	c.finish()
}

func (c *Controller) finish() {
	c.clearMotion()
	c.setState(stateIdle)
}
