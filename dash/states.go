package dash

import (
	"log"
	"time"

	"github.com/milk9111/roomdash/geom"
	"github.com/milk9111/roomdash/nav"
)

// dashState is the interface each concrete movement state implements.
type dashState interface {
	Enter(c *Controller)
	Exit(c *Controller)
	Update(c *Controller, dt time.Duration)
	Name() string
}

var (
	stateIdle           dashState = idleState{}
	stateRouteFollowing dashState = routeFollowingState{}
	stateGlideFollowing dashState = glideFollowingState{}
	stateDirectTween    dashState = directTweenState{}
)

type idleState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(c *Controller) {}
func (idleState) Exit(c *Controller) {}

// Idle still applies gentle separation each tick so a frame of bad input can
// never leave the agent resting inside an obstacle.
func (idleState) Update(c *Controller, dt time.Duration) {
	p, moved := geom.Separate(c.pos, c.obstacles(), c.radius, c.tuning.SeparationMargin, c.bounds())
	if moved {
		c.pos = p
	}
}

type routeFollowingState struct{}

func (routeFollowingState) Name() string { return "route_following" }

func (routeFollowingState) Enter(c *Controller) {
	c.stallAnchor = c.pos
	c.stallTimer = 0
}

func (routeFollowingState) Exit(c *Controller) {}

func (routeFollowingState) Update(c *Controller, dt time.Duration) {
	budget := c.speed * dt.Seconds()
	for budget > 0 && c.routeIndex < len(c.route) {
		next := c.route[c.routeIndex]
		d := c.pos.Distance(next)
		if d > budget {
			c.pos = c.pos.Add(next.Sub(c.pos).Mult(budget / d))
			budget = 0
			break
		}

		// a single tick may cross several short waypoints
		c.pos = next
		budget -= d
		c.routeIndex++
		if c.routeIndex >= len(c.route) {
			break
		}

		// smart move: re-plan toward the fixed goal at every waypoint instead
		// of committing to one path for the whole journey
		c.replanSteps++
		if c.replanSteps >= c.tuning.MaxReplanSteps {
			c.beginForcedTween(c.goal)
			return
		}
		path := nav.FindPath(c.grid, c.obstacles(), c.radius, c.pos, c.goal)
		if len(path) >= 2 {
			c.route = path
			c.routeIndex = 1
		} else {
			c.beginDirect(c.goal)
			return
		}
	}

	if c.routeIndex >= len(c.route) || c.pos.Near(c.goal, c.tuning.ArriveEpsilon) {
		c.finish()
		return
	}

	if c.pos.Distance(c.stallAnchor) >= c.tuning.StallDistance {
		c.stallAnchor = c.pos
		c.stallTimer = 0
		return
	}
	c.stallTimer += dt
	if c.stallTimer >= c.tuning.StallWindow {
		last := c.route[len(c.route)-1]
		log.Printf("dash: route stalled at (%.1f, %.1f), tweening to final waypoint", c.pos.X, c.pos.Y)
		c.beginForcedTween(last)
	}
}

type glideFollowingState struct{}

func (glideFollowingState) Name() string { return "glide_following" }
func (glideFollowingState) Enter(c *Controller) {}
func (glideFollowingState) Exit(c *Controller) {}

func (glideFollowingState) Update(c *Controller, dt time.Duration) {
	c.advanceSegments(dt)
}

type directTweenState struct{}

func (directTweenState) Name() string { return "direct_tween" }
func (directTweenState) Enter(c *Controller) {}
func (directTweenState) Exit(c *Controller) {}

func (directTweenState) Update(c *Controller, dt time.Duration) {
	c.advanceSegments(dt)
}
