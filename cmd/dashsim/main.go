// dashsim runs a single dash headlessly against a room prefab and prints the
// state transitions and final position, which makes tuning changes easy to
// compare without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/common"
	"github.com/milk9111/roomdash/dash"
	"github.com/milk9111/roomdash/geom"
	"github.com/milk9111/roomdash/prefabs"
)

const tick = time.Second / 60

func main() {
	roomFile := flag.String("room", "room.yaml", "room prefab to simulate in")
	from := flag.String("from", "", "start position as x,y (default: room spawn)")
	to := flag.String("to", "1100,550", "dash target as x,y")
	direct := flag.Bool("direct", false, "skip planning and dash straight at the target")
	maxTicks := flag.Int("max-ticks", 3600, "give up after this many ticks")
	flag.Parse()

	room, err := prefabs.LoadRoomSpec(*roomFile)
	if err != nil {
		log.Fatalf("load room: %v", err)
	}
	obstacles := room.BuildObstacles()
	bounds := cp.BB{
		L: room.Margin,
		B: room.Margin,
		R: common.BaseWidth - room.Margin,
		T: common.BaseHeight - room.Margin,
	}

	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("load player: %v", err)
	}

	tuning := dash.DefaultTuning()
	if spec, err := prefabs.LoadTuningSpec(); err == nil {
		tuning = spec.Tuning()
	}

	start := cp.Vector{X: room.Spawn.X, Y: room.Spawn.Y}
	if *from != "" {
		if start, err = parsePoint(*from); err != nil {
			log.Fatalf("bad -from: %v", err)
		}
	}
	target, err := parsePoint(*to)
	if err != nil {
		log.Fatalf("bad -to: %v", err)
	}

	ctrl := dash.NewController(dash.Config{
		Obstacles:   func() []geom.Obstacle { return obstacles },
		Bounds:      func() cp.BB { return bounds },
		AgentRadius: player.Radius,
		Speed:       player.Speed(),
		Position:    start,
		Tuning:      tuning,
	})
	ctrl.SetPosition(start)

	fmt.Printf("room %q: %d obstacles, agent radius %g, speed %g\n",
		room.Name, len(obstacles), player.Radius, player.Speed())
	fmt.Printf("dash (%.1f, %.1f) -> (%.1f, %.1f)\n", start.X, start.Y, target.X, target.Y)

	ctrl.RequestMove(target, *direct)
	last := ctrl.StateName()
	fmt.Printf("tick %5d  %s\n", 0, last)

	ticks := 0
	for ; ticks < *maxTicks && ctrl.Busy(); ticks++ {
		ctrl.Update(tick)
		if name := ctrl.StateName(); name != last {
			p := ctrl.Position()
			fmt.Printf("tick %5d  %s at (%.1f, %.1f)\n", ticks+1, name, p.X, p.Y)
			last = name
		}
	}

	p := ctrl.Position()
	fmt.Printf("done after %d ticks (%.2fs) at (%.1f, %.1f), %.1f short of target\n",
		ticks, float64(ticks)*tick.Seconds(), p.X, p.Y, p.Distance(target))
}

func parsePoint(s string) (cp.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return cp.Vector{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return cp.Vector{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{X: x, Y: y}, nil
}
