// roomcheck validates a room prefab: it rasterizes the layout into the
// navigation grid and reports blocked coverage and which free cells are
// unreachable from the spawn point. Exits non-zero when the spawn itself is
// blocked or outside the playable bounds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/common"
	"github.com/milk9111/roomdash/nav"
	"github.com/milk9111/roomdash/prefabs"
)

func main() {
	roomFile := flag.String("room", "room.yaml", "room prefab to check")
	cellSize := flag.Float64("cell", 32, "grid cell size")
	flag.Parse()

	room, err := prefabs.LoadRoomSpec(*roomFile)
	if err != nil {
		log.Fatalf("load room: %v", err)
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("load player: %v", err)
	}

	obstacles := room.BuildObstacles()
	bounds := cp.BB{
		L: room.Margin,
		B: room.Margin,
		R: common.BaseWidth - room.Margin,
		T: common.BaseHeight - room.Margin,
	}
	grid := nav.BuildGrid(bounds, *cellSize, obstacles, player.Radius)

	total := grid.Cols * grid.Rows
	blocked := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.Blocked(col, row) {
				blocked++
			}
		}
	}
	free := total - blocked

	fmt.Printf("room %q: %dx%d cells of %g, %d obstacles\n",
		room.Name, grid.Cols, grid.Rows, grid.CellSize, len(obstacles))
	fmt.Printf("blocked: %d/%d cells (%.0f%%)\n", blocked, total, pct(blocked, total))

	spawn := cp.Vector{X: room.Spawn.X, Y: room.Spawn.Y}
	col, row, ok := grid.Locate(spawn)
	if !ok {
		fmt.Printf("spawn (%.0f, %.0f) is outside the playable bounds\n", spawn.X, spawn.Y)
		os.Exit(1)
	}
	if grid.Blocked(col, row) {
		fmt.Printf("spawn (%.0f, %.0f) lands on a blocked cell (%d, %d)\n", spawn.X, spawn.Y, col, row)
		os.Exit(1)
	}

	reachable := floodFill(grid, col, row)
	fmt.Printf("reachable from spawn: %d/%d free cells (%.0f%%)\n", reachable, free, pct(reachable, free))
	if stranded := free - reachable; stranded > 0 {
		fmt.Printf("warning: %d free cells are cut off from the spawn\n", stranded)
	}
}

// floodFill counts free cells reachable from (col, row) under the same
// movement rules the path search uses: 8-way steps, diagonals only when both
// adjacent orthogonal cells are free.
func floodFill(g *nav.Grid, col, row int) int {
	seen := make([]bool, g.Cols*g.Rows)
	queue := [][2]int{{col, row}}
	seen[row*g.Cols+col] = true
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for dc := -1; dc <= 1; dc++ {
			for dr := -1; dr <= 1; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				nc, nr := cur[0]+dc, cur[1]+dr
				if !g.InBounds(nc, nr) || g.Blocked(nc, nr) || seen[nr*g.Cols+nc] {
					continue
				}
				if dc != 0 && dr != 0 &&
					(g.Blocked(cur[0]+dc, cur[1]) || g.Blocked(cur[0], cur[1]+dr)) {
					continue
				}
				seen[nr*g.Cols+nc] = true
				queue = append(queue, [2]int{nc, nr})
			}
		}
	}
	return count
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
