package nav

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
)

// MinCellSize and MaxCellSize bound the grid resolution. Requested cell sizes
// are clamped into this range before the grid is partitioned.
const (
	MinCellSize = 16.0
	MaxCellSize = 48.0
)

// Grid is a uniform rasterization of the room into blocked/free cells. A cell
// is blocked iff its center point falls inside any inflated obstacle
// footprint. The grid is rebuilt, never patched, when room geometry changes;
// the movement controller owns rebuilding and everything else reads it.
type Grid struct {
	Origin   cp.Vector
	Cols     int
	Rows     int
	CellSize float64

	blocked []bool
}

// BuildGrid partitions bounds into cells and marks each cell blocked or free
// against the inflated obstacle footprints. Degenerate bounds still produce a
// minimal 2x2 grid.
func BuildGrid(bounds cp.BB, cellSize float64, obstacles []geom.Obstacle, agentRadius float64) *Grid {
	cellSize = cp.Clamp(cellSize, MinCellSize, MaxCellSize)

	cols := int(math.Floor((bounds.R - bounds.L) / cellSize))
	rows := int(math.Floor((bounds.T - bounds.B) / cellSize))
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}

	g := &Grid{
		Origin:   cp.Vector{X: bounds.L, Y: bounds.B},
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		blocked:  make([]bool, cols*rows),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := g.CellCenter(col, row)
			for _, o := range obstacles {
				if o.ContainsInflated(center, agentRadius) {
					g.blocked[row*cols+col] = true
					break
				}
			}
		}
	}

	return g
}

func (g *Grid) InBounds(col, row int) bool {
	return g != nil && col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

func (g *Grid) Blocked(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.blocked[row*g.Cols+col]
}

// CellCenter returns the world-space center of a cell.
func (g *Grid) CellCenter(col, row int) cp.Vector {
	return cp.Vector{
		X: g.Origin.X + (float64(col)+0.5)*g.CellSize,
		Y: g.Origin.Y + (float64(row)+0.5)*g.CellSize,
	}
}

// Locate maps a world point to its cell. ok is false when the point lies
// outside the gridded area.
func (g *Grid) Locate(p cp.Vector) (col, row int, ok bool) {
	if g == nil {
		return 0, 0, false
	}
	col = int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	row = int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	if !g.InBounds(col, row) {
		return 0, 0, false
	}
	return col, row, true
}

// LocateClamped maps a world point to the nearest cell, clamping points that
// fall outside the gridded area onto its edge.
func (g *Grid) LocateClamped(p cp.Vector) (col, row int) {
	col = int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	row = int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return col, row
}
