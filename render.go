package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomdash/geom"
	"golang.org/x/image/colornames"
)

var (
	roomFloorColor = color.NRGBA{R: 0x20, G: 0x24, B: 0x2c, A: 0xff}
	obstacleColor  = color.NRGBA{R: 0x4a, G: 0x52, B: 0x62, A: 0xff}
	gridCellColor  = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0x30}
)

func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	// room floor
	bw := float32(g.bounds.R - g.bounds.L)
	bh := float32(g.bounds.T - g.bounds.B)
	vector.DrawFilledRect(screen, float32(g.bounds.L), float32(g.bounds.B), bw, bh, roomFloorColor, false)
	vector.StrokeRect(screen, float32(g.bounds.L), float32(g.bounds.B), bw, bh, 2, colornames.Gray, false)

	for _, o := range g.obstacles {
		switch o.Kind {
		case geom.KindRect:
			vector.DrawFilledRect(screen,
				float32(o.Center.X-o.Width/2), float32(o.Center.Y-o.Height/2),
				float32(o.Width), float32(o.Height), obstacleColor, true)
		case geom.KindCircle:
			vector.DrawFilledCircle(screen, float32(o.Center.X), float32(o.Center.Y), float32(o.Radius), obstacleColor, true)
		}
	}

	if g.debug {
		g.drawDebug(screen)
	}

	for _, s := range g.shots {
		vector.StrokeLine(screen,
			float32(s.from.X), float32(s.from.Y),
			float32(s.to.X), float32(s.to.Y),
			1, colornames.Orange, true)
	}

	pos := g.ctrl.Position()
	agentColor := colornames.Deepskyblue
	if g.ctrl.Busy() {
		agentColor = colornames.Aqua
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(g.playerSpec.Radius), agentColor, true)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if grid := g.ctrl.Grid(); grid != nil {
		for row := 0; row < grid.Rows; row++ {
			for col := 0; col < grid.Cols; col++ {
				if !grid.Blocked(col, row) {
					continue
				}
				c := grid.CellCenter(col, row)
				half := float32(grid.CellSize / 2)
				vector.DrawFilledRect(screen,
					float32(c.X)-half, float32(c.Y)-half,
					float32(grid.CellSize), float32(grid.CellSize), gridCellColor, false)
			}
		}
	}

	prev := g.ctrl.Position()
	for _, wp := range g.ctrl.DebugPath() {
		vector.StrokeLine(screen,
			float32(prev.X), float32(prev.Y),
			float32(wp.X), float32(wp.Y),
			1, colornames.Yellow, true)
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), 3, colornames.Yellow, true)
		prev = wp
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  state: %s  pos: (%.0f, %.0f)",
		ebiten.ActualFPS(), g.ctrl.StateName(), g.ctrl.Position().X, g.ctrl.Position().Y))
}
