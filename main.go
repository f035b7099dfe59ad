package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomdash/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay (grid, path, state)")
	autopilot := flag.String("autopilot", "", "autopilot script in prefabs/scripts/ (basename, .tengo optional)")
	room := flag.String("room", "room.yaml", "room layout in prefabs/")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("roomdash")

	game := NewGame(*room, *autopilot, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
