package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled pointer and key state for one frame.
type Input struct {
	// CursorX/Y are the cursor position in world coordinates.
	CursorX float64
	CursorY float64
	// MoveHeld is true while the left mouse button is down; holding it gives
	// continuous pointer-follow.
	MoveHeld bool
	// DirectModifier is true while shift is held: dash straight, skip planning.
	DirectModifier bool
	// FirePressed is true on the frame the right mouse button was pressed.
	FirePressed bool
	// PausePressed is true on the frame Escape was pressed.
	PausePressed bool
	// DebugPressed is true on the frame F1 was pressed.
	DebugPressed bool
	// AutopilotPressed is true on the frame F2 was pressed.
	AutopilotPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the devices. The room view is unscaled and unscrolled, so the
// cursor position is already in world space.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorX = float64(mx)
	i.CursorY = float64(my)

	i.MoveHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.DirectModifier = ebiten.IsKeyPressed(ebiten.KeyShift)
	i.FirePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.AutopilotPressed = inpututil.IsKeyJustPressed(ebiten.KeyF2)
}
