package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/input"
	"torus-snake/game/manager"
	"torus-snake/ui/shape"
)

var (
	backgroundColor = rl.NewColor(0x20, 0x23, 0x2a, 255)
	bodyColor       = rl.NewColor(0x98, 0xc3, 0x79, 255)
	headColor       = rl.NewColor(0xff, 0xff, 0xff, 255)
	eyeColor        = rl.NewColor(0x33, 0x33, 0x33, 255)
	foodColor       = rl.NewColor(0xe0, 0x6c, 0x75, 255)
	glintColor      = rl.NewColor(255, 255, 255, 77)
	panelColor      = rl.NewColor(0x28, 0x2c, 0x34, 255)
	buttonColor     = rl.NewColor(0x3e, 0x44, 0x51, 255)
	disabledColor   = rl.NewColor(0x2c, 0x31, 0x3a, 255)
	textColor       = rl.NewColor(0xab, 0xb2, 0xbf, 255)
	overlayColor    = rl.NewColor(0, 0, 0, 160)
)

const fontSize = 20

// Renderer paints session snapshots into the raylib window. Draw calls must
// happen between rl.BeginDrawing and rl.EndDrawing.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       shape.Layout
	buttons      []shape.Button

	score          int
	message        string
	messageVisible bool
	controls       manager.Controls

	last game.Snapshot
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the window size and recomputes the layout
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = shape.NewLayout(int(r.screenWidth), int(r.screenHeight))
	r.buttons = shape.Buttons(r.layout.Panel)
}

// BoardSize is the pixel size of the drawing surface the grid is cut from
func (r *Renderer) BoardSize() (int, int) {
	return int(r.layout.Board.W), int(r.layout.Board.H)
}

func (r *Renderer) Render(s game.Snapshot) {
	r.last = s
	r.Draw()
}

func (r *Renderer) ShowScore(score int) {
	r.score = score
}

func (r *Renderer) ShowMessage(text string, visible bool) {
	r.message = text
	r.messageVisible = visible
}

func (r *Renderer) SetControls(c manager.Controls) {
	r.controls = c
}

// Draw paints the last snapshot with the score bar, overlay and buttons
func (r *Renderer) Draw() {
	rl.ClearBackground(panelColor)

	board := r.layout.Board
	rl.DrawRectangleRec(toRect(board), backgroundColor)
	r.drawFood(board)
	r.drawSnake(board)

	r.drawHUD()
	r.drawOverlay(board)
	r.drawButtons()
}

func (r *Renderer) drawFood(board shape.Rect) {
	s := r.last
	if !s.HasFood {
		return
	}
	tile := float32(s.TileSize)
	rl.DrawCircleV(offset(board, shape.Center(s.Food, s.TileSize)), tile*shape.FoodRadius, foodColor)
	rl.DrawCircleV(offset(board, shape.Highlight(s.Food, s.TileSize)), tile*shape.HighlightRadius, glintColor)
}

func (r *Renderer) drawSnake(board shape.Rect) {
	s := r.last
	if len(s.Body) == 0 {
		return
	}
	tile := float32(s.TileSize)
	width := tile * shape.BodyWidth

	// Thick segments with a disc at every joint give round caps and joins
	for _, run := range shape.Strokes(s.Body, s.TileSize) {
		for i, p := range run {
			rl.DrawCircleV(offset(board, p), width/2, bodyColor)
			if i > 0 {
				rl.DrawLineEx(offset(board, run[i-1]), offset(board, p), width, bodyColor)
			}
		}
	}

	head := s.Body[0]
	rl.DrawCircleV(offset(board, shape.Center(head, s.TileSize)), tile*shape.HeadRadius, headColor)
	left, right := shape.Eyes(head, s.Direction, s.TileSize)
	rl.DrawCircleV(offset(board, left), tile*shape.EyeRadius, eyeColor)
	rl.DrawCircleV(offset(board, right), tile*shape.EyeRadius, eyeColor)
}

func (r *Renderer) drawHUD() {
	hud := r.layout.HUD
	y := int32(hud.Y + (hud.H-fontSize)/2)
	rl.DrawText(fmt.Sprintf("Score: %d", r.score), 10, y, fontSize, textColor)
}

func (r *Renderer) drawOverlay(board shape.Rect) {
	if !r.messageVisible || r.message == "" {
		return
	}
	rl.DrawRectangleRec(toRect(board), overlayColor)
	size := int32(fontSize * 2)
	width := rl.MeasureText(r.message, size)
	x := int32(board.X+board.W/2) - width/2
	y := int32(board.Y+board.H/2) - size/2
	rl.DrawText(r.message, x, y, size, headColor)
}

func (r *Renderer) drawButtons() {
	for _, b := range r.buttons {
		fill := buttonColor
		if !b.Enabled(r.controls) {
			fill = disabledColor
		}
		rect := toRect(b.Bounds)
		rl.DrawRectangleRec(rect, fill)
		rl.DrawRectangleLinesEx(rect, 1, textColor)

		label := b.Label(r.controls)
		width := rl.MeasureText(label, fontSize)
		x := int32(b.Bounds.X+b.Bounds.W/2) - width/2
		y := int32(b.Bounds.Y + (b.Bounds.H-fontSize)/2)
		rl.DrawText(label, x, y, fontSize, textColor)
	}
}

// PollCommands collects this frame's keyboard presses and button clicks
func (r *Renderer) PollCommands() []input.Command {
	cmds := input.Drain(rl.GetKeyPressed, keyCommands)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if b, ok := shape.HitTest(r.buttons, r.controls, shape.Vec{X: m.X, Y: m.Y}); ok {
			cmds = append(cmds, b.ID.Command())
		}
	}
	return cmds
}

var keyCommands = map[int32]input.Command{
	rl.KeyUp:    input.Up,
	rl.KeyDown:  input.Down,
	rl.KeyLeft:  input.Left,
	rl.KeyRight: input.Right,
	rl.KeySpace: input.TogglePause,
	rl.KeyR:     input.Restart,
}

func offset(board shape.Rect, v shape.Vec) rl.Vector2 {
	return rl.Vector2{X: board.X + v.X, Y: board.Y + v.Y}
}

func toRect(r shape.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
