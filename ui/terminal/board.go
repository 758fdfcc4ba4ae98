package terminal

import (
	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/manager"
)

// cellWidth is the number of terminal columns per grid cell; two columns
// keep cells roughly square.
const cellWidth = 2

var (
	boardStyle   = tcell.StyleDefault.Background(tcell.NewHexColor(0x20232a))
	bodyStyle    = boardStyle.Foreground(tcell.NewHexColor(0x98c379))
	headStyle    = boardStyle.Foreground(tcell.NewHexColor(0xffffff))
	foodStyle    = boardStyle.Foreground(tcell.NewHexColor(0xe06c75))
	messageStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
)

// board is the terminal game.View. Every method runs on the tview event
// goroutine, so it carries no lock of its own.
type board struct {
	snap           game.Snapshot
	score          int
	message        string
	messageVisible bool
	controls       manager.Controls
}

func (b *board) Render(s game.Snapshot) {
	b.snap = s
}

func (b *board) ShowScore(score int) {
	b.score = score
}

func (b *board) ShowMessage(text string, visible bool) {
	b.message = text
	b.messageVisible = visible
}

func (b *board) SetControls(c manager.Controls) {
	b.controls = c
}

// surface converts a character area to the board surface handed to the
// session, where one grid cell is one unit.
func surface(width, height int) (int, int) {
	return width / cellWidth, height
}

// sizer follows the board area and starts the first round once the area
// holds at least one cell.
type sizer struct {
	g       *game.Game
	started bool
	w, h    int
}

func newSizer(g *game.Game) *sizer {
	return &sizer{g: g, w: -1, h: -1}
}

// fit resizes the session to a board area given in characters
func (s *sizer) fit(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	s.w, s.h = width, height
	s.g.Resize(surface(width, height))
	if s.started || !s.g.Snapshot().Grid.Playable() {
		return
	}
	s.started = true
	s.g.Reset()
	s.g.Frame()
}

// paint draws the last snapshot into the area at x, y
func (b *board) paint(screen tcell.Screen, x, y, width, height int) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, boardStyle)
		}
	}

	s := b.snap
	cell := func(cx, cy int, r rune, style tcell.Style) {
		px, py := x+cx*cellWidth, y+cy
		if cx < 0 || cy < 0 || px+cellWidth > x+width || py >= y+height {
			return
		}
		for i := 0; i < cellWidth; i++ {
			screen.SetContent(px+i, py, r, nil, style)
		}
	}

	if s.HasFood {
		cell(s.Food.X, s.Food.Y, '●', foodStyle)
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		style := bodyStyle
		if i == 0 {
			style = headStyle
		}
		cell(s.Body[i].X, s.Body[i].Y, '█', style)
	}

	if b.messageVisible && b.message != "" {
		text := []rune(" " + b.message + " ")
		tx := x + (width-len(text))/2
		ty := y + height/2
		for i, r := range text {
			if tx+i >= x && tx+i < x+width {
				screen.SetContent(tx+i, ty, r, nil, messageStyle)
			}
		}
	}
}
