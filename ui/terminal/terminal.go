// Package terminal hosts the tview front end.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"torus-snake/config"
	"torus-snake/game"
	"torus-snake/game/input"
	"torus-snake/ui/shape"
)

type action struct {
	shape.Button
	widget *tview.Button
}

// Run drives a session inside the terminal until Esc, q or ctx cancellation
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	uiLog := logger.With().Str("component", "ui").Logger()
	gameLog := logger.With().Str("component", "game").Logger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := tview.NewApplication()
	view := &board{}

	// The board is sized on draw, so the session starts empty and is reset
	// once a playable surface is known.
	g := game.NewGame(0, 0, game.Options{
		TileSize:     1,
		TickInterval: cfg.Speed,
		Seed:         cfg.Seed,
		View:         view,
		Logger:       &gameLog,
	})
	sz := newSizer(g)

	hud := tview.NewTextView()

	boardBox := tview.NewBox().SetBorder(true).SetTitle(" Snake ")
	boardBox.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		ix, iy, iw, ih := x+1, y+1, width-2, height-2
		if iw < 0 || ih < 0 {
			return x, y, 0, 0
		}
		sz.fit(iw, ih)
		view.paint(screen, ix, iy, iw, ih)
		return ix, iy, iw, ih
	})

	actions := []*action{
		{Button: shape.Button{ID: shape.ButtonStart}},
		{Button: shape.Button{ID: shape.ButtonPause}},
		{Button: shape.Button{ID: shape.ButtonRestart}},
	}
	buttons := tview.NewFlex().SetDirection(tview.FlexColumn)
	for _, a := range actions {
		a.widget = tview.NewButton(a.Label(view.controls)).SetSelectedFunc(func() {
			if a.Enabled(view.controls) {
				input.Apply(g, a.ID.Command())
			}
		})
		buttons.AddItem(a.widget, 0, 1, false).AddItem(tview.NewBox(), 1, 0, false)
	}

	// refresh copies view state that lives in widgets rather than on the board
	refresh := func() {
		hud.SetText(fmt.Sprintf("Score: %d   [arrows] steer  [space] pause  [r] restart  [esc] quit", view.score))
		for _, a := range actions {
			a.widget.SetLabel(a.Label(view.controls))
			if a.Enabled(view.controls) {
				a.widget.SetLabelColor(tcell.ColorWhite)
			} else {
				a.widget.SetLabelColor(tcell.ColorGray)
			}
		}
	}
	refresh()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(hud, 1, 0, false).
		AddItem(boardBox, 0, 1, false).
		AddItem(buttons, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		if cmd := input.FromTcell(event); cmd != input.None {
			input.Apply(g, cmd)
			return nil
		}
		return event
	})

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				app.Stop()
				return
			case <-ticker.C:
				app.QueueUpdateDraw(func() {
					g.Frame()
					refresh()
				})
			}
		}
	}()

	uiLog.Info().Str("session", g.UUID).Dur("tick", g.Loop().Interval()).Msg("terminal opened")

	if err := app.SetRoot(layout, true).EnableMouse(true).Run(); err != nil {
		return errors.Wrap(err, "run terminal")
	}

	uiLog.Info().
		Str("session", g.UUID).
		Int("score", g.Score()).
		Uint64("ticks", g.Loop().Ticks()).
		Msg("terminal closed")
	return nil
}
