// Package ui hosts the raylib window front end.
package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"torus-snake/config"
	"torus-snake/game"
	"torus-snake/game/input"
)

// Run opens the window and drives the session until the window is closed or
// ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	uiLog := logger.With().Str("component", "ui").Logger()
	gameLog := logger.With().Str("component", "game").Logger()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := NewRenderer()
	boardW, boardH := renderer.BoardSize()
	g := game.NewGame(boardW, boardH, game.Options{
		TileSize:     cfg.TileSize,
		TickInterval: cfg.Speed,
		Seed:         cfg.Seed,
		View:         renderer,
		Logger:       &gameLog,
	})
	g.Reset()

	uiLog.Info().
		Str("session", g.UUID).
		Int("width", g.Grid.Width).
		Int("height", g.Grid.Height).
		Dur("tick", g.Loop().Interval()).
		Msg("window opened")

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
			g.Resize(renderer.BoardSize())
		}

		for _, cmd := range renderer.PollCommands() {
			input.Apply(g, cmd)
		}

		rl.BeginDrawing()
		// A frame the session skips still has to repaint the back buffer
		if !g.Frame() {
			renderer.Draw()
		}
		rl.EndDrawing()
	}

	uiLog.Info().
		Str("session", g.UUID).
		Int("score", g.Score()).
		Uint64("ticks", g.Loop().Ticks()).
		Uint64("frames", g.Loop().Frames()).
		Msg("window closed")
	return nil
}
