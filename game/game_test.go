package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

type overlay struct {
	text    string
	visible bool
}

// recordingView captures everything the session pushes to its view
type recordingView struct {
	renders  []Snapshot
	scores   []int
	messages []overlay
	controls []manager.Controls
}

func (v *recordingView) Render(s Snapshot)   { v.renders = append(v.renders, s) }
func (v *recordingView) ShowScore(score int) { v.scores = append(v.scores, score) }

func (v *recordingView) ShowMessage(text string, visible bool) {
	v.messages = append(v.messages, overlay{text, visible})
}

func (v *recordingView) SetControls(c manager.Controls) { v.controls = append(v.controls, c) }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestGame builds a reset 10x10 session with a mock clock
func newTestGame(t *testing.T) (*Game, *recordingView, *MockTimeProvider) {
	t.Helper()
	view := &recordingView{}
	clock := NewMockTimeProvider(epoch)
	g := NewGame(200, 200, Options{
		TileSize:     20,
		TickInterval: types.TickInterval,
		Seed:         42,
		Clock:        clock,
		View:         view,
	})
	g.Reset()
	require.Equal(t, types.Grid{Width: 10, Height: 10}, g.Grid)
	return g, view, clock
}

func (g *Game) place(body []types.Point, dir types.Direction, food types.Point) {
	g.snake = &entity.Snake{Body: body, Direction: dir.ToPoint()}
	g.food = food
	g.hasFood = true
}

func TestResetLayout(t *testing.T) {
	g, view, _ := newTestGame(t)
	s := g.Snapshot()

	assert.Equal(t, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Body)
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, manager.PhaseInitial, s.Phase)
	assert.Equal(t, "Press Start", s.Message)
	assert.True(t, s.MessageVisible)
	require.True(t, s.HasFood)
	assert.NotContains(t, s.Body, s.Food)

	assert.False(t, g.loop.LogicActive())
	assert.True(t, g.loop.RenderActive())
	assert.Equal(t, []int{0}, view.scores)
	assert.NotEmpty(t, g.UUID)
	assert.NotEmpty(t, g.round)
}

func TestAdvanceEatsFood(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Start()
	g.place([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.RIGHT, types.Point{X: 6, Y: 5})

	g.Advance()

	s := g.Snapshot()
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Body)
	assert.Equal(t, 10, s.Score)
	require.True(t, s.HasFood)
	assert.NotContains(t, s.Body, s.Food)
	assert.Equal(t, 10, view.scores[len(view.scores)-1])
}

func TestAdvanceMovesWithoutGrowing(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	g.place([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.RIGHT, types.Point{X: 0, Y: 0})

	g.Advance()

	s := g.Snapshot()
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, types.Point{X: 0, Y: 0}, s.Food)
}

func TestAdvanceWrapsAtEveryEdge(t *testing.T) {
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge", types.Point{X: 9, Y: 5}, types.RIGHT, types.Point{X: 0, Y: 5}},
		{"left edge", types.Point{X: 0, Y: 5}, types.LEFT, types.Point{X: 9, Y: 5}},
		{"top edge", types.Point{X: 3, Y: 0}, types.UP, types.Point{X: 3, Y: 9}},
		{"bottom edge", types.Point{X: 3, Y: 9}, types.DOWN, types.Point{X: 3, Y: 0}},
		{"inside from zero", types.Point{X: 0, Y: 0}, types.RIGHT, types.Point{X: 1, Y: 0}},
		{"inside from max", types.Point{X: 9, Y: 9}, types.UP, types.Point{X: 9, Y: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGame(t)
			g.Start()
			back := tt.dir.Opposite().ToPoint()
			tail := g.Grid.Wrap(tt.head.Add(back))
			g.place([]types.Point{tt.head, tail}, tt.dir, types.Point{X: 5, Y: 5})

			g.Advance()

			head := g.Snapshot().Body[0]
			assert.Equal(t, tt.want, head)
			assert.True(t, g.Grid.Contains(head))
		})
	}
}

func TestCollisionEndsGameWithoutMoving(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Start()
	body := []types.Point{{X: 4, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	g.place(body, types.UP, types.Point{X: 0, Y: 0})
	g.score = 30

	g.Advance()

	s := g.Snapshot()
	assert.Equal(t, manager.PhaseGameOver, s.Phase)
	assert.Equal(t, body, s.Body)
	assert.Equal(t, "Game Over! Score: 30", s.Message)
	assert.False(t, g.loop.LogicActive())
	assert.True(t, g.loop.RenderActive())
	assert.Equal(t, manager.Controls{StartLabel: "Start", RestartEnabled: true}, view.controls[len(view.controls)-1])
}

func TestDirectionReversalRejected(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()

	assert.False(t, g.Direction(types.LEFT))
	assert.Equal(t, types.RIGHT.ToPoint(), g.Snapshot().Direction)

	assert.True(t, g.Direction(types.UP))
	assert.Equal(t, types.UP.ToPoint(), g.Snapshot().Direction)
}

func TestDirectionDownAccepted(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	assert.True(t, g.Direction(types.DOWN))
	assert.Equal(t, types.DOWN.ToPoint(), g.Snapshot().Direction)
}

func TestDirectionLatchOnePerTick(t *testing.T) {
	g, _, clock := newTestGame(t)
	g.Start()

	assert.True(t, g.Direction(types.UP))
	assert.False(t, g.Direction(types.LEFT), "second request in the same tick is dropped")
	assert.Equal(t, types.UP.ToPoint(), g.Snapshot().Direction)

	clock.Advance(types.TickInterval)
	g.Frame()

	assert.Equal(t, types.Point{X: 5, Y: 4}, g.Snapshot().Body[0])
	assert.True(t, g.Direction(types.LEFT), "latch clears after the tick")
	assert.Equal(t, types.LEFT.ToPoint(), g.Snapshot().Direction)
}

func TestDirectionIgnoredUnlessRunning(t *testing.T) {
	g, _, _ := newTestGame(t)
	assert.False(t, g.Direction(types.UP))

	g.Start()
	g.Pause()
	assert.False(t, g.Direction(types.UP))
	assert.Equal(t, types.RIGHT.ToPoint(), g.Snapshot().Direction)
}

func TestRestartDuringGameOver(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Start()
	g.place([]types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}}, types.UP, types.Point{X: 8, Y: 8})
	g.score = 50
	g.Advance()
	require.Equal(t, manager.PhaseGameOver, g.Phase())
	round := g.round

	g.Restart()

	s := g.Snapshot()
	assert.Equal(t, manager.PhaseInitial, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, s.Body)
	assert.Equal(t, types.RIGHT.ToPoint(), s.Direction)
	assert.Equal(t, 0, view.scores[len(view.scores)-1])
	assert.NotEqual(t, round, g.round)
}

func TestRestartOnlyFromPausedOrGameOver(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.Restart()
	assert.Equal(t, manager.PhaseInitial, g.Phase())

	g.Start()
	g.place([]types.Point{{X: 1, Y: 1}, {X: 0, Y: 1}}, types.RIGHT, types.Point{X: 8, Y: 8})
	g.Restart()
	assert.Equal(t, manager.PhaseRunning, g.Phase(), "restart is not available while running")
	assert.Equal(t, types.Point{X: 1, Y: 1}, g.Snapshot().Body[0])

	g.Pause()
	g.Restart()
	assert.Equal(t, manager.PhaseInitial, g.Phase())
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0])
}

func TestTogglePause(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.TogglePause()
	assert.Equal(t, manager.PhaseRunning, g.Phase())
	g.TogglePause()
	assert.Equal(t, manager.PhasePaused, g.Phase())
	assert.Equal(t, "Resume", g.Snapshot().Controls.StartLabel)
	g.TogglePause()
	assert.Equal(t, manager.PhaseRunning, g.Phase())
}

func TestStartIgnoredAfterGameOver(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	g.place([]types.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, types.RIGHT, types.Point{X: 8, Y: 8})
	g.Advance()
	require.Equal(t, manager.PhaseGameOver, g.Phase())

	g.Start()
	g.TogglePause()
	g.Pause()
	assert.Equal(t, manager.PhaseGameOver, g.Phase())
}

func TestTransitionClearsOverlayFirst(t *testing.T) {
	g, view, _ := newTestGame(t)
	g.Start()
	view.messages = nil

	g.Pause()

	assert.Equal(t, []overlay{{"", false}, {"Paused", true}}, view.messages)

	view.messages = nil
	g.Start()
	assert.Equal(t, []overlay{{"", false}}, view.messages)
	assert.False(t, g.Snapshot().MessageVisible)
}

func TestFrameTickCadence(t *testing.T) {
	g, view, clock := newTestGame(t)
	g.place([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.RIGHT, types.Point{X: 0, Y: 0})

	// No ticks before start
	clock.Advance(time.Second)
	require.True(t, g.Frame())
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0])

	g.Start()
	clock.Advance(types.TickInterval - time.Millisecond)
	g.Frame()
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0])

	clock.Advance(time.Millisecond)
	g.Frame()
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.Snapshot().Body[0])
	assert.Equal(t, uint64(1), g.loop.Ticks())

	// Frames between ticks only redraw
	g.Frame()
	g.Frame()
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.Snapshot().Body[0])

	// A long stall still fires a single tick per frame
	clock.Advance(5 * types.TickInterval)
	g.Frame()
	assert.Equal(t, types.Point{X: 7, Y: 5}, g.Snapshot().Body[0])

	assert.Equal(t, uint64(len(view.renders)), g.loop.Frames())
}

func TestFrameTickPeriodAtSixtyFPS(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	// 100x10 board: a straight run of 100 ticks cannot reach its own tail
	g := NewGame(2000, 200, Options{TileSize: 20, Seed: 5, Clock: clock})
	g.Reset()
	g.Start()

	frame := time.Second / 60
	for elapsed := time.Duration(0); elapsed < 12*time.Second; elapsed += frame {
		clock.Advance(frame)
		g.Frame()
	}
	require.Equal(t, manager.PhaseRunning, g.Phase())
	assert.Equal(t, uint64(100), g.Loop().Ticks())
}

func TestPauseStopsTicking(t *testing.T) {
	g, _, clock := newTestGame(t)
	g.Start()
	g.place([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.RIGHT, types.Point{X: 0, Y: 0})

	g.Pause()
	assert.False(t, g.loop.LogicActive())
	clock.Advance(10 * types.TickInterval)
	g.Frame()
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0])

	g.Start()
	g.Frame()
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0], "first tick is one interval after resume")
	clock.Advance(types.TickInterval)
	g.Frame()
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.Snapshot().Body[0])
}

func TestFrameRendersOnlyWhenActiveOrRequested(t *testing.T) {
	g, view, _ := newTestGame(t)
	require.True(t, g.Frame())

	g.loop.StopRender()
	assert.False(t, g.Frame())

	g.Resize(300, 300)
	assert.True(t, g.Frame(), "resize requests a redraw")
	assert.False(t, g.Frame())
	assert.Len(t, view.renders, 2)
}

func TestResizeKeepsState(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	g.score = 20
	before := g.Snapshot()

	g.Resize(400, 120)

	after := g.Snapshot()
	assert.Equal(t, types.Grid{Width: 20, Height: 6}, after.Grid)
	assert.Equal(t, before.Body, after.Body)
	assert.Equal(t, before.Food, after.Food)
	assert.Equal(t, 20, after.Score)
	assert.Equal(t, manager.PhaseRunning, after.Phase)
}

func TestGuardsBeforeReset(t *testing.T) {
	g := NewGame(200, 200, Options{Seed: 1})

	g.Advance()
	assert.False(t, g.Direction(types.UP))
	g.Start()
	g.Advance()

	s := g.Snapshot()
	assert.Nil(t, s.Body)
	assert.False(t, s.HasFood)
}

func TestDegenerateBoard(t *testing.T) {
	g := NewGame(10, 10, Options{TileSize: 20, Seed: 1})
	g.Reset()
	require.False(t, g.Grid.Playable())

	g.Start()
	before := g.Snapshot()
	g.Advance()

	after := g.Snapshot()
	assert.False(t, after.HasFood)
	assert.Equal(t, before.Body, after.Body)
	assert.Equal(t, manager.PhaseRunning, after.Phase)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	view := &recordingView{}
	clock := NewMockTimeProvider(epoch)
	g := NewGame(160, 160, Options{TileSize: 20, Seed: 3, Clock: clock, View: view})
	g.Reset()
	g.Start()

	rng := rand.New(rand.NewSource(99))
	dirs := []types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT}

	for i := 0; i < 2000; i++ {
		g.Direction(dirs[rng.Intn(len(dirs))])
		before := g.Snapshot()
		clock.Advance(types.TickInterval)
		g.Frame()
		after := g.Snapshot()

		if after.Phase == manager.PhaseGameOver {
			assert.Equal(t, before.Body, after.Body)
			g.Restart()
			g.Start()
			continue
		}

		require.NotEmpty(t, after.Body)
		assert.True(t, g.Grid.Contains(after.Body[0]), "head %v out of bounds", after.Body[0])
		switch after.Score - before.Score {
		case 0:
			assert.Equal(t, len(before.Body), len(after.Body))
		case types.FoodReward:
			assert.Equal(t, len(before.Body)+1, len(after.Body))
		default:
			t.Fatalf("score jumped from %d to %d", before.Score, after.Score)
		}
		if after.HasFood {
			assert.NotContains(t, after.Body, after.Food)
		}
	}
}
