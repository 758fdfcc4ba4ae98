package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// View is the presentation side of a session. It is called with the session
// lock held and must not call back into the session.
type View interface {
	Render(s Snapshot)
	ShowScore(score int)
	ShowMessage(text string, visible bool)
	SetControls(c manager.Controls)
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Grid           types.Grid
	TileSize       int
	Body           []types.Point
	Direction      types.Point
	Food           types.Point
	HasFood        bool
	Score          int
	Phase          manager.Phase
	Message        string
	MessageVisible bool
	Controls       manager.Controls
}

// Options configures a session
type Options struct {
	TileSize     int
	TickInterval time.Duration
	Seed         uint64 // 0 picks a time based seed
	Clock        TimeProvider
	View         View
	Logger       *zerolog.Logger // nil disables logging
}

// Game is one play session: entity state, phase and loop scheduling
type Game struct {
	mu sync.Mutex

	UUID  string
	round string

	Grid     types.Grid
	tileSize int

	snake             *entity.Snake
	food              types.Point
	hasFood           bool
	score             int
	changingDirection bool

	message        string
	messageVisible bool
	redraw         bool

	loop         *Loop
	stateMgr     *manager.StateManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	view View
	log  zerolog.Logger
}

// NewGame sizes the board from the surface. The snake is placed by the
// first Reset.
func NewGame(surfaceWidth, surfaceHeight int, opts Options) *Game {
	if opts.TileSize <= 0 {
		opts.TileSize = types.TileSize
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = types.TickInterval
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.View == nil {
		opts.View = nopView{}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	grid := types.GridFromSurface(surfaceWidth, surfaceHeight, opts.TileSize)
	collisionMgr := manager.NewCollisionManager(grid)
	gameUUID := uuid.New().String()

	return &Game{
		UUID:         gameUUID,
		Grid:         grid,
		tileSize:     opts.TileSize,
		loop:         NewLoop(opts.Clock, opts.TickInterval),
		stateMgr:     manager.NewStateManager(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rand.New(rand.NewSource(opts.Seed)), collisionMgr),
		view:         opts.View,
		log:          logger.With().Str("session", gameUUID).Logger(),
	}
}

// Reset re-seeds a fresh game at the initial phase. Legal from any phase.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.loop.StopLogic()
	g.loop.StartRender()

	start := types.Point{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
	g.snake = entity.NewSnake(start, types.RIGHT, types.InitialLength)
	g.score = 0
	g.view.ShowScore(g.score)
	g.spawnFood()
	g.changingDirection = false
	g.round = uuid.New().String()

	g.apply(g.stateMgr.Reset())

	g.log.Info().
		Str("round", g.round).
		Int("width", g.Grid.Width).
		Int("height", g.Grid.Height).
		Msg("game reset")
}

// Start begins or resumes play from initial or paused
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transition(manager.PhaseRunning)
}

// Pause suspends a running game
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transition(manager.PhasePaused)
}

// TogglePause pauses a running game and starts one otherwise
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stateMgr.Phase() == manager.PhaseRunning {
		g.transition(manager.PhasePaused)
	} else {
		g.transition(manager.PhaseRunning)
	}
}

// Restart resets the game; only offered while paused or after game over
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.stateMgr.CanTransition(manager.PhaseInitial) {
		g.log.Debug().Stringer("phase", g.stateMgr.Phase()).Msg("restart ignored")
		return
	}
	g.reset()
}

// Direction requests a heading change. At most one request is taken per
// tick, only while running, and never the reverse of the current heading.
func (g *Game) Direction(d types.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.changingDirection || g.stateMgr.Phase() != manager.PhaseRunning || g.snake == nil {
		return false
	}
	if !g.snake.SetDirection(d.ToPoint()) {
		return false
	}
	g.changingDirection = true
	return true
}

// Advance runs one logic tick
func (g *Game) Advance() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advance()
}

func (g *Game) advance() {
	if g.snake == nil || g.snake.Len() == 0 || !g.Grid.Playable() {
		return
	}
	if g.collisionMgr.IsSelfCollision(g.snake) {
		g.log.Info().
			Str("round", g.round).
			Int("score", g.score).
			Int("length", g.snake.Len()).
			Msg("game over")
		g.transition(manager.PhaseGameOver)
		return
	}

	newHead := g.Grid.Wrap(g.snake.GetHead().Add(g.snake.Direction))
	g.snake.Move(newHead)

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score += types.FoodReward
		g.view.ShowScore(g.score)
		g.log.Debug().Int("score", g.score).Int("length", g.snake.Len()).Msg("food eaten")
		g.spawnFood()
	} else {
		g.snake.RemoveTail()
	}
}

// Frame is the render-loop callback: it fires the logic tick when one is
// due, then draws. Returns whether the view was rendered.
func (g *Game) Frame() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loop.TickDue() && g.stateMgr.Phase() == manager.PhaseRunning {
		g.advance()
		g.changingDirection = false
	}

	if !g.loop.RenderActive() && !g.redraw {
		return false
	}
	g.redraw = false
	g.loop.countFrame()
	g.view.Render(g.snapshot())
	return true
}

// Resize recomputes the grid for a new surface size without touching the
// game state.
func (g *Game) Resize(surfaceWidth, surfaceHeight int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	grid := types.GridFromSurface(surfaceWidth, surfaceHeight, g.tileSize)
	if grid != g.Grid {
		g.log.Debug().
			Int("width", grid.Width).
			Int("height", grid.Height).
			Msg("grid resized")
	}
	g.Grid = grid
	g.collisionMgr.SetGrid(grid)
	g.foodMgr.SetGrid(grid)
	g.redraw = true
}

// Snapshot copies the current state for readers
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Grid:           g.Grid,
		TileSize:       g.tileSize,
		Food:           g.food,
		HasFood:        g.hasFood,
		Score:          g.score,
		Phase:          g.stateMgr.Phase(),
		Message:        g.message,
		MessageVisible: g.messageVisible,
		Controls:       g.stateMgr.Controls(),
	}
	if g.snake != nil {
		s.Body = g.snake.Copy()
		s.Direction = g.snake.Direction
	}
	return s
}

func (g *Game) Phase() manager.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMgr.Phase()
}

func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Loop exposes the scheduler, mainly for hosts reporting frame counts
func (g *Game) Loop() *Loop {
	return g.loop
}

func (g *Game) transition(to manager.Phase) {
	from := g.stateMgr.Phase()
	policy, err := g.stateMgr.Transition(to, g.score)
	if err != nil {
		g.log.Debug().Err(err).Msg("command ignored")
		return
	}
	g.log.Debug().Stringer("from", from).Stringer("to", to).Msg("phase changed")
	g.apply(policy)
}

// apply clears the overlay and then enforces the phase policy
func (g *Game) apply(p manager.Policy) {
	g.showMessage("", false)

	if p.Logic {
		g.loop.StartLogic()
	} else {
		g.loop.StopLogic()
	}
	if p.Render {
		g.loop.StartRender()
	}
	if p.ShowMessage {
		g.showMessage(p.Message, true)
	}
	g.view.SetControls(p.Controls)
	g.redraw = true
}

func (g *Game) showMessage(text string, visible bool) {
	g.message = text
	g.messageVisible = visible
	g.view.ShowMessage(text, visible)
}

func (g *Game) spawnFood() {
	if g.snake == nil {
		return
	}
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
}

type nopView struct{}

func (nopView) Render(Snapshot)              {}
func (nopView) ShowScore(int)                {}
func (nopView) ShowMessage(string, bool)     {}
func (nopView) SetControls(manager.Controls) {}
