// Package game implements the Snake simulation core: board state, movement,
// collision detection, food placement, and scoring. It knows nothing about
// terminals, windows, or key codes; frontends drive it through SetDirection
// and Tick and read the state back for rendering.
package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Default gameplay parameters, matching the classic board.
const (
	DefaultWidth         = 40
	DefaultHeight        = 20
	DefaultInitialLength = 5
	DefaultFoodReward    = 1
)

// Config holds the construction parameters for a game instance. Explicit
// fields instead of package-level constants so multiple independent games
// can run with different boards.
type Config struct {
	Width         int   // Board width in cells, must be positive
	Height        int   // Board height in cells, must be positive
	InitialLength int   // Starting snake length; defaults to 5
	FoodReward    int   // Score per food eaten; defaults to 1
	Seed          int64 // RNG seed; 0 means derive from current time
}

// DefaultGameConfig returns the classic 40x20 board configuration.
func DefaultGameConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		InitialLength: DefaultInitialLength,
		FoodReward:    DefaultFoodReward,
	}
}

// Game is the authoritative snake/food/score state. All terminal conditions
// (wall collision, self collision, board-full win) are normal state
// transitions expressed through the alive flag, never errors.
type Game struct {
	cfg Config
	rng *rand.Rand

	snake   []Cell // Head at index 0
	food    Cell
	hasFood bool
	score   int
	alive   bool
	won     bool
	ticks   uint64

	// dir is the direction active during the current tick; pending is the
	// last direction requested by input, applied on the next Tick.
	// The mutex guards both because input may arrive from a different
	// goroutine than the tick timer.
	mu      sync.Mutex
	dir     Direction
	pending Direction
}

// New creates a game with a horizontal snake on the center row moving right
// and one food cell placed at random. It fails fast on malformed parameters;
// that is the only error this package produces.
func New(cfg Config) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("game: board dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.InitialLength <= 0 {
		cfg.InitialLength = DefaultInitialLength
	}
	if cfg.FoodReward <= 0 {
		cfg.FoodReward = DefaultFoodReward
	}
	if cfg.InitialLength > cfg.Width {
		return nil, fmt.Errorf("game: initial snake length %d does not fit board width %d", cfg.InitialLength, cfg.Width)
	}

	g := &Game{cfg: cfg}
	g.Reset(cfg.Seed)
	return g, nil
}

// Reset re-initializes the game for a new round using the given seed.
// A zero seed derives one from the current time.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.ticks = 0
	g.score = 0
	g.alive = true
	g.won = false
	g.initSnake()
	g.placeFood()
}

// initSnake lays the body horizontally through the board's center row, head
// at the right end, moving right. The head starts at the center column but
// shifts right as far as needed so the tail stays on the board.
func (g *Game) initSnake() {
	headX := g.cfg.Width / 2
	if minX := g.cfg.InitialLength - 1; headX < minX {
		headX = minX
	}
	centerY := g.cfg.Height / 2

	g.snake = make([]Cell, g.cfg.InitialLength)
	for i := range g.snake {
		g.snake[i] = Cell{X: headX - i, Y: centerY}
	}

	g.mu.Lock()
	g.dir = Right
	g.pending = Right
	g.mu.Unlock()
}

// placeFood puts food on a uniformly random unoccupied cell. When no empty
// cell exists the board is full; hasFood is cleared and Tick treats it as
// the win condition.
func (g *Game) placeFood() {
	empty := make([]Cell, 0, g.cfg.Width*g.cfg.Height-len(g.snake))
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !g.isSnakeAt(c) {
				empty = append(empty, c)
			}
		}
	}

	if len(empty) == 0 {
		g.hasFood = false
		return
	}

	g.food = empty[g.rng.Intn(len(empty))]
	g.hasFood = true
}

// SetDirection records the pending direction for the next tick. The request
// is a no-op when it opposes the direction active during the current tick,
// so the snake can never reverse into its own neck even across two rapid
// inputs. Only the last call before a Tick is honored.
func (g *Game) SetDirection(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if d.IsOpposite(g.dir) {
		return
	}
	g.pending = d
}

// Tick advances the simulation by one movement step. Calling Tick on a
// terminal game is a no-op.
func (g *Game) Tick() {
	if !g.alive {
		return
	}
	g.ticks++

	g.mu.Lock()
	g.dir = g.pending
	dir := g.dir
	g.mu.Unlock()

	head := g.snake[0]
	newHead := Cell{X: head.X + dir.DX, Y: head.Y + dir.DY}

	// Wall collision.
	if newHead.X < 0 || newHead.X >= g.cfg.Width || newHead.Y < 0 || newHead.Y >= g.cfg.Height {
		g.alive = false
		return
	}

	grow := g.hasFood && newHead == g.food

	// Self collision. The tail cell is about to be vacated unless the snake
	// grows this tick, so it is excluded from the check in that case.
	checkLen := len(g.snake)
	if !grow {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.alive = false
			return
		}
	}

	g.snake = append([]Cell{newHead}, g.snake...)

	if grow {
		g.score += g.cfg.FoodReward
		g.placeFood()
		if !g.hasFood {
			// Board is full: the player wins.
			g.won = true
			g.alive = false
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Alive reports whether the game is still running.
func (g *Game) Alive() bool {
	return g.alive
}

// Won reports whether the game ended by filling the board.
func (g *Game) Won() bool {
	return g.won
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Width returns the board width in cells.
func (g *Game) Width() int {
	return g.cfg.Width
}

// Height returns the board height in cells.
func (g *Game) Height() int {
	return g.cfg.Height
}

// Head returns the current head cell.
func (g *Game) Head() Cell {
	return g.snake[0]
}

// Body returns a copy of the snake body, head first. Frontends render from
// this copy and hold no authoritative state of their own.
func (g *Game) Body() []Cell {
	body := make([]Cell, len(g.snake))
	copy(body, g.snake)
	return body
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return len(g.snake)
}

// Food returns the current food cell and whether one exists on the board.
func (g *Game) Food() (Cell, bool) {
	return g.food, g.hasFood
}

// Direction returns the direction active during the current tick.
func (g *Game) Direction() Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dir
}
