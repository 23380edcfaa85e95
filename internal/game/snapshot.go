package game

// Status describes the phase the game is in.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
	StatusWin      Status = "win"
)

// Snapshot captures the complete observable game state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Status   Status
}

// Snapshot returns the current state. FoodX/FoodY are -1 when no food is on
// the board.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.won:
		status = StatusWin
	case !g.alive:
		status = StatusGameOver
	}

	foodX, foodY := -1, -1
	if g.hasFood {
		foodX, foodY = g.food.X, g.food.Y
	}

	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.Direction(),
		FoodX:    foodX,
		FoodY:    foodY,
		Status:   status,
	}
}
