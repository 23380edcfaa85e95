package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

func newTestModel(t *testing.T, moveEveryTicks int) Model {
	t.Helper()

	g, err := game.New(game.Config{Width: 20, Height: 10, InitialLength: 3, Seed: 1})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}

	gameCfg := config.DefaultSnakeConfig()
	gameCfg.Board.Width = 20
	gameCfg.Board.Height = 10
	gameCfg.Speed.MoveEveryTicks = moveEveryTicks

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(g, gameCfg, nil, nil, cfg)
}

func tick(m Model) Model {
	updated, _ := m.Update(TickMsg(time.Now()))
	return updated.(Model)
}

func TestModelMoveCadence(t *testing.T) {
	m := newTestModel(t, 3)
	start := m.game.Head()

	// Two frames: below the cadence, no movement yet
	m = tick(m)
	m = tick(m)
	if m.game.Head() != start {
		t.Error("Snake should not move before MoveEveryTicks frames elapse")
	}

	// Third frame triggers one movement step
	m = tick(m)
	if m.game.Head() == start {
		t.Error("Snake should move after MoveEveryTicks frames")
	}
	if got := m.game.Head(); got != (game.Cell{X: start.X + 1, Y: start.Y}) {
		t.Errorf("Head = %+v, expected one step right from %+v", got, start)
	}
}

func TestModelPauseStopsMovement(t *testing.T) {
	m := newTestModel(t, 1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(Model)
	if !m.paused {
		t.Fatal("P should pause the game")
	}

	start := m.game.Head()
	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	if m.game.Head() != start {
		t.Error("Snake must not move while paused")
	}
}

func TestModelDirectionKeysReachGame(t *testing.T) {
	m := newTestModel(t, 1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	m = tick(m)

	if m.game.Direction() != game.Down {
		t.Errorf("Direction = %v, expected down after down-arrow and one move", m.game.Direction())
	}
}

func TestModelHighScoreFromFile(t *testing.T) {
	highFile := storage.NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.dat"))
	if err := highFile.Save(17); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	g, err := game.New(game.Config{Width: 10, Height: 10, Seed: 1})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}

	m := NewModel(g, config.DefaultSnakeConfig(), nil, highFile, core.DefaultConfig())
	if m.highScore != 17 {
		t.Errorf("highScore = %d, expected 17 from the file store", m.highScore)
	}
}

func TestModelZeroScoreNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	highFile := storage.NewHighScoreFile(path)

	m := newTestModel(t, 1)
	m.highFile = highFile

	// Steer into a wall along a food-free line so the score stays 0
	dir := game.Up
	if food, ok := m.game.Food(); ok {
		head := m.game.Head()
		if food.X == head.X && food.Y < head.Y {
			dir = game.Right
		}
	}
	m.game.SetDirection(dir)
	for i := 0; i < 30 && m.game.Alive(); i++ {
		m = tick(m)
	}
	if m.game.Alive() {
		t.Fatal("Game should have ended at the wall")
	}

	m = tick(m) // Post-game-over frame triggers the save path
	if !m.scoreSaved {
		t.Error("Score save should have been attempted")
	}
	if highFile.Load() != 0 {
		t.Error("A zero score must not overwrite the high score file")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, 1)

	for i := 0; i < 30 && m.game.Alive(); i++ {
		m = tick(m)
	}
	if m.game.Alive() {
		t.Fatal("Game should have ended at the wall")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	if !m.game.Alive() {
		t.Error("R should restart a finished game")
	}
	if m.game.Score() != 0 {
		t.Errorf("Restarted score = %d, expected 0", m.game.Score())
	}
}

func TestModelEnterRestartsAfterGameOver(t *testing.T) {
	m := newTestModel(t, 1)

	for i := 0; i < 30 && m.game.Alive(); i++ {
		m = tick(m)
	}
	if m.game.Alive() {
		t.Fatal("Game should have ended at the wall")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.game.Alive() {
		t.Error("Enter should restart a finished game")
	}
}

func TestModelEnterIgnoredWhileAlive(t *testing.T) {
	m := newTestModel(t, 1)
	m = tick(m)
	snap := m.game.Snapshot()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.game.Snapshot() != snap {
		t.Error("Enter must not reset a running game")
	}
}

func TestModelViewRenders(t *testing.T) {
	m := newTestModel(t, 6)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View should contain the HUD score")
	}
	if !strings.Contains(view, "#") {
		t.Error("View should contain the playfield border")
	}
	if !strings.Contains(view, "@") {
		t.Error("View should contain the snake head glyph")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, 6)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = updated.(Model)

	if !strings.Contains(m.View(), "too small") {
		t.Error("View should report a too-small window")
	}
}
