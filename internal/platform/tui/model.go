package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

// GameID identifies terminal snake scores in the database.
const GameID = "snake"

// hudHeight is the number of rows reserved above the playfield.
const hudHeight = 2

// Model is the Bubble Tea model running a snake session. It owns the pacing
// (the game core moves once every MoveEveryTicks frames), maps keys to
// direction changes, and persists scores when a round ends. The game core is
// the single source of truth; the model only reads snapshots for drawing.
type Model struct {
	game     *game.Game
	gameCfg  config.SnakeConfig
	screen   *core.Screen
	store    *storage.Store          // may be nil: play without history
	highFile *storage.HighScoreFile  // may be nil: no file persistence
	config   core.RuntimeConfig
	keys     *KeyMapper

	paused     bool
	moveTicker int
	highScore  int
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model for the given game instance. The high score shown
// in the HUD is the best of the score database and the high-score file; both
// stores are optional and read failures simply yield 0.
func NewModel(g *game.Game, gameCfg config.SnakeConfig, store *storage.Store, highFile *storage.HighScoreFile, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	high := 0
	if highFile != nil {
		high = highFile.Load()
	}
	if store != nil {
		if dbHigh, err := store.HighScore(GameID); err == nil && dbHigh > high {
			high = dbHigh
		}
	}

	return Model{
		game:      g,
		gameCfg:   gameCfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		highFile:  highFile,
		config:    cfg,
		keys:      NewKeyMapper(),
		highScore: high,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction changes go straight to the
// game core, which applies them on its next movement step with last-write-
// wins semantics.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.game.SetDirection(game.Up)
	case core.ActionDown:
		m.game.SetDirection(game.Down)
	case core.ActionLeft:
		m.game.SetDirection(game.Left)
	case core.ActionRight:
		m.game.SetDirection(game.Right)
	case core.ActionPause, core.ActionBack:
		if m.game.Alive() {
			m.paused = !m.paused
		}
	case core.ActionRestart, core.ActionConfirm:
		if !m.game.Alive() {
			m.game.Reset(time.Now().UnixNano())
			m.paused = false
			m.moveTicker = 0
			m.scoreSaved = false
		}
	}

	return m, nil
}

// handleTick advances the simulation. The game core moves one cell every
// MoveEveryTicks frames; frames in between only redraw.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && m.game.Alive() {
		m.moveTicker++
		if m.moveTicker >= m.gameCfg.Speed.MoveEveryTicks {
			m.moveTicker = 0
			m.game.Tick()
		}
	}

	if !m.game.Alive() && !m.scoreSaved {
		m = m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished round, best-effort on both stores.
func (m Model) saveScore() Model {
	m.scoreSaved = true
	score := m.game.Score()
	if score <= 0 {
		return m
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(GameID, score)
	}
	if score > m.highScore {
		m.highScore = score
		if m.highFile != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.highFile.Save(score)
		}
	}
	return m
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()

	boardW := m.game.Width() + 2  // Playfield plus border
	boardH := m.game.Height() + 2
	if m.screen.Width() < boardW || m.screen.Height() < boardH+hudHeight {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Window too small")
		m.screen.DrawTextCentered(m.screen.Height()/2+1, "Resize to continue")
		return RenderScreen(m.screen)
	}

	offsetX := (m.screen.Width() - boardW) / 2
	offsetY := hudHeight

	m.drawBoard(offsetX, offsetY)

	switch {
	case m.game.Won():
		m.drawOverlay("YOU WIN!", fmt.Sprintf("Score: %d  High Score: %d", m.game.Score(), m.highScore))
	case !m.game.Alive():
		m.drawOverlay("GAME OVER", "Press R to restart or Q to quit")
	case m.paused:
		m.drawOverlay("PAUSED", "Press P to continue")
	}

	return RenderScreen(m.screen)
}

// drawHUD draws the score line and separator above the playfield.
func (m Model) drawHUD() {
	hud := fmt.Sprintf(" Score: %d  High Score: %d  (Arrows/WASD to move, P to pause, Q to quit)",
		m.game.Score(), m.highScore)
	m.screen.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := 0; x < m.screen.Width(); x++ {
		m.screen.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawBoard draws the bordered playfield, food, and snake at the given
// screen offset.
func (m Model) drawBoard(offsetX, offsetY int) {
	wall := config.Rune(m.gameCfg.Glyphs.Wall, '#')
	head := config.Rune(m.gameCfg.Glyphs.Head, '@')
	body := config.Rune(m.gameCfg.Glyphs.Body, 'o')
	foodGlyph := config.Rune(m.gameCfg.Glyphs.Food, '*')

	border := core.NewRect(offsetX, offsetY, m.game.Width()+2, m.game.Height()+2)
	for y := border.Y; y < border.Bottom(); y++ {
		for x := border.X; x < border.Right(); x++ {
			onEdge := x == border.X || x == border.Right()-1 || y == border.Y || y == border.Bottom()-1
			if onEdge {
				m.screen.SetColored(x, y, wall, core.ColorGray)
			}
		}
	}

	// Interior cells start one past the border.
	if food, ok := m.game.Food(); ok {
		m.screen.SetColored(offsetX+1+food.X, offsetY+1+food.Y, foodGlyph, core.ColorBrightRed)
	}

	for i, seg := range m.game.Body() {
		glyph := body
		color := core.ColorGreen
		if i == 0 {
			glyph = head
			color = core.ColorBrightGreen
		}
		m.screen.SetColored(offsetX+1+seg.X, offsetY+1+seg.Y, glyph, color)
	}
}

// drawOverlay draws a centered two-line message box.
func (m Model) drawOverlay(line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((m.screen.Width()-boxW)/2, (m.screen.Height()-boxH)/2, boxW, boxH)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextColored(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorBrightYellow)
	m.screen.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, gameCfg config.SnakeConfig, store *storage.Store, highFile *storage.HighScoreFile, cfg core.RuntimeConfig) error {
	model := NewModel(g, gameCfg, store, highFile, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
