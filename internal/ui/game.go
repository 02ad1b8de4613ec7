package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/config"
	"github.com/hailam/othelloplay/internal/engine"
	"github.com/hailam/othelloplay/internal/game"
	"github.com/hailam/othelloplay/internal/storage"
)

// UI Constants
const (
	SquareSize   = 70
	BoardSize    = SquareSize * board.NumCols
	PanelWidth   = 280
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// aiResult is a finished background search.
type aiResult struct {
	gen   int
	move  board.Square
	err   error
	nodes uint64
	took  time.Duration
}

// Game implements ebiten.Game interface.
type Game struct {
	// Core match state
	match *game.Game

	// UI state
	lastMove board.Square
	hover    board.Square

	// Game settings
	names      [board.NumPlayers]string
	mode       storage.GameMode
	difficulty engine.Difficulty
	humanSide  board.Player

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
	welcome  *WelcomeScreen

	// AI engine. At most one search runs at a time; gen invalidates results
	// that belong to an abandoned match.
	engine     *engine.Engine
	aiThinking bool
	aiGen      int
	aiMove     chan aiResult
	lastSearch aiResult

	gameStart time.Time
	status    string
}

// NewGame creates the window state from the startup configuration.
func NewGame(cfg config.Config) *Game {
	g := &Game{
		lastMove:   board.NoSquare,
		hover:      board.NoSquare,
		names:      storage.DefaultPreferences().PlayerNames,
		difficulty: engine.Easy,
		humanSide:  board.Player1,
		renderer:   NewRenderer(BoardSize, SquareSize, cfg.Icons),
		input:      NewInputHandler(),
		engine:     engine.NewEngine(),
		aiMove:     make(chan aiResult, 1),
		gameStart:  time.Now(),
	}
	g.engine.SetDepth(engine.Easy, cfg.Bot.EasyDepth)
	g.engine.SetDepth(engine.Medium, cfg.Bot.MediumDepth)
	g.engine.SetDepth(engine.Hard, cfg.Bot.HardDepth)

	// Initialize storage
	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, statistics will not be kept")
	}

	g.feedback = NewFeedbackManager(g.PlayerName)
	g.loadPreferences()

	g.match = game.New(cfg.Match.Target, game.Notifiers(
		g.feedback,
		statsRecorder{g},
		game.LogNotifier{Logger: log.Logger},
	))
	g.panel = NewPanel(g)
	g.welcome = NewWelcomeScreen()

	g.checkFirstLaunch()
	g.maybeStartAI()

	return g
}

// loadPreferences loads user preferences and statistics from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	g.stats = storage.NewGameStats()
	if g.storage == nil {
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load preferences")
	} else {
		g.prefs = prefs
	}

	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load statistics")
	} else {
		g.stats = stats
	}

	// Apply preferences
	g.names = g.prefs.PlayerNames
	g.mode = g.prefs.GameMode
	g.difficulty = engine.Difficulty(g.prefs.Difficulty)
	if g.prefs.HumanSide.IsValid() {
		g.humanSide = g.prefs.HumanSide
	}
	g.engine.SetDifficulty(g.difficulty)
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.PlayerNames = g.names
	g.prefs.GameMode = g.mode
	g.prefs.Difficulty = storage.Difficulty(g.difficulty)
	g.prefs.HumanSide = g.humanSide
	g.prefs.SoundEnabled = g.SoundEnabled()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// checkFirstLaunch shows the welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Warn().Err(err).Msg("failed to check first launch")
		return
	}
	if !isFirst {
		return
	}

	g.welcome.Show(g.names, func(names [board.NumPlayers]string) {
		g.names = names
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			log.Warn().Err(err).Msg("failed to mark first launch complete")
		}
		g.savePreferences()
	})
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// Welcome screen blocks other input
	if g.welcome.IsVisible() {
		g.welcome.Update(g.input)
		g.updateCursor()
		return nil
	}

	g.handleShortcut(g.input.Shortcut())

	if !g.panel.HandleInput(g.input) {
		g.handleBoardInput()
	}

	g.checkAIMove()
	g.maybeStartAI()
	g.updateCursor()
	return nil
}

// handleShortcut runs the action bound to a pressed key.
func (g *Game) handleShortcut(a Action) {
	switch a {
	case ActionNewMatch:
		g.NewMatchAction()
	case ActionComputerEasy:
		g.ComputerMoveAction(engine.Easy)
	case ActionComputerHard:
		g.ComputerMoveAction(engine.Hard)
	case ActionToggleMode:
		g.ToggleModeAction()
	case ActionToggleSound:
		g.SetSoundEnabled(!g.SoundEnabled())
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var pointer bool
	if g.welcome.IsVisible() {
		pointer = g.welcome.AnyButtonHovered()
	} else {
		pointer = g.panel.AnyButtonHovered() || g.hover != board.NoSquare
	}

	if pointer {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.lastMove, g.hover)
	g.renderer.DrawIndicators(screen, g.match.Indicators())
	g.renderer.DrawDiscs(screen, g.match.Board(), g.feedback.Animations())
	if g.humanToMove() && !g.aiThinking {
		g.renderer.DrawGhost(screen, g.hover, g.match.CurrentPlayer())
	}

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen, g.renderer)
	g.welcome.Draw(screen, g.renderer.Sprites())
}

// Layout returns the fixed logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// humanToMove reports whether the side to move is controlled by a person.
func (g *Game) humanToMove() bool {
	return g.mode == storage.ModeHumanVsHuman || g.match.CurrentPlayer() == g.humanSide
}

// handleBoardInput tracks the hovered indicator and plays clicked squares.
func (g *Game) handleBoardInput() {
	g.hover = board.NoSquare
	if g.aiThinking || !g.humanToMove() {
		return
	}

	mx, my := g.input.MousePosition()
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}
	if g.match.Indicators().IsSet(sq) {
		g.hover = sq
	}

	if g.input.IsLeftJustPressed() {
		g.playMove(sq)
	}
}

// playMove submits sq for the player to move. Rejections are reported to the
// player through the notifier chain.
func (g *Game) playMove(sq board.Square) {
	mover := g.match.CurrentPlayer()
	var flipped board.Bitboard
	if sq.IsValid() {
		flipped = g.match.Board().Flips(sq, mover)
	}

	if err := g.match.Play(sq); err != nil {
		log.Debug().Err(err).Msg("move rejected")
		return
	}

	g.lastMove = sq
	g.feedback.OnMovePlayed(sq, flipped)
	if g.match.Board().Occupied().PopCount() == len(board.StartSeeds) {
		// The move ended a game and a fresh board is up
		g.lastMove = board.NoSquare
	}
}

// startAI launches a search for the player to move on a copy of the board.
func (g *Game) startAI(d engine.Difficulty) {
	if g.aiThinking {
		return
	}
	g.aiThinking = true
	g.engine.SetDifficulty(d)

	b := g.match.Board()
	p := g.match.CurrentPlayer()
	gen := g.aiGen
	log.Debug().Str("player", p.String()).Str("difficulty", d.String()).Msg("computer thinking")

	go func() {
		start := time.Now()
		move, err := g.engine.Search(b, p)
		g.aiMove <- aiResult{
			gen:   gen,
			move:  move,
			err:   err,
			nodes: g.engine.Nodes(),
			took:  time.Since(start),
		}
	}()
}

// maybeStartAI lets the computer move when it controls the side to play.
func (g *Game) maybeStartAI() {
	if g.welcome.IsVisible() || g.aiThinking || g.humanToMove() {
		return
	}
	g.startAI(g.difficulty)
}

// checkAIMove applies a finished search, if any.
func (g *Game) checkAIMove() {
	if !g.aiThinking {
		return
	}

	select {
	case res := <-g.aiMove:
		g.aiThinking = false
		g.engine.SetDifficulty(g.difficulty)
		if res.gen != g.aiGen {
			return // the match it was searching is gone
		}
		if res.err != nil {
			log.Warn().Err(res.err).Msg("computer found no move")
			return
		}
		g.lastSearch = res
		g.playMove(res.move)
	default:
		// Still thinking
	}
}

// NewMatchAction abandons the current match and starts a new one.
func (g *Game) NewMatchAction() {
	g.aiGen++
	g.match.NewMatch()
	g.lastMove = board.NoSquare
	g.gameStart = time.Now()
	g.status = ""
}

// ComputerMoveAction asks the computer to play the current turn at difficulty d.
func (g *Game) ComputerMoveAction(d engine.Difficulty) {
	if g.aiThinking {
		return
	}
	g.startAI(d)
}

// ToggleModeAction switches between two players and playing the computer.
func (g *Game) ToggleModeAction() {
	if g.mode == storage.ModeHumanVsHuman {
		g.SetGameMode(storage.ModeHumanVsComputer)
	} else {
		g.SetGameMode(storage.ModeHumanVsHuman)
	}
}

// SetGameMode changes the game mode. Against the computer the human keeps the
// side that is to move.
func (g *Game) SetGameMode(m storage.GameMode) {
	if g.mode == m {
		return
	}
	g.mode = m
	if m == storage.ModeHumanVsComputer {
		g.humanSide = g.match.CurrentPlayer()
	}
	g.savePreferences()
}

// SetHumanSide picks the side the human plays against the computer.
func (g *Game) SetHumanSide(p board.Player) {
	g.humanSide = p
	g.savePreferences()
}

// SetDifficulty sets the computer opponent's difficulty.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	if !g.aiThinking {
		g.engine.SetDifficulty(d)
	}
	g.savePreferences()
}

// SetSoundEnabled turns sound effects on or off.
func (g *Game) SetSoundEnabled(on bool) {
	g.feedback.Audio().SetEnabled(on)
	g.savePreferences()
}

// SoundEnabled reports whether sound effects are on.
func (g *Game) SoundEnabled() bool {
	return g.feedback.Audio().IsEnabled()
}

// Match returns the live match.
func (g *Game) Match() *game.Game {
	return g.match
}

// PlayerName returns the display name of p.
func (g *Game) PlayerName(p board.Player) string {
	if !p.IsValid() {
		return p.String()
	}
	return g.names[p]
}

// GameMode returns the current game mode.
func (g *Game) GameMode() storage.GameMode {
	return g.mode
}

// Difficulty returns the computer opponent's difficulty.
func (g *Game) Difficulty() engine.Difficulty {
	return g.difficulty
}

// HumanSide returns the side the human plays against the computer.
func (g *Game) HumanSide() board.Player {
	return g.humanSide
}

// IsAIThinking reports whether a search is running.
func (g *Game) IsAIThinking() bool {
	return g.aiThinking
}

// LastSearch returns the most recent applied search.
func (g *Game) LastSearch() (nodes uint64, took time.Duration) {
	return g.lastSearch.nodes, g.lastSearch.took
}

// Status returns the result line of the last finished game.
func (g *Game) Status() string {
	return g.status
}

// Stats returns the lifetime statistics.
func (g *Game) Stats() *storage.GameStats {
	return g.stats
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.savePreferences()
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage")
		}
	}
}

// recordGame stores a finished game and refreshes the cached statistics.
func (g *Game) recordGame(outcome board.Outcome) {
	now := time.Now()
	took := now.Sub(g.gameStart)
	g.gameStart = now

	if outcome.Tie {
		g.status = "Last game tied"
	} else {
		g.status = fmt.Sprintf("Last game: %s won", g.PlayerName(outcome.Winner))
	}

	if g.storage == nil {
		return
	}
	err := g.storage.RecordGame(storage.GameResult{
		Outcome:    outcome,
		Mode:       g.mode,
		Difficulty: storage.Difficulty(g.difficulty),
		HumanSide:  g.humanSide,
		Duration:   took,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to record game")
	}
	g.refreshStats()
}

// recordMatch stores a finished match.
func (g *Game) recordMatch(p board.Player) {
	g.status = fmt.Sprintf("%s won the match", g.PlayerName(p))
	if g.storage == nil {
		return
	}
	if err := g.storage.RecordMatch(p); err != nil {
		log.Warn().Err(err).Msg("failed to record match")
	}
	g.refreshStats()
}

func (g *Game) refreshStats() {
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load statistics")
		return
	}
	g.stats = stats
}

// statsRecorder persists finished games and matches.
type statsRecorder struct {
	g *Game
}

func (statsRecorder) InvalidMove(board.Square)      {}
func (statsRecorder) Outflanked(board.Player, int) {}

func (r statsRecorder) GameTied() {
	r.g.recordGame(board.Outcome{Winner: board.NoPlayer, Tie: true})
}

func (r statsRecorder) GameWon(p board.Player) {
	r.g.recordGame(board.Outcome{Winner: p})
}

func (r statsRecorder) MatchWon(p board.Player) {
	r.g.recordMatch(p)
}
