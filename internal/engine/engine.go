package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/board"
)

// SearchInfo contains information about a finished search.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	Move  board.Square
}

// SearchLimits specifies constraints on the search.
type SearchLimits struct {
	Depth int // Ply budget before clamping to the empty squares left
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // 2 ply
	Medium                   // 3 ply
	Hard                     // 4 ply
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty parses a difficulty name as returned by Difficulty.String.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if d.String() == s {
			return d, true
		}
	}
	return Medium, false
}

// DifficultySettings maps difficulty to search limits.
var DifficultySettings = map[Difficulty]SearchLimits{
	Easy:   {Depth: 2},
	Medium: {Depth: 3},
	Hard:   {Depth: 4},
}

// Engine is the game AI. It keeps no position state between searches.
type Engine struct {
	searcher   Searcher
	difficulty Difficulty
	limits     map[Difficulty]SearchLimits

	// Callbacks
	OnInfo func(SearchInfo)
}

// NewEngine creates a new engine at Medium difficulty.
func NewEngine() *Engine {
	limits := make(map[Difficulty]SearchLimits, len(DifficultySettings))
	for d, l := range DifficultySettings {
		limits[d] = l
	}
	return &Engine{
		difficulty: Medium,
		limits:     limits,
	}
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// SetDepth overrides the ply budget used for difficulty d.
func (e *Engine) SetDepth(d Difficulty, depth int) {
	e.limits[d] = SearchLimits{Depth: depth}
}

// Depth returns the ply budget for the current difficulty.
func (e *Engine) Depth() int {
	return e.limits[e.difficulty].Depth
}

// Search finds the best move for p at the current difficulty.
func (e *Engine) Search(b board.Board, p board.Player) (board.Square, error) {
	return e.SearchWithLimits(b, p, e.limits[e.difficulty])
}

// SearchWithLimits finds the best move with specific search limits. The depth
// is clamped to the number of empty squares before searching.
func (e *Engine) SearchWithLimits(b board.Board, p board.Player, limits SearchLimits) (board.Square, error) {
	depth := ClampDepth(limits.Depth, b.Empties())

	startTime := time.Now()
	res, err := e.searcher.ChooseMove(b, p, depth)
	if err != nil {
		return board.NoSquare, err
	}
	elapsed := time.Since(startTime)

	log.Debug().
		Str("player", p.String()).
		Int("depth", depth).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", elapsed).
		Msg("search finished")

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Depth: depth,
			Score: res.Score,
			Nodes: res.Nodes,
			Time:  elapsed,
			Move:  res.Move,
		})
	}

	return res.Move, nil
}

// Nodes returns the node count of the last search.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// Evaluate returns the static evaluation of b for p.
func (e *Engine) Evaluate(b board.Board, p board.Player) int {
	return Evaluate(b, p)
}

// Perft performs a perft test (for debugging move generation).
func (e *Engine) Perft(b board.Board, toMove board.Player, depth int) uint64 {
	return board.Perft(b, toMove, depth)
}
