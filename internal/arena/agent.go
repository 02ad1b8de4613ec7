package arena

import (
	"golang.org/x/exp/rand"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/engine"
)

// Agent picks moves for one seat.
type Agent interface {
	Name() string
	ChooseMove(b board.Board, p board.Player) (board.Square, error)
}

// EngineAgent plays with the alpha-beta engine at a fixed depth.
type EngineAgent struct {
	name string
	eng  *engine.Engine
}

// NewEngineAgent creates an engine agent searching depth plies.
func NewEngineAgent(name string, depth int) *EngineAgent {
	eng := engine.NewEngine()
	eng.SetDepth(eng.Difficulty(), depth)
	return &EngineAgent{name: name, eng: eng}
}

func (a *EngineAgent) Name() string { return a.name }

// ChooseMove searches b for p.
func (a *EngineAgent) ChooseMove(b board.Board, p board.Player) (board.Square, error) {
	return a.eng.Search(b, p)
}

// RandomAgent plays a uniformly random legal move from a seeded source.
type RandomAgent struct {
	name string
	r    *rand.Rand
}

// NewRandomAgent creates a random agent. Equal seeds give equal games.
func NewRandomAgent(name string, seed uint64) *RandomAgent {
	return &RandomAgent{
		name: name,
		r:    rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) Name() string { return a.name }

// ChooseMove returns a random legal move.
func (a *RandomAgent) ChooseMove(b board.Board, p board.Player) (board.Square, error) {
	moves := b.LegalMovesFor(p)
	if len(moves) == 0 {
		return board.NoSquare, engine.ErrNoLegalMoves
	}
	return moves[a.r.Intn(len(moves))], nil
}
