// Package protocol implements a line-oriented text protocol for driving the
// engine from scripts and GUIs, modelled on UCI.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/engine"
)

// Protocol reads commands from an io.Reader and answers on an io.Writer.
type Protocol struct {
	engine *engine.Engine
	board  board.Board
	toMove board.Player

	out io.Writer
}

// New creates a protocol handler at the starting position.
func New(eng *engine.Engine, out io.Writer) *Protocol {
	p := &Protocol{
		engine: eng,
		out:    out,
	}
	p.handleNewGame()
	return p
}

// Run processes commands until "quit" or the end of in.
func (p *Protocol) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "othello":
			p.handleHello()
		case "isready":
			p.println("readyok")
		case "newgame":
			p.handleNewGame()
		case "position":
			p.handlePosition(args)
		case "go":
			p.handleGo(args)
		case "play":
			p.handlePlay(args)
		case "setoption":
			p.handleSetOption(args)
		case "moves":
			p.handleMoves()
		case "eval":
			p.printf("eval %d\n", p.engine.Evaluate(p.board, p.toMove))
		case "quit":
			return nil
		// Debug commands
		case "d":
			p.handleDisplay()
		case "perft":
			p.handlePerft(args)
		default:
			p.printf("info string unknown command %s\n", cmd)
		}
	}

	return errors.Wrap(scanner.Err(), "read command")
}

// Board returns the current position and the side to move.
func (p *Protocol) Board() (board.Board, board.Player) {
	return p.board, p.toMove
}

func (p *Protocol) println(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *Protocol) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// handleHello responds to the "othello" command.
func (p *Protocol) handleHello() {
	p.println("id name OthelloPlay")
	p.println("id author OthelloPlay Team")
	p.println("")
	p.println("option name Difficulty type combo default medium var easy var medium var hard")
	p.println("option name Depth type spin default 3 min 1 max 64")
	p.println("protocolok")
}

// handleNewGame resets to the starting position.
func (p *Protocol) handleNewGame() {
	p.board = board.NewBoard()
	p.toMove = board.Player1
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e4 f5
//   - position layout <layout> [x|o]
//   - position layout <layout> [x|o] moves c3
func (p *Protocol) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesAt = i
			break
		}
	}
	setup := args[:movesAt]
	var moves []string
	if movesAt < len(args) {
		moves = args[movesAt+1:]
	}

	var (
		b      board.Board
		toMove board.Player
	)
	switch args[0] {
	case "startpos":
		b, toMove = board.NewBoard(), board.Player1
	case "layout":
		var err error
		b, toMove, err = board.ParseLayout(strings.Join(setup[1:], " "))
		if err != nil {
			log.Warn().Err(err).Msg("rejected position")
			p.printf("info string %v\n", err)
			return
		}
	default:
		return
	}

	for _, moveStr := range moves {
		next, err := applyMoveString(b, toMove, moveStr)
		if err != nil {
			p.printf("info string invalid move %s\n", moveStr)
			return
		}
		b, toMove = next, toMove.Other()
	}

	p.board, p.toMove = b, toMove
}

// applyMoveString parses and plays one move.
func applyMoveString(b board.Board, toMove board.Player, moveStr string) (board.Board, error) {
	sq, err := board.ParseSquare(moveStr)
	if err != nil {
		return b, err
	}
	next, _, err := board.ApplyMove(b, toMove, sq)
	return next, err
}

// handleGo searches the current position.
// Formats:
//   - go
//   - go depth N
func (p *Protocol) handleGo(args []string) {
	limits := engine.SearchLimits{Depth: p.engine.Depth()}
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				limits.Depth = d
			}
		}
	}

	p.engine.OnInfo = p.sendInfo
	defer func() { p.engine.OnInfo = nil }()

	move, err := p.engine.SearchWithLimits(p.board, p.toMove, limits)
	if errors.Is(err, engine.ErrNoLegalMoves) {
		p.println("bestmove none")
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("search failed")
		p.println("bestmove none")
		return
	}

	p.printf("bestmove %s\n", move)
}

// sendInfo outputs search info.
func (p *Protocol) sendInfo(info engine.SearchInfo) {
	p.printf("info depth %d score %d nodes %d\n", info.Depth, info.Score, info.Nodes)
}

// handlePlay applies a move for the side to move.
func (p *Protocol) handlePlay(args []string) {
	if len(args) == 0 {
		p.println("info string play needs a square")
		return
	}

	next, err := applyMoveString(p.board, p.toMove, args[0])
	if err != nil {
		p.printf("info string illegal move %s\n", args[0])
		return
	}
	p.board, p.toMove = next, p.toMove.Other()

	if p.board.IsTerminal() {
		p.printf("info string game over %s\n", p.board.Outcome())
	}
}

// handleSetOption processes "setoption" commands.
// Format: setoption name <name> value <value>
func (p *Protocol) handleSetOption(args []string) {
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch args[i] {
		case "name":
			name = args[i+1]
		case "value":
			value = args[i+1]
		}
	}

	switch strings.ToLower(name) {
	case "difficulty":
		d, ok := engine.ParseDifficulty(strings.ToLower(value))
		if !ok {
			p.printf("info string unknown difficulty %s\n", value)
			return
		}
		p.engine.SetDifficulty(d)
	case "depth":
		depth, err := strconv.Atoi(value)
		if err != nil || depth < 1 {
			p.printf("info string invalid depth %s\n", value)
			return
		}
		p.engine.SetDepth(p.engine.Difficulty(), depth)
	default:
		p.printf("info string unknown option %s\n", name)
	}
}

// handleMoves lists the legal destinations in row-major order.
func (p *Protocol) handleMoves() {
	var sb strings.Builder
	sb.WriteString("moves")
	for _, sq := range p.board.LegalMovesFor(p.toMove) {
		sb.WriteByte(' ')
		sb.WriteString(sq.String())
	}
	p.println(sb.String())
}

// handleDisplay prints the board with its layout and disc counts.
func (p *Protocol) handleDisplay() {
	p.printf("%s", p.board)
	p.printf("Layout: %s\n", p.board.Layout(p.toMove))
	p.printf("Discs: x=%d o=%d\n", p.board.Count(board.Player1), p.board.Count(board.Player2))
}

// handlePerft runs a perft test.
func (p *Protocol) handlePerft(args []string) {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			p.printf("info string invalid depth %s\n", args[0])
			return
		}
		depth = d
	}

	start := time.Now()
	nodes := p.engine.Perft(p.board, p.toMove, depth)
	elapsed := time.Since(start)

	p.printf("Nodes: %d\n", nodes)
	p.printf("Time: %v\n", elapsed)
}
