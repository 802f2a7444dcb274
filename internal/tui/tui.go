// Package tui implements an interactive ANSI terminal session: it prints
// the board, accepts algebraic or UCI-notation moves, lets the engine
// reply, and supports a handful of debug commands, grounded on
// original_source/CLI/src/playMode.cpp's play loop.
package tui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Robotino04/thera/internal/board"
	"github.com/Robotino04/thera/internal/engine"
)

var (
	lightBG = color.BgHiWhite
	darkBG  = color.BgYellow
	whiteFG = color.FgHiWhite
	blackFG = color.FgBlack

	infoColor  = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed)
)

var pieceGlyphs = [7]string{"P", "N", "B", "R", "Q", "K", "."}

// Session runs one interactive play loop against the engine.
type Session struct {
	pos    *board.Position
	ctx    *engine.Context
	depth  int
	rd     *bufio.Reader
	engine bool // whether the engine replies automatically after a human move
}

// NewSession creates a terminal session starting from the standard
// position, searching to the given default depth.
func NewSession(ttSizeMB, depth int) *Session {
	return &Session{
		pos:   board.NewPosition(),
		ctx:   engine.NewContext(ttSizeMB),
		depth: depth,
		rd:    bufio.NewReader(os.Stdin),
	}
}

// Run drives the read-eval-print loop until the user types "exit" or
// closes stdin.
func (s *Session) Run() {
	go s.ctx.Run()
	defer s.ctx.Quit()

	for {
		s.printBoard()
		fmt.Print("> ")
		line, err := s.rd.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "exit", "quit":
			return
		case "undo":
			s.handleUndo()
		case "perft":
			s.handlePerft(fields[1:])
		case "go":
			s.handleEngineMove()
		case "fen":
			fmt.Println(s.pos.ToFEN())
		default:
			s.handleMove(fields[0])
		}
	}
}

func (s *Session) handleMove(moveStr string) {
	move, err := parseMove(moveStr, s.pos)
	if err != nil {
		errorColor.Printf("invalid move %q: %v\n", moveStr, err)
		return
	}
	s.pos.ApplyMove(move)

	if s.pos.IsCheckmate() {
		infoColor.Println("checkmate")
		return
	}
	if s.pos.IsStalemate() {
		infoColor.Println("stalemate")
	}
}

// parseMove accepts either UCI long algebraic (e2e4) or SAN (Nf3, exd5,
// O-O) input against pos.
func parseMove(s string, pos *board.Position) (board.Move, error) {
	legal := board.LegalMoves(pos)
	if move, err := board.ParseSAN(s, pos); err == nil {
		if legal.Contains(move) {
			return move, nil
		}
	}
	move, err := board.ParseMove(s, pos)
	if err != nil {
		return board.NoMove, err
	}
	if !legal.Contains(move) {
		return board.NoMove, fmt.Errorf("not a legal move")
	}
	return move, nil
}

func (s *Session) handleUndo() {
	if !s.pos.CanRewind() {
		errorColor.Println("no move to undo")
		return
	}
	if err := s.pos.RewindMoveChecked(); err != nil {
		errorColor.Printf("%v\n", err)
	}
}

func (s *Session) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	bulkCounting := true
	if len(args) > 1 {
		bulkCounting = args[1] != "0"
	}

	start := time.Now()
	nodes := board.Perft(s.pos, depth, bulkCounting)
	elapsed := time.Since(start)

	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}
}

// handleEngineMove lets the engine reply in the current position,
// searching to the session's default depth (or until its deadline).
func (s *Session) handleEngineMove() {
	done := make(chan board.Move, 1)
	s.ctx.OnBestMove = func(m board.Move) { done <- m }

	s.ctx.Go(s.pos, engine.Params{Depth: s.depth, Silent: true})
	move := <-done
	if move.IsNone() {
		infoColor.Println("no legal move")
		return
	}

	infoColor.Printf("engine plays %s\n", move.String())
	s.pos.ApplyMove(move)
}

func (s *Session) printBoard() {
	fmt.Println("  a b c d e f g h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := s.pos.PieceAt(sq)

			bg := lightBG
			if (file+rank)%2 == 1 {
				bg = darkBG
			}

			glyph := " "
			fg := whiteFG
			if piece != board.NoPiece {
				glyph = pieceGlyphs[piece.Type()]
				if piece.Color() == board.Black {
					fg = blackFG
				}
			}

			color.New(bg, fg, color.Bold).Printf(" %s ", glyph)
		}
		color.Unset()
		fmt.Printf(" %d\n", rank+1)
	}
	fmt.Println("  a b c d e f g h")
	fmt.Printf("FEN: %s\n", s.pos.ToFEN())
}
