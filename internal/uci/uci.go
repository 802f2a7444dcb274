// Package uci implements the Universal Chess Interface protocol on top of
// internal/engine's Context/Searcher.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Robotino04/thera/internal/board"
	"github.com/Robotino04/thera/internal/engine"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	ctx      *engine.Context
	position *board.Position

	searching bool
}

// New creates a new UCI protocol handler around a fresh engine context
// with the given transposition table size in megabytes.
func New(ttSizeMB int) *UCI {
	u := &UCI{
		ctx:      engine.NewContext(ttSizeMB),
		position: board.NewPosition(),
	}
	u.ctx.OnIteration = u.sendInfo
	u.ctx.OnBestMove = u.sendBestMove
	go u.ctx.Run()
	return u
}

// Run starts the UCI main loop, reading commands from stdin until "quit"
// or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleQuit()
			return
		case "setoption":
			// No tunable options are exposed beyond Hash, which would
			// require reallocating the transposition table; accepted
			// but ignored.
		case "d":
			fmt.Println(u.position.String())
		case "perft":
			u.handlePerft(args)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name Thera")
	fmt.Println("id author Thera Contributors")
	fmt.Println()
	fmt.Println("option name Hash type spin default 64 min 1 max 4096")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.handleStop()
	u.ctx.TranspositionTable().Clear()
	u.position = board.NewPosition()
}

// handlePosition parses and sets up a position.
//
//	position startpos
//	position startpos moves e2e4 e7e5
//	position fen <fen>
//	position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	case "fen":
		fenEnd := len(args)
		for i, arg := range args[1:] {
			if arg == "moves" {
				fenEnd = i + 1
				break
			}
		}
		fenStr := strings.Join(args[1:fenEnd], " ")
		pos, err := board.ParseFEN(fenStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid FEN: %v\n", err)
			return
		}
		u.position = pos
		moveStart = len(args)
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	default:
		return
	}

	for moveStart < len(args) {
		move, err := board.ParseMove(args[moveStart], u.position)
		legal := board.LegalMoves(u.position)
		if err != nil || !legal.Contains(move) {
			fmt.Fprintf(os.Stderr, "info string invalid move: %s\n", args[moveStart])
			return
		}
		u.position.ApplyMove(move)
		moveStart++
	}
}

// goOptions holds parsed "go" command arguments.
type goOptions struct {
	Depth     int
	MoveTime  time.Duration
	Infinite  bool
	WTime     time.Duration
	BTime     time.Duration
	WInc      time.Duration
	BInc      time.Duration
	MovesToGo int
}

func (u *UCI) handleGo(args []string) {
	opts := u.parseGoOptions(args)
	params := engine.Params{Depth: opts.Depth}

	switch {
	case opts.Infinite:
		// Depth 0 means MaxPly, no deadline.
	case opts.MoveTime > 0:
		params.MoveTime = opts.MoveTime
	case opts.WTime > 0 || opts.BTime > 0:
		params.MoveTime = u.timeForMove(opts)
	}

	u.searching = true
	u.ctx.Go(u.position, params)
}

func (u *UCI) parseGoOptions(args []string) goOptions {
	var opts goOptions

	readMS := func(i int) (time.Duration, int) {
		if i+1 >= len(args) {
			return 0, i
		}
		ms, _ := strconv.Atoi(args[i+1])
		return time.Duration(ms) * time.Millisecond, i + 1
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				opts.Depth, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movetime":
			opts.MoveTime, i = readMS(i)
		case "infinite":
			opts.Infinite = true
		case "wtime":
			opts.WTime, i = readMS(i)
		case "btime":
			opts.BTime, i = readMS(i)
		case "winc":
			opts.WInc, i = readMS(i)
		case "binc":
			opts.BInc, i = readMS(i)
		case "movestogo":
			if i+1 < len(args) {
				opts.MovesToGo, _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}

	return opts
}

// timeForMove implements spec.md's time budget: inc + max(timeLeft/(160 -
// moveNumber), 10ms). moveNumber is approximated from the full-move
// counter, which tracks how far into the game the current position is.
func (u *UCI) timeForMove(opts goOptions) time.Duration {
	var timeLeft, inc time.Duration
	if u.position.SideToMove == board.White {
		timeLeft, inc = opts.WTime, opts.WInc
	} else {
		timeLeft, inc = opts.BTime, opts.BInc
	}

	moveNumber := u.position.FullMoveNumber
	divisor := 160 - moveNumber
	if divisor < 1 {
		divisor = 1
	}

	share := timeLeft / time.Duration(divisor)
	if share < 10*time.Millisecond {
		share = 10 * time.Millisecond
	}
	return inc + share
}

func (u *UCI) sendInfo(info engine.IterationInfo) {
	var parts []string
	parts = append(parts, fmt.Sprintf("depth %d", info.Depth))

	switch {
	case info.Score > engine.MateScore-engine.MaxPly:
		mateIn := (engine.MateScore - info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	case info.Score < -engine.MateScore+engine.MaxPly:
		mateIn := -(engine.MateScore + info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	default:
		parts = append(parts, fmt.Sprintf("score cp %d", info.Score))
	}

	parts = append(parts, fmt.Sprintf("nodes %d", info.Nodes))
	parts = append(parts, fmt.Sprintf("time %d", info.Time.Milliseconds()))
	if info.Time > 0 {
		nps := uint64(float64(info.Nodes) / info.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	parts = append(parts, fmt.Sprintf("hashfull %d", u.ctx.TranspositionTable().HashFull()))

	if len(info.PV) > 0 {
		strs := make([]string, len(info.PV))
		for i, m := range info.PV {
			strs[i] = m.String()
		}
		parts = append(parts, "pv "+strings.Join(strs, " "))
	}

	fmt.Printf("info %s\n", strings.Join(parts, " "))
}

func (u *UCI) sendBestMove(move board.Move) {
	u.searching = false
	if move.IsNone() {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %s\n", move.String())
}

func (u *UCI) handleStop() {
	if u.searching {
		u.ctx.Stop()
	}
}

func (u *UCI) handleQuit() {
	u.handleStop()
	u.ctx.Quit()
}

func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		depth, _ = strconv.Atoi(args[0])
	}
	bulkCounting := true
	if len(args) > 1 {
		bulkCounting = args[1] != "0"
	}

	start := time.Now()
	entries, nodes := board.Divide(u.position, depth, bulkCounting)
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("NPS: %.0f\n", nps)
	}
}
