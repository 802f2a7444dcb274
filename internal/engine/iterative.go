package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Robotino04/thera/internal/board"
)

// rootMove pairs a root move with the score and principal variation its
// last completed search found.
type rootMove struct {
	move  board.Move
	score int
	pv    []board.Move
}

// IterationInfo reports the result of one completed iterative-deepening
// iteration, for UCI/TUI "info" output.
type IterationInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// extractPV copies the principal variation accumulated from ply onward
// in s.pv.
func (s *Searcher) extractPV(ply int) []board.Move {
	pv := make([]board.Move, 0, s.pv.length[ply]-ply)
	for i := ply; i < s.pv.length[ply]; i++ {
		pv = append(pv, s.pv.moves[ply][i])
	}
	return pv
}

// IterativeDeepening searches pos from depth 1 up to maxDepth (or until
// deadline/Stop), reusing each iteration's move ordering for the next as
// spec.md §4.5 requires, and returns the best move found. A zero deadline
// means no time limit. onIteration, if non-nil, is invoked with each
// completed depth's info. The stop flag is not cleared here: a Stop issued
// before the call (Context.Go clears the flag when starting a search) ends
// the search before its first iteration.
func (s *Searcher) IterativeDeepening(pos *board.Position, maxDepth int, deadline time.Time, onIteration func(IterationInfo)) board.Move {
	s.pos = pos.Copy()
	s.nodes = 0

	root := board.LegalMoves(s.pos)
	if root.Len() == 0 {
		return board.NoMove
	}

	moves := make([]rootMove, root.Len())
	for i := 0; i < root.Len(); i++ {
		moves[i] = rootMove{move: root.Get(i)}
	}

	start := time.Now()
	var best board.Move
	if len(moves) > 0 {
		best = moves[0].move
	}
	var lastDepth int

	for depth := 1; depth <= maxDepth; depth++ {
		if s.stopFlag.Load() {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		alpha, beta := -Infinity, Infinity
		stopped := false

		for i := range moves {
			s.pos.ApplyMove(moves[i].move)
			ext := searchExtension(s.pos, moves[i].move)
			// The window's lower edge sits one below alpha, so a move that
			// only fails low scores below alpha and cannot tie with the best.
			score := -s.negamax(depth-1+ext, 1, -beta, -(alpha - 1))
			pv := s.extractPV(1)
			s.pos.RewindMove()

			if s.stopFlag.Load() {
				stopped = true
				break
			}

			moves[i].score = score
			moves[i].pv = pv
			if score > alpha {
				alpha = score
			}
		}
		if stopped {
			break
		}

		sort.SliceStable(moves, func(a, b int) bool { return moves[a].score > moves[b].score })
		best = moves[0].move
		lastDepth = depth

		if onIteration != nil {
			fullPV := append([]board.Move{best}, moves[0].pv...)
			onIteration(IterationInfo{
				Depth: depth,
				Score: moves[0].score,
				Nodes: s.Nodes(),
				Time:  time.Since(start),
				PV:    fullPV,
			})
		}

		if abs(moves[0].score) >= MateScore-MaxPly {
			break
		}
	}

	if lastDepth == 0 {
		return best
	}
	return pickBestWithTieBreak(moves)
}

// pickBestWithTieBreak mirrors original_source/Thera/src/search.cpp's
// getRandomBestMove: among root moves sharing the top score, pick one at
// random rather than always the first generated.
func pickBestWithTieBreak(moves []rootMove) board.Move {
	if len(moves) == 0 {
		return board.NoMove
	}
	bestScore := moves[0].score
	var tied []board.Move
	for _, m := range moves {
		if m.score < bestScore {
			break
		}
		tied = append(tied, m.move)
	}
	return tied[rand.Intn(len(tied))]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
