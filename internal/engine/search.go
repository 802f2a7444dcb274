package engine

import (
	"sync/atomic"

	"github.com/Robotino04/thera/internal/board"
)

// Search bounds. MateScore sits comfortably below Infinity so that
// distance-to-mate adjustment (AdjustScoreToTT/FromTT) never overflows
// into the "infinite" sentinel.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128

	// TTMoveScore pushes the transposition table's remembered best move
	// to the very front of move ordering.
	TTMoveScore = 10_000_000
)

// PVTable stores the principal variation accumulated during the last
// search, triangular-array style.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher performs iterative-deepening negamax search with alpha-beta
// pruning, quiescence, and a transposition table, grounded on
// original_source/Thera/src/search.cpp's negamax/capturesOnlyNegamax/
// search functions. Per spec §5, search itself is single-threaded: a
// Searcher is used from exactly one goroutine at a time (internal/engine's
// Context serializes access from the UCI/TUI front-ends).
type Searcher struct {
	pos *board.Position
	tt  *TranspositionTable

	nodes    uint64
	stopFlag atomic.Bool

	pv PVTable
}

// NewSearcher creates a Searcher sharing the given transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// Stop requests the in-progress search abort at its next cooperative
// check point: negamax polls the flag on entry once every 2048 nodes and
// after every child search returns, and quiescence polls it on every entry.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

func (s *Searcher) reset() {
	s.stopFlag.Store(false)
	s.nodes = 0
}

// Nodes returns the number of nodes visited during the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs negamax to the given depth from pos (a scratch copy is
// searched; pos itself is left untouched) and returns the best move
// found along with its score from the side-to-move's perspective.
func (s *Searcher) Search(pos *board.Position, depth int) (board.Move, int) {
	s.pos = pos.Copy()
	s.reset()

	score := s.negamax(depth, 0, -Infinity, Infinity)

	var bestMove board.Move
	if s.pv.length[0] > 0 {
		bestMove = s.pv.moves[0][0]
	}
	return bestMove, score
}

// Stopped reports whether the last search was cut short by Stop.
func (s *Searcher) Stopped() bool {
	return s.stopFlag.Load()
}

// negamax implements spec.md §4.5's negamax algorithm.
func (s *Searcher) negamax(depth, ply int, alpha, beta int) int {
	if s.nodes&2047 == 0 && s.stopFlag.Load() {
		return 0
	}
	s.nodes++
	s.pv.length[ply] = ply

	if s.pos.RepetitionCount() >= 3 || s.pos.HalfMoveClock >= 100 {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(ply, alpha, beta)
	}

	var ttMove board.Move
	if entry, found := s.tt.Probe(s.pos.Hash); found {
		ttMove = entry.BestMove
		if int(entry.Depth) >= depth {
			score := AdjustScoreFromTT(int(entry.Score), ply)
			switch entry.Flag {
			case TTExact:
				return score
			case TTLowerBound:
				if score > alpha {
					alpha = score
				}
			case TTUpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	var pseudo, legal board.MoveList
	board.GeneratePseudoLegal(s.pos, &pseudo, board.GenAll)
	board.FilterLegal(s.pos, &pseudo, &legal)

	if legal.Len() == 0 {
		if s.pos.InCheck() {
			return -MateScore + ply
		}
		return 0
	}

	them := s.pos.SideToMove.Other()
	scores := ScoreMoves(s.pos, &legal, them)
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == ttMove {
			scores[i] = TTMoveScore
		}
	}

	bestScore := -Infinity
	bestMove := board.NoMove
	flag := TTUpperBound
	oldAlpha := alpha

	for i := 0; i < legal.Len(); i++ {
		PickMove(&legal, scores, i)
		move := legal.Get(i)

		s.pos.ApplyMove(move)
		ext := searchExtension(s.pos, move)
		score := -s.negamax(depth-1+ext, ply+1, -beta, -alpha)
		s.pos.RewindMove()

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
			if score > alpha {
				alpha = score
				s.updatePV(ply, move)
			}
		}
		if alpha > beta {
			break
		}
	}

	switch {
	case bestScore <= oldAlpha:
		flag = TTUpperBound
	case bestScore >= beta:
		flag = TTLowerBound
	default:
		flag = TTExact
	}
	s.tt.Store(s.pos.Hash, depth, AdjustScoreToTT(bestScore, ply), flag, bestMove)

	return bestScore
}

// searchExtension implements spec §4.5's "+1 for check, +1 for
// promotion" extension, capped at +1 total (two simultaneous extensions
// on the same move would otherwise let adversarial lines stall iterative
// deepening indefinitely).
func searchExtension(pos *board.Position, m board.Move) int {
	if pos.InCheck() {
		return 1
	}
	if m.Flag == board.FlagPromotion {
		return 1
	}
	return 0
}

func (s *Searcher) updatePV(ply int, move board.Move) {
	s.pv.moves[ply][ply] = move
	for j := ply + 1; j < s.pv.length[ply+1]; j++ {
		s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
	}
	s.pv.length[ply] = s.pv.length[ply+1]
}

// quiescence extends the search over captures only, avoiding the horizon
// effect at the leaves of the main search (spec §4.5).
func (s *Searcher) quiescence(ply, alpha, beta int) int {
	if s.stopFlag.Load() {
		return 0
	}
	s.nodes++

	if ply >= MaxPly {
		return Evaluate(s.pos)
	}

	standPat := Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var pseudo, legal board.MoveList
	board.GeneratePseudoLegal(s.pos, &pseudo, board.GenCapturesOnly)
	board.FilterLegal(s.pos, &pseudo, &legal)

	them := s.pos.SideToMove.Other()
	scores := ScoreMoves(s.pos, &legal, them)

	for i := 0; i < legal.Len(); i++ {
		PickMove(&legal, scores, i)
		move := legal.Get(i)

		s.pos.ApplyMove(move)
		score := -s.quiescence(ply+1, -beta, -alpha)
		s.pos.RewindMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// GetPV returns the principal variation from the most recent Search
// call, root move first.
func (s *Searcher) GetPV() []board.Move {
	pv := make([]board.Move, s.pv.length[0])
	copy(pv, s.pv.moves[0][:s.pv.length[0]])
	return pv
}
