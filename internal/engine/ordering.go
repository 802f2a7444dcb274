package engine

import (
	"github.com/Robotino04/thera/internal/board"
)

// Move ordering score bases, reproduced from original_source/Thera/src/
// search.cpp's preorderMoves: captures and promotions get a flat score
// band far above quiet moves (which are left unordered, exactly as the
// original leaves them at score 0), so iterative deepening searches the
// moves most likely to cut off first.
const (
	winningCaptureScore = 8_000_000
	losingCaptureScore  = 2_000_000
	promotionScore      = 6_000_000
)

// ScoreMoves assigns an ordering score to every move in moves. them is
// the color not to move, whose attack data decides whether a capture's
// destination square is defended.
func ScoreMoves(pos *board.Position, moves *board.MoveList, them board.Color) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = scoreMove(pos, moves.Get(i), them)
	}
	return scores
}

func isCapture(pos *board.Position, m board.Move, them board.Color) bool {
	return m.Flag == board.FlagEnPassant || pos.Occupied[them].IsSet(m.To)
}

// scoreMove scores a single move per spec.md §4.5's move-ordering rule.
func scoreMove(pos *board.Position, m board.Move, them board.Color) int {
	if m.Flag == board.FlagPromotion {
		return promotionScore + pieceValues[m.Promo]
	}

	if isCapture(pos, m, them) {
		attacker := pos.PieceAt(m.From).Type()
		victim := board.Pawn
		if m.Flag != board.FlagEnPassant {
			victim = pos.PieceAt(m.To).Type()
		}
		diff := pieceValues[victim] - pieceValues[attacker]

		base := winningCaptureScore
		if pos.IsSquareAttacked(m.To, them) && diff < 0 {
			base = losingCaptureScore
		}
		return base + diff
	}

	return 0
}

// SortMoves sorts moves by descending score. A selection sort is ample:
// positions rarely have more than a few dozen legal moves.
func SortMoves(moves *board.MoveList, scores []int) {
	n := moves.Len()
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// PickMove moves the best-scoring move among moves[index:] into index,
// enabling lazy selection-sort-as-you-go during search.
func PickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}
