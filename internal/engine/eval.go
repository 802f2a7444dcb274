// Package engine implements the search and evaluation layer on top of
// internal/board.
package engine

import (
	"github.com/Robotino04/thera/internal/board"
)

// Material values in centipawns, reproduced from board.PieceValue so
// this package need not re-derive them (single source of truth stays in
// internal/board, which the Zobrist/FEN layers also consult).
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = board.PieceValue

// pieceSquareTables holds one 64-entry table per piece type, indexed
// [board.PieceType][board.Square], values from White's perspective and
// mirrored (via Square.Mirror) for Black. Reproduced verbatim from
// original_source/Thera/src/search.cpp's EvaluationValues::
// simplifiedEvalScores (https://www.chessprogramming.org/Simplified_Evaluation_Function),
// reindexed from that file's rank-8-to-rank-1 array literal order into
// this package's rank-1-to-rank-8 Square numbering.
var pieceSquareTables = [6][64]int{
	// Pawn
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight
	{
		-50, -35, -30, -30, -30, -30, -35, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	// Bishop
	{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	// Rook
	{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Queen
	{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	// King (middlegame-weighted; endgameKingEval below supplies the
	// endgame-specific king-activity term instead of a separate
	// endgame PST).
	{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// material returns the side's total piece value, pawn through queen and
// king, exactly as getMaterial in search.cpp.
func material(pos *board.Position, c board.Color) int {
	score := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		score += pos.Pieces[c][pt].PopCount() * pieceValues[pt]
	}
	return score
}

// piecePositionValue sums the piece-square bonus for every piece of type
// pt belonging to color c, mirroring Black's squares so both colors read
// the same White-oriented table (search.cpp's getPiecePositionValue,
// using board.getBitboard(...).flipped() for Black).
func piecePositionValue(pos *board.Position, pt board.PieceType, c board.Color) int {
	bb := pos.Pieces[c][pt]
	score := 0
	for bb != 0 {
		sq := bb.PopLSB()
		if c == board.Black {
			sq = sq.Mirror()
		}
		score += pieceSquareTables[pt][sq]
	}
	return score
}

// maxNonKingMaterial is the material remaining (both sides combined,
// excluding kings) below which endgameKingEval begins to contribute, matching
// search.cpp's maxMaterial: two rooks plus a minor pair.
const maxNonKingMaterial = 2*RookValue + KnightValue + BishopValue

// manhattanDistance returns the taxicab distance between two squares.
func manhattanDistance(a, b board.Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}

// distanceFromCenter measures how far a square sits from the board's
// central 2x2, used to push the losing side's king toward the edge in
// the endgame.
func distanceFromCenter(sq board.Square) int {
	fileDist := 3 - sq.File()
	if sq.File()-4 > fileDist {
		fileDist = sq.File() - 4
	}
	rankDist := 3 - sq.Rank()
	if sq.Rank()-4 > rankDist {
		rankDist = sq.Rank() - 4
	}
	return fileDist + rankDist
}

// endgameKingEval drives the losing side's king toward the board edge
// and the winning side's king toward its opponent as material
// disappears, reproduced from search.cpp's endgameKingEval. gameDirection
// is positive when the position already favors the winning side, so the
// pressure is only applied against the side that's actually losing.
func endgameKingEval(pos *board.Position, endgameProgress float64, losingSide board.Color, gameDirection float64) int {
	if gameDirection <= 0 {
		return 0
	}

	losingKing := pos.KingSquare[losingSide]
	winningKing := pos.KingSquare[losingSide.Other()]

	eval := distanceFromCenter(losingKing)
	eval += 14 - manhattanDistance(winningKing, losingKing)

	return int(float64(eval) * 10 * endgameProgress)
}

// Evaluate scores pos from the side-to-move's perspective, in centipawns.
// Grounded on original_source/Thera/src/search.cpp's evaluate: material,
// then piece-square tables tapered out as non-king material disappears,
// then an endgame king-activity term that pushes the losing king toward
// the edge and the winning king toward it. Threefold repetition (spec
// §4.4) short-circuits to an immediate draw score before any of that is
// computed.
func Evaluate(pos *board.Position) int {
	if pos.RepetitionCount() >= 3 {
		return 0
	}

	us := pos.SideToMove
	them := us.Other()

	eval := material(pos, us) - material(pos, them)

	materialLeft := material(pos, us) + material(pos, them) - 2*KingValue
	gameDirection := 1.0
	if eval < 0 {
		gameDirection = -1.0
	}
	endgameProgress := 1.0 - min1(float64(materialLeft)/float64(maxNonKingMaterial))

	for pt := board.Pawn; pt <= board.King; pt++ {
		usPST := piecePositionValue(pos, pt, us)
		themPST := piecePositionValue(pos, pt, them)
		eval += int(float64(usPST) * (1.0 - endgameProgress))
		eval -= int(float64(themPST) * (1.0 - endgameProgress))
	}

	eval += endgameKingEval(pos, endgameProgress, them, gameDirection)
	eval -= endgameKingEval(pos, endgameProgress, us, -gameDirection)

	return eval
}

func min1(x float64) float64 {
	if x > 1.0 {
		return 1.0
	}
	return x
}
