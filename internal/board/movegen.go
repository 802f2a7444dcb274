package board

// GenMode selects which subset of pseudo-legal moves to generate.
// GenCapturesOnly backs quiescence search (spec §4.5), grounded on
// MoveGenerator::capturesOnly in original_source/Thera/src/search.cpp,
// a feature present in the original but dropped by the distilled spec.
type GenMode int

const (
	GenAll GenMode = iota
	GenCapturesOnly
)

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move into ml. "Pseudo-legal" follows original_source/Thera/src/
// MoveGenerator.cpp: sliding/knight/king moves walk until blocked or
// off-board, pawns handle forward/double/diagonal/en-passant/promotion,
// and castling only checks that the squares between king and rook are
// empty — it does NOT check for attacks along the way (legal.go does).
func GeneratePseudoLegal(pos *Position, ml *MoveList, mode GenMode) {
	us := pos.SideToMove
	generateSlidingMoves(pos, ml, us, Rook, mode)
	generateSlidingMoves(pos, ml, us, Bishop, mode)
	generateSlidingMoves(pos, ml, us, Queen, mode)
	generateJumpMoves(pos, ml, us, Knight, mode)
	generateJumpMoves(pos, ml, us, King, mode)
	generatePawnMoves(pos, ml, us, mode)
	if mode == GenAll {
		generateCastlingMoves(pos, ml, us)
	}
}

func generateSlidingMoves(pos *Position, ml *MoveList, us Color, pt PieceType, mode GenMode) {
	bb := pos.Pieces[us][pt]
	for bb != 0 {
		from := bb.PopLSB()
		for _, dir := range rayDirIndex(pt) {
			for _, to := range raySquares[from][dir] {
				if pos.Occupied[us].IsSet(to) {
					break
				}
				isCapture := pos.Occupied[us.Other()].IsSet(to)
				if mode == GenAll || isCapture {
					ml.Add(NewMove(from, to))
				}
				if isCapture {
					break
				}
			}
		}
	}
}

func pieceJumps(pt PieceType, sq Square) []Square {
	if pt == King {
		return KingStepAttacks(sq)
	}
	return KnightAttacks(sq)
}

func generateJumpMoves(pos *Position, ml *MoveList, us Color, pt PieceType, mode GenMode) {
	bb := pos.Pieces[us][pt]
	for bb != 0 {
		from := bb.PopLSB()
		for _, to := range pieceJumps(pt, from) {
			if pos.Occupied[us].IsSet(to) {
				continue
			}
			isCapture := pos.Occupied[us.Other()].IsSet(to)
			if mode == GenCapturesOnly && !isCapture {
				continue
			}
			ml.Add(NewMove(from, to))
		}
	}
}

// generateCastlingMoves emits a castling move whenever the rights flag is
// set and the squares between king and rook are empty. It deliberately
// does NOT test for check-through-attack here: legal.go's FilterLegal is
// the single place applying the (fixed) inclusive three-square test.
func generateCastlingMoves(pos *Position, ml *MoveList, us Color) {
	rank := 0
	if us == Black {
		rank = 7
	}
	kingStart := NewSquare(4, rank)
	if pos.Pieces[us][King].LSB() != kingStart {
		return
	}

	if pos.CastlingRights.CanCastle(us, true) {
		f, g, h := NewSquare(5, rank), NewSquare(6, rank), NewSquare(7, rank)
		if pos.IsEmpty(f) && pos.IsEmpty(g) && pos.Pieces[us][Rook].IsSet(h) {
			ml.Add(NewCastling(kingStart, g, h, f))
		}
	}
	if pos.CastlingRights.CanCastle(us, false) {
		b, c, d, a := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank), NewSquare(0, rank)
		if pos.IsEmpty(b) && pos.IsEmpty(c) && pos.IsEmpty(d) && pos.Pieces[us][Rook].IsSet(a) {
			ml.Add(NewCastling(kingStart, c, a, d))
		}
	}
}

func generatePawnMoves(pos *Position, ml *MoveList, us Color, mode GenMode) {
	bb := pos.Pieces[us][Pawn]
	forward, startRank, promoRank := 1, 1, 7
	if us == Black {
		forward, startRank, promoRank = -1, 6, 0
	}

	for bb != 0 {
		from := bb.PopLSB()
		rank, file := from.Rank(), from.File()

		oneUp := rank + forward
		if oneUp < 0 || oneUp > 7 {
			continue
		}
		oneSq := NewSquare(file, oneUp)
		if mode == GenAll && pos.IsEmpty(oneSq) {
			addPawnMove(ml, from, oneSq, promoRank)
			if rank == startRank {
				twoSq := NewSquare(file, rank+2*forward)
				if pos.IsEmpty(twoSq) {
					ml.Add(NewDoublePawnPush(from, twoSq))
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			cf := file + df
			if cf < 0 || cf > 7 {
				continue
			}
			to := NewSquare(cf, oneUp)
			if pos.Occupied[us.Other()].IsSet(to) {
				addPawnMove(ml, from, to, promoRank)
			} else if pos.EnPassant != NoSquare && to == pos.EnPassant {
				ml.Add(NewEnPassant(from, to))
			}
		}
	}
}

// addPawnMove expands a single pawn destination into four promotion
// moves when it lands on the back rank, or a single normal move (capture
// or quiet — From/To already imply which) otherwise. Grounded on
// original_source/Thera/src/MoveGenerator.cpp's addPawnMove.
func addPawnMove(ml *MoveList, from, to Square, promoRank int) {
	if to.Rank() == promoRank {
		for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			ml.Add(NewPromotion(from, to, promo))
		}
		return
	}
	ml.Add(NewMove(from, to))
}
