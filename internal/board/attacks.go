package board

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by. Grounded on original_source/Thera/src/perft.cpp's isSquareAttacked:
// a brute-force walk of every attacking pattern from sq, sharing the same
// ray/jump tables the move generator uses, rather than precomputed attack
// bitboards intersected against occupancy — simpler to keep in lockstep
// with movegen.go as both evolve.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if pawnAttacksSquare(p, sq, by) {
		return true
	}
	for _, to := range KnightAttacks(sq) {
		if p.Pieces[by][Knight].IsSet(to) {
			return true
		}
	}
	for _, to := range KingStepAttacks(sq) {
		if p.Pieces[by][King].IsSet(to) {
			return true
		}
	}
	return slidingAttacksSquare(p, sq, by)
}

// pawnAttacksSquare reports whether a pawn of color `by` attacks sq: it
// must sit one diagonal step behind sq from by's own forward direction.
func pawnAttacksSquare(p *Position, sq Square, by Color) bool {
	pawnBB := p.Pieces[by][Pawn]
	if pawnBB == 0 {
		return false
	}
	back := -1
	if by == Black {
		back = 1
	}
	rank := sq.Rank() + back
	if rank < 0 || rank > 7 {
		return false
	}
	for _, df := range [2]int{-1, 1} {
		file := sq.File() + df
		if file >= 0 && file <= 7 && pawnBB.IsSet(NewSquare(file, rank)) {
			return true
		}
	}
	return false
}

// slidingAttacksSquare reports whether a rook/bishop/queen of color `by`
// attacks sq along any of the eight ray directions.
func slidingAttacksSquare(p *Position, sq Square, by Color) bool {
	for _, pt := range [2]PieceType{Rook, Bishop} {
		for _, dir := range rayDirIndex(pt) {
			for _, to := range raySquares[sq][dir] {
				if !p.AllOccupied.IsSet(to) {
					continue
				}
				if p.Pieces[by][pt].IsSet(to) || p.Pieces[by][Queen].IsSet(to) {
					return true
				}
				break
			}
		}
	}
	return false
}

// UpdateCheckers recomputes p.Checkers: the set of enemy pieces currently
// attacking the side-to-move's king. Called by ApplyMove and after FEN
// load; RewindMove restores the saved Checkers value instead.
func (p *Position) UpdateCheckers() {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]
	if ksq == NoSquare {
		p.Checkers = 0
		return
	}

	var checkers Bitboard

	if pawnAttacksSquare(p, ksq, them) {
		back := -1
		if them == Black {
			back = 1
		}
		rank := ksq.Rank() + back
		for _, df := range [2]int{-1, 1} {
			file := ksq.File() + df
			if file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
				sq := NewSquare(file, rank)
				if p.Pieces[them][Pawn].IsSet(sq) {
					checkers |= SquareBB(sq)
				}
			}
		}
	}

	for _, to := range KnightAttacks(ksq) {
		if p.Pieces[them][Knight].IsSet(to) {
			checkers |= SquareBB(to)
		}
	}

	for _, pt := range [2]PieceType{Rook, Bishop} {
		for _, dir := range rayDirIndex(pt) {
			for _, to := range raySquares[ksq][dir] {
				if !p.AllOccupied.IsSet(to) {
					continue
				}
				if p.Pieces[them][pt].IsSet(to) || p.Pieces[them][Queen].IsSet(to) {
					checkers |= SquareBB(to)
				}
				break
			}
		}
	}

	p.Checkers = checkers
}
