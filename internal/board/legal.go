package board

// FilterLegal applies each pseudo-legal move in src to pos itself, then
// rewinds it, and keeps only those that leave the mover's own king safe, writing
// survivors into dst (dst and src may be the same list). Grounded on
// original_source/Thera/src/perft.cpp's filterMoves.
//
// Castling legality additionally requires that the king's start square,
// every square it transits, and its destination square are all free of
// attack. The original C++ loop `for(square=start; square!=end;
// square+=direction)` excludes the destination square — spec.md §9
// flags this as a likely latent bug, fixed here by testing the
// destination inclusively.
func FilterLegal(pos *Position, src *MoveList, dst *MoveList) {
	us := pos.SideToMove
	moves := src.Slice()
	var kept MoveList

	for _, m := range moves {
		if m.Flag == FlagCastling && !castlingPathSafe(pos, m, us) {
			continue
		}

		pos.ApplyMove(m)
		kingSq := pos.KingSquare[us]
		safe := !pos.IsSquareAttacked(kingSq, us.Other())
		pos.RewindMove()

		if safe {
			kept.Add(m)
		}
	}

	*dst = kept
}

// castlingPathSafe tests the king's start square, every transit square,
// and the destination square — inclusive of the destination, fixing the
// original's exclusive-of-destination bug.
func castlingPathSafe(pos *Position, m Move, us Color) bool {
	them := us.Other()
	step := 1
	if m.To < m.From {
		step = -1
	}
	for sq := int(m.From); ; sq += step {
		if pos.IsSquareAttacked(Square(sq), them) {
			return false
		}
		if Square(sq) == m.To {
			break
		}
	}
	return true
}

// LegalMoves is a convenience wrapper generating, then filtering, every
// legal move for the side to move.
func LegalMoves(pos *Position) MoveList {
	var pseudo, legal MoveList
	GeneratePseudoLegal(pos, &pseudo, GenAll)
	FilterLegal(pos, &pseudo, &legal)
	return legal
}
