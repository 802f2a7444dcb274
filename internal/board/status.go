package board

// HasLegalMoves reports whether the side to move has at least one legal
// move. It generates and filters the full legal move list to find out.
func (p *Position) HasLegalMoves() bool {
	var pseudo, legal MoveList
	GeneratePseudoLegal(p, &pseudo, GenAll)
	FilterLegal(p, &pseudo, &legal)
	return legal.Len() > 0
}

// IsCheckmate reports whether the side to move is in check with no
// legal reply.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
