package board

// ApplyMove mutates pos to reflect making m, pushing a full snapshot of
// the prior state onto the rewind stack first. Grounded on
// original_source/Thera/include/Thera/Board.hpp's rewindStack-of-
// BoardState-copies design and src/Board.cpp's applyMove ordering:
// remove castling rights for the squares involved, remove any captured
// piece, move the mover, handle promotion/en-passant/castling's
// auxiliary rook step, then update the en-passant target, clocks, side
// to move, and checkers. The Zobrist hash is still maintained
// incrementally via XOR even though state restoration itself goes
// through the snapshot stack, satisfying the Zobrist-consistency
// testable property (spec §8).
func (p *Position) ApplyMove(m Move) {
	p.rewind = append(p.rewind, p.snapshot())

	us := p.SideToMove
	them := us.Other()

	p.removeCastlingRights(m.From)
	p.removeCastlingRights(m.To)

	p.HalfMoveClock++

	moving := p.PieceAt(m.From)
	if moving.Type() == Pawn {
		p.HalfMoveClock = 0
	}

	switch m.Flag {
	case FlagEnPassant:
		capSq := NewSquare(m.To.File(), m.From.Rank())
		p.zobristRemove(p.removePiece(capSq), capSq)
		p.zobristMove(moving, m.From, m.To)
		p.movePiece(m.From, m.To)
		p.HalfMoveClock = 0

	case FlagCastling:
		p.zobristMove(moving, m.From, m.To)
		p.movePiece(m.From, m.To)
		rook := p.PieceAt(m.RookFrom)
		p.zobristMove(rook, m.RookFrom, m.RookTo)
		p.movePiece(m.RookFrom, m.RookTo)

	case FlagPromotion:
		if captured := p.PieceAt(m.To); captured != NoPiece {
			p.zobristRemove(p.removePiece(m.To), m.To)
			p.HalfMoveClock = 0
		}
		p.zobristRemove(p.removePiece(m.From), m.From)
		promoted := NewPiece(m.Promo, us)
		p.setPiece(promoted, m.To)
		p.zobristAdd(promoted, m.To)

	default: // FlagNormal, FlagDoublePawnPush
		if captured := p.PieceAt(m.To); captured != NoPiece {
			p.zobristRemove(p.removePiece(m.To), m.To)
			p.HalfMoveClock = 0
		}
		p.zobristMove(moving, m.From, m.To)
		p.movePiece(m.From, m.To)
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	}
	if m.Flag == FlagDoublePawnPush {
		p.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	} else {
		p.EnPassant = NoSquare
	}

	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = them
	p.Hash ^= ZobristSideToMove()

	p.UpdateCheckers()
	p.repetitions[p.Hash]++
}

// RewindMove pops the most recent ApplyMove snapshot and restores it
// verbatim. Panics via assertf in debug builds if the stack is empty —
// spec §7 calls this "no move to undo", reported as an explicit error by
// the caller-facing RewindMoveChecked below.
func (p *Position) RewindMove() {
	assertf(len(p.rewind) > 0, "RewindMove: no move to undo")
	if len(p.rewind) == 0 {
		return
	}

	p.repetitions[p.Hash]--
	last := len(p.rewind) - 1
	p.restore(p.rewind[last])
	p.rewind = p.rewind[:last]
}

// RewindMoveChecked is the error-returning counterpart to RewindMove for
// callers (UCI/TUI) that must surface "no move to undo" as a normal error
// rather than a programmer-bug panic.
func (p *Position) RewindMoveChecked() error {
	if len(p.rewind) == 0 {
		return errNoMoveToUndo
	}
	p.RewindMove()
	return nil
}

// CanRewind reports whether there is a move to undo.
func (p *Position) CanRewind() bool {
	return len(p.rewind) > 0
}

func (p *Position) snapshot() boardState {
	return boardState{
		Pieces:         p.Pieces,
		Occupied:       p.Occupied,
		AllOccupied:    p.AllOccupied,
		all:            p.all,
		SideToMove:     p.SideToMove,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		KingSquare:     p.KingSquare,
		Checkers:       p.Checkers,
	}
}

func (p *Position) restore(s boardState) {
	p.Pieces = s.Pieces
	p.Occupied = s.Occupied
	p.AllOccupied = s.AllOccupied
	p.all = s.all
	p.SideToMove = s.SideToMove
	p.CastlingRights = s.CastlingRights
	p.EnPassant = s.EnPassant
	p.HalfMoveClock = s.HalfMoveClock
	p.FullMoveNumber = s.FullMoveNumber
	p.Hash = s.Hash
	p.KingSquare = s.KingSquare
	p.Checkers = s.Checkers
}

// removeCastlingRights clears whichever castling right corresponds to a
// king or rook leaving its home square, grounded on original_source/
// Thera/src/Board.cpp's removeCastlings switch over corner/king squares.
func (p *Position) removeCastlingRights(sq Square) {
	var cleared CastlingRights
	switch sq {
	case A1:
		cleared = WhiteQueenSideCastle
	case H1:
		cleared = WhiteKingSideCastle
	case E1:
		cleared = WhiteKingSideCastle | WhiteQueenSideCastle
	case A8:
		cleared = BlackQueenSideCastle
	case H8:
		cleared = BlackKingSideCastle
	case E8:
		cleared = BlackKingSideCastle | BlackQueenSideCastle
	default:
		return
	}
	if p.CastlingRights&cleared != 0 {
		p.Hash ^= ZobristCastling(p.CastlingRights)
		p.CastlingRights &^= cleared
		p.Hash ^= ZobristCastling(p.CastlingRights)
	}
}

func (p *Position) zobristAdd(piece Piece, sq Square) {
	p.Hash ^= ZobristPiece(piece, sq)
}

func (p *Position) zobristRemove(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	p.Hash ^= ZobristPiece(piece, sq)
}

func (p *Position) zobristMove(piece Piece, from, to Square) {
	p.Hash ^= ZobristPiece(piece, from)
	p.Hash ^= ZobristPiece(piece, to)
}
