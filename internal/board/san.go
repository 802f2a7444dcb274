package board

import "strings"

// ToSAN renders m in Standard Algebraic Notation.
func (m Move) ToSAN(pos *Position) string {
	if m.IsNone() {
		return "-"
	}
	if m.Flag == FlagCastling {
		if m.To.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	piece := pos.PieceAt(m.From)
	if piece == NoPiece {
		return m.String()
	}
	pt := piece.Type()
	isCapture := pos.Occupied[pos.SideToMove.Other()].IsSet(m.To) || m.Flag == FlagEnPassant

	var sb strings.Builder
	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}
	if isCapture {
		if pt == Pawn {
			sb.WriteByte('a' + byte(m.From.File()))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Flag == FlagPromotion {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promo])
	}

	next := pos.Copy()
	next.ApplyMove(m)
	legal := LegalMoves(next)
	if next.InCheck() {
		if legal.Len() == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}

	return sb.String()
}

// disambiguation returns the minimal file/rank/full-square prefix needed
// to distinguish m from other legal moves of the same piece type landing
// on the same square.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	us := pos.SideToMove
	pieces := pos.Pieces[us][pt]

	var candidates []Square
	legal := LegalMoves(pos)
	for _, other := range legal.Slice() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if pieces.IsSet(other.From) {
			candidates = append(candidates, other.From)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(rune('a' + m.From.File()))
	case !sameRank:
		return string(rune('1' + m.From.Rank()))
	default:
		return m.From.String()
	}
}

// ParseSAN parses a SAN move string against the legal moves available in
// pos.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)
	legal := LegalMoves(pos)

	if s == "O-O" || s == "0-0" {
		for _, m := range legal.Slice() {
			if m.Flag == FlagCastling && m.To.File() == 6 {
				return m, nil
			}
		}
		return NoMove, errMoveNotFound
	}
	if s == "O-O-O" || s == "0-0-0" {
		for _, m := range legal.Slice() {
			if m.Flag == FlagCastling && m.To.File() == 2 {
				return m, nil
			}
		}
		return NoMove, errMoveNotFound
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promo := NoPieceType
	if idx := strings.Index(s, "="); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promo = Knight
		case 'B':
			promo = Bishop
		case 'R':
			promo = Rook
		case 'Q':
			promo = Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, errMoveNotFound
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	for _, m := range legal.Slice() {
		if m.To != dest {
			continue
		}
		piece := pos.PieceAt(m.From)
		if piece.Type() != pt {
			continue
		}
		if disambigFile >= 0 && m.From.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && m.From.Rank() != disambigRank {
			continue
		}
		wasCapture := pos.Occupied[pos.SideToMove.Other()].IsSet(m.To) || m.Flag == FlagEnPassant
		if isCapture != wasCapture {
			continue
		}
		if promo != NoPieceType && (m.Flag != FlagPromotion || m.Promo != promo) {
			continue
		}
		return m, nil
	}

	return NoMove, errMoveNotFound
}
