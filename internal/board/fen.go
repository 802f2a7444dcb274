package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. Errors about a bad
// piece-placement, side-to-move, castling or en-passant character report
// its character position within the string; errors about the field
// count, the rank count or the move counters do not. Grounded on original_source/
// Thera/src/Board.cpp's generateFenErrorText. Parsing never partially
// mutates a caller-visible Position: the result is built up on a fresh
// value and only returned once every field has parsed successfully.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: need at least 4 fields, got %d", fen, len(parts))
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		all:            NewPieceList(32),
		repetitions:    make(map[uint64]int),
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	placementOffset := 0
	if err := parsePiecePlacement(pos, parts[0], placementOffset); err != nil {
		return nil, err
	}

	sideOffset := strings.Index(fen, parts[1])
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid FEN %q at character %d: bad side-to-move %q", fen, sideOffset, parts[1])
	}

	castlingOffset := strings.Index(fen, parts[2])
	if err := parseCastlingRights(pos, parts[2], castlingOffset); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			epOffset := strings.Index(fen, parts[3])
			return nil, fmt.Errorf("invalid FEN %q at character %d: bad en-passant square %q", fen, epOffset, parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad half-move clock %q", fen, parts[4])
		}
		pos.HalfMoveClock = hmc
	}
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad full-move number %q", fen, parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	pos.findKings()
	pos.Hash = pos.computeHash()
	pos.UpdateCheckers()
	pos.repetitions[pos.Hash] = 1

	return pos, nil
}

// parsePiecePlacement parses the piece placement field (field 0) of a FEN.
func parsePiecePlacement(pos *Position, placement string, base int) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid FEN piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	charPos := base
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("invalid FEN at character %d: too many squares in rank %d", charPos, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid FEN at character %d: unknown piece character %q", charPos, c)
				}
				pos.setPiece(piece, NewSquare(file, rank))
				file++
			}
			charPos++
		}

		if file != 8 {
			return fmt.Errorf("invalid FEN at character %d: rank %d has %d squares, want 8", charPos, rank+1, file)
		}
		charPos++ // the '/' separator (or the trailing space after the last rank)
	}

	return nil
}

// parseCastlingRights parses the castling rights field (field 2) of a FEN.
func parseCastlingRights(pos *Position, castling string, base int) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}
	for i, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid FEN at character %d: unknown castling character %q", base+i, c)
		}
	}
	return nil
}

// ToFEN renders the position back to a FEN string.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
