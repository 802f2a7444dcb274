package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// PieceValue holds the material value of each piece type in centipawns,
// reproduced from original_source/Thera/src/search.cpp's
// EvaluationValues::pieceValues.
var PieceValue = [7]int{100, 300, 300, 500, 900, 20000, 0}

// Piece packs a Color and a PieceType into a single value, encoded as
// color | (type<<1). This is the data model's mandated packed form: the
// low bit is the color, the next three bits the type, so a Piece can
// index the Zobrist table directly.
type Piece uint8

const (
	WhitePawn   Piece = Piece(White) | Piece(Pawn)<<1
	WhiteKnight Piece = Piece(White) | Piece(Knight)<<1
	WhiteBishop Piece = Piece(White) | Piece(Bishop)<<1
	WhiteRook   Piece = Piece(White) | Piece(Rook)<<1
	WhiteQueen  Piece = Piece(White) | Piece(Queen)<<1
	WhiteKing   Piece = Piece(White) | Piece(King)<<1
	BlackPawn   Piece = Piece(Black) | Piece(Pawn)<<1
	BlackKnight Piece = Piece(Black) | Piece(Knight)<<1
	BlackBishop Piece = Piece(Black) | Piece(Bishop)<<1
	BlackRook   Piece = Piece(Black) | Piece(Rook)<<1
	BlackQueen  Piece = Piece(Black) | Piece(Queen)<<1
	BlackKing   Piece = Piece(Black) | Piece(King)<<1
	NoPiece     Piece = Piece(NoColor) | Piece(NoPieceType)<<1
)

// NewPiece packs a PieceType and Color into a Piece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(c) | Piece(pt)<<1
}

// Type unpacks the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p >> 1)
}

// Color unpacks the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p & 1)
}

// String returns the FEN character for the piece: uppercase for white,
// lowercase for black.
func (p Piece) String() string {
	if p.Type() == NoPieceType {
		return " "
	}
	c := p.Type().Char()
	if p.Color() == White {
		return string(c - ('a' - 'A'))
	}
	return string(c)
}

// PieceFromChar converts a FEN piece character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
