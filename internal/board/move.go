package board

import "fmt"

// MoveFlag classifies what else, beyond from/to, a move must do.
type MoveFlag uint8

const (
	FlagNormal MoveFlag = iota
	FlagPromotion
	FlagEnPassant
	FlagCastling
	FlagDoublePawnPush
)

// Move is an inline value describing a single chess move. The original
// C++ Move carried a heap-allocated *Move auxiliaryMove to describe
// castling's accompanying rook step; this re-architects that as an
// inline sum type (design note in spec.md §9): the rook's from/to
// squares live directly in the struct and are simply ignored unless
// Flag == FlagCastling, so a Move never needs a heap allocation.
type Move struct {
	From, To Square
	Flag     MoveFlag
	Promo    PieceType // valid only when Flag == FlagPromotion

	// Populated only for FlagCastling moves: the rook's own from/to
	// squares, so ApplyMove never has to re-derive them from From/To.
	RookFrom, RookTo Square
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNone reports whether m is the null move.
func (m Move) IsNone() bool {
	return m.From == NoSquare && m.To == NoSquare
}

// NewMove creates a normal (non-special) move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Flag: FlagNormal}
}

// NewDoublePawnPush creates a two-square pawn push, which sets an
// en-passant target square as a side effect.
func NewDoublePawnPush(from, to Square) Move {
	return Move{From: from, To: to, Flag: FlagDoublePawnPush}
}

// NewPromotion creates a promotion move (optionally a promoting capture:
// From/To alone already imply whether the destination is occupied).
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Flag: FlagPromotion, Promo: promo}
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move{From: from, To: to, Flag: FlagEnPassant}
}

// NewCastling creates a castling move, inline with its rook step.
func NewCastling(from, to, rookFrom, rookTo Square) Move {
	return Move{From: from, To: to, Flag: FlagCastling, RookFrom: rookFrom, RookTo: rookTo}
}

// String returns the UCI long-algebraic form of the move, e.g. "e2e4"
// or "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Flag == FlagPromotion {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Promo])
	}
	return s
}

// ParseMove parses a UCI long-algebraic move string against pos, which
// supplies the context (piece identity, en-passant target, castling
// rights) needed to classify it into the right Flag.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string %q: too short", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string %q: %w", s, err)
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid move string %q: unknown promotion piece %q", s, s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("invalid move string %q: no piece on %s", s, from)
	}
	pt := piece.Type()

	if pt == King && absInt(int(to)-int(from)) == 2 {
		rank := from.Rank()
		if to.File() == 6 {
			return NewCastling(from, to, NewSquare(7, rank), NewSquare(5, rank)), nil
		}
		return NewCastling(from, to, NewSquare(0, rank), NewSquare(3, rank)), nil
	}
	if pt == Pawn && to == pos.EnPassant && to != NoSquare {
		return NewEnPassant(from, to), nil
	}
	if pt == Pawn && absInt(to.Rank()-from.Rank()) == 2 {
		return NewDoublePawnPush(from, to), nil
	}

	return NewMove(from, to), nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MoveList is a fixed-capacity list of moves sized to the maximum
// possible legal moves in any position (spec §9: 218), avoiding
// per-generation heap allocation.
type MoveList struct {
	moves [218]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i, used by move-ordering passes.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list without reallocating its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves currently in the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
