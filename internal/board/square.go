// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// to0x88 converts an 8x8 square index to its 0x88 board representation,
// used internally by the move generator for cheap off-board detection.
func (sq Square) to0x88() int {
	return sq.File() | sq.Rank()<<4
}

// from0x88 converts a 0x88 index back to an 8x8 Square. The caller must
// have already verified the index is on-board (idx&0x88 == 0).
func from0x88(idx int) Square {
	return NewSquare(idx&7, idx>>4)
}

// offBoard0x88 reports whether a 0x88 index lies outside the board.
func offBoard0x88(idx int) bool {
	return idx&0x88 != 0
}

// Sliding and jumping piece offsets in 0x88 units. Grounded on
// original_source/Thera/include/Thera/MoveGenerator.hpp.
var (
	rookOffsets   = [4]int{1, -1, 16, -16}
	bishopOffsets = [4]int{15, -15, 17, -17}
	queenOffsets  = [8]int{1, -1, 16, -16, 15, -15, 17, -17}
	knightOffsets = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
	kingOffsets   = [8]int{1, -1, 16, -16, 15, -15, 17, -17}
)

// raySquares[sq][dir] lists, for each of the 8 sliding directions, the
// squares walked from sq outward until the board edge. Precomputed once
// at package init so move generation never recomputes ray walks.
var raySquares [64][8][]Square

// knightJumpSquares[sq] and kingJumpSquares[sq] are the precomputed
// destination squares for a single knight/king step from sq, filled in
// at package init alongside raySquares so the hot movegen/attack paths
// never allocate a jump-destination slice per call.
var (
	knightJumpSquares [64][]Square
	kingJumpSquares   [64][]Square
)

func init() {
	for sq := Square(0); sq < 64; sq++ {
		idx := sq.to0x88()
		for d, off := range queenOffsets {
			cur := idx
			var ray []Square
			for {
				cur += off
				if offBoard0x88(cur) {
					break
				}
				ray = append(ray, from0x88(cur))
			}
			raySquares[sq][d] = ray
		}
		knightJumpSquares[sq] = jumpSquares(sq, knightOffsets[:])
		kingJumpSquares[sq] = jumpSquares(sq, kingOffsets[:])
	}
}

// KnightAttacks returns the knight-jump destination squares from sq.
func KnightAttacks(sq Square) []Square {
	return knightJumpSquares[sq]
}

// KingStepAttacks returns the single-step king destination squares from sq.
func KingStepAttacks(sq Square) []Square {
	return kingJumpSquares[sq]
}

func jumpSquares(sq Square, offsets []int) []Square {
	idx := sq.to0x88()
	dests := make([]Square, 0, len(offsets))
	for _, off := range offsets {
		cur := idx + off
		if !offBoard0x88(cur) {
			dests = append(dests, from0x88(cur))
		}
	}
	return dests
}

// rayDirIndex maps a PieceType to the slice of ray direction indices
// (into queenOffsets/raySquares) it slides along. Knights and kings use
// the jump tables above instead.
func rayDirIndex(pt PieceType) []int {
	switch pt {
	case Rook:
		return []int{0, 1, 2, 3}
	case Bishop:
		return []int{4, 5, 6, 7}
	case Queen:
		return []int{0, 1, 2, 3, 4, 5, 6, 7}
	default:
		return nil
	}
}
