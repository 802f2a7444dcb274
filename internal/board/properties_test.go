package board

import "testing"

var testFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// TestFENRoundTrip verifies ParseFEN -> ToFEN -> ParseFEN reproduces the
// same position.
func TestFENRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		roundTripped := pos.ToFEN()
		pos2, err := ParseFEN(roundTripped)
		if err != nil {
			t.Fatalf("ParseFEN(ToFEN(%q)=%q): %v", fen, roundTripped, err)
		}
		if pos.Hash != pos2.Hash {
			t.Errorf("FEN round trip changed hash: %q -> %q", fen, roundTripped)
		}
		if pos.ToFEN() != pos2.ToFEN() {
			t.Errorf("FEN round trip not stable: %q -> %q -> %q", fen, roundTripped, pos2.ToFEN())
		}
	}
}

// TestApplyRewindIdempotence verifies that applying then rewinding every
// legal move from a position restores it bitwise identically.
func TestApplyRewindIdempotence(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		before := *pos
		legal := LegalMoves(pos)

		for _, m := range legal.Slice() {
			pos.ApplyMove(m)
			pos.RewindMove()

			if pos.Hash != before.Hash {
				t.Fatalf("%q: move %v: hash not restored after rewind", fen, m)
			}
			if pos.Pieces != before.Pieces || pos.AllOccupied != before.AllOccupied {
				t.Fatalf("%q: move %v: bitboards not restored after rewind", fen, m)
			}
			if pos.CastlingRights != before.CastlingRights || pos.EnPassant != before.EnPassant {
				t.Fatalf("%q: move %v: game state not restored after rewind", fen, m)
			}
		}
	}
}

// TestZobristConsistency verifies that the incrementally maintained hash
// after ApplyMove always equals a from-scratch recomputation.
func TestZobristConsistency(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if pos.Hash != pos.computeHash() {
			t.Fatalf("%q: initial hash mismatch: incremental=%x fromScratch=%x", fen, pos.Hash, pos.computeHash())
		}

		legal := LegalMoves(pos)
		for _, m := range legal.Slice() {
			pos.ApplyMove(m)
			if pos.Hash != pos.computeHash() {
				t.Errorf("%q: move %v: incremental hash %x != from-scratch %x", fen, m, pos.Hash, pos.computeHash())
			}
			pos.RewindMove()
		}
	}
}

// TestBitboardSyncInvariant verifies that after every legal move from
// several positions, the piece-list stays in sync with the bitboards:
// popcount(AllOccupied) == piece-list length, and every occupied square
// round-trips through PieceAt.
func TestBitboardSyncInvariant(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		checkSync(t, fen, pos)

		legal := LegalMoves(pos)
		for _, m := range legal.Slice() {
			pos.ApplyMove(m)
			checkSync(t, fen, pos)
			pos.RewindMove()
		}
	}
}

func checkSync(t *testing.T, fen string, pos *Position) {
	t.Helper()
	if pos.all.Len() != pos.AllOccupied.PopCount() {
		t.Fatalf("%q: piece-list length %d != AllOccupied popcount %d", fen, pos.all.Len(), pos.AllOccupied.PopCount())
	}
	for _, sq := range pos.all.Squares() {
		if pos.PieceAt(sq) == NoPiece {
			t.Fatalf("%q: piece-list lists %s but PieceAt reports empty", fen, sq)
		}
	}
}

// TestEmptyBitboardInvariant verifies an empty Position reports no
// occupied squares anywhere.
func TestEmptyBitboardInvariant(t *testing.T) {
	var pos Position
	pos.Clear()

	if pos.AllOccupied != 0 || pos.Occupied[White] != 0 || pos.Occupied[Black] != 0 {
		t.Error("cleared position should have no occupied squares")
	}
	if pos.all.Len() != 0 {
		t.Error("cleared position's piece list should be empty")
	}
	for sq := A1; sq <= H8; sq++ {
		if pos.PieceAt(sq) != NoPiece {
			t.Fatalf("cleared position has a piece on %s", sq)
		}
	}
}

// TestMoveSymmetryUnderColorSwap checks that mirroring the starting
// position vertically and swapping side to move yields the same legal
// move count as the original — board and move generation treat both
// colors symmetrically, with no hidden white-only special case.
func TestMoveSymmetryUnderColorSwap(t *testing.T) {
	white, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	black, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	whiteMoves, blackMoves := LegalMoves(white), LegalMoves(black)
	if whiteMoves.Len() != blackMoves.Len() {
		t.Errorf("symmetric position should have equal legal move counts for either side to move")
	}
}
