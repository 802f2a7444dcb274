package board

import "testing"

// TestPerftScenarios exercises the six exact perft scenarios spec.md §8
// requires to match precisely.
func TestPerftScenarios(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected uint64
	}{
		{"startpos-d1", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 1, 20},
		{"startpos-d4", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 4, 197281},
		{"kiwipete-d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"position3-d5", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"position4-d4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
		{"position5-d3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if testing.Short() && tc.depth >= 5 {
				t.Skip("skipping deep perft scenario in -short mode")
			}
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			if got := Perft(pos, tc.depth, true); got != tc.expected {
				t.Errorf("Perft(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantPin verifies that an en passant capture which would
// expose the capturing side's own king to a horizontal pin is correctly
// excluded by the legality filter.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	legal := LegalMoves(pos)
	for _, m := range legal.Slice() {
		if m.Flag == FlagEnPassant {
			t.Errorf("en passant move %v should be illegal (horizontal pin through the captured pawn)", m)
		}
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 6},
		{2, 94},
	}
	for _, tc := range tests {
		if got := Perft(pos, tc.depth, true); got != tc.expected {
			t.Errorf("Perft(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftStartingPositionShallow is a fast sanity check independent of
// the exact §8 scenarios above, useful while iterating on movegen.go.
func TestPerftStartingPositionShallow(t *testing.T) {
	pos := NewPosition()
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tc := range tests {
		if got := Perft(pos, tc.depth, true); got != tc.expected {
			t.Errorf("Perft(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}
