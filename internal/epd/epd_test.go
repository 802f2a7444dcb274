package epd

import (
	"strings"
	"testing"
)

func TestParseEPD(t *testing.T) {
	line := `r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4 bm O-O; id "fools mate setup";`

	c, err := ParseEPD(line)
	if err != nil {
		t.Fatalf("ParseEPD: %v", err)
	}
	if c.FEN != "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq -" {
		t.Errorf("unexpected FEN: %q", c.FEN)
	}
	if len(c.BestMoves) != 1 || c.BestMoves[0] != "O-O" {
		t.Errorf("unexpected best moves: %v", c.BestMoves)
	}
	if c.ID != "fools mate setup" {
		t.Errorf("unexpected id: %q", c.ID)
	}
}

func TestParseSuite(t *testing.T) {
	suite := strings.NewReader(`
# a comment
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - bm e2e4 d2d4; id "opening";

r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - bm d5e6; id "kiwipete-ish";
`)

	cases, err := ParseSuite(suite)
	if err != nil {
		t.Fatalf("ParseSuite: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].ID != "opening" || len(cases[0].BestMoves) != 2 {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
}

func TestRun(t *testing.T) {
	cases := []Case{
		{FEN: "fen-a", BestMoves: []string{"e2e4"}, ID: "a"},
		{FEN: "fen-b", BestMoves: []string{"d2d4"}, ID: "b"},
	}

	moves := map[string]string{"fen-a": "e2e4", "fen-b": "e2e4"}
	results, err := Run(cases, func(fen string) (string, error) {
		return moves[fen], nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !results[0].Passed {
		t.Errorf("expected case a to pass")
	}
	if results[1].Passed {
		t.Errorf("expected case b to fail")
	}
}
