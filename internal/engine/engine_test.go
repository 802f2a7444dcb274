package engine

import (
	"testing"
	"time"

	"github.com/Robotino04/thera/internal/board"
)

func TestSearchBasic(t *testing.T) {
	pos := board.NewPosition()
	tt := NewTranspositionTable(16)
	s := NewSearcher(tt)

	move := s.IterativeDeepening(pos, 4, time.Now().Add(2*time.Second), nil)
	if move.IsNone() {
		t.Error("IterativeDeepening returned no move for starting position")
	}
	t.Logf("Best move: %s", move.String())
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black to move, Qh4# is mate in one.
	pos, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	tt := NewTranspositionTable(16)
	s := NewSearcher(tt)

	move := s.IterativeDeepening(pos, 3, time.Now().Add(2*time.Second), nil)
	if move.IsNone() {
		t.Fatal("expected a move")
	}

	next := pos.Copy()
	next.ApplyMove(move)
	if !next.IsCheckmate() {
		t.Errorf("expected %s to deliver mate, position after move:\n%s", move, next)
	}
}

func TestIterativeDeepeningReportsEachDepth(t *testing.T) {
	pos := board.NewPosition()
	tt := NewTranspositionTable(16)
	s := NewSearcher(tt)

	var depths []int
	s.IterativeDeepening(pos, 3, time.Now().Add(2*time.Second), func(info IterationInfo) {
		depths = append(depths, info.Depth)
	})

	if len(depths) != 3 {
		t.Fatalf("expected 3 iterations, got %d: %v", len(depths), depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("iteration %d reported depth %d, want %d", i, d, i+1)
		}
	}
}

func TestStopCancelsSearch(t *testing.T) {
	pos := board.NewPosition()
	tt := NewTranspositionTable(16)
	s := NewSearcher(tt)

	s.Stop()
	move := s.IterativeDeepening(pos, 10, time.Time{}, nil)
	if !move.IsNone() {
		t.Logf("search stopped at depth 0 still returned a root move %s, which is acceptable", move)
	}
}

func TestContextGoWithMoveTimeReportsBestMove(t *testing.T) {
	ctx := NewContext(1)
	go ctx.Run()
	defer ctx.Quit()

	done := make(chan board.Move, 1)
	ctx.OnBestMove = func(m board.Move) { done <- m }

	ctx.Go(board.NewPosition(), Params{MoveTime: 200 * time.Millisecond})

	select {
	case move := <-done:
		if move.IsNone() {
			t.Error("expected a best move from the starting position")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("search did not complete in time")
	}
}

func TestEvaluateSymmetric(t *testing.T) {
	pos := board.NewPosition()
	if Evaluate(pos) != 0 {
		t.Errorf("starting position should evaluate to 0, got %d", Evaluate(pos))
	}
}

func TestEvaluateThreefoldRepetitionIsDraw(t *testing.T) {
	pos := board.NewPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range shuffle {
		m, err := board.ParseMove(s, pos)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		pos.ApplyMove(m)
	}

	if pos.RepetitionCount() < 3 {
		t.Fatalf("expected a threefold repetition, got count %d", pos.RepetitionCount())
	}
	if Evaluate(pos) != 0 {
		t.Errorf("threefold repetition should evaluate to 0, got %d", Evaluate(pos))
	}
}
