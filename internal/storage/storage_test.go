package storage

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// newTestStorage opens a Storage backed by an in-memory Badger instance
// so tests don't touch the platform data directory.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Storage{db: db}
}

func TestDefaultSession(t *testing.T) {
	sess := DefaultSession()
	if sess.HashMB != 64 {
		t.Errorf("expected default HashMB 64, got %d", sess.HashMB)
	}
	if sess.DefaultDepth != 8 {
		t.Errorf("expected default depth 8, got %d", sess.DefaultDepth)
	}
}

func TestSaveLoadSession(t *testing.T) {
	s := newTestStorage(t)

	loaded, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession on empty store: %v", err)
	}
	if loaded.HashMB != 64 {
		t.Errorf("expected defaults when nothing saved, got %+v", loaded)
	}

	want := &EngineSession{HashMB: 128, DefaultDepth: 12, LastFEN: "startpos"}
	if err := s.SaveSession(want); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if got.HashMB != want.HashMB || got.DefaultDepth != want.DefaultDepth || got.LastFEN != want.LastFEN {
		t.Errorf("LoadSession = %+v, want %+v", got, want)
	}
}

func TestRecordAndLoadPerftHistory(t *testing.T) {
	s := newTestStorage(t)

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	recs := []PerftRecord{
		{FEN: fen, Depth: 4, Nodes: 197281, RecordedAt: time.Unix(1, 0)},
		{FEN: fen, Depth: 4, Nodes: 197281, RecordedAt: time.Unix(2, 0)},
	}
	for _, r := range recs {
		if err := s.RecordPerft(r); err != nil {
			t.Fatalf("RecordPerft: %v", err)
		}
	}

	history, err := s.PerftHistory()
	if err != nil {
		t.Fatalf("PerftHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if history[0].RecordedAt.After(history[1].RecordedAt) {
		t.Errorf("expected chronological order, got %v before %v", history[0].RecordedAt, history[1].RecordedAt)
	}
}

func TestPerftRegressions(t *testing.T) {
	s := newTestStorage(t)

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if err := s.RecordPerft(PerftRecord{FEN: fen, Depth: 4, Nodes: 197281}); err != nil {
		t.Fatalf("RecordPerft: %v", err)
	}

	mismatches, err := s.PerftRegressions(fen, 4, 197280)
	if err != nil {
		t.Fatalf("PerftRegressions: %v", err)
	}
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 mismatch against a changed node count, got %d", len(mismatches))
	}

	clean, err := s.PerftRegressions(fen, 4, 197281)
	if err != nil {
		t.Fatalf("PerftRegressions: %v", err)
	}
	if len(clean) != 0 {
		t.Errorf("expected no mismatches against the matching node count, got %d", len(clean))
	}
}
