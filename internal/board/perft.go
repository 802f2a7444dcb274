package board

// Perft counts the number of leaf nodes reachable from pos in exactly
// depth plies of legal moves. Grounded on original_source/Thera/src/
// perft.cpp's perft(): depth 0 is the base case (one node, the position
// itself). When bulkCounting is set, depth 1 returns the filtered move
// count directly instead of recursing one more ply to count leaves one
// at a time; with it unset, every leaf is walked and counted
// individually, which is slower but exercises the same node-count path
// a reference engine without bulk counting would take.
func Perft(pos *Position, depth int, bulkCounting bool) uint64 {
	if depth == 0 {
		return 1
	}

	var pseudo, legal MoveList
	GeneratePseudoLegal(pos, &pseudo, GenAll)
	FilterLegal(pos, &pseudo, &legal)

	if bulkCounting && depth == 1 {
		return uint64(legal.Len())
	}

	var nodes uint64
	for _, m := range legal.Slice() {
		pos.ApplyMove(m)
		nodes += Perft(pos, depth-1, bulkCounting)
		pos.RewindMove()
	}
	return nodes
}

// DivideEntry is one root move's subtree count, as reported by Divide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs perft one ply at a time, reporting each root move's own
// subtree count — the debugging aid original_source/CLI/src/perft.cpp
// prints per root move, exposed here for cmd/thera-perft and the UCI
// `perft` debug command.
func Divide(pos *Position, depth int, bulkCounting bool) ([]DivideEntry, uint64) {
	if depth == 0 {
		return nil, 1
	}

	var pseudo, legal MoveList
	GeneratePseudoLegal(pos, &pseudo, GenAll)
	FilterLegal(pos, &pseudo, &legal)

	entries := make([]DivideEntry, 0, legal.Len())
	var total uint64
	for _, m := range legal.Slice() {
		pos.ApplyMove(m)
		n := Perft(pos, depth-1, bulkCounting)
		pos.RewindMove()

		entries = append(entries, DivideEntry{Move: m, Nodes: n})
		total += n
	}
	return entries, total
}
