// Command thera-perft runs a standalone perft node count from a FEN (or
// the standard starting position) to a given depth.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Robotino04/thera/internal/board"
)

var (
	fen          = flag.String("fen", "", "FEN to search from (default: standard starting position)")
	depth        = flag.Int("depth", 5, "perft depth")
	bulkCounting = flag.Bool("bulk", true, "bulk-count the last ply instead of recursing to leaves")
	expected     = flag.Int64("expect", -1, "expected node count; exit 1 on mismatch (default: don't check)")
)

func main() {
	flag.Parse()

	var pos *board.Position
	if *fen == "" {
		pos = board.NewPosition()
	} else {
		p, err := board.ParseFEN(*fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid FEN: %v\n", err)
			os.Exit(1)
		}
		pos = p
	}

	start := time.Now()
	entries, nodes := board.Divide(pos, *depth, *bulkCounting)
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}

	if *expected >= 0 && nodes != uint64(*expected) {
		os.Exit(1)
	}
}
