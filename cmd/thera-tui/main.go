// Command thera-tui runs an interactive terminal session against the
// Thera engine.
package main

import (
	"flag"

	"github.com/Robotino04/thera/internal/tui"
)

var (
	hashMB = flag.Int("hash", 64, "transposition table size in megabytes")
	depth  = flag.Int("depth", 8, "search depth for engine replies")
)

func main() {
	flag.Parse()

	session := tui.NewSession(*hashMB, *depth)
	session.Run()
}
