// Command thera-uci runs the Thera engine as a UCI protocol handler
// communicating over stdin/stdout.
package main

import (
	"flag"

	"github.com/Robotino04/thera/internal/uci"
)

var hashMB = flag.Int("hash", 64, "transposition table size in megabytes")

func main() {
	flag.Parse()

	protocol := uci.New(*hashMB)
	protocol.Run()
}
