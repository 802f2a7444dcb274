// Package epd runs FEN/EPD test suites against the engine, either
// in-process or against an external UCI-speaking opponent process.
package epd

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Opponent is a second UCI-speaking process, spoken to over its own
// stdin/stdout pipes. This is the Go equivalent of
// original_source/CLI/include/CLI/popen2.hpp's raw pipe(2)/fork(2)/
// dup2(2) dance: os/exec already gives every child process its own
// pipe pair, so no manual fd plumbing is needed.
type Opponent struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

// StartOpponent launches name with args and wires up its stdio for line-
// based UCI communication.
func StartOpponent(name string, args ...string) (*Opponent, error) {
	cmd := exec.Command(name, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("epd: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("epd: stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("epd: start %s: %w", name, err)
	}

	return &Opponent{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewScanner(stdout),
	}, nil
}

// Send writes one line to the opponent's stdin.
func (o *Opponent) Send(line string) error {
	_, err := fmt.Fprintln(o.stdin, line)
	return err
}

// ReadLine blocks for the opponent's next stdout line.
func (o *Opponent) ReadLine() (string, error) {
	if !o.stdout.Scan() {
		if err := o.stdout.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return o.stdout.Text(), nil
}

// BestMove drives a full UCI exchange for one position: sets the
// position, requests a search, and waits for the resulting "bestmove"
// line (discarding "info" lines in between).
func (o *Opponent) BestMove(fen string, moveTime time.Duration) (string, error) {
	if err := o.Send(fmt.Sprintf("position fen %s", fen)); err != nil {
		return "", err
	}
	if err := o.Send(fmt.Sprintf("go movetime %d", moveTime.Milliseconds())); err != nil {
		return "", err
	}

	for {
		line, err := o.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(line, "bestmove") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return "", fmt.Errorf("epd: malformed bestmove line %q", line)
			}
			return fields[1], nil
		}
	}
}

// Close asks the opponent to quit and waits for it to exit.
func (o *Opponent) Close() error {
	_ = o.Send("quit")
	o.stdin.Close()
	return o.cmd.Wait()
}
