package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Robotino04/thera/internal/board"
)

// Params is the parameters record shared between the reader and search
// threads (spec §5): depth, max time, and whether iteration info should
// be reported.
type Params struct {
	Depth    int           // 0 means MaxPly
	MoveTime time.Duration // 0 means no deadline
	Silent   bool
}

// Context is the process-wide engine state described in spec §5: a
// reader thread (the UCI/TUI front-end, calling Go/Stop/Quit) and a
// dedicated search goroutine started by Run, coordinated through a
// condition variable plus a pair of atomic flags. The Board and searcher
// are never touched concurrently — the reader only ever mutates the
// shared Params/position fields, and only while no search is running.
type Context struct {
	mu   sync.Mutex
	cond *sync.Cond

	pos       *board.Position
	params    Params
	searching bool

	exitFlag atomic.Bool

	searcher *Searcher
	tt       *TranspositionTable

	// OnIteration and OnBestMove are invoked from the search goroutine;
	// callers (UCI/TUI) must not block in them for long since they run
	// between iterations of the very search they're reporting on.
	OnIteration func(IterationInfo)
	OnBestMove  func(board.Move)
}

// NewContext creates an engine context with a transposition table of the
// given size in megabytes.
func NewContext(ttSizeMB int) *Context {
	tt := NewTranspositionTable(ttSizeMB)
	c := &Context{
		tt:       tt,
		searcher: NewSearcher(tt),
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Run is the dedicated search goroutine's body: wait for a Go call, run
// one iterative-deepening search to completion or cancellation, report
// the result, then wait again. Callers start it with `go ctx.Run()`.
func (c *Context) Run() {
	for {
		c.mu.Lock()
		for !c.searching && !c.exitFlag.Load() {
			c.cond.Wait()
		}
		if c.exitFlag.Load() {
			c.mu.Unlock()
			return
		}
		pos := c.pos
		params := c.params
		c.mu.Unlock()

		maxDepth := params.Depth
		if maxDepth <= 0 {
			maxDepth = MaxPly
		}
		var deadline time.Time
		if params.MoveTime > 0 {
			deadline = time.Now().Add(params.MoveTime)
		}

		var onIteration func(IterationInfo)
		if !params.Silent && c.OnIteration != nil {
			onIteration = c.OnIteration
		}

		best := c.searcher.IterativeDeepening(pos, maxDepth, deadline, onIteration)

		c.mu.Lock()
		c.searching = false
		c.mu.Unlock()

		if c.OnBestMove != nil {
			c.OnBestMove(best)
		}
	}
}

// Go starts a search from pos with the given parameters. It is a no-op
// if a search is already running; callers must Stop and wait for
// OnBestMove before issuing another Go, matching spec §5's "writes to
// parameters happen only when no search is running" rule.
func (c *Context) Go(pos *board.Position, params Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.searching {
		return
	}
	c.pos = pos.Copy()
	c.params = params
	c.searcher.stopFlag.Store(false)
	c.searching = true
	c.cond.Signal()
}

// Stop requests the in-progress search abort at its next cooperative
// check point.
func (c *Context) Stop() {
	c.searcher.Stop()
}

// Quit requests the search goroutine exit; Run returns after any
// in-progress search is stopped and its goroutine observes the flag.
func (c *Context) Quit() {
	c.exitFlag.Store(true)
	c.searcher.Stop()
	c.mu.Lock()
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Searching reports whether a search is currently running.
func (c *Context) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// TranspositionTable exposes the shared TT, e.g. for a UCI "hashfull"
// report.
func (c *Context) TranspositionTable() *TranspositionTable {
	return c.tt
}
