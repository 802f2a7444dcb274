package board

import "errors"

// errNoMoveToUndo is returned by RewindMoveChecked when the rewind stack
// is empty, per spec §7's explicit "no move to undo" error case.
var errNoMoveToUndo = errors.New("board: no move to undo")

// errMoveNotFound is returned by ParseSAN when no legal move matches the
// given SAN string.
var errMoveNotFound = errors.New("board: no legal move matches SAN string")
