package aoc

import "errors"

// ErrNotImplemented marks a solver part that has not been written yet.
// The runner and tests check for it with errors.Is so an unimplemented
// part is distinguishable from an implemented-but-wrong one.
var ErrNotImplemented = errors.New("not implemented")
