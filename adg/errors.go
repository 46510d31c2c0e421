package adg

import "errors"

// ErrNoExitNode is returned when GetExitNode finds zero candidates: a
// well-formed, fully lowered method must have exactly one.
var ErrNoExitNode = errors.New("adg: no exit node found")

// ErrAmbiguousExitNode is returned when GetExitNode finds more than one
// candidate, which signals a lowering bug (invariant 3 of the data model).
var ErrAmbiguousExitNode = errors.New("adg: more than one exit node candidate")

// ErrMissingField is returned when a lowering constructor reads a named
// AST field the grammar is expected to guarantee and finds it absent.
var ErrMissingField = errors.New("adg: required AST field missing")

// ErrRecursionLimit is returned when the lowering recursion depth exceeds
// the configured maximum, guarding against runaway
// recursion on pathologically deep or malformed input (see Config.MaxRecursionDepth).
var ErrRecursionLimit = errors.New("adg: recursion limit exceeded")
