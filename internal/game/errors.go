package game

import "errors"

// Rejection taxonomy. Every failed mutator wraps one of these with context;
// callers match with errors.Is. A rejected call leaves the engine unchanged.
var (
	ErrIllegalState     = errors.New("illegal state")
	ErrCardNotFound     = errors.New("card not found")
	ErrIllegalPlacement = errors.New("illegal placement")
)
