package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// and services translate them into coded domain errors.
//
//   - ErrNotFound: row does not exist, or no active row matches
//   - ErrAlreadyUsed: a uniqueness rule rejected the write (live claim, active binding)
//   - ErrConflict: a conditional update matched no row because state moved on
//   - ErrInvalidState: row is in a state the operation does not accept
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyUsed  = errors.New("already used")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
