// Package qerr defines the engine's error kinds: sentinel errors wrapped
// with context via fmt.Errorf/%w.
package qerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is against these to classify a failure.
var (
	// ErrInvalidCoordinate: coordinate out of 1..8 or unparseable.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrNoSuchPiece: source square has no piece, or claimed split/merge
	// sources don't belong to the same piece identity.
	ErrNoSuchPiece = errors.New("no such piece")
	// ErrIllegalAction: the (sources, targets) tuple does not appear in
	// the current action set.
	ErrIllegalAction = errors.New("illegal action")
	// ErrPersistence: save/load against the opaque store failed.
	ErrPersistence = errors.New("persistence error")
)

// InvalidCoordinate wraps ErrInvalidCoordinate with context.
func InvalidCoordinate(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidCoordinate}, args...)...)
}

// NoSuchPiece wraps ErrNoSuchPiece with context.
func NoSuchPiece(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNoSuchPiece}, args...)...)
}

// IllegalAction wraps ErrIllegalAction with context.
func IllegalAction(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalAction}, args...)...)
}

// Persistence wraps ErrPersistence with context.
func Persistence(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPersistence}, args...)...)
}
