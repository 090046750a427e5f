package sieve

import (
	"errors"
	"fmt"
)

var (
	// ErrRangeTooLarge is returned when stop exceeds the largest value
	// the byte-packed candidate encoding can address.
	ErrRangeTooLarge = errors.New("sieve: stop exceeds the maximum supported value")

	// ErrSieveSizeInvalid is returned when a configured segment size
	// is not a power of two, or falls outside the supported range.
	ErrSieveSizeInvalid = errors.New("sieve: sieveSize must be a power of two between 1KiB and 4MiB")
)

// ConfigurationError reports a problem with a Config value supplied
// before sieving began; Field names which setting was at fault.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sieve: invalid configuration field %q: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// HorizonExceededError reports that a sieving prime's next multiple
// landed further beyond the current segment than EratBig's bucket
// ring was sized to hold, which signals a horizon-sizing bug rather
// than bad input.
type HorizonExceededError struct {
	Prime         uint32
	SegmentsAhead int
	Horizon       int
}

func (e *HorizonExceededError) Error() string {
	return fmt.Sprintf("sieve: prime %d needs %d segments of lookahead, horizon is only %d",
		e.Prime, e.SegmentsAhead, e.Horizon)
}

// AllocationError reports that EratBig's bucket arena could not grow
// to hold a requested number of nodes, aborting the current Sieve
// call. RequestedNodes is the slab size the arena tried to reach;
// already-allocated slabs are left in place for the caller to
// discard along with the rest of the Engine.
type AllocationError struct {
	RequestedNodes int
	Err            error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("sieve: bucket arena could not grow to %d nodes: %v", e.RequestedNodes, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// InvariantViolation signals that the engine observed a state its own
// construction should make impossible, such as a sieving prime that
// shares a factor with 30. It indicates a bug in the caller supplying
// sievingPrimes or in the engine itself, never bad range input.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("sieve: invariant violated: %s", e.Detail)
}
