package primesieve

import (
	"log/slog"

	"sieve.tuplets.dev/internal/cpuinfo"
	"sieve.tuplets.dev/internal/sieve"
)

// Config holds the tunables a Sieve is built with. The zero value is
// valid: every field falls back to a sensible default.
type Config struct {
	// SieveSize is the number of bytes processed per segment; it must
	// be a power of two between sieve.MinSieveSize and
	// sieve.MaxSieveSize. Zero selects RecommendedSieveSize().
	SieveSize int

	// PreSievePrimes lists the primes folded into the pattern stamped
	// onto every fresh segment before crossing off begins. Nil selects
	// 7, 11 and 13.
	PreSievePrimes []uint32

	// Logger receives structured progress and diagnostic messages.
	// Nil selects slog.Default().
	Logger *slog.Logger

	// Progress, if non-nil, is called after each segment is crossed
	// off with the fraction of [start, stop] completed so far, in
	// (0, 1]. It is called synchronously from the goroutine running
	// the sieve and must return quickly; it is never called for a
	// range too small to reach a first segment boundary below 7.
	Progress func(fraction float64)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) sieveSize() uint32 {
	if c.SieveSize != 0 {
		return uint32(c.SieveSize)
	}
	return RecommendedSieveSize()
}

// RecommendedSieveSize picks a segment size that fits the host's L1
// data cache, clamped to the range the sieve package supports.
func RecommendedSieveSize() uint32 {
	size := uint32(cpuinfo.L1Size())
	if size < sieve.MinSieveSize {
		return sieve.MinSieveSize
	}
	if size > sieve.MaxSieveSize {
		return sieve.MaxSieveSize
	}
	// Round down to a power of two: cache sizes are already powers of
	// two in practice, but a hostile /sys value should not crash the
	// configuration step that follows.
	p := uint32(1)
	for p*2 <= size {
		p *= 2
	}
	return p
}
