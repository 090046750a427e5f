// Package primesieve is the public face of the segmented sieve in
// internal/sieve: counting, printing, streaming and fingerprinting
// primes over arbitrary 64-bit ranges.
package primesieve

import (
	"fmt"
	"io"
	bits2 "math/bits"

	"sieve.tuplets.dev/internal/sieve"
)

// Sieve runs sieving operations under a fixed Config. It holds no
// state between calls, so the same Sieve can serve concurrent calls
// for disjoint ranges (see pkg/parallelsieve), though a single call
// is itself single-threaded.
type Sieve struct {
	cfg Config
}

// New builds a Sieve from cfg.
func New(cfg Config) *Sieve {
	return &Sieve{cfg: cfg}
}

// run builds the inner sqrt-sieve, the outer Engine, and drives
// visit once per segment until the range is exhausted.
func (s *Sieve) run(start, stop uint64, visit func(segLow, segHigh uint64, bits *sieve.BitSieve)) error {
	log := s.cfg.logger()
	log.Debug("sieve run starting", "start", start, "stop", stop, "sieveSize", s.cfg.sieveSize())

	if stop < start {
		// An empty range is not an error; it just visits no segments.
		return nil
	}

	if stop < 7 {
		return nil
	}

	bound := isqrtCeil(stop)
	sievingPrimes, err := sieve.SievingPrimesUpTo(bound)
	if err != nil {
		return fmt.Errorf("primesieve: computing sieving primes up to %d: %w", bound, err)
	}
	log.Debug("sieving primes ready", "count", len(sievingPrimes), "bound", bound)

	pre := sieve.NewPreSieve(s.cfg.PreSievePrimes)
	eng, err := sieve.NewEngine(start, stop, s.cfg.sieveSize(), pre, sievingPrimes)
	if err != nil {
		return fmt.Errorf("primesieve: %w", err)
	}

	total := float64(stop - start + 1)
	for {
		segLow, segHigh, bits, ok := eng.NextSegment()
		if !ok {
			break
		}
		visit(segLow, segHigh, bits)
		if s.cfg.Progress != nil {
			done := float64(segHigh-start+1) / total
			if done > 1 {
				done = 1
			}
			s.cfg.Progress(done)
		}
	}
	if err := eng.Err(); err != nil {
		return fmt.Errorf("primesieve: %w", err)
	}
	return nil
}

func isqrtCeil(n uint64) uint64 {
	r := isqrt(n)
	if r*r < n {
		r++
	}
	return r + 1
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(0)
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func smallPrimesIn(start, stop uint64) uint64 {
	var n uint64
	for _, p := range [...]uint64{2, 3, 5} {
		if p >= start && p <= stop {
			n++
		}
	}
	return n
}

// Count returns the number of primes in [start, stop].
func (s *Sieve) Count(start, stop uint64) (uint64, error) {
	n := smallPrimesIn(start, stop)
	err := s.run(start, stop, func(segLow, segHigh uint64, bits *sieve.BitSieve) {
		n += bits.CountSetBits()
	})
	return n, err
}

// CountTuplet returns the number of k-tuplets (twins, triplets, ...)
// in [start, stop] whose lowest member lies in that range, per the
// canonical offset patterns in Pattern.
func (s *Sieve) CountTuplet(start, stop uint64, pattern Pattern) (uint64, error) {
	ts := newTupletScanner(stop, []Pattern{pattern})
	err := s.run(start, stop+maxPatternOffset, ts.visit)
	if err != nil {
		return 0, err
	}
	// The sieve's bits never hold 2, 3 or 5, so tuplets anchored there
	// are checked here by trial division.
	var n uint64
	for _, a := range [...]uint64{2, 3, 5} {
		ok := a >= start && a <= stop
		for _, off := range pattern {
			for d, v := uint64(2), a+uint64(off); ok && d*d <= v; d++ {
				ok = v%d != 0
			}
		}
		if ok {
			n++
		}
	}
	return ts.counts[0] + n, nil
}

// Generate calls fn once for every prime in [start, stop], in
// ascending order, stopping early if fn returns false.
func (s *Sieve) Generate(start, stop uint64, fn func(p uint64) bool) error {
	for _, p := range [...]uint64{2, 3, 5} {
		if p >= start && p <= stop {
			if !fn(p) {
				return nil
			}
		}
	}
	stopped := false
	err := s.run(start, stop, func(segLow, segHigh uint64, bits *sieve.BitSieve) {
		if stopped {
			return
		}
		walkSetBits(segLow, bits, func(v uint64) bool {
			if !fn(v) {
				stopped = true
				return false
			}
			return true
		})
	})
	return err
}

// Print writes every prime in [start, stop] to w, one per line.
func (s *Sieve) Print(w io.Writer, start, stop uint64) error {
	bw, ok := w.(io.StringWriter)
	return s.Generate(start, stop, func(p uint64) bool {
		var err error
		if ok {
			_, err = bw.WriteString(fmt.Sprintf("%d\n", p))
		} else {
			_, err = fmt.Fprintf(w, "%d\n", p)
		}
		return err == nil
	})
}

// walkSetBits calls fn once per set bit in bits, in ascending numeric
// order, stopping early if fn returns false.
func walkSetBits(segLow uint64, bits *sieve.BitSieve, fn func(v uint64) bool) {
	for i, b := range bits.Bytes() {
		for b != 0 {
			j := bits2.TrailingZeros8(b)
			b &^= 1 << j
			v := segLow + uint64(i)*30 + uint64(Residues[j])
			if !fn(v) {
				return
			}
		}
	}
}

// Residues lists, in ascending order, the eight values mod 30 a bit
// position represents. Exported so callers assembling their own
// scanners (see Digest) can decode bit positions without reaching
// into internal/sieve.
var Residues = [8]uint32{1, 7, 11, 13, 17, 19, 23, 29}
