// Package parallelsieve splits a sieve run across goroutines, one
// Sieve per worker, partitioning the requested range on multiples of
// 210 (the modulo-210 wheel's period). A k-tuplet may straddle a
// slice boundary; each worker resolves those itself (see partition).
package parallelsieve

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"

	"sieve.tuplets.dev/pkg/primesieve"
)

// Config controls how a range is split across workers.
type Config struct {
	// Workers is the number of goroutines to run; zero selects
	// runtime.GOMAXPROCS(0).
	Workers int

	// SieveConfig is passed to every worker's underlying Sieve.
	SieveConfig primesieve.Config
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// partition splits [start, stop] into up to n contiguous ranges. Every
// non-final range's high bound is pulled back to a multiple of 210 so
// that ranges tend to start and end near a wheel-210 cycle edge; this
// isn't required for correctness (each worker resolves its own
// boundary patterns against freshly sieved data, see Sieve.CountTuplet),
// it just keeps neighboring workers' low-level sieve phases aligned.
func partition(start, stop uint64, n int) [][2]uint64 {
	if n < 1 {
		n = 1
	}
	total := stop - start + 1
	if uint64(n) > total {
		n = int(total)
	}
	if n < 1 {
		n = 1
	}

	chunk := total / uint64(n)
	if chunk == 0 {
		chunk = 1
	}

	var parts [][2]uint64
	low := start
	for len(parts) < n-1 {
		high := low + chunk - 1
		high -= high % 210 // pull back to the nearest wheel-210 boundary
		if high < low {
			high = low
		}
		if high >= stop {
			break
		}
		parts = append(parts, [2]uint64{low, high})
		low = high + 1
	}
	parts = append(parts, [2]uint64{low, stop})
	return parts
}

// counter is padded to its own cache line so concurrent workers never
// false-share a line while accumulating into counters[i].
type counter struct {
	value uint64
	_     cpu.CacheLinePad
}

// Count runs Sieve.Count over [start, stop] split across workers and
// sums the partial results.
func Count(start, stop uint64, cfg Config) (uint64, error) {
	parts := partition(start, stop, cfg.workers())
	counters := make([]counter, len(parts))
	errs := make([]error, len(parts))

	var wg sync.WaitGroup
	for i, p := range parts {
		wg.Add(1)
		go func(i int, p [2]uint64) {
			defer wg.Done()
			s := primesieve.New(cfg.SieveConfig)
			n, err := s.Count(p[0], p[1])
			counters[i].value = n
			errs[i] = err
		}(i, p)
	}
	wg.Wait()

	var total uint64
	for i, c := range counters {
		if errs[i] != nil {
			return 0, fmt.Errorf("parallelsieve: worker %d on [%d,%d]: %w", i, parts[i][0], parts[i][1], errs[i])
		}
		total += c.value
	}
	return total, nil
}

// CountTuplet runs Sieve.CountTuplet over [start, stop] split across
// workers and sums the partial results. Each worker resolves patterns
// that straddle its own slice's far boundary by sieving slightly past
// it (see Sieve.CountTuplet), so no pattern is double-counted or
// missed at a partition boundary.
func CountTuplet(start, stop uint64, pattern primesieve.Pattern, cfg Config) (uint64, error) {
	parts := partition(start, stop, cfg.workers())
	counters := make([]counter, len(parts))
	errs := make([]error, len(parts))

	var wg sync.WaitGroup
	for i, p := range parts {
		wg.Add(1)
		go func(i int, p [2]uint64) {
			defer wg.Done()
			s := primesieve.New(cfg.SieveConfig)
			n, err := s.CountTuplet(p[0], p[1], pattern)
			counters[i].value = n
			errs[i] = err
		}(i, p)
	}
	wg.Wait()

	var total uint64
	for i, c := range counters {
		if errs[i] != nil {
			return 0, fmt.Errorf("parallelsieve: worker %d on [%d,%d]: %w", i, parts[i][0], parts[i][1], errs[i])
		}
		total += c.value
	}
	return total, nil
}
