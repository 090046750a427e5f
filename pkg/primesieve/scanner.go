package primesieve

import "sieve.tuplets.dev/internal/sieve"

// Pattern lists the offsets from a k-tuplet's smallest member to each
// of its other members; e.g. Twins is {0, 2}. A candidate at value p
// is counted once for every Pattern whose every p+offset is prime.
type Pattern []uint32

// Canonical k-tuplet patterns, matching the forms prime-counting
// references enumerate. Several tuplet sizes admit more than one
// shape; CountTuplet takes a single Pattern, so counting "all
// triplets" means calling it once per shape in this list and summing.
var (
	Twins        = Pattern{0, 2}
	Triplets1    = Pattern{0, 2, 6}
	Triplets2    = Pattern{0, 4, 6}
	Quadruplets  = Pattern{0, 2, 6, 8}
	Quintuplets1 = Pattern{0, 2, 6, 8, 12}
	Quintuplets2 = Pattern{0, 4, 6, 10, 12}
	Sextuplets   = Pattern{0, 4, 6, 10, 12, 16}
	Septuplets1  = Pattern{0, 2, 6, 8, 12, 18, 20}
	Septuplets2  = Pattern{0, 2, 8, 12, 14, 18, 20}
)

// maxPatternOffset bounds how far past an anchor any canonical
// pattern reaches; CountTuplet sieves this far past the requested
// stop so that anchors near the boundary can still be resolved.
const maxPatternOffset = 24

// pendingMatch is an anchor whose pattern check could not be finished
// within the segment it was found in, because one or more offsets
// landed past that segment's end.
type pendingMatch struct {
	anchor     uint64
	patternIdx int
	offsets    []uint32 // the still-unresolved offsets for this pattern
}

// tupletScanner counts occurrences of one or more Patterns across a
// sieve run. Segments are always many times larger than
// maxPatternOffset, so a pattern can cross at most one segment
// boundary; pendingMatch entries are always resolved by the very next
// segment.
type tupletScanner struct {
	stop     uint64 // the true requested stop; anchors beyond it don't count
	patterns []Pattern
	counts   []uint64
	pending  []pendingMatch
}

func newTupletScanner(stop uint64, patterns []Pattern) *tupletScanner {
	return &tupletScanner{
		stop:     stop,
		patterns: patterns,
		counts:   make([]uint64, len(patterns)),
	}
}

func (ts *tupletScanner) visit(segLow, segHigh uint64, bits *sieve.BitSieve) {
	testInSeg := func(v uint64) bool {
		byteIdx := (v - segLow) / 30
		r := uint32(v % 30)
		j := residueBitIndex(r)
		if j < 0 {
			return false
		}
		return bits.TestBit(int(byteIdx), 1<<uint(j))
	}

	resolved := ts.pending[:0]
	for _, pm := range ts.pending {
		ok := true
		for _, off := range pm.offsets {
			v := pm.anchor + uint64(off)
			if v < segLow || v > segHigh || !testInSeg(v) {
				ok = false
				break
			}
		}
		if ok {
			ts.counts[pm.patternIdx]++
		}
	}
	ts.pending = resolved

	walkSetBits(segLow, bits, func(p uint64) bool {
		if p > ts.stop {
			return false
		}
		for pi, pat := range ts.patterns {
			ok := true
			var deferred []uint32
			for _, off := range pat {
				v := p + uint64(off)
				if v > segHigh {
					deferred = append(deferred, off)
					continue
				}
				if !testInSeg(v) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if len(deferred) > 0 {
				ts.pending = append(ts.pending, pendingMatch{anchor: p, patternIdx: pi, offsets: deferred})
				continue
			}
			ts.counts[pi]++
		}
		return true
	})
}

var residueBit = buildResidueBit()

func buildResidueBit() [30]int8 {
	var r [30]int8
	for i := range r {
		r[i] = -1
	}
	for i, v := range Residues {
		r[v] = int8(i)
	}
	return r
}

func residueBitIndex(r uint32) int { return int(residueBit[r]) }
