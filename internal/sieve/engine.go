package sieve

import (
	"fmt"
	"math"
)

// Engine owns one segmented run over [start, stop]: it classifies a
// set of sieving primes into EratSmall, EratMedium and EratBig,
// pre-sieves and crosses off one segment's worth of candidates at a
// time, and masks each segment's boundary bits against the true
// numeric range. The zero value is not usable; construct with
// NewEngine.
//
// Engine has no notion of what a caller does with a finished segment:
// callers (see Sieve.run in pkg/primesieve) own counting, printing,
// digesting or any other consumption of the bits it exposes through
// NextSegment.
type Engine struct {
	start, stop uint64
	segLow0     uint64 // numeric low bound of segment 0, floored to a multiple of 30
	sieveSize   uint32

	pre    *PreSieve
	small  *EratSmall
	medium *EratMedium
	big    *EratBig

	bits       *BitSieve
	segIndex   uint64
	nextLow    uint64 // numeric low bound of the segment NextSegment will produce
	totalBytes uint64 // byte-length of [segLow0, roundedStop]
	done       bool
}

// DefaultSieveSize is used when NewEngine is passed a sieveSize of
// zero.
const DefaultSieveSize = 32 * 1024

// MinSieveSize and MaxSieveSize bound the configurable segment size.
const (
	MinSieveSize = 1 << 10
	MaxSieveSize = 4 << 20
)

// MaxStop is the largest value the byte-packed candidate encoding can
// represent without a segment's byte offsets overflowing uint32
// arithmetic at the scale sievingPrime*gap requires.
const MaxStop = (1 << 64) - (1 << 32)

func isPow2(n uint32) bool { return n != 0 && n&(n-1) == 0 }

// NewEngine builds the three crossing-off engines for [start, stop],
// fed by sievingPrimes (every prime p with 7 <= p <= sqrt(stop), in
// any order; primes at or below pre.Bound() are skipped, since pre's
// pattern already covers them).
func NewEngine(start, stop uint64, sieveSize uint32, pre *PreSieve, sievingPrimes []uint32) (*Engine, error) {
	return newEngine(start, stop, sieveSize, pre, sievingPrimes, false)
}

// NewInnerEngine builds an Engine restricted to EratSmall and
// EratMedium: every sieving prime is routed to one of those two
// tiers regardless of its size, and EratBig is never constructed or
// fed. This is the inner sub-sieve's required shape (the nested sieve
// that discovers an outer run's own sieving primes up to sqrt(stop)
// must use "EratSmall/EratMedium only"); SievingPrimesUpTo is its only
// caller.
func NewInnerEngine(start, stop uint64, sieveSize uint32, pre *PreSieve, sievingPrimes []uint32) (*Engine, error) {
	return newEngine(start, stop, sieveSize, pre, sievingPrimes, true)
}

func newEngine(start, stop uint64, sieveSize uint32, pre *PreSieve, sievingPrimes []uint32, smallMediumOnly bool) (*Engine, error) {
	if stop > MaxStop {
		return nil, &ConfigurationError{Field: "stop", Err: ErrRangeTooLarge}
	}
	if sieveSize == 0 {
		sieveSize = DefaultSieveSize
	}
	if !isPow2(sieveSize) || sieveSize < MinSieveSize || sieveSize > MaxSieveSize {
		return nil, &ConfigurationError{Field: "sieveSize", Err: ErrSieveSizeInvalid}
	}
	if pre == nil {
		pre = NewPreSieve(nil)
	}

	// stop < start is an empty range, not an error: NextSegment must
	// simply report ok=false right away.
	if stop < start {
		return &Engine{start: start, stop: stop, sieveSize: sieveSize, pre: pre, done: true}, nil
	}

	segLow0 := start - start%30

	smallMax := sieveSize / 30
	mediumMax := 2 * sieveSize / 30

	small := NewEratSmall()
	medium := NewEratMedium()

	var big *EratBig
	if !smallMediumOnly {
		sqrtStop := uint64(math.Sqrt(float64(stop))) + 2
		horizon := bigHorizon(sqrtStop, sieveSize)
		big = NewEratBig(sieveSize, horizon, len(sievingPrimes))
	}

	for _, p := range sievingPrimes {
		if p <= pre.Bound() {
			continue
		}
		if classOf30[p%30] < 0 {
			return nil, &InvariantViolation{Detail: fmt.Sprintf("sieving prime %d shares a factor with 30", p)}
		}
		minValue := uint64(p) * 2
		switch {
		case p < smallMax:
			off, wi := wheel30.initSievingPrime(p, segLow0, minValue)
			small.Add(p, off, wi)
		case smallMediumOnly || p < mediumMax:
			off, wi := wheel30.initSievingPrime(p, segLow0, minValue)
			medium.Add(p, off, wi)
		default:
			off, wi := wheel210.initSievingPrime(p, segLow0, minValue)
			big.Add(p, off, wi)
		}
	}

	roundedStop := stop + (30-stop%30)%30
	totalBytes := (roundedStop - segLow0) / 30

	return &Engine{
		start:      start,
		stop:       stop,
		segLow0:    segLow0,
		sieveSize:  sieveSize,
		pre:        pre,
		small:      small,
		medium:     medium,
		big:        big,
		bits:       NewBitSieve(int(sieveSize)),
		nextLow:    segLow0,
		totalBytes: totalBytes,
	}, nil
}

// bigHorizon computes how many segments ahead EratBig's bucket ring
// must be able to reach. One modulo-210 step moves a sieving prime p
// at most p*10/30+10 bytes (the widest gap is 10), and its first
// multiple lies under p/2 bytes in, so sqrtStop*6+6 bytes covers both
// with room to spare; two slots are added for rounding.
func bigHorizon(sqrtStop uint64, sieveSize uint32) int {
	maxGap := uint64(6) // bytes allowed per unit of p, well above 10/30
	maxStep := sqrtStop*maxGap + maxGap
	h := int(maxStep/uint64(sieveSize)) + 2
	if h < 1 {
		h = 1
	}
	return h
}

// Err reports the first error EratBig recorded while crossing off: a
// horizon-sizing violation (a bug in bigHorizon, not bad input) or an
// AllocationError from its bucket arena.
func (eng *Engine) Err() error {
	if eng.big == nil {
		return nil
	}
	return eng.big.Err()
}

// NextSegment produces the next (segLow, segHigh, bits) triple in
// ascending order, with bits already pre-sieved, crossed off and
// boundary-masked so that every set bit corresponds to a genuine
// prime candidate within [start, stop]. It returns ok=false once the
// whole range has been covered.
func (eng *Engine) NextSegment() (segLow, segHigh uint64, bits *BitSieve, ok bool) {
	if eng.done {
		return 0, 0, nil, false
	}

	segLow = eng.nextLow
	byteIndex := (segLow - eng.segLow0) / 30

	remaining := eng.totalBytes - byteIndex
	n := uint64(eng.sieveSize)
	if remaining < n {
		n = remaining
	}
	bits = eng.bits
	bits.bytes = bits.bytes[:n]

	eng.pre.Stamp(bits.bytes, segLow/30)
	eng.small.CrossOff(bits)
	eng.medium.CrossOff(bits)
	if eng.big != nil {
		eng.big.CrossOff(bits)
	}

	segHigh = segLow + 30*n - 1

	// Exclude candidates below the true start (only matters for the
	// first segment) and below the value 2, which the byte-packed
	// encoding never represents but whose "1" bit would otherwise
	// read as prime when start is 0 or 1.
	floor := eng.start
	if floor < 2 {
		floor = 2
	}
	if floor > segLow {
		belowByte := int((floor - segLow) / 30)
		belowMask := residueMaskBelow(uint32((floor - segLow) % 30))
		bits.MaskBelow(belowByte, belowMask)
	}

	if eng.stop < segHigh {
		aboveByte := int((eng.stop - segLow) / 30)
		aboveMask := residueMaskAbove(uint32((eng.stop - segLow) % 30))
		bits.MaskAbove(aboveByte, aboveMask)
		segHigh = eng.stop
	}

	eng.nextLow = segLow + 30*n
	if byteIndex+n >= eng.totalBytes {
		eng.done = true
	}

	return segLow, segHigh, bits, true
}

// residueMaskBelow returns the OR of every bit whose residue is
// strictly less than r, for use with BitSieve.MaskBelow/MaskAbove.
func residueMaskBelow(r uint32) uint8 {
	var m uint8
	for i, res := range residues30 {
		if res < r {
			m |= 1 << uint(i)
		}
	}
	return m
}

func residueMaskAbove(r uint32) uint8 {
	var m uint8
	for i, res := range residues30 {
		if res > r {
			m |= 1 << uint(i)
		}
	}
	return m
}
