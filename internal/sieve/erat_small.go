package sieve

// EratSmall crosses off the sieving primes dense enough to strike a
// typical segment many times: p small enough that 30*p is a small
// fraction of the segment size. These are the hottest primes in the
// whole pipeline (7, 11, 13, ... through a few hundred), so the inner
// loop is unrolled two wheel-steps at a time to cut loop-overhead and
// let the CPU pipeline the two independent bit clears.
type EratSmall struct {
	w      *wheel
	primes []smallPrime
}

type smallPrime struct {
	d             uint32 // sievingPrime / 30
	multipleIndex uint32 // byte offset, relative to the current segment
	wheelIndex    uint32
}

// NewEratSmall allocates an EratSmall bound to the modulo-30 wheel.
func NewEratSmall() *EratSmall {
	return &EratSmall{w: wheel30}
}

// Add inserts sieving prime p, whose first qualifying multiple at or
// after minValue was already located by the caller as byteOffset
// (relative to origin) and wheelIndex.
func (e *EratSmall) Add(p uint32, byteOffset uint64, wheelIndex uint32) {
	e.primes = append(e.primes, smallPrime{
		d:             p / 30,
		multipleIndex: uint32(byteOffset),
		wheelIndex:    wheelIndex,
	})
}

// CrossOff clears every composite candidate of every stored prime
// that falls within bs, then carries each prime's state into the next
// segment.
func (e *EratSmall) CrossOff(bs *BitSieve) {
	bytes := bs.bytes
	n := uint32(len(bytes))
	entries := e.w.entries

	for i := range e.primes {
		sp := &e.primes[i]
		d := sp.d
		mi := sp.multipleIndex
		wi := sp.wheelIndex

		for mi+1 < n {
			en := &entries[wi]
			bytes[mi] &^= en.mask
			mi += d*en.gap + en.deltaExtra
			wi = en.next

			if mi >= n {
				break
			}
			en = &entries[wi]
			bytes[mi] &^= en.mask
			mi += d*en.gap + en.deltaExtra
			wi = en.next
		}
		for mi < n {
			en := &entries[wi]
			bytes[mi] &^= en.mask
			mi += d*en.gap + en.deltaExtra
			wi = en.next
		}

		sp.multipleIndex = mi - n
		sp.wheelIndex = wi
	}
}
