package primesieve

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"sieve.tuplets.dev/internal/sieve"
)

// Digest returns a fingerprint of every prime in [start, stop]: an
// xxhash running over each prime's little-endian uint64 encoding, in
// ascending order. Two runs over the same range on the same build
// always agree, which makes Digest useful for verifying a sieve
// result against a trusted reference without transferring the full
// prime list.
func (s *Sieve) Digest(start, stop uint64) (uint64, error) {
	d := xxhash.New()
	var buf [8]byte

	writeHash := func(p uint64) bool {
		binary.LittleEndian.PutUint64(buf[:], p)
		d.Write(buf[:])
		return true
	}

	for _, p := range [...]uint64{2, 3, 5} {
		if p >= start && p <= stop {
			writeHash(p)
		}
	}

	err := s.run(start, stop, func(segLow, segHigh uint64, bits *sieve.BitSieve) {
		walkSetBits(segLow, bits, writeHash)
	})
	if err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}
