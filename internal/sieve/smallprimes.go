package sieve

// findSmallPrimes returns every prime up to and including bound using
// a flat, unsegmented sieve of Eratosthenes. It exists purely to seed
// the sieving primes of a segmented run's own inner sqrt-sieve: that
// bound is always the fourth root of the outer run's stop value, at
// most a few tens of thousands even for the largest ranges this
// package supports, so a flat byte-per-candidate sieve is simpler
// than recursing further and costs nothing measurable.
func findSmallPrimes(bound uint64) []uint32 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	var primes []uint32
	for i := uint64(2); i <= bound; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint32(i))
		if i*i <= bound {
			for j := i * i; j <= bound; j += i {
				composite[j] = true
			}
		}
	}
	return primes
}
