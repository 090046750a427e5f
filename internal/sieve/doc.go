// Package sieve implements a segmented, wheel-factorized sieve of
// Eratosthenes. It packs thirty consecutive integers into one byte,
// one bit per residue coprime to 30, and crosses off composites in
// three tiers by sieving prime size relative to the segment size S:
// EratSmall for primes below S/30, EratMedium for primes below
// 2*S/30, and EratBig for every larger prime, whose multiples are
// bucket-sorted by the future segment they are next due in.
//
// Engine exposes this as a segment iterator; pkg/primesieve builds on
// it to offer counting, printing and digest scanners over arbitrary
// ranges up to MaxStop.
package sieve
