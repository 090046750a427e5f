package sieve

// Package-level tables describing the two wheels used by the sieve: a
// modulo-30 wheel for the bit-packed candidate array, and a modulo-210
// wheel for EratBig's sparse sieving primes.
//
// A byte of the sieve represents a span of 30 consecutive integers and
// carries one bit for each of the eight residues coprime to 30:
//
//	bit 0 1 2 3 4 5 6  7
//	val 1 7 11 13 17 19 23 29
//
// residues30 lists those eight values in ascending order; gaps30 holds
// the distance from each residue to the next, wrapping from 29 to the
// 1 of the following byte (a wrap distance of 2, since 30+1-29=2).

var residues30 = [8]uint32{1, 7, 11, 13, 17, 19, 23, 29}

var gaps30 = [8]uint32{6, 4, 2, 4, 2, 4, 6, 2}

// residues210 lists the 48 values below 210 that are coprime to it
// (equivalently, coprime to 2, 3, 5 and 7). EratBig steps its sparse
// sieving primes along this finer wheel so that each stored prime
// skips its multiples of 7 and takes six sevenths as many steps as
// the modulo-30 wheel would require, at the cost of a larger
// precomputed table.
var residues210 = [48]uint32{
	1, 11, 13, 17, 19, 23, 29, 31,
	37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103,
	107, 109, 113, 121, 127, 131, 137, 139,
	143, 149, 151, 157, 163, 167, 169, 173,
	179, 181, 187, 191, 193, 197, 199, 209,
}

var gaps210 = computeGaps210()

func computeGaps210() [48]uint32 {
	var g [48]uint32
	for i := range residues210 {
		next := residues210[(i+1)%48]
		cur := residues210[i]
		if i == 47 {
			g[i] = 210 + next - cur
		} else {
			g[i] = next - cur
		}
	}
	return g
}

// classOf30 maps a residue mod 30 (one of residues30's eight values)
// to its index in residues30, i.e. its "class" for the combined wheel
// index used by both wheels. Indices for non-coprime residues are
// never consulted and left as -1 so that misuse panics loudly.
var classOf30 = buildClassOf30()

func buildClassOf30() [30]int8 {
	var c [30]int8
	for i := range c {
		c[i] = -1
	}
	for idx, r := range residues30 {
		c[r] = int8(idx)
	}
	return c
}

// residueIndex30 maps a value mod 30 to its bit index within a sieve
// byte, or -1 if the value shares a factor with 30.
func residueIndex30(v uint32) int {
	return int(classOf30[v%30])
}
