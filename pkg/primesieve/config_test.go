package primesieve

import (
	"testing"

	"sieve.tuplets.dev/internal/sieve"
)

func TestRecommendedSieveSizeIsPowerOfTwoInRange(t *testing.T) {
	size := RecommendedSieveSize()
	if size&(size-1) != 0 {
		t.Fatalf("RecommendedSieveSize() = %d, not a power of two", size)
	}
	if size < sieve.MinSieveSize || size > sieve.MaxSieveSize {
		t.Fatalf("RecommendedSieveSize() = %d, out of bounds [%d, %d]", size, sieve.MinSieveSize, sieve.MaxSieveSize)
	}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	if c.logger() == nil {
		t.Fatal("logger() returned nil")
	}
	if c.sieveSize() == 0 {
		t.Fatal("sieveSize() returned 0")
	}
}
