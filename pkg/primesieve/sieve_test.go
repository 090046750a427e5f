package primesieve

import (
	"strings"
	"testing"
)

func TestCountKnownValues(t *testing.T) {
	cases := []struct {
		start, stop uint64
		want        uint64
	}{
		{0, 29, 10},
		{0, 100, 25},
		{0, 1000, 168},
		{100, 200, 21},
		{0, 1000000, 78498},
	}

	s := New(Config{SieveSize: 1024})
	for _, tc := range cases {
		got, err := s.Count(tc.start, tc.stop)
		if err != nil {
			t.Fatalf("Count(%d,%d): %v", tc.start, tc.stop, err)
		}
		if got != tc.want {
			t.Errorf("Count(%d,%d) = %d, want %d", tc.start, tc.stop, got, tc.want)
		}
	}
}

// TestCountPublishedLargeValues checks Count against the published
// prime-counting-function table at two points far beyond the 10^6
// range of TestCountKnownValues. The
// 10^12 case is slow enough (tens of seconds) to gate behind
// testing.Short(), but it must run in a full test pass.
func TestCountPublishedLargeValues(t *testing.T) {
	s := New(Config{})

	got, err := s.Count(0, 1000000000)
	if err != nil {
		t.Fatalf("Count(0, 1e9): %v", err)
	}
	if got != 50847534 {
		t.Errorf("Count(0, 1e9) = %d, want 50847534", got)
	}

	if testing.Short() {
		t.Skip("skipping pi(1e12) in short mode")
	}
	got, err = s.Count(0, 1000000000000)
	if err != nil {
		t.Fatalf("Count(0, 1e12): %v", err)
	}
	if got != 37607912018 {
		t.Errorf("Count(0, 1e12) = %d, want 37607912018", got)
	}
}

// TestCountSeptupletsPublishedValue checks the published count of
// prime septuplets below 10^9 (1713), summed across both canonical
// septuplet offset patterns since CountTuplet only scans one pattern
// at a time.
func TestCountSeptupletsPublishedValue(t *testing.T) {
	s := New(Config{})

	n1, err := s.CountTuplet(0, 1000000000, Septuplets1)
	if err != nil {
		t.Fatalf("CountTuplet(Septuplets1): %v", err)
	}
	n2, err := s.CountTuplet(0, 1000000000, Septuplets2)
	if err != nil {
		t.Fatalf("CountTuplet(Septuplets2): %v", err)
	}
	if got := n1 + n2; got != 1713 {
		t.Errorf("septuplets(0, 1e9) = %d, want 1713", got)
	}
}

func TestCountTupletTwins(t *testing.T) {
	s := New(Config{})
	got, err := s.CountTuplet(0, 1000000, Twins)
	if err != nil {
		t.Fatalf("CountTuplet: %v", err)
	}
	if got != 8169 {
		t.Errorf("CountTuplet(Twins, 0, 1e6) = %d, want 8169", got)
	}
}

func TestGenerateMatchesCount(t *testing.T) {
	s := New(Config{})
	var n uint64
	err := s.Generate(0, 100000, func(p uint64) bool {
		n++
		return true
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want, err := s.Count(0, 100000)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != want {
		t.Errorf("Generate visited %d primes, Count reported %d", n, want)
	}
}

func TestGenerateStopsEarly(t *testing.T) {
	s := New(Config{})
	var got []uint64
	err := s.Generate(0, 1000, func(p uint64) bool {
		got = append(got, p)
		return len(got) < 5
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []uint64{2, 3, 5, 7, 11}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPrintWritesOnePerLine(t *testing.T) {
	s := New(Config{})
	var sb strings.Builder
	if err := s.Print(&sb, 0, 20); err != nil {
		t.Fatalf("Print: %v", err)
	}
	got := sb.String()
	want := "2\n3\n5\n7\n11\n13\n17\n19\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	s := New(Config{})
	a, err := s.Digest(0, 100000)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	b, err := s.Digest(0, 100000)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if a != b {
		t.Errorf("Digest not deterministic: %d != %d", a, b)
	}
}

func TestDigestDiffersAcrossRanges(t *testing.T) {
	s := New(Config{})
	a, err := s.Digest(0, 1000)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	b, err := s.Digest(0, 2000)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if a == b {
		t.Errorf("Digest gave the same value for two different ranges")
	}
}
