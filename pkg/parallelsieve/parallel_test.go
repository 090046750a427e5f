package parallelsieve

import "testing"

func TestPartitionCoversRangeExactly(t *testing.T) {
	parts := partition(0, 1000000, 4)
	if len(parts) == 0 {
		t.Fatal("partition returned no parts")
	}
	if parts[0][0] != 0 {
		t.Fatalf("first part starts at %d, want 0", parts[0][0])
	}
	if parts[len(parts)-1][1] != 1000000 {
		t.Fatalf("last part ends at %d, want 1000000", parts[len(parts)-1][1])
	}
	for i := 1; i < len(parts); i++ {
		if parts[i][0] != parts[i-1][1]+1 {
			t.Fatalf("gap or overlap between part %d (%v) and %d (%v)", i-1, parts[i-1], i, parts[i])
		}
	}
	for i := 0; i < len(parts)-1; i++ {
		if parts[i][1]%210 != 0 {
			t.Fatalf("part %d ends at %d, not aligned to a 210 boundary", i, parts[i][1])
		}
	}
}

func TestPartitionSmallRangeDoesNotExceedSize(t *testing.T) {
	parts := partition(0, 3, 8)
	total := uint64(0)
	for _, p := range parts {
		total += p[1] - p[0] + 1
	}
	if total != 4 {
		t.Fatalf("partition covered %d values, want 4", total)
	}
}

func TestCountMatchesSerial(t *testing.T) {
	got, err := Count(0, 1000000, Config{Workers: 4})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if got != 78498 {
		t.Errorf("Count(0,1e6) with 4 workers = %d, want 78498", got)
	}
}

func TestCountSingleWorkerMatchesMultiWorker(t *testing.T) {
	one, err := Count(0, 500000, Config{Workers: 1})
	if err != nil {
		t.Fatalf("Count workers=1: %v", err)
	}
	many, err := Count(0, 500000, Config{Workers: 6})
	if err != nil {
		t.Fatalf("Count workers=6: %v", err)
	}
	if one != many {
		t.Errorf("Count disagrees across worker counts: %d (1 worker) vs %d (6 workers)", one, many)
	}
}
