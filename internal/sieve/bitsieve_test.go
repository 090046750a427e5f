package sieve

import "testing"

func TestBitSieveResetAndCount(t *testing.T) {
	bs := NewBitSieve(10)
	bs.Reset()
	if got := bs.CountSetBits(); got != 80 {
		t.Fatalf("CountSetBits = %d, want 80", got)
	}
}

func TestBitSieveClearAndTest(t *testing.T) {
	bs := NewBitSieve(4)
	bs.Reset()
	bs.ClearBit(1, 1<<3)
	if bs.TestBit(1, 1<<3) {
		t.Fatal("bit should be cleared")
	}
	if !bs.TestBit(1, 1<<2) {
		t.Fatal("unrelated bit should remain set")
	}
	if got := bs.CountSetBits(); got != 31 {
		t.Fatalf("CountSetBits = %d, want 31", got)
	}
}

func TestBitSieveMaskBelow(t *testing.T) {
	bs := NewBitSieve(5)
	bs.Reset()
	bs.MaskBelow(2, 0x0f)
	if bs.bytes[0] != 0 || bs.bytes[1] != 0 {
		t.Fatalf("bytes below 2 should be zero, got %08b %08b", bs.bytes[0], bs.bytes[1])
	}
	if bs.bytes[2] != 0xf0 {
		t.Fatalf("byte 2 = %08b, want %08b", bs.bytes[2], 0xf0)
	}
	if bs.bytes[3] != 0xff {
		t.Fatalf("byte 3 should be untouched, got %08b", bs.bytes[3])
	}
}

func TestBitSieveMaskAbove(t *testing.T) {
	bs := NewBitSieve(5)
	bs.Reset()
	bs.MaskAbove(2, 0xf0)
	if bs.bytes[2] != 0x0f {
		t.Fatalf("byte 2 = %08b, want %08b", bs.bytes[2], 0x0f)
	}
	if bs.bytes[3] != 0 || bs.bytes[4] != 0 {
		t.Fatalf("bytes above 2 should be zero, got %08b %08b", bs.bytes[3], bs.bytes[4])
	}
	if bs.bytes[1] != 0xff {
		t.Fatalf("byte 1 should be untouched, got %08b", bs.bytes[1])
	}
}
