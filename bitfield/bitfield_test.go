package bitfield_test

import (
	"testing"

	"archsim/bitfield"
)

func TestSignExtend32_Positive(t *testing.T) {
	if got := bitfield.SignExtend32(0x7FF, 12); got != 0x7FF {
		t.Errorf("got %d, want %d", got, 0x7FF)
	}
}

func TestSignExtend32_Negative(t *testing.T) {
	// low 12 bits of -1
	if got := bitfield.SignExtend32(0xFFF, 12); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestSignExtend32_AllWidths(t *testing.T) {
	for width := uint(1); width <= 32; width++ {
		maxNeg := uint32(1) << (width - 1)
		got := bitfield.SignExtend32(maxNeg, width)
		if got >= 0 {
			t.Errorf("width %d: sign bit set but result %d is not negative", width, got)
		}
	}
}

func TestZeroExtend32(t *testing.T) {
	if got := bitfield.ZeroExtend32(0xFFFFFFFF, 5); got != 0x1F {
		t.Errorf("got %#x, want %#x", got, 0x1F)
	}
}

func TestSlice32(t *testing.T) {
	v := uint32(0b1011_0110)
	if got := bitfield.Slice32(v, 7, 4); got != 0b1011 {
		t.Errorf("got %#b, want %#b", got, 0b1011)
	}
}

func TestShiftAmount32MasksToFiveBits(t *testing.T) {
	if got := bitfield.ShiftAmount32(0xFFFFFFFF); got != 31 {
		t.Errorf("got %d, want 31", got)
	}
}

func TestASR32SignExtends(t *testing.T) {
	if got := bitfield.ASR32(0x80000000, 4); got != 0xF8000000 {
		t.Errorf("got %#x, want %#x", got, 0xF8000000)
	}
}

func TestASR32PositivePreservesZeroFill(t *testing.T) {
	if got := bitfield.ASR32(0x40000000, 4); got != 0x04000000 {
		t.Errorf("got %#x, want %#x", got, 0x04000000)
	}
}
