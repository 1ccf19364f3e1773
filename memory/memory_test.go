package memory_test

import (
	"testing"

	"archsim/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteRoundTrip(t *testing.T) {
	m := memory.New()
	if err := m.WriteByte(0, 0xAB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := m.ReadByte(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xAB {
		t.Errorf("got %#x, want %#x", got, 0xAB)
	}
}

func TestAbsentByteReadsZero(t *testing.T) {
	m := memory.New()
	got, err := m.ReadByte(0x1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestHalfwordLittleEndian(t *testing.T) {
	m := memory.New()
	if err := m.WriteHalfword(0, 0x1234); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lo, _ := m.ReadByte(0)
	hi, _ := m.ReadByte(1)
	if lo != 0x34 || hi != 0x12 {
		t.Errorf("got lo=%#x hi=%#x, want lo=0x34 hi=0x12", lo, hi)
	}
	got, err := m.ReadHalfword(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("got %#x, want %#x", got, 0x1234)
	}
}

func TestWordLittleEndian(t *testing.T) {
	m := memory.New()
	if err := m.WriteWord(0, 0xDEADBEEF); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b0, _ := m.ReadByte(0)
	b1, _ := m.ReadByte(1)
	b2, _ := m.ReadByte(2)
	b3, _ := m.ReadByte(3)
	if b0 != 0xEF || b1 != 0xBE || b2 != 0xAD || b3 != 0xDE {
		t.Errorf("got %#x %#x %#x %#x", b0, b1, b2, b3)
	}
	got, err := m.ReadWord(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("got %#x, want %#x", got, 0xDEADBEEF)
	}
}

func TestRangeCheckedRejectsBelowMin(t *testing.T) {
	m := memory.NewRangeChecked(32, 0x1000)

	tests := []struct {
		name string
		addr uint32
	}{
		{"zero address", 0},
		{"one below window", 0xFFF},
		{"far below window", 0x100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ReadByte(tt.addr)
			require.Error(t, err, "address below the minimum should be rejected")
			var addrErr *memory.MemoryAddressError
			assert.ErrorAs(t, err, &addrErr, "error should be a *MemoryAddressError")
		})
	}
}

func TestRangeCheckedAllowsWithinWindow(t *testing.T) {
	m := memory.NewRangeChecked(32, 0x1000)

	tests := []struct {
		name string
		addr uint32
	}{
		{"window start", 0x1000},
		{"well above window start", 0x1000 + 0x100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, m.WriteByte(tt.addr, 1), "address within the window should be accepted")
		})
	}
}

func TestAddressWraps(t *testing.T) {
	m := memory.NewWithWidth(8)
	if err := m.WriteByte(0x1FF, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := m.ReadByte(0xFF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x42 {
		t.Errorf("got %#x, want %#x", got, 0x42)
	}
}
