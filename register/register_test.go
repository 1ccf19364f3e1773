package register_test

import (
	"testing"

	"archsim/register"
)

func TestNewIsZeroed(t *testing.T) {
	f := register.New()
	for i := uint(0); i < register.Count; i++ {
		if got := f.Read(i); got != 0 {
			t.Errorf("register %d: got %d, want 0", i, got)
		}
	}
}

func TestZeroRegisterReadsZeroAfterWrite(t *testing.T) {
	f := register.New()
	f.Write(0, 0xDEADBEEF)
	if got := f.Read(0); got != 0 {
		t.Errorf("register 0: got %#x, want 0", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	f := register.New()
	f.Write(5, 0x12345678)
	if got := f.Read(5); got != 0x12345678 {
		t.Errorf("got %#x, want %#x", got, 0x12345678)
	}
}

func TestOutOfRangeWriteDiscarded(t *testing.T) {
	f := register.New()
	f.Write(32, 1)
	f.Write(100, 2)
	if got := f.Read(32); got != 0 {
		t.Errorf("register 32: got %d, want 0", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	f := register.New()
	f.Write(1, 42)
	snap := f.Snapshot()
	f.Write(1, 99)
	if snap[1] != 42 {
		t.Errorf("snapshot mutated: got %d, want 42", snap[1])
	}
}
