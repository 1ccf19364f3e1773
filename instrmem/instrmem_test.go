package instrmem_test

import (
	"errors"
	"testing"

	"archsim/instrmem"
)

func TestAppendAdvancesByAlign(t *testing.T) {
	m := instrmem.New[string](4)
	a0 := m.Append("first")
	a1 := m.Append("second")
	if a0 != 0 || a1 != 4 {
		t.Errorf("got addresses %#x, %#x; want 0x0, 0x4", a0, a1)
	}
}

func TestWriteAtAndRead(t *testing.T) {
	m := instrmem.New[int](4)
	m.WriteAt(0x100, 42)
	got, err := m.Read(0x100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestReadMissingReturnsNotFound(t *testing.T) {
	m := instrmem.New[int](4)
	_, err := m.Read(0x1000)
	var nf *instrmem.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestContains(t *testing.T) {
	m := instrmem.New[int](2)
	m.Append(1)
	if !m.Contains(0) {
		t.Error("expected address 0 to be present")
	}
	if m.Contains(2) {
		t.Error("expected address 2 to be absent")
	}
}

func TestWriteAtAdvancesNext(t *testing.T) {
	m := instrmem.New[int](4)
	m.WriteAt(0x10, 1)
	addr := m.Append(2)
	if addr != 0x14 {
		t.Errorf("got %#x, want 0x14", addr)
	}
}

func TestLen(t *testing.T) {
	m := instrmem.New[int](4)
	m.Append(1)
	m.Append(2)
	if m.Len() != 2 {
		t.Errorf("got %d, want 2", m.Len())
	}
}
