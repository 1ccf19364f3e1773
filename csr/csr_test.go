package csr_test

import (
	"errors"
	"testing"

	"archsim/csr"
)

func TestReadWriteRoundTrip(t *testing.T) {
	f := csr.New()
	if err := f.ChangePrivilegeLevel(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Write(0x300, 0xCAFEBABE); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := f.Read(0x300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xCAFEBABE {
		t.Errorf("got %#x, want %#x", got, 0xCAFEBABE)
	}
}

func TestIllegalAddress(t *testing.T) {
	f := csr.New()
	_, err := f.Read(4096)
	var illegal *csr.IllegalAddressError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected IllegalAddressError, got %v", err)
	}
}

func TestPrivilegeTooLow(t *testing.T) {
	f := csr.New() // privilege level 0
	// address 0x100 has privilege bits 0b01 -> requires level 1
	err := f.Write(0x100, 1)
	var priv *csr.PrivilegeError
	if !errors.As(err, &priv) {
		t.Fatalf("expected PrivilegeError, got %v", err)
	}
}

func TestPrivilegeSufficient(t *testing.T) {
	f := csr.New()
	if err := f.ChangePrivilegeLevel(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Write(0x100, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadOnlyRejectsWrite(t *testing.T) {
	f := csr.New()
	if err := f.ChangePrivilegeLevel(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// bits [11:10] both set -> read-only
	addr := uint32(0b1100_0000_0000)
	err := f.Write(addr, 1)
	var ro *csr.ReadOnlyError
	if !errors.As(err, &ro) {
		t.Fatalf("expected ReadOnlyError, got %v", err)
	}
	// reads still succeed
	if _, err := f.Read(addr); err != nil {
		t.Fatalf("unexpected error reading read-only csr: %v", err)
	}
}

func TestChangePrivilegeLevelRejectsOutOfRange(t *testing.T) {
	f := csr.New()
	if err := f.ChangePrivilegeLevel(4); err == nil {
		t.Fatal("expected error for privilege level 4")
	}
	if f.PrivilegeLevel() != 0 {
		t.Errorf("privilege level should be unchanged, got %d", f.PrivilegeLevel())
	}
}
