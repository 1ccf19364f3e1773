// Package csr implements the control/status register file: a 4096-entry
// 32-bit register space addressed like data memory but gated by privilege
// level and per-address read-only bits.
package csr

import "archsim/memory"

// Count is the number of addressable CSRs.
const Count = 4096

// File is the CSR register space, backed by the same byte-addressed
// primitive as data memory (each CSR occupies 4 bytes).
type File struct {
	mem       *memory.Memory
	privilege uint8
}

// New returns a CSR file with all registers zeroed and privilege level 0.
func New() *File {
	return &File{mem: memory.New()}
}

// PrivilegeLevel returns the current privilege level (0..3).
func (f *File) PrivilegeLevel() uint8 {
	return f.privilege
}

// ChangePrivilegeLevel sets the privilege level. Levels outside [0, 3] are
// rejected with an error and leave the level unchanged.
func (f *File) ChangePrivilegeLevel(level uint8) error {
	if level > 3 {
		return &IllegalPrivilegeLevelError{Level: level}
	}
	f.privilege = level
	return nil
}

func legalAddress(addr uint32) bool {
	return addr < Count
}

// privilegeBits extracts the two privilege bits at address bits [9:8].
func privilegeBits(addr uint32) uint8 {
	return uint8((addr >> 8) & 0b11)
}

// readOnly reports whether bits [11:10] of addr are both set.
func readOnly(addr uint32) bool {
	return (addr>>10)&0b11 == 0b11
}

func (f *File) checkReadable(addr uint32) error {
	if !legalAddress(addr) {
		return &IllegalAddressError{Address: addr}
	}
	if privilegeBits(addr) > f.privilege {
		return &PrivilegeError{Address: addr, Required: privilegeBits(addr), Current: f.privilege}
	}
	return nil
}

func (f *File) checkWritable(addr uint32) error {
	if err := f.checkReadable(addr); err != nil {
		return err
	}
	if readOnly(addr) {
		return &ReadOnlyError{Address: addr}
	}
	return nil
}

// Read returns the 32-bit value at csr address addr (0..4095).
func (f *File) Read(addr uint32) (uint32, error) {
	if err := f.checkReadable(addr); err != nil {
		return 0, err
	}
	v, _ := f.mem.ReadWord(addr * 4)
	return v, nil
}

// Write stores the low 32 bits of v at csr address addr (0..4095).
func (f *File) Write(addr uint32, v uint32) error {
	if err := f.checkWritable(addr); err != nil {
		return err
	}
	return f.mem.WriteWord(addr*4, v)
}
