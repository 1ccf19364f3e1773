// Package state composes the leaf components (register file, data memory,
// CSR file, instruction memory, performance metrics) into the two
// architectural states the engines operate on. Both are generic over the
// decoded instruction type so this package never has to import the riscv or
// toy packages: they instantiate it instead, which keeps the dependency
// graph a DAG despite every instruction's behavior taking a state pointer.
package state

import (
	"archsim/csr"
	"archsim/instrmem"
	"archsim/memory"
	"archsim/metrics"
	"archsim/register"
)

// RISCV is the RV32I+Zicsr architectural state: 32 general-purpose
// registers, byte-addressed data memory, a CSR file, instruction memory, a
// 32-bit program counter, and performance metrics.
type RISCV[I any] struct {
	Registers    *register.File
	Memory       *memory.Memory
	CSRs         *csr.File
	Instructions *instrmem.Memory[I]
	Metrics      *metrics.Metrics
	PC           uint32
}

// NewRISCV returns a freshly constructed RISC-V architectural state with a
// data memory of the given address width and range-checking floor.
func NewRISCV[I any](addressWidth uint, minBytes uint32) *RISCV[I] {
	var mem *memory.Memory
	if minBytes > 0 {
		mem = memory.NewRangeChecked(addressWidth, minBytes)
	} else {
		mem = memory.NewWithWidth(addressWidth)
	}
	return &RISCV[I]{
		Registers:    register.New(),
		Memory:       mem,
		CSRs:         csr.New(),
		Instructions: instrmem.New[I](4),
		Metrics:      metrics.New(),
	}
}

// PrivilegeLevel returns the current CSR privilege level.
func (s *RISCV[I]) PrivilegeLevel() uint8 {
	return s.CSRs.PrivilegeLevel()
}

// ChangePrivilegeLevel sets the CSR privilege level.
func (s *RISCV[I]) ChangePrivilegeLevel(level uint8) error {
	return s.CSRs.ChangePrivilegeLevel(level)
}

// Toy is the 16-bit accumulator-machine architectural state: a single
// accumulator register, byte-addressed data memory, instruction memory, a
// 16-bit program counter, and performance metrics.
type Toy[I any] struct {
	Accumulator  uint16
	Memory       *memory.Memory
	Instructions *instrmem.Memory[I]
	Metrics      *metrics.Metrics
	PC           uint16
}

// NewToy returns a freshly constructed toy architectural state.
func NewToy[I any]() *Toy[I] {
	return &Toy[I]{
		Memory:       memory.NewWithWidth(16),
		Instructions: instrmem.New[I](1),
		Metrics:      metrics.New(),
	}
}
