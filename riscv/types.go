// Package riscv implements RV32I+Zicsr instruction semantics: the decoded
// instruction forms of the specification's data model, their monolithic
// behavior (used by the single-cycle engine) and their datapath-split hooks
// (used by the pipelined engine), plus a raw word decoder.
//
// Instructions are a closed family of small structs, one per mnemonic, each
// implementing Instruction. There is no class hierarchy: shared defaults
// live as plain functions (defaultWriteBack, defaultMemoryAccess, ...) that
// each mnemonic's methods call explicitly, matching a tagged-sum dispatch
// rather than inheritance.
package riscv

import "archsim/state"

// State is the RV32I+Zicsr architectural state, instantiated with this
// package's own Instruction type.
type State = state.RISCV[Instruction]

// WBSrc selects the data written back to the destination register.
type WBSrc int

const (
	WBSrcPCPlusLen WBSrc = iota // pc + instruction length
	WBSrcMem                    // memory read data
	WBSrcALU                    // ALU result
	WBSrcImm                    // immediate
)

// ControlSignals is the control word produced in the ID stage and consumed
// by EX/MEM/WB.
type ControlSignals struct {
	ALUSrc1  bool // true: register data 1; false: address of instruction (PC)
	ALUSrc2  bool // true: immediate; false: register data 2
	WBSrc    WBSrc
	RegWrite bool
	MemRead  bool
	MemWrite bool
	Branch   bool
	Jump     bool
	ALUToPC  bool // true for JALR: the ALU result (not pc+imm) redirects PC
}

// Instruction is a decoded RV32I+Zicsr instruction. Every variant
// implements the full set of hooks; mnemonics that don't need a given hook
// (e.g. ADD has no MemoryAccess effect) fall back to a no-op default.
type Instruction interface {
	Mnemonic() string
	Length() uint32

	// Behavior is the monolithic reference semantics used by the
	// single-cycle engine: it mutates state directly and returns any
	// execution error (e.g. InstructionNotImplemented).
	Behavior(s *State) error

	// ALUCompute is the combinational EX-stage datapath.
	ALUCompute(in1, in2 uint32) (branchTaken bool, result uint32)

	// MemoryAccess is the MEM-stage hook.
	MemoryAccess(addr, wdata uint32, s *State) (rdata uint32, err error)

	// WriteBack is the WB-stage hook.
	WriteBack(rd uint, wdata uint32, s *State)

	// AccessRegisterFile is the ID-stage hook: it returns the two source
	// register addresses and their current values, plus the immediate
	// (already sign-extended and, for B/J/U forms, already scaled to its
	// final usable value — see SPEC_FULL.md's immediate-scaling note).
	AccessRegisterFile(s *State) (addr1, addr2 uint, data1, data2 uint32, imm uint32)

	// ControlSignals returns this mnemonic's control word.
	ControlSignals() ControlSignals

	// WriteRegister returns the destination register and true, or
	// (0, false) if this instruction never writes a register.
	WriteRegister() (uint, bool)
}

func defaultMemoryAccess(_ uint32, _ uint32, _ *State) (uint32, error) {
	return 0, nil
}

func defaultWriteBack(rd uint, wdata uint32, s *State) {
	s.Registers.Write(rd, wdata)
}

func noWriteBack(_ uint, _ uint32, _ *State) {}

// Empty is the pipeline bubble: a no-effect instruction carrying no fields,
// used to pad pipeline slots instead of a sentinel value (invariant 6).
type Empty struct{}

func (Empty) Mnemonic() string { return "" }
func (Empty) Length() uint32   { return 4 }
func (Empty) Behavior(*State) error {
	return nil
}
func (Empty) ALUCompute(uint32, uint32) (bool, uint32) { return false, 0 }
func (Empty) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}
func (Empty) WriteBack(uint, uint32, *State) {}
func (Empty) AccessRegisterFile(*State) (uint, uint, uint32, uint32, uint32) {
	return 0, 0, 0, 0, 0
}
func (Empty) ControlSignals() ControlSignals { return ControlSignals{} }
func (Empty) WriteRegister() (uint, bool)    { return 0, false }
