package riscv

import "archsim/bitfield"

// bType carries the fields of a conditional branch mnemonic: rs1, rs2, and
// the branch offset already sign-extended and scaled to its final usable
// value (raw 12-bit field x2, sign-extended as a 13-bit offset).
type bType struct {
	rs1, rs2 uint
	imm      int32
}

// NewBranchImm decodes a B-type immediate from its raw 12-bit encoded field
// into the scaled, sign-extended offset every consumer uses directly.
func NewBranchImm(raw12 uint32) int32 {
	return bitfield.SignExtend32(raw12, 12) * 2
}

func (t bType) Length() uint32 { return 4 }

func (t bType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

func (t bType) WriteBack(uint, uint32, *State) {}

func (t bType) WriteRegister() (uint, bool) { return 0, false }

func (t bType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return t.rs1, t.rs2, s.Registers.Read(t.rs1), s.Registers.Read(t.rs2), uint32(t.imm)
}

func (t bType) branchControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: false, Branch: true}
}

func (t bType) takeBranch(s *State) {
	s.PC += uint32(t.imm) - t.Length()
	s.Metrics.RecordBranch()
}

// BEQ: if rs1 == rs2, branch.
type BEQ struct{ bType }

func NewBEQ(rs1, rs2 uint, raw12 uint32) *BEQ {
	return &BEQ{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BEQ) Mnemonic() string { return "beq" }
func (i *BEQ) Behavior(s *State) error {
	if s.Registers.Read(i.rs1) == s.Registers.Read(i.rs2) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BEQ) ALUCompute(a, b uint32) (bool, uint32) { return a == b, 0 }
func (i *BEQ) ControlSignals() ControlSignals        { return i.branchControlSignals() }

// BNE: if rs1 != rs2, branch.
type BNE struct{ bType }

func NewBNE(rs1, rs2 uint, raw12 uint32) *BNE {
	return &BNE{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BNE) Mnemonic() string { return "bne" }
func (i *BNE) Behavior(s *State) error {
	if s.Registers.Read(i.rs1) != s.Registers.Read(i.rs2) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BNE) ALUCompute(a, b uint32) (bool, uint32) { return a != b, 0 }
func (i *BNE) ControlSignals() ControlSignals        { return i.branchControlSignals() }

// BLT: if rs1 <s rs2, branch.
type BLT struct{ bType }

func NewBLT(rs1, rs2 uint, raw12 uint32) *BLT {
	return &BLT{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BLT) Mnemonic() string { return "blt" }
func (i *BLT) Behavior(s *State) error {
	if int32(s.Registers.Read(i.rs1)) < int32(s.Registers.Read(i.rs2)) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BLT) ALUCompute(a, b uint32) (bool, uint32) { return int32(a) < int32(b), 0 }
func (i *BLT) ControlSignals() ControlSignals        { return i.branchControlSignals() }

// BGE: if rs1 >=s rs2, branch.
type BGE struct{ bType }

func NewBGE(rs1, rs2 uint, raw12 uint32) *BGE {
	return &BGE{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BGE) Mnemonic() string { return "bge" }
func (i *BGE) Behavior(s *State) error {
	if int32(s.Registers.Read(i.rs1)) >= int32(s.Registers.Read(i.rs2)) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BGE) ALUCompute(a, b uint32) (bool, uint32) { return int32(a) >= int32(b), 0 }
func (i *BGE) ControlSignals() ControlSignals        { return i.branchControlSignals() }

// BLTU: if rs1 <u rs2, branch.
type BLTU struct{ bType }

func NewBLTU(rs1, rs2 uint, raw12 uint32) *BLTU {
	return &BLTU{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BLTU) Mnemonic() string { return "bltu" }
func (i *BLTU) Behavior(s *State) error {
	if s.Registers.Read(i.rs1) < s.Registers.Read(i.rs2) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BLTU) ALUCompute(a, b uint32) (bool, uint32) { return a < b, 0 }
func (i *BLTU) ControlSignals() ControlSignals        { return i.branchControlSignals() }

// BGEU: if rs1 >=u rs2, branch.
type BGEU struct{ bType }

func NewBGEU(rs1, rs2 uint, raw12 uint32) *BGEU {
	return &BGEU{bType{rs1, rs2, NewBranchImm(raw12)}}
}

func (i *BGEU) Mnemonic() string { return "bgeu" }
func (i *BGEU) Behavior(s *State) error {
	if s.Registers.Read(i.rs1) >= s.Registers.Read(i.rs2) {
		i.takeBranch(s)
	}
	return nil
}
func (i *BGEU) ALUCompute(a, b uint32) (bool, uint32) { return a >= b, 0 }
func (i *BGEU) ControlSignals() ControlSignals        { return i.branchControlSignals() }
