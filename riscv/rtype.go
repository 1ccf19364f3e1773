package riscv

import "archsim/bitfield"

// rType carries the three register fields shared by every R-type mnemonic.
type rType struct {
	rd, rs1, rs2 uint
}

func (r rType) Length() uint32 { return 4 }

func (r rType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

func (r rType) WriteBack(rd uint, wdata uint32, s *State) {
	defaultWriteBack(rd, wdata, s)
}

func (r rType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return r.rs1, r.rs2, s.Registers.Read(r.rs1), s.Registers.Read(r.rs2), 0
}

func (r rType) WriteRegister() (uint, bool) { return r.rd, true }

func (r rType) rtypeControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: false, WBSrc: WBSrcALU, RegWrite: true}
}

// ADD: rd = rs1 + rs2.
type ADD struct{ rType }

func NewADD(rd, rs1, rs2 uint) *ADD { return &ADD{rType{rd, rs1, rs2}} }

func (i *ADD) Mnemonic() string { return "add" }
func (i *ADD) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)+s.Registers.Read(i.rs2))
	return nil
}
func (i *ADD) ALUCompute(a, b uint32) (bool, uint32) { return false, a + b }
func (i *ADD) ControlSignals() ControlSignals        { return i.rtypeControlSignals() }

// SUB: rd = rs1 - rs2.
type SUB struct{ rType }

func NewSUB(rd, rs1, rs2 uint) *SUB { return &SUB{rType{rd, rs1, rs2}} }

func (i *SUB) Mnemonic() string { return "sub" }
func (i *SUB) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)-s.Registers.Read(i.rs2))
	return nil
}
func (i *SUB) ALUCompute(a, b uint32) (bool, uint32) { return false, a - b }
func (i *SUB) ControlSignals() ControlSignals        { return i.rtypeControlSignals() }

// SLL: rd = rs1 << (rs2 & 31).
type SLL struct{ rType }

func NewSLL(rd, rs1, rs2 uint) *SLL { return &SLL{rType{rd, rs1, rs2}} }

func (i *SLL) Mnemonic() string { return "sll" }
func (i *SLL) Behavior(s *State) error {
	rs1, rs2 := s.Registers.Read(i.rs1), s.Registers.Read(i.rs2)
	s.Registers.Write(i.rd, rs1<<bitfield.ShiftAmount32(rs2))
	return nil
}
func (i *SLL) ALUCompute(a, b uint32) (bool, uint32) {
	return false, a << bitfield.ShiftAmount32(b)
}
func (i *SLL) ControlSignals() ControlSignals { return i.rtypeControlSignals() }

// SRL: rd = rs1 >> (rs2 & 31), logical.
type SRL struct{ rType }

func NewSRL(rd, rs1, rs2 uint) *SRL { return &SRL{rType{rd, rs1, rs2}} }

func (i *SRL) Mnemonic() string { return "srl" }
func (i *SRL) Behavior(s *State) error {
	rs1, rs2 := s.Registers.Read(i.rs1), s.Registers.Read(i.rs2)
	s.Registers.Write(i.rd, rs1>>bitfield.ShiftAmount32(rs2))
	return nil
}
func (i *SRL) ALUCompute(a, b uint32) (bool, uint32) {
	return false, a >> bitfield.ShiftAmount32(b)
}
func (i *SRL) ControlSignals() ControlSignals { return i.rtypeControlSignals() }

// SRA: rd = rs1 >>s (rs2 & 31), arithmetic.
type SRA struct{ rType }

func NewSRA(rd, rs1, rs2 uint) *SRA { return &SRA{rType{rd, rs1, rs2}} }

func (i *SRA) Mnemonic() string { return "sra" }
func (i *SRA) Behavior(s *State) error {
	rs1, rs2 := s.Registers.Read(i.rs1), s.Registers.Read(i.rs2)
	s.Registers.Write(i.rd, bitfield.ASR32(rs1, bitfield.ShiftAmount32(rs2)))
	return nil
}
func (i *SRA) ALUCompute(a, b uint32) (bool, uint32) {
	return false, bitfield.ASR32(a, bitfield.ShiftAmount32(b))
}
func (i *SRA) ControlSignals() ControlSignals { return i.rtypeControlSignals() }

// SLT: rd = (rs1 <s rs2) ? 1 : 0.
type SLT struct{ rType }

func NewSLT(rd, rs1, rs2 uint) *SLT { return &SLT{rType{rd, rs1, rs2}} }

func (i *SLT) Mnemonic() string { return "slt" }
func (i *SLT) Behavior(s *State) error {
	rs1, rs2 := int32(s.Registers.Read(i.rs1)), int32(s.Registers.Read(i.rs2))
	s.Registers.Write(i.rd, boolToWord(rs1 < rs2))
	return nil
}
func (i *SLT) ALUCompute(a, b uint32) (bool, uint32) {
	return false, boolToWord(int32(a) < int32(b))
}
func (i *SLT) ControlSignals() ControlSignals { return i.rtypeControlSignals() }

// SLTU: rd = (rs1 <u rs2) ? 1 : 0.
type SLTU struct{ rType }

func NewSLTU(rd, rs1, rs2 uint) *SLTU { return &SLTU{rType{rd, rs1, rs2}} }

func (i *SLTU) Mnemonic() string { return "sltu" }
func (i *SLTU) Behavior(s *State) error {
	rs1, rs2 := s.Registers.Read(i.rs1), s.Registers.Read(i.rs2)
	s.Registers.Write(i.rd, boolToWord(rs1 < rs2))
	return nil
}
func (i *SLTU) ALUCompute(a, b uint32) (bool, uint32) {
	return false, boolToWord(a < b)
}
func (i *SLTU) ControlSignals() ControlSignals { return i.rtypeControlSignals() }

// XOR: rd = rs1 ^ rs2.
type XOR struct{ rType }

func NewXOR(rd, rs1, rs2 uint) *XOR { return &XOR{rType{rd, rs1, rs2}} }

func (i *XOR) Mnemonic() string { return "xor" }
func (i *XOR) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)^s.Registers.Read(i.rs2))
	return nil
}
func (i *XOR) ALUCompute(a, b uint32) (bool, uint32) { return false, a ^ b }
func (i *XOR) ControlSignals() ControlSignals        { return i.rtypeControlSignals() }

// OR: rd = rs1 | rs2.
type OR struct{ rType }

func NewOR(rd, rs1, rs2 uint) *OR { return &OR{rType{rd, rs1, rs2}} }

func (i *OR) Mnemonic() string { return "or" }
func (i *OR) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)|s.Registers.Read(i.rs2))
	return nil
}
func (i *OR) ALUCompute(a, b uint32) (bool, uint32) { return false, a | b }
func (i *OR) ControlSignals() ControlSignals        { return i.rtypeControlSignals() }

// AND: rd = rs1 & rs2.
type AND struct{ rType }

func NewAND(rd, rs1, rs2 uint) *AND { return &AND{rType{rd, rs1, rs2}} }

func (i *AND) Mnemonic() string { return "and" }
func (i *AND) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)&s.Registers.Read(i.rs2))
	return nil
}
func (i *AND) ALUCompute(a, b uint32) (bool, uint32) { return false, a & b }
func (i *AND) ControlSignals() ControlSignals        { return i.rtypeControlSignals() }

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
