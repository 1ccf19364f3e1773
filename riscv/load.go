package riscv

import "archsim/bitfield"

// memIType carries the fields of a load mnemonic: rd, rs1, and a
// sign-extended 12-bit byte-offset immediate.
type memIType struct {
	rd, rs1 uint
	imm     int32
}

func (t memIType) Length() uint32 { return 4 }

func (t memIType) WriteBack(rd uint, wdata uint32, s *State) {
	defaultWriteBack(rd, wdata, s)
}

func (t memIType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return t.rs1, 0, s.Registers.Read(t.rs1), 0, uint32(t.imm)
}

func (t memIType) WriteRegister() (uint, bool) { return t.rd, true }

func (t memIType) loadControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: true, WBSrc: WBSrcMem, RegWrite: true, MemRead: true}
}

func (t memIType) ALUCompute(a, b uint32) (bool, uint32) { return false, a + b }

func (t memIType) effectiveAddress(s *State) uint32 {
	return s.Registers.Read(t.rs1) + uint32(t.imm)
}

// LB: rd = sext(mem8[rs1 + sext(imm)]).
type LB struct{ memIType }

func NewLB(rd, rs1 uint, imm12 uint32) *LB {
	return &LB{memIType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *LB) Mnemonic() string { return "lb" }
func (i *LB) Behavior(s *State) error {
	b, err := s.Memory.ReadByte(i.effectiveAddress(s))
	if err != nil {
		return err
	}
	s.Registers.Write(i.rd, uint32(bitfield.SignExtend32(uint32(b), 8)))
	return nil
}
func (i *LB) MemoryAccess(addr, _ uint32, s *State) (uint32, error) {
	b, err := s.Memory.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	return uint32(bitfield.SignExtend32(uint32(b), 8)), nil
}
func (i *LB) ControlSignals() ControlSignals { return i.loadControlSignals() }

// LH: rd = sext(mem16[rs1 + sext(imm)]).
type LH struct{ memIType }

func NewLH(rd, rs1 uint, imm12 uint32) *LH {
	return &LH{memIType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *LH) Mnemonic() string { return "lh" }
func (i *LH) Behavior(s *State) error {
	h, err := s.Memory.ReadHalfword(i.effectiveAddress(s))
	if err != nil {
		return err
	}
	s.Registers.Write(i.rd, uint32(bitfield.SignExtend32(uint32(h), 16)))
	return nil
}
func (i *LH) MemoryAccess(addr, _ uint32, s *State) (uint32, error) {
	h, err := s.Memory.ReadHalfword(addr)
	if err != nil {
		return 0, err
	}
	return uint32(bitfield.SignExtend32(uint32(h), 16)), nil
}
func (i *LH) ControlSignals() ControlSignals { return i.loadControlSignals() }

// LW: rd = mem32[rs1 + sext(imm)].
type LW struct{ memIType }

func NewLW(rd, rs1 uint, imm12 uint32) *LW {
	return &LW{memIType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *LW) Mnemonic() string { return "lw" }
func (i *LW) Behavior(s *State) error {
	w, err := s.Memory.ReadWord(i.effectiveAddress(s))
	if err != nil {
		return err
	}
	s.Registers.Write(i.rd, w)
	return nil
}
func (i *LW) MemoryAccess(addr, _ uint32, s *State) (uint32, error) {
	return s.Memory.ReadWord(addr)
}
func (i *LW) ControlSignals() ControlSignals { return i.loadControlSignals() }

// LBU: rd = zext(mem8[rs1 + sext(imm)]).
type LBU struct{ memIType }

func NewLBU(rd, rs1 uint, imm12 uint32) *LBU {
	return &LBU{memIType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *LBU) Mnemonic() string { return "lbu" }
func (i *LBU) Behavior(s *State) error {
	b, err := s.Memory.ReadByte(i.effectiveAddress(s))
	if err != nil {
		return err
	}
	s.Registers.Write(i.rd, uint32(b))
	return nil
}
func (i *LBU) MemoryAccess(addr, _ uint32, s *State) (uint32, error) {
	b, err := s.Memory.ReadByte(addr)
	return uint32(b), err
}
func (i *LBU) ControlSignals() ControlSignals { return i.loadControlSignals() }

// LHU: rd = zext(mem16[rs1 + sext(imm)]).
type LHU struct{ memIType }

func NewLHU(rd, rs1 uint, imm12 uint32) *LHU {
	return &LHU{memIType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *LHU) Mnemonic() string { return "lhu" }
func (i *LHU) Behavior(s *State) error {
	h, err := s.Memory.ReadHalfword(i.effectiveAddress(s))
	if err != nil {
		return err
	}
	s.Registers.Write(i.rd, uint32(h))
	return nil
}
func (i *LHU) MemoryAccess(addr, _ uint32, s *State) (uint32, error) {
	h, err := s.Memory.ReadHalfword(addr)
	return uint32(h), err
}
func (i *LHU) ControlSignals() ControlSignals { return i.loadControlSignals() }
