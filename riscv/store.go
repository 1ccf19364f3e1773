package riscv

import "archsim/bitfield"

// sType carries the fields of a store mnemonic: rs1 (base), rs2 (value),
// and a sign-extended 12-bit byte-offset immediate.
type sType struct {
	rs1, rs2 uint
	imm      int32
}

func (t sType) Length() uint32 { return 4 }

func (t sType) WriteBack(uint, uint32, *State) {}

func (t sType) WriteRegister() (uint, bool) { return 0, false }

func (t sType) storeControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: true, WBSrc: WBSrcALU, MemWrite: true}
}

func (t sType) ALUCompute(a, b uint32) (bool, uint32) { return false, a + b }

func (t sType) effectiveAddress(s *State) uint32 {
	return s.Registers.Read(t.rs1) + uint32(t.imm)
}

// SB: mem8[rs1 + sext(imm)] = rs2[7:0].
type SB struct{ sType }

func NewSB(rs1, rs2 uint, imm12 uint32) *SB {
	return &SB{sType{rs1, rs2, bitfield.SignExtend32(imm12, 12)}}
}

func (i *SB) Mnemonic() string { return "sb" }
func (i *SB) Behavior(s *State) error {
	return s.Memory.WriteByte(i.effectiveAddress(s), uint8(s.Registers.Read(i.rs2)))
}
func (i *SB) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return 0, s.Memory.WriteByte(addr, uint8(wdata))
}
func (i *SB) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return i.rs1, i.rs2, s.Registers.Read(i.rs1), uint32(uint8(s.Registers.Read(i.rs2))), uint32(i.imm)
}
func (i *SB) ControlSignals() ControlSignals { return i.storeControlSignals() }

// SH: mem16[rs1 + sext(imm)] = rs2[15:0].
type SH struct{ sType }

func NewSH(rs1, rs2 uint, imm12 uint32) *SH {
	return &SH{sType{rs1, rs2, bitfield.SignExtend32(imm12, 12)}}
}

func (i *SH) Mnemonic() string { return "sh" }
func (i *SH) Behavior(s *State) error {
	return s.Memory.WriteHalfword(i.effectiveAddress(s), uint16(s.Registers.Read(i.rs2)))
}
func (i *SH) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return 0, s.Memory.WriteHalfword(addr, uint16(wdata))
}
func (i *SH) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return i.rs1, i.rs2, s.Registers.Read(i.rs1), uint32(uint16(s.Registers.Read(i.rs2))), uint32(i.imm)
}
func (i *SH) ControlSignals() ControlSignals { return i.storeControlSignals() }

// SW: mem32[rs1 + sext(imm)] = rs2.
type SW struct{ sType }

func NewSW(rs1, rs2 uint, imm12 uint32) *SW {
	return &SW{sType{rs1, rs2, bitfield.SignExtend32(imm12, 12)}}
}

func (i *SW) Mnemonic() string { return "sw" }
func (i *SW) Behavior(s *State) error {
	return s.Memory.WriteWord(i.effectiveAddress(s), s.Registers.Read(i.rs2))
}
func (i *SW) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return 0, s.Memory.WriteWord(addr, wdata)
}
func (i *SW) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return i.rs1, i.rs2, s.Registers.Read(i.rs1), s.Registers.Read(i.rs2), uint32(i.imm)
}
func (i *SW) ControlSignals() ControlSignals { return i.storeControlSignals() }
