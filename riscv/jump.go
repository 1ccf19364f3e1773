package riscv

import "archsim/bitfield"

// jType carries the fields of JAL: rd and the jump offset already
// sign-extended and scaled to its final usable value (raw 20-bit field x2,
// sign-extended as a 21-bit offset).
type jType struct {
	rd  uint
	imm int32
}

// NewJumpImm decodes a J-type immediate from its raw 20-bit encoded field
// into the scaled, sign-extended offset every consumer uses directly.
func NewJumpImm(raw20 uint32) int32 {
	return bitfield.SignExtend32(raw20, 20) * 2
}

// JAL: rd = pc+4; pc += imm; procedure_count++.
type JAL struct {
	jType
}

func NewJAL(rd uint, raw20 uint32) *JAL {
	return &JAL{jType{rd, NewJumpImm(raw20)}}
}

func (i *JAL) Mnemonic() string { return "jal" }
func (i *JAL) Length() uint32   { return 4 }
func (i *JAL) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.PC+4)
	s.PC += uint32(i.imm) - i.Length()
	s.Metrics.RecordProcedure()
	return nil
}
func (i *JAL) ALUCompute(uint32, uint32) (bool, uint32) { return false, 0 }
func (i *JAL) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}
func (i *JAL) WriteBack(rd uint, wdata uint32, s *State) { defaultWriteBack(rd, wdata, s) }
func (i *JAL) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return 0, 0, 0, 0, uint32(i.imm)
}
func (i *JAL) ControlSignals() ControlSignals {
	return ControlSignals{WBSrc: WBSrcPCPlusLen, RegWrite: true, Jump: true}
}
func (i *JAL) WriteRegister() (uint, bool) { return i.rd, true }

// JALR: t = pc+4; pc = (rs1 + sext(imm)) & ~1; rd = t.
type JALR struct {
	rd, rs1 uint
	imm     int32
}

func NewJALR(rd, rs1 uint, imm12 uint32) *JALR {
	return &JALR{rd, rs1, bitfield.SignExtend32(imm12, 12)}
}

func (i *JALR) Mnemonic() string { return "jalr" }
func (i *JALR) Length() uint32   { return 4 }
func (i *JALR) Behavior(s *State) error {
	target := (s.Registers.Read(i.rs1) + uint32(i.imm)) &^ 1
	s.Registers.Write(i.rd, s.PC+4)
	s.PC = target - i.Length()
	return nil
}
func (i *JALR) ALUCompute(a, b uint32) (bool, uint32) { return false, (a + b) &^ 1 }
func (i *JALR) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}
func (i *JALR) WriteBack(rd uint, wdata uint32, s *State) { defaultWriteBack(rd, wdata, s) }
func (i *JALR) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return i.rs1, 0, s.Registers.Read(i.rs1), 0, uint32(i.imm)
}
func (i *JALR) ControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: true, WBSrc: WBSrcPCPlusLen, RegWrite: true, ALUToPC: true}
}
func (i *JALR) WriteRegister() (uint, bool) { return i.rd, true }

// uType carries the fields shared by LUI/AUIPC: rd and the 20-bit immediate
// already shifted left by 12 (its final usable value).
type uType struct {
	rd  uint
	imm uint32
}

// NewUpperImm decodes a U-type immediate from its raw 20-bit encoded field
// into the shifted, sign-extended value every consumer uses directly.
func NewUpperImm(raw20 uint32) uint32 {
	return uint32(bitfield.SignExtend32(raw20, 20)) << 12
}

func (t uType) Length() uint32 { return 4 }

func (t uType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

func (t uType) WriteBack(rd uint, wdata uint32, s *State) { defaultWriteBack(rd, wdata, s) }

func (t uType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return 0, 0, 0, 0, t.imm
}

func (t uType) WriteRegister() (uint, bool) { return t.rd, true }

// LUI: rd = imm.
type LUI struct{ uType }

func NewLUI(rd uint, raw20 uint32) *LUI {
	return &LUI{uType{rd, NewUpperImm(raw20)}}
}

func (i *LUI) Mnemonic() string { return "lui" }
func (i *LUI) Behavior(s *State) error {
	s.Registers.Write(i.rd, i.imm)
	return nil
}
func (i *LUI) ALUCompute(uint32, uint32) (bool, uint32) { return false, 0 }
func (i *LUI) ControlSignals() ControlSignals {
	return ControlSignals{WBSrc: WBSrcImm, RegWrite: true}
}

// AUIPC: rd = pc + imm.
type AUIPC struct{ uType }

func NewAUIPC(rd uint, raw20 uint32) *AUIPC {
	return &AUIPC{uType{rd, NewUpperImm(raw20)}}
}

func (i *AUIPC) Mnemonic() string { return "auipc" }
func (i *AUIPC) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.PC+i.imm)
	return nil
}
func (i *AUIPC) ALUCompute(a, b uint32) (bool, uint32) { return false, a + b }
func (i *AUIPC) ControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: false, ALUSrc2: true, WBSrc: WBSrcALU, RegWrite: true}
}
