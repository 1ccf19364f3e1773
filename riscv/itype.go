package riscv

import "archsim/bitfield"

// iType carries the fields shared by I-type arithmetic mnemonics: rd, rs1,
// and a sign-extended 12-bit immediate.
type iType struct {
	rd, rs1 uint
	imm     int32
}

func (t iType) Length() uint32 { return 4 }

func (t iType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

func (t iType) WriteBack(rd uint, wdata uint32, s *State) {
	defaultWriteBack(rd, wdata, s)
}

func (t iType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return t.rs1, 0, s.Registers.Read(t.rs1), 0, uint32(t.imm)
}

func (t iType) WriteRegister() (uint, bool) { return t.rd, true }

func (t iType) itypeControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: true, WBSrc: WBSrcALU, RegWrite: true}
}

// ADDI: rd = rs1 + sext(imm).
type ADDI struct{ iType }

func NewADDI(rd, rs1 uint, imm12 uint32) *ADDI {
	return &ADDI{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *ADDI) Mnemonic() string { return "addi" }
func (i *ADDI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)+uint32(i.imm))
	return nil
}
func (i *ADDI) ALUCompute(a, b uint32) (bool, uint32) { return false, a + b }
func (i *ADDI) ControlSignals() ControlSignals        { return i.itypeControlSignals() }

// SLTI: rd = (rs1 <s sext(imm)) ? 1 : 0.
type SLTI struct{ iType }

func NewSLTI(rd, rs1 uint, imm12 uint32) *SLTI {
	return &SLTI{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *SLTI) Mnemonic() string { return "slti" }
func (i *SLTI) Behavior(s *State) error {
	s.Registers.Write(i.rd, boolToWord(int32(s.Registers.Read(i.rs1)) < i.imm))
	return nil
}
func (i *SLTI) ALUCompute(a, b uint32) (bool, uint32) {
	return false, boolToWord(int32(a) < int32(b))
}
func (i *SLTI) ControlSignals() ControlSignals { return i.itypeControlSignals() }

// SLTIU: rd = (rs1 <u sext(imm)) ? 1 : 0. The immediate is sign-extended to
// 32 bits first per RV32I, then compared unsigned.
type SLTIU struct{ iType }

func NewSLTIU(rd, rs1 uint, imm12 uint32) *SLTIU {
	return &SLTIU{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *SLTIU) Mnemonic() string { return "sltiu" }
func (i *SLTIU) Behavior(s *State) error {
	s.Registers.Write(i.rd, boolToWord(s.Registers.Read(i.rs1) < uint32(i.imm)))
	return nil
}
func (i *SLTIU) ALUCompute(a, b uint32) (bool, uint32) {
	return false, boolToWord(a < b)
}
func (i *SLTIU) ControlSignals() ControlSignals { return i.itypeControlSignals() }

// XORI: rd = rs1 ^ sext(imm).
type XORI struct{ iType }

func NewXORI(rd, rs1 uint, imm12 uint32) *XORI {
	return &XORI{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *XORI) Mnemonic() string { return "xori" }
func (i *XORI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)^uint32(i.imm))
	return nil
}
func (i *XORI) ALUCompute(a, b uint32) (bool, uint32) { return false, a ^ b }
func (i *XORI) ControlSignals() ControlSignals        { return i.itypeControlSignals() }

// ORI: rd = rs1 | sext(imm).
type ORI struct{ iType }

func NewORI(rd, rs1 uint, imm12 uint32) *ORI {
	return &ORI{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *ORI) Mnemonic() string { return "ori" }
func (i *ORI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)|uint32(i.imm))
	return nil
}
func (i *ORI) ALUCompute(a, b uint32) (bool, uint32) { return false, a | b }
func (i *ORI) ControlSignals() ControlSignals        { return i.itypeControlSignals() }

// ANDI: rd = rs1 & sext(imm).
type ANDI struct{ iType }

func NewANDI(rd, rs1 uint, imm12 uint32) *ANDI {
	return &ANDI{iType{rd, rs1, bitfield.SignExtend32(imm12, 12)}}
}

func (i *ANDI) Mnemonic() string { return "andi" }
func (i *ANDI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)&uint32(i.imm))
	return nil
}
func (i *ANDI) ALUCompute(a, b uint32) (bool, uint32) { return false, a & b }
func (i *ANDI) ControlSignals() ControlSignals        { return i.itypeControlSignals() }

// shiftIType carries the fields of a shift-immediate mnemonic: rd, rs1, and
// a 5-bit (unsigned) shift amount.
type shiftIType struct {
	rd, rs1 uint
	shamt   uint32
}

func (t shiftIType) Length() uint32 { return 4 }

func (t shiftIType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

func (t shiftIType) WriteBack(rd uint, wdata uint32, s *State) {
	defaultWriteBack(rd, wdata, s)
}

func (t shiftIType) AccessRegisterFile(s *State) (uint, uint, uint32, uint32, uint32) {
	return t.rs1, 0, s.Registers.Read(t.rs1), 0, t.shamt
}

func (t shiftIType) WriteRegister() (uint, bool) { return t.rd, true }

func (t shiftIType) shiftControlSignals() ControlSignals {
	return ControlSignals{ALUSrc1: true, ALUSrc2: true, WBSrc: WBSrcALU, RegWrite: true}
}

// SLLI: rd = rs1 << shamt.
type SLLI struct{ shiftIType }

func NewSLLI(rd, rs1 uint, shamt uint32) *SLLI {
	return &SLLI{shiftIType{rd, rs1, uint32(bitfield.ShiftAmount32(shamt))}}
}

func (i *SLLI) Mnemonic() string { return "slli" }
func (i *SLLI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)<<i.shamt)
	return nil
}
func (i *SLLI) ALUCompute(a, b uint32) (bool, uint32) {
	return false, a << bitfield.ShiftAmount32(b)
}
func (i *SLLI) ControlSignals() ControlSignals { return i.shiftControlSignals() }

// SRLI: rd = rs1 >> shamt, logical.
type SRLI struct{ shiftIType }

func NewSRLI(rd, rs1 uint, shamt uint32) *SRLI {
	return &SRLI{shiftIType{rd, rs1, uint32(bitfield.ShiftAmount32(shamt))}}
}

func (i *SRLI) Mnemonic() string { return "srli" }
func (i *SRLI) Behavior(s *State) error {
	s.Registers.Write(i.rd, s.Registers.Read(i.rs1)>>i.shamt)
	return nil
}
func (i *SRLI) ALUCompute(a, b uint32) (bool, uint32) {
	return false, a >> bitfield.ShiftAmount32(b)
}
func (i *SRLI) ControlSignals() ControlSignals { return i.shiftControlSignals() }

// SRAI: rd = rs1 >>s shamt, arithmetic.
type SRAI struct{ shiftIType }

func NewSRAI(rd, rs1 uint, shamt uint32) *SRAI {
	return &SRAI{shiftIType{rd, rs1, uint32(bitfield.ShiftAmount32(shamt))}}
}

func (i *SRAI) Mnemonic() string { return "srai" }
func (i *SRAI) Behavior(s *State) error {
	s.Registers.Write(i.rd, bitfield.ASR32(s.Registers.Read(i.rs1), uint(i.shamt)))
	return nil
}
func (i *SRAI) ALUCompute(a, b uint32) (bool, uint32) {
	return false, bitfield.ASR32(a, bitfield.ShiftAmount32(b))
}
func (i *SRAI) ControlSignals() ControlSignals { return i.shiftControlSignals() }
