package toy

// addrType carries the 12-bit memory address used by the eight
// address-taking mnemonics (opcodes 0..7).
type addrType struct {
	address uint16
}

func newAddrType(address uint16) addrType {
	return addrType{address: address & 0xfff}
}

// cellAddress maps a 12-bit toy address to its disjoint byte offset in the
// shared byte-addressed memory (the same *width scaling csr.File uses for
// its own 4-byte-per-register addressing), so adjacent toy addresses never
// alias the same halfword.
func (t addrType) cellAddress() uint32 {
	return uint32(t.address) * 2
}

func (t addrType) readOperand(s *State) (uint16, error) {
	v, err := s.Memory.ReadHalfword(t.cellAddress())
	return v, err
}

// STO: mem[addr] = accu; pc++.
type STO struct{ addrType }

func NewSTO(address uint16) *STO { return &STO{newAddrType(address)} }

func (i *STO) Mnemonic() string { return "STO" }
func (i *STO) Opcode() uint16   { return 0 }
func (i *STO) Behavior(s *State) error {
	if err := s.Memory.WriteHalfword(i.cellAddress(), s.Accumulator); err != nil {
		return err
	}
	s.PC++
	return nil
}

// LDA: accu = mem[addr]; pc++.
type LDA struct{ addrType }

func NewLDA(address uint16) *LDA { return &LDA{newAddrType(address)} }

func (i *LDA) Mnemonic() string { return "LDA" }
func (i *LDA) Opcode() uint16   { return 1 }
func (i *LDA) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator = v
	s.PC++
	return nil
}

// BRZ: if accu == 0, pc = addr (branch taken); else pc++.
type BRZ struct{ addrType }

func NewBRZ(address uint16) *BRZ { return &BRZ{newAddrType(address)} }

func (i *BRZ) Mnemonic() string { return "BRZ" }
func (i *BRZ) Opcode() uint16   { return 2 }
func (i *BRZ) Behavior(s *State) error {
	if s.Accumulator == 0 {
		s.PC = i.address
		s.Metrics.RecordBranch()
	} else {
		s.PC++
	}
	return nil
}

// ADD: accu += mem[addr]; pc++.
type ADD struct{ addrType }

func NewADD(address uint16) *ADD { return &ADD{newAddrType(address)} }

func (i *ADD) Mnemonic() string { return "ADD" }
func (i *ADD) Opcode() uint16   { return 3 }
func (i *ADD) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator += v
	s.PC++
	return nil
}

// SUB: accu -= mem[addr]; pc++.
type SUB struct{ addrType }

func NewSUB(address uint16) *SUB { return &SUB{newAddrType(address)} }

func (i *SUB) Mnemonic() string { return "SUB" }
func (i *SUB) Opcode() uint16   { return 4 }
func (i *SUB) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator -= v
	s.PC++
	return nil
}

// OR: accu |= mem[addr]; pc++.
type OR struct{ addrType }

func NewOR(address uint16) *OR { return &OR{newAddrType(address)} }

func (i *OR) Mnemonic() string { return "OR" }
func (i *OR) Opcode() uint16   { return 5 }
func (i *OR) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator |= v
	s.PC++
	return nil
}

// AND: accu &= mem[addr]; pc++.
type AND struct{ addrType }

func NewAND(address uint16) *AND { return &AND{newAddrType(address)} }

func (i *AND) Mnemonic() string { return "AND" }
func (i *AND) Opcode() uint16   { return 6 }
func (i *AND) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator &= v
	s.PC++
	return nil
}

// XOR: accu ^= mem[addr]; pc++.
type XOR struct{ addrType }

func NewXOR(address uint16) *XOR { return &XOR{newAddrType(address)} }

func (i *XOR) Mnemonic() string { return "XOR" }
func (i *XOR) Opcode() uint16   { return 7 }
func (i *XOR) Behavior(s *State) error {
	v, err := i.readOperand(s)
	if err != nil {
		return err
	}
	s.Accumulator ^= v
	s.PC++
	return nil
}

// NOT: accu = ^accu; pc++.
type NOT struct{}

func NewNOT() *NOT { return &NOT{} }

func (i *NOT) Mnemonic() string { return "NOT" }
func (i *NOT) Opcode() uint16   { return 8 }
func (i *NOT) Behavior(s *State) error {
	s.Accumulator = ^s.Accumulator
	s.PC++
	return nil
}

// INC: accu++; pc++.
type INC struct{}

func NewINC() *INC { return &INC{} }

func (i *INC) Mnemonic() string { return "INC" }
func (i *INC) Opcode() uint16   { return 9 }
func (i *INC) Behavior(s *State) error {
	s.Accumulator++
	s.PC++
	return nil
}

// DEC: accu--; pc++.
type DEC struct{}

func NewDEC() *DEC { return &DEC{} }

func (i *DEC) Mnemonic() string { return "DEC" }
func (i *DEC) Opcode() uint16   { return 10 }
func (i *DEC) Behavior(s *State) error {
	s.Accumulator--
	s.PC++
	return nil
}

// ZRO: accu = 0; pc++.
type ZRO struct{}

func NewZRO() *ZRO { return &ZRO{} }

func (i *ZRO) Mnemonic() string { return "ZRO" }
func (i *ZRO) Opcode() uint16   { return 11 }
func (i *ZRO) Behavior(s *State) error {
	s.Accumulator = 0
	s.PC++
	return nil
}

// NOP: pc++.
type NOP struct{}

func NewNOP() *NOP { return &NOP{} }

func (i *NOP) Mnemonic() string { return "NOP" }
func (i *NOP) Opcode() uint16   { return 12 }
func (i *NOP) Behavior(s *State) error {
	s.PC++
	return nil
}
