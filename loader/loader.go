// Package loader assembles an architectural state from a decoded
// instruction image and an initial data segment. It stands in for the
// parser→engine boundary the rest of the simulator is built around: nothing
// here parses text, it only places already-decoded instructions and bytes
// into a fresh state the way a real loader places the output of a parser.
package loader

import (
	"archsim/riscv"
	"archsim/state"
	"archsim/toy"
)

// RISCVImage is an ordered instruction stream plus the initial contents of
// data memory, addressed independently of the instruction stream.
type RISCVImage struct {
	Instructions []riscv.Instruction
	Data         map[uint32]byte
}

// LoadRISCV places every instruction at successive 4-byte-aligned addresses
// starting at 0 and writes the data segment, returning a ready-to-run state.
func LoadRISCV(img RISCVImage, addressWidth uint, minBytes uint32) (*riscv.State, error) {
	s := state.NewRISCV[riscv.Instruction](addressWidth, minBytes)
	for _, instr := range img.Instructions {
		s.Instructions.Append(instr)
	}
	for addr, b := range img.Data {
		if err := s.Memory.WriteByte(addr, b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ToyImage is the toy architecture's equivalent of RISCVImage: instructions
// are 1-aligned (word-indexed). Data addresses are the same 12-bit cell
// addresses the toy opcodes themselves take (see toy.addrType), each of
// which occupies its own disjoint halfword of the shared byte memory.
type ToyImage struct {
	Instructions []toy.Instruction
	Data         map[uint16]uint16
}

// LoadToy places every instruction at successive word-indexed addresses
// starting at 0 and writes the data segment, returning a ready-to-run state.
func LoadToy(img ToyImage) (*toy.State, error) {
	s := state.NewToy[toy.Instruction]()
	for _, instr := range img.Instructions {
		s.Instructions.Append(instr)
	}
	for addr, word := range img.Data {
		if err := s.Memory.WriteHalfword(uint32(addr)*2, word); err != nil {
			return nil, err
		}
	}
	return s, nil
}
