package riscv

// Decode translates a raw 32-bit RV32I+Zicsr word into an Instruction,
// dispatching on the standard opcode/funct3/funct7 fields. It returns
// DecodeError for any word that doesn't match a recognized encoding.
func Decode(word uint32, address uint32) (Instruction, error) {
	opcode := word & 0x7f
	rd := uint((word >> 7) & 0x1f)
	funct3 := (word >> 12) & 0x7
	rs1 := uint((word >> 15) & 0x1f)
	rs2 := uint((word >> 20) & 0x1f)
	funct7 := (word >> 25) & 0x7f

	switch opcode {
	case 0b0110011: // OP (R-type)
		return decodeOp(word, funct3, funct7, rd, rs1, rs2, address)
	case 0b0010011: // OP-IMM (I-type arithmetic / shift-immediate)
		return decodeOpImm(word, funct3, funct7, rd, rs1, address)
	case 0b0000011: // LOAD
		return decodeLoad(word, funct3, rd, rs1, address)
	case 0b0100011: // STORE
		return decodeStore(word, funct3, rs1, rs2, address)
	case 0b1100011: // BRANCH
		return decodeBranch(word, funct3, rs1, rs2, address)
	case 0b1101111: // JAL
		return NewJAL(rd, decodeJImm(word)), nil
	case 0b1100111: // JALR
		if funct3 != 0 {
			return nil, &DecodeError{Word: word, Address: address}
		}
		return NewJALR(rd, rs1, decodeIImm(word)), nil
	case 0b0110111: // LUI
		return NewLUI(rd, decodeUImm(word)), nil
	case 0b0010111: // AUIPC
		return NewAUIPC(rd, decodeUImm(word)), nil
	case 0b0001111: // MISC-MEM
		if funct3 == 0 {
			return NewFENCE(), nil
		}
		return nil, &DecodeError{Word: word, Address: address}
	case 0b1110011: // SYSTEM
		return decodeSystem(word, funct3, rd, rs1, address)
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeIImm(word uint32) uint32 { return word >> 20 }

func decodeUImm(word uint32) uint32 { return word >> 12 }

func decodeJImm(word uint32) uint32 {
	imm20 := (word >> 31) & 0x1
	imm19_12 := (word >> 12) & 0xff
	imm11 := (word >> 20) & 0x1
	imm10_1 := (word >> 21) & 0x3ff
	return (imm20 << 19) | (imm19_12 << 11) | (imm11 << 10) | imm10_1
}

func decodeBImm(word uint32) uint32 {
	imm12 := (word >> 31) & 0x1
	imm10_5 := (word >> 25) & 0x3f
	imm4_1 := (word >> 8) & 0xf
	imm11 := (word >> 7) & 0x1
	return (imm12 << 11) | (imm11 << 10) | (imm10_5 << 4) | imm4_1
}

func decodeSImm(word uint32) uint32 {
	imm11_5 := (word >> 25) & 0x7f
	imm4_0 := (word >> 7) & 0x1f
	return (imm11_5 << 5) | imm4_0
}

func decodeOp(word uint32, funct3, funct7 uint32, rd, rs1, rs2 uint, address uint32) (Instruction, error) {
	switch {
	case funct3 == 0b000 && funct7 == 0b0000000:
		return NewADD(rd, rs1, rs2), nil
	case funct3 == 0b000 && funct7 == 0b0100000:
		return NewSUB(rd, rs1, rs2), nil
	case funct3 == 0b001 && funct7 == 0b0000000:
		return NewSLL(rd, rs1, rs2), nil
	case funct3 == 0b010 && funct7 == 0b0000000:
		return NewSLT(rd, rs1, rs2), nil
	case funct3 == 0b011 && funct7 == 0b0000000:
		return NewSLTU(rd, rs1, rs2), nil
	case funct3 == 0b100 && funct7 == 0b0000000:
		return NewXOR(rd, rs1, rs2), nil
	case funct3 == 0b101 && funct7 == 0b0000000:
		return NewSRL(rd, rs1, rs2), nil
	case funct3 == 0b101 && funct7 == 0b0100000:
		return NewSRA(rd, rs1, rs2), nil
	case funct3 == 0b110 && funct7 == 0b0000000:
		return NewOR(rd, rs1, rs2), nil
	case funct3 == 0b111 && funct7 == 0b0000000:
		return NewAND(rd, rs1, rs2), nil
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeOpImm(word uint32, funct3, funct7 uint32, rd, rs1 uint, address uint32) (Instruction, error) {
	imm := decodeIImm(word)
	shamt := imm & 0x1f
	switch funct3 {
	case 0b000:
		return NewADDI(rd, rs1, imm), nil
	case 0b010:
		return NewSLTI(rd, rs1, imm), nil
	case 0b011:
		return NewSLTIU(rd, rs1, imm), nil
	case 0b100:
		return NewXORI(rd, rs1, imm), nil
	case 0b110:
		return NewORI(rd, rs1, imm), nil
	case 0b111:
		return NewANDI(rd, rs1, imm), nil
	case 0b001:
		if funct7 != 0b0000000 {
			return nil, &DecodeError{Word: word, Address: address}
		}
		return NewSLLI(rd, rs1, shamt), nil
	case 0b101:
		switch funct7 {
		case 0b0000000:
			return NewSRLI(rd, rs1, shamt), nil
		case 0b0100000:
			return NewSRAI(rd, rs1, shamt), nil
		default:
			return nil, &DecodeError{Word: word, Address: address}
		}
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeLoad(word uint32, funct3 uint32, rd, rs1 uint, address uint32) (Instruction, error) {
	imm := decodeIImm(word)
	switch funct3 {
	case 0b000:
		return NewLB(rd, rs1, imm), nil
	case 0b001:
		return NewLH(rd, rs1, imm), nil
	case 0b010:
		return NewLW(rd, rs1, imm), nil
	case 0b100:
		return NewLBU(rd, rs1, imm), nil
	case 0b101:
		return NewLHU(rd, rs1, imm), nil
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeStore(word uint32, funct3 uint32, rs1, rs2 uint, address uint32) (Instruction, error) {
	imm := decodeSImm(word)
	switch funct3 {
	case 0b000:
		return NewSB(rs1, rs2, imm), nil
	case 0b001:
		return NewSH(rs1, rs2, imm), nil
	case 0b010:
		return NewSW(rs1, rs2, imm), nil
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeBranch(word uint32, funct3 uint32, rs1, rs2 uint, address uint32) (Instruction, error) {
	imm := decodeBImm(word)
	switch funct3 {
	case 0b000:
		return NewBEQ(rs1, rs2, imm), nil
	case 0b001:
		return NewBNE(rs1, rs2, imm), nil
	case 0b100:
		return NewBLT(rs1, rs2, imm), nil
	case 0b101:
		return NewBGE(rs1, rs2, imm), nil
	case 0b110:
		return NewBLTU(rs1, rs2, imm), nil
	case 0b111:
		return NewBGEU(rs1, rs2, imm), nil
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}

func decodeSystem(word uint32, funct3 uint32, rd, rs1 uint, address uint32) (Instruction, error) {
	csrAddr := decodeIImm(word)
	switch funct3 {
	case 0b000:
		switch csrAddr {
		case 0:
			return NewECALL(), nil
		case 1:
			return NewEBREAK(), nil
		default:
			return nil, &DecodeError{Word: word, Address: address}
		}
	case 0b001:
		return NewCSRRW(rd, rs1, csrAddr), nil
	case 0b010:
		return NewCSRRS(rd, rs1, csrAddr), nil
	case 0b011:
		return NewCSRRC(rd, rs1, csrAddr), nil
	case 0b101:
		return NewCSRRWI(rd, uint32(rs1), csrAddr), nil
	case 0b110:
		return NewCSRRSI(rd, uint32(rs1), csrAddr), nil
	case 0b111:
		return NewCSRRCI(rd, uint32(rs1), csrAddr), nil
	default:
		return nil, &DecodeError{Word: word, Address: address}
	}
}
