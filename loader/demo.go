package loader

import (
	"archsim/riscv"
	"archsim/toy"
)

// DemoFibonacci returns an RV32I image computing the nth Fibonacci number
// (fib(0)=0, fib(1)=1, ...) iteratively into x10. It exercises a
// register-only loop with a backward jump and a forward conditional branch,
// the two control-flow shapes the pipeline's hazard and misprediction
// handling need to cover.
func DemoFibonacci(n uint32) RISCVImage {
	// addr  instr
	//  0    addi x1, x0, n        ; counter
	//  4    addi x2, x0, 0        ; a = fib(0)
	//  8    addi x3, x0, 1        ; b = fib(1)
	// 12    beq  x1, x0, end      ; loop top
	// 16    add  x4, x2, x3       ; t = a+b
	// 20    add  x2, x0, x3       ; a = b
	// 24    add  x3, x0, x4       ; b = t
	// 28    addi x1, x1, -1       ; counter--
	// 32    jal  x0, loop
	// 36    add  x10, x0, x2      ; end: result = a
	return RISCVImage{Instructions: []riscv.Instruction{
		riscv.NewADDI(1, 0, n),
		riscv.NewADDI(2, 0, 0),
		riscv.NewADDI(3, 0, 1),
		riscv.NewBEQ(1, 0, 12), // raw12=12 -> scaled offset 24 -> 12+24=36=end
		riscv.NewADD(4, 2, 3),
		riscv.NewADD(2, 0, 3),
		riscv.NewADD(3, 0, 4),
		riscv.NewADDI(1, 1, 0xfff), // imm12 = -1
		riscv.NewJAL(0, jalRaw20(32, 12)),
		riscv.NewADD(10, 0, 2),
	}}
}

// jalRaw20 returns the raw 20-bit J-type field that makes a JAL at fromAddr
// land on toAddr, inverting NewJumpImm's sign-extend-then-x2 decoding.
func jalRaw20(fromAddr, toAddr uint32) uint32 {
	offset := (int32(toAddr) - int32(fromAddr)) / 2
	return uint32(offset) & 0xfffff
}

// DemoSumToN returns a toy-architecture image that sums 1..n into data
// address 0x401, using 0x400 as the loop counter. The toy instruction set
// has no unconditional jump, so the backward edge is a ZRO (clear the
// accumulator) followed by BRZ, which is always taken.
func DemoSumToN(n uint16) ToyImage {
	// addr  instr
	//  0    lda 0x400   ; accu = counter
	//  1    brz 9       ; if counter == 0, goto end
	//  2    add 0x401   ; accu = counter + sum
	//  3    sto 0x401   ; sum = accu
	//  4    lda 0x400   ; accu = counter
	//  5    dec         ; accu = counter - 1
	//  6    sto 0x400   ; counter = accu
	//  7    zro         ; accu = 0
	//  8    brz 0       ; unconditional: back to loop top
	//  9    nop         ; end
	return ToyImage{
		Instructions: []toy.Instruction{
			toy.NewLDA(0x400),
			toy.NewBRZ(9),
			toy.NewADD(0x401),
			toy.NewSTO(0x401),
			toy.NewLDA(0x400),
			toy.NewDEC(),
			toy.NewSTO(0x400),
			toy.NewZRO(),
			toy.NewBRZ(0),
			toy.NewNOP(),
		},
		Data: map[uint16]uint16{0x400: n, 0x401: 0},
	}
}
