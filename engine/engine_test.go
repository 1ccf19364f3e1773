package engine_test

import (
	"testing"

	"archsim/engine"
	"archsim/riscv"
	"archsim/state"
	"archsim/toy"
)

func newRISCVState() *riscv.State {
	return state.NewRISCV[riscv.Instruction](32, 0)
}

func TestSingleCycleRunsProgram(t *testing.T) {
	s := newRISCVState()
	s.Instructions.WriteAt(0, riscv.NewADDI(1, 0, 5))
	s.Instructions.WriteAt(4, riscv.NewADDI(2, 0, 10))
	s.Instructions.WriteAt(8, riscv.NewADD(3, 1, 2))

	sc := engine.NewSingleCycle()
	executed, err := sc.Run(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	if executed != 3 {
		t.Errorf("executed = %d, want 3", executed)
	}
	if got := s.Registers.Read(3); got != 15 {
		t.Errorf("x3 = %d, want 15", got)
	}
	if s.Metrics.InstructionCount != 3 {
		t.Errorf("instruction count = %d, want 3", s.Metrics.InstructionCount)
	}
}

func TestPipelineDrainsNoHazardProgram(t *testing.T) {
	s := newRISCVState()
	s.Instructions.WriteAt(0, riscv.NewADDI(1, 0, 1))
	s.Instructions.WriteAt(4, riscv.NewADDI(2, 0, 2))
	s.Instructions.WriteAt(8, riscv.NewADDI(3, 0, 3))
	s.Instructions.WriteAt(12, riscv.NewADDI(4, 0, 4))

	p := engine.NewPipeline(true)
	cycles, err := p.Run(s, 100)
	if err != nil {
		t.Fatal(err)
	}
	if cycles == 0 {
		t.Fatal("expected at least one cycle")
	}
	if got := s.Registers.Read(1); got != 1 {
		t.Errorf("x1 = %d, want 1", got)
	}
	if got := s.Registers.Read(4); got != 4 {
		t.Errorf("x4 = %d, want 4", got)
	}
	if s.Metrics.InstructionCount != 4 {
		t.Errorf("instruction count = %d, want 4", s.Metrics.InstructionCount)
	}
}

func TestPipelineHazardStallsLongerThanSingleCycle(t *testing.T) {
	program := func(s *riscv.State) {
		s.Instructions.WriteAt(0, riscv.NewADDI(1, 0, 7))
		s.Instructions.WriteAt(4, riscv.NewADD(2, 1, 1))
		s.Instructions.WriteAt(8, riscv.NewADD(3, 2, 2))
	}

	single := newRISCVState()
	program(single)
	sc := engine.NewSingleCycle()
	singleCycles, err := sc.Run(single, 100)
	if err != nil {
		t.Fatal(err)
	}

	pipelined := newRISCVState()
	program(pipelined)
	p := engine.NewPipeline(true)
	pipelineCycles, err := p.Run(pipelined, 100)
	if err != nil {
		t.Fatal(err)
	}

	if pipelineCycles < singleCycles+3 {
		t.Errorf("pipeline cycles = %d, want >= single-cycle (%d) + 3", pipelineCycles, singleCycles)
	}
	if got := pipelined.Registers.Read(3); got != single.Registers.Read(3) {
		t.Errorf("x3 mismatch: pipeline=%d single=%d", got, single.Registers.Read(3))
	}
}

func TestPipelineBranchMispredictionRecovers(t *testing.T) {
	s := newRISCVState()
	s.Instructions.WriteAt(0, riscv.NewADDI(1, 0, 1))
	s.Instructions.WriteAt(4, riscv.NewBEQ(1, 1, 8)) // always taken, scaled offset 16
	s.Instructions.WriteAt(8, riscv.NewADDI(2, 0, 99))
	s.Instructions.WriteAt(20, riscv.NewADDI(3, 0, 42))

	p := engine.NewPipeline(true)
	cycles, err := p.Run(s, 200)
	if err != nil {
		t.Fatal(err)
	}
	if cycles < 6 {
		t.Errorf("cycles = %d, want >= 6", cycles)
	}
	if got := s.Registers.Read(2); got != 0 {
		t.Errorf("x2 = %d, want 0 (skipped by taken branch)", got)
	}
	if got := s.Registers.Read(3); got != 42 {
		t.Errorf("x3 = %d, want 42", got)
	}
	if s.Metrics.BranchCount != 1 {
		t.Errorf("branch count = %d, want 1", s.Metrics.BranchCount)
	}
}

func newToyState() *toy.State {
	return state.NewToy[toy.Instruction]()
}

func TestToyEngineSumToN(t *testing.T) {
	s := newToyState()
	// memory[0x400] = n (loop counter), memory[0x401] = running sum. Toy
	// instruction addresses are 1-aligned (word-indexed), unlike RISC-V's
	// 4-byte alignment, so successive instructions sit at 0, 1, 2, ... Toy
	// data addresses are cell addresses, each occupying its own disjoint
	// halfword (address*2 in the shared byte memory), so seeding memory
	// directly here must use the same *2 scaling the opcodes use.
	if err := s.Memory.WriteHalfword(0x400*2, 5); err != nil {
		t.Fatal(err)
	}
	s.Instructions.Append(toy.NewLDA(0x400))  // 0: accu = counter
	s.Instructions.Append(toy.NewBRZ(9))      // 1: if counter == 0, goto end
	s.Instructions.Append(toy.NewADD(0x401))  // 2: accu = counter + sum
	s.Instructions.Append(toy.NewSTO(0x401))  // 3: sum = accu
	s.Instructions.Append(toy.NewLDA(0x400))  // 4: accu = counter
	s.Instructions.Append(toy.NewDEC())       // 5: accu = counter - 1
	s.Instructions.Append(toy.NewSTO(0x400))  // 6: counter = accu
	s.Instructions.Append(toy.NewZRO())       // 7: accu = 0
	s.Instructions.Append(toy.NewBRZ(0))      // 8: unconditional: back to top
	s.Instructions.Append(toy.NewNOP())       // 9: end

	e := engine.NewToy()
	if _, err := e.Run(s, 1000); err != nil {
		t.Fatal(err)
	}
	sum, err := s.Memory.ReadHalfword(0x401 * 2)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 15 {
		t.Errorf("sum(1..5) = %d, want 15", sum)
	}
}
