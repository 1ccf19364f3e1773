package engine

import "archsim/riscv"

// flush carries a pipeline restart signal: which stage produced it and
// whether that stage's own output is discarded too.
type flush struct {
	stage     int // 0=IF 1=ID 2=EX 3=MEM 4=WB, in pipeline order (Step evaluates them in reverse)
	inclusive bool
	address   uint32
}

type ifReg struct {
	valid                   bool
	instr                   riscv.Instruction
	addrOfInstruction       uint32
	branchPrediction        bool
	pcPlusInstructionLength uint32
}

type idReg struct {
	valid                   bool
	instr                   riscv.Instruction
	ra1, ra2                uint
	rd1, rd2                uint32
	imm                     uint32
	writeReg                uint
	hasWriteReg             bool
	ctrl                    riscv.ControlSignals
	prediction              bool
	pcPlusInstructionLength uint32
	addrOfInstruction       uint32
}

type exReg struct {
	valid                   bool
	instr                   riscv.Instruction
	rd1, rd2                uint32
	imm                     uint32
	result                  uint32
	comparison              bool
	writeReg                uint
	hasWriteReg             bool
	ctrl                    riscv.ControlSignals
	pcPlusImm               uint32
	prediction              bool
	pcPlusInstructionLength uint32
	addrOfInstruction       uint32
}

type memReg struct {
	valid                   bool
	instr                   riscv.Instruction
	result                  uint32
	memWriteData            uint32
	memReadData             uint32
	comparison              bool
	comparisonOrJump        bool
	writeReg                uint
	hasWriteReg             bool
	ctrl                    riscv.ControlSignals
	pcPlusImm               uint32
	pcPlusInstructionLength uint32
	imm                     uint32
	addrOfInstruction       uint32
}

// Pipeline is a five-stage IF/ID/EX/MEM/WB engine with static not-taken
// branch prediction and no operand forwarding: data hazards stall by
// re-fetching at ID until the producing instruction has retired.
type Pipeline struct {
	detectHazards bool

	ifr ifReg
	id  idReg
	ex  exReg
	mem memReg
}

// NewPipeline returns a pipeline with empty stages. Passing false for
// detectHazards disables the interlock, for experiments that want to observe
// raw hazard corruption.
func NewPipeline(detectHazards bool) *Pipeline {
	return &Pipeline{detectHazards: detectHazards}
}

// Step advances every stage by one cycle, in back-to-front order so each
// stage consumes the previous cycle's producer output, then resolves any
// flush the cycle produced.
func (p *Pipeline) Step(s *riscv.State) error {
	if err := p.writeBack(s); err != nil {
		return err
	}
	newMem, memFlush := p.memoryAccess(s)
	newEx := p.execute()
	newID, idFlush := p.decode(s)
	newIF := p.fetch(s)

	p.ifr, p.id, p.ex, p.mem = newIF, newID, newEx, newMem

	active := memFlush
	if active == nil {
		active = idFlush
	}
	if active != nil {
		p.applyFlush(s, active)
	}
	s.Metrics.RecordCycle()
	return nil
}

// applyFlush clears every stage strictly earlier than f.stage (IF=0, ID=1,
// EX=2, MEM=3); for an inclusive flush, f.stage's own just-produced output
// is discarded too.
func (p *Pipeline) applyFlush(s *riscv.State, f *flush) {
	if 0 < f.stage || (f.inclusive && f.stage == 0) {
		p.ifr = ifReg{}
	}
	if 1 < f.stage || (f.inclusive && f.stage == 1) {
		p.id = idReg{}
	}
	if 2 < f.stage || (f.inclusive && f.stage == 2) {
		p.ex = exReg{}
	}
	if 3 < f.stage || (f.inclusive && f.stage == 3) {
		p.mem = memReg{}
	}
	s.PC = f.address
}

func (p *Pipeline) fetch(s *riscv.State) ifReg {
	if !s.Instructions.Contains(s.PC) {
		return ifReg{}
	}
	addr := s.PC
	instr, err := s.Instructions.Read(addr)
	if err != nil {
		return ifReg{}
	}
	s.PC += instr.Length()
	return ifReg{
		valid:                   true,
		instr:                   instr,
		addrOfInstruction:       addr,
		branchPrediction:        false,
		pcPlusInstructionLength: addr + instr.Length(),
	}
}

// decode reads p.id and p.ex before Step overwrites them, i.e. the
// instructions that are about to occupy EX and MEM this cycle, and stalls
// if either writes a register this decode reads.
func (p *Pipeline) decode(s *riscv.State) (idReg, *flush) {
	if !p.ifr.valid {
		return idReg{}, nil
	}
	in := p.ifr
	ra1, ra2, rd1, rd2, imm := in.instr.AccessRegisterFile(s)
	writeReg, hasWriteReg := in.instr.WriteRegister()

	var f *flush
	if p.detectHazards {
		for _, later := range []struct {
			reg uint
			has bool
		}{
			{p.id.writeReg, p.id.hasWriteReg},
			{p.ex.writeReg, p.ex.hasWriteReg},
		} {
			if !later.has || later.reg == 0 {
				continue
			}
			if ra1 == later.reg || ra2 == later.reg {
				f = &flush{stage: 1, inclusive: true, address: in.addrOfInstruction}
				break
			}
		}
	}

	return idReg{
		valid:                   true,
		instr:                   in.instr,
		ra1:                     ra1,
		ra2:                     ra2,
		rd1:                     rd1,
		rd2:                     rd2,
		imm:                     imm,
		writeReg:                writeReg,
		hasWriteReg:             hasWriteReg,
		ctrl:                    in.instr.ControlSignals(),
		prediction:              in.branchPrediction,
		pcPlusInstructionLength: in.pcPlusInstructionLength,
		addrOfInstruction:       in.addrOfInstruction,
	}, f
}

func (p *Pipeline) execute() exReg {
	if !p.id.valid {
		return exReg{}
	}
	in := p.id
	aluIn1 := in.addrOfInstruction
	if in.ctrl.ALUSrc1 {
		aluIn1 = in.rd1
	}
	aluIn2 := in.rd2
	if in.ctrl.ALUSrc2 {
		aluIn2 = in.imm
	}
	comparison, result := in.instr.ALUCompute(aluIn1, aluIn2)
	return exReg{
		valid:                   true,
		instr:                   in.instr,
		rd1:                     in.rd1,
		rd2:                     in.rd2,
		imm:                     in.imm,
		result:                  result,
		comparison:              comparison,
		writeReg:                in.writeReg,
		hasWriteReg:             in.hasWriteReg,
		ctrl:                    in.ctrl,
		pcPlusImm:               in.imm + in.addrOfInstruction,
		prediction:              in.prediction,
		pcPlusInstructionLength: in.pcPlusInstructionLength,
		addrOfInstruction:       in.addrOfInstruction,
	}
}

func (p *Pipeline) memoryAccess(s *riscv.State) (memReg, *flush) {
	if !p.ex.valid {
		return memReg{}, nil
	}
	in := p.ex
	memReadData, err := in.instr.MemoryAccess(in.result, in.rd2, s)
	if err != nil {
		memReadData = 0
	}
	comparisonOrJump := in.ctrl.Jump || in.comparison

	var f *flush
	switch {
	case (in.ctrl.Branch && comparisonOrJump != in.prediction) || in.ctrl.Jump:
		f = &flush{stage: 3, inclusive: false, address: in.pcPlusImm}
	case in.ctrl.ALUToPC:
		f = &flush{stage: 3, inclusive: false, address: in.result}
	}

	if f != nil {
		switch {
		case in.ctrl.Branch:
			s.Metrics.RecordBranch()
		case in.ctrl.Jump:
			s.Metrics.RecordProcedure()
		}
	}

	return memReg{
		valid:                   true,
		instr:                   in.instr,
		result:                  in.result,
		memWriteData:            in.rd2,
		memReadData:             memReadData,
		comparison:              in.comparison,
		comparisonOrJump:        comparisonOrJump,
		writeReg:                in.writeReg,
		hasWriteReg:             in.hasWriteReg,
		ctrl:                    in.ctrl,
		pcPlusImm:               in.pcPlusImm,
		pcPlusInstructionLength: in.pcPlusInstructionLength,
		imm:                     in.imm,
		addrOfInstruction:       in.addrOfInstruction,
	}, f
}

func (p *Pipeline) writeBack(s *riscv.State) error {
	if !p.mem.valid {
		return nil
	}
	in := p.mem
	if _, isEmpty := in.instr.(riscv.Empty); !isEmpty {
		s.Metrics.RecordInstruction()
	}

	var data uint32
	switch in.ctrl.WBSrc {
	case riscv.WBSrcPCPlusLen:
		data = in.pcPlusInstructionLength
	case riscv.WBSrcMem:
		data = in.memReadData
	case riscv.WBSrcALU:
		data = in.result
	case riscv.WBSrcImm:
		data = in.imm
	}
	in.instr.WriteBack(in.writeReg, data, s)
	return nil
}

// Done reports whether the pipeline has fully drained: PC points past
// instruction memory and every stage holds no in-flight instruction.
func (p *Pipeline) Done(s *riscv.State) bool {
	return !s.Instructions.Contains(s.PC) && !p.ifr.valid && !p.id.valid && !p.ex.valid && !p.mem.valid
}

// Run steps the pipeline until Done or maxCycles is reached (0 = unbounded),
// returning the number of cycles executed.
func (p *Pipeline) Run(s *riscv.State, maxCycles uint64) (uint64, error) {
	var cycles uint64
	for !p.Done(s) {
		if maxCycles != 0 && cycles >= maxCycles {
			break
		}
		if err := p.Step(s); err != nil {
			return cycles, err
		}
		cycles++
	}
	return cycles, nil
}
