// Package engine implements the three ways the decoded instruction models in
// riscv and toy get stepped forward: a single-cycle RISC-V engine, a
// five-stage pipelined RISC-V engine with hazard detection and branch
// misprediction recovery, and a sequential toy engine.
package engine

import "archsim/riscv"

// SingleCycle executes one RV32I+Zicsr instruction per Step call using each
// instruction's monolithic Behavior, advancing PC by the instruction's
// length only after Behavior succeeds.
type SingleCycle struct{}

// NewSingleCycle returns a ready-to-use single-cycle engine. It holds no
// state of its own; all mutable state lives in the riscv.State it steps.
func NewSingleCycle() *SingleCycle { return &SingleCycle{} }

// Step executes the instruction at the current PC, if any, and reports
// whether it did so. A Behavior error is wrapped with the faulting address
// and the instruction's mnemonic.
func (e *SingleCycle) Step(s *riscv.State) (bool, error) {
	if !s.Instructions.Contains(s.PC) {
		return false, nil
	}
	pcBeforeAdvance := s.PC
	instr, err := s.Instructions.Read(s.PC)
	if err != nil {
		return false, err
	}
	s.Metrics.RecordInstruction()
	if err := instr.Behavior(s); err != nil {
		return false, &riscv.InstructionExecutionException{
			Address:         pcBeforeAdvance,
			InstructionRepr: instr.Mnemonic(),
			Wrapped:         err,
		}
	}
	s.PC += instr.Length()
	s.Metrics.RecordCycle()
	return true, nil
}

// Run steps the engine until no instruction remains at PC or an error
// occurs, returning the number of instructions executed.
func (e *SingleCycle) Run(s *riscv.State, maxCycles uint64) (uint64, error) {
	var executed uint64
	for maxCycles == 0 || executed < maxCycles {
		ok, err := e.Step(s)
		if err != nil {
			return executed, err
		}
		if !ok {
			return executed, nil
		}
		executed++
	}
	return executed, nil
}
