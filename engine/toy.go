package engine

import "archsim/toy"

// Toy sequentially fetches and executes toy instructions: no pipelining, no
// hazards, one instruction per step.
type Toy struct{}

// NewToy returns a ready-to-use toy engine.
func NewToy() *Toy { return &Toy{} }

// Step executes the instruction at the current PC, if any, and reports
// whether it did so.
func (e *Toy) Step(s *toy.State) (bool, error) {
	addr := uint32(s.PC)
	if !s.Instructions.Contains(addr) {
		return false, nil
	}
	instr, err := s.Instructions.Read(addr)
	if err != nil {
		return false, err
	}
	s.Metrics.RecordInstruction()
	if err := instr.Behavior(s); err != nil {
		return false, err
	}
	s.Metrics.RecordCycle()
	return true, nil
}

// Run steps the engine until no instruction remains at PC or an error
// occurs, returning the number of instructions executed.
func (e *Toy) Run(s *toy.State, maxCycles uint64) (uint64, error) {
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
