package riscv

// sysType is the shared shape of the three system mnemonics. None of them
// are implemented: FENCE has no effect on this single-hart model worth
// simulating, and ECALL/EBREAK require a trap handler this module doesn't
// provide. Behavior surfaces that clearly instead of silently no-opping.
type sysType struct{}

func (sysType) Length() uint32                           { return 4 }
func (sysType) ALUCompute(uint32, uint32) (bool, uint32) { return false, 0 }
func (sysType) WriteBack(uint, uint32, *State)           {}
func (sysType) WriteRegister() (uint, bool)              { return 0, false }
func (sysType) ControlSignals() ControlSignals           { return ControlSignals{} }
func (sysType) AccessRegisterFile(*State) (uint, uint, uint32, uint32, uint32) {
	return 0, 0, 0, 0, 0
}
func (sysType) MemoryAccess(addr, wdata uint32, s *State) (uint32, error) {
	return defaultMemoryAccess(addr, wdata, s)
}

// FENCE orders memory accesses between harts; unimplemented on this model.
type FENCE struct{ sysType }

func NewFENCE() *FENCE { return &FENCE{} }

func (i *FENCE) Mnemonic() string { return "fence" }
func (i *FENCE) Behavior(*State) error {
	return &InstructionNotImplemented{Mnemonic: i.Mnemonic()}
}

// ECALL requests an environment call; unimplemented on this model.
type ECALL struct{ sysType }

func NewECALL() *ECALL { return &ECALL{} }

func (i *ECALL) Mnemonic() string { return "ecall" }
func (i *ECALL) Behavior(*State) error {
	return &InstructionNotImplemented{Mnemonic: i.Mnemonic()}
}

// EBREAK requests a debugger breakpoint trap; unimplemented on this model.
type EBREAK struct{ sysType }

func NewEBREAK() *EBREAK { return &EBREAK{} }

func (i *EBREAK) Mnemonic() string { return "ebreak" }
func (i *EBREAK) Behavior(*State) error {
	return &InstructionNotImplemented{Mnemonic: i.Mnemonic()}
}
