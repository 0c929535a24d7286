package vm

import "github.com/cressler/rv32i-emulator/isa"

// Re-exported so the rest of this package can refer to them unqualified;
// the canonical definitions live in isa, which encoder also needs.
const (
	RegisterCount       = isa.RegisterCount
	MemoryWords         = isa.MemoryWords
	InstructionSize     = isa.InstructionSize
	RegZero             = isa.RegZero
	RegRA               = isa.RegRA
	RegSP               = isa.RegSP
	DefaultStackPointer = isa.DefaultStackPointer
	DefaultDataOrigin   = isa.DefaultDataOrigin
)
