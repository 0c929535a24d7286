package vm

import (
	"fmt"

	"github.com/cressler/rv32i-emulator/isa"
)

// Processor is the fetch/decode/execute driver: a register file, a memory,
// and the word range of currently loaded code.
type Processor struct {
	Regs *RegisterFile
	Mem  *Memory

	codeStart, codeEnd uint32 // word-index range of loaded instructions
	MaxCycles          uint64 // 0 means unlimited

	Trace      *Trace
	Statistics *Statistics
}

// NewProcessor returns an initialized processor: zeroed registers and
// memory, with the stack pointer seeded to DefaultStackPointer.
func NewProcessor() *Processor {
	p := &Processor{
		Regs: NewRegisterFile(),
		Mem:  NewMemory(),
	}
	p.Regs.Put(RegSP, DefaultStackPointer)
	return p
}

// LoadInstructions writes the assembled program starting at word index 0
// and records it as the executable range for the run loop.
func (p *Processor) LoadInstructions(words []uint32) {
	p.Mem.LoadWords(0, words)
	p.codeStart, p.codeEnd = 0, uint32(len(words))
}

// LoadIntoMemory writes data at the fixed data origin (word index 512) and
// returns that origin, mirroring the source's load_into_memory helper.
func (p *Processor) LoadIntoMemory(data []uint32) uint32 {
	return p.LoadIntoMemoryAt(DefaultDataOrigin, data)
}

// LoadIntoMemoryAt writes data starting at the given word index and returns
// that index, for callers that need a data origin other than the default.
func (p *Processor) LoadIntoMemoryAt(origin uint32, data []uint32) uint32 {
	p.Mem.LoadWords(origin, data)
	return origin
}

// SetRegister seeds register i (typically one of a0..a7) before a run.
func (p *Processor) SetRegister(i int, value uint32) {
	p.Regs.Put(i, value)
}

// Register returns the current value of register i.
func (p *Processor) Register(i int) uint32 {
	return p.Regs.Get(i)
}

// MemoryRange returns a read-only copy of memory words [start, end).
func (p *Processor) MemoryRange(start, end uint32) []uint32 {
	return p.Mem.Snapshot(start, end)
}

// isHaltSentinel reports whether the decoded instruction is the conventional
// "return from entry function to the null return address" end-of-program
// marker: jalr x0, x1, 0 while x1 currently holds 0.
func (p *Processor) isHaltSentinel(inst Decoded) bool {
	i, ok := inst.(IInst)
	if !ok {
		return false
	}
	return i.Opcode == isa.OpcodeJalr && i.Rd == RegZero && i.Rs1 == RegRA && i.Imm == 0 && p.Regs.Get(RegRA) == 0
}

// Run executes fetch/decode/execute steps until the halt sentinel fires,
// the program counter leaves the loaded code range, or MaxCycles is
// exhausted (if nonzero). A fatal error (decode failure, or a register/
// memory panic raised by the register file or memory) is recovered here
// and returned so the caller can still inspect state up to the fault.
func (p *Processor) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vm: fatal: %v", r)
		}
	}()

	var cycles uint64
	for {
		pc := p.Regs.PC()
		index := pc / InstructionSize
		if index < p.codeStart || index >= p.codeEnd {
			return nil
		}
		if p.MaxCycles != 0 && cycles >= p.MaxCycles {
			return fmt.Errorf("vm: cycle limit exceeded (%d cycles)", p.MaxCycles)
		}

		word := p.Mem.Read(index)
		inst, decodeErr := Decode(word)
		if decodeErr != nil {
			return fmt.Errorf("vm: decode failed at pc=0x%08X: %w", pc, decodeErr)
		}

		if p.isHaltSentinel(inst) {
			if p.Trace != nil {
				p.Trace.Halt(pc)
			}
			return nil
		}

		p.Regs.SetPC(pc + InstructionSize)

		if execErr := Execute(p.Regs, p.Mem, pc, inst); execErr != nil {
			return fmt.Errorf("vm: execute failed at pc=0x%08X: %w", pc, execErr)
		}

		if p.Trace != nil {
			p.Trace.Step(cycles, pc, word, inst)
		}
		if p.Statistics != nil {
			p.Statistics.Record(inst)
			p.recordBranchOutcome(inst, pc)
			p.Statistics.ObserveStackPointer(p.Regs.Get(RegSP))
		}

		cycles++
	}
}

// recordBranchOutcome reports whether a just-executed branch was taken, by
// comparing the live PC against what sequential fall-through would be.
func (p *Processor) recordBranchOutcome(inst Decoded, pc uint32) {
	if _, ok := inst.(BInst); !ok {
		return
	}
	p.Statistics.RecordBranch(p.Regs.PC() != pc+InstructionSize)
}

// Step executes exactly one instruction and reports whether the halt
// sentinel fired instead of executing. Used by the interactive debugger.
func (p *Processor) Step() (halted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vm: fatal: %v", r)
		}
	}()

	pc := p.Regs.PC()
	index := pc / InstructionSize
	if index < p.codeStart || index >= p.codeEnd {
		return true, nil
	}

	word := p.Mem.Read(index)
	inst, decodeErr := Decode(word)
	if decodeErr != nil {
		return false, fmt.Errorf("vm: decode failed at pc=0x%08X: %w", pc, decodeErr)
	}

	if p.isHaltSentinel(inst) {
		return true, nil
	}

	p.Regs.SetPC(pc + InstructionSize)
	if execErr := Execute(p.Regs, p.Mem, pc, inst); execErr != nil {
		return false, fmt.Errorf("vm: execute failed at pc=0x%08X: %w", pc, execErr)
	}

	if p.Trace != nil {
		p.Trace.Step(0, pc, word, inst)
	}
	if p.Statistics != nil {
		p.Statistics.Record(inst)
		p.recordBranchOutcome(inst, pc)
		p.Statistics.ObserveStackPointer(p.Regs.Get(RegSP))
	}
	return false, nil
}

// CodeRange returns the word-index range of the currently loaded program.
func (p *Processor) CodeRange() (start, end uint32) {
	return p.codeStart, p.codeEnd
}
