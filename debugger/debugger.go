package debugger

import (
	"fmt"

	"github.com/cressler/rv32i-emulator/vm"
)

// Debugger wraps a vm.Processor with breakpoint-aware stepping. It never
// bypasses the processor's own state-mutation surface: every inspection
// method here delegates to the processor's read-only snapshot operations.
type Debugger struct {
	Proc        *vm.Processor
	Breakpoints *BreakpointManager
	History     *History
	Halted      bool
}

// New wraps proc for interactive debugging, with a command history bounded
// to historySize entries.
func New(proc *vm.Processor, historySize int) *Debugger {
	return &Debugger{
		Proc:        proc,
		Breakpoints: NewBreakpointManager(),
		History:     NewHistory(historySize),
	}
}

// SetBreakpoint arms a breakpoint at the given word index.
func (d *Debugger) SetBreakpoint(wordIndex uint32, temporary bool) {
	d.Breakpoints.Set(wordIndex, temporary)
}

// Step executes exactly one instruction, regardless of breakpoints.
func (d *Debugger) Step() error {
	if d.Halted {
		return nil
	}
	halted, err := d.Proc.Step()
	if err != nil {
		return err
	}
	d.Halted = halted
	return nil
}

// Continue runs instructions until the program halts or an armed
// breakpoint's word index is about to execute.
func (d *Debugger) Continue() (stoppedAtBreakpoint bool, err error) {
	for !d.Halted {
		pc := d.Proc.Regs.PC()
		wordIndex := pc / vm.InstructionSize
		if d.Breakpoints.ShouldStop(wordIndex) {
			return true, nil
		}
		halted, stepErr := d.Proc.Step()
		if stepErr != nil {
			return false, stepErr
		}
		d.Halted = halted
	}
	return false, nil
}

// RegisterSnapshot returns a read-only copy of all 32 registers.
func (d *Debugger) RegisterSnapshot() [32]uint32 {
	return d.Proc.Regs.Snapshot()
}

// MemorySnapshot returns a read-only copy of memory words [start, start+count).
func (d *Debugger) MemorySnapshot(start, count uint32) []uint32 {
	return d.Proc.MemoryRange(start, start+count)
}

// FormatRegisters renders the register file as a fixed multi-column table,
// the shape the TUI's register panel writes directly into a text view.
func (d *Debugger) FormatRegisters() string {
	snap := d.RegisterSnapshot()
	out := ""
	for i := 0; i < 32; i += 4 {
		for col := 0; col < 4; col++ {
			out += fmt.Sprintf("x%-2d=0x%08x  ", i+col, snap[i+col])
		}
		out += "\n"
	}
	out += fmt.Sprintf("pc=0x%08x\n", d.Proc.Regs.PC())
	return out
}
