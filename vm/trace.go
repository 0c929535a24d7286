package vm

import (
	"fmt"
	"io"
)

// Trace writes a diagnostic line per retired instruction. It has no effect
// on emulated semantics: attaching or detaching a Trace from a Processor
// must never change a register or memory outcome, only what gets logged.
type Trace struct {
	w io.Writer
}

// NewTrace wraps w (typically os.Stdout or an opened trace file).
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Step logs one retired instruction.
func (t *Trace) Step(cycle uint64, pc, word uint32, inst Decoded) {
	fmt.Fprintf(t.w, "%6d  pc=0x%08X  word=0x%08X  %s\n", cycle, pc, word, describe(inst))
}

// Halt logs the point at which the run loop observed the halt sentinel.
func (t *Trace) Halt(pc uint32) {
	fmt.Fprintf(t.w, "       pc=0x%08X  halt: jalr x0, x1, 0 with x1 == 0\n", pc)
}

func describe(inst Decoded) string {
	switch in := inst.(type) {
	case RInst:
		return fmt.Sprintf("R funct3=0x%x funct7=0x%x rd=x%d rs1=x%d rs2=x%d", in.Funct3, in.Funct7, in.Rd, in.Rs1, in.Rs2)
	case IInst:
		return fmt.Sprintf("I opcode=0x%02x funct3=0x%x rd=x%d rs1=x%d imm=%d", in.Opcode, in.Funct3, in.Rd, in.Rs1, in.Imm)
	case SInst:
		return fmt.Sprintf("S funct3=0x%x rs1=x%d rs2=x%d imm=%d", in.Funct3, in.Rs1, in.Rs2, in.Imm)
	case BInst:
		return fmt.Sprintf("B funct3=0x%x rs1=x%d rs2=x%d imm=%d", in.Funct3, in.Rs1, in.Rs2, in.Imm)
	case UInst:
		return fmt.Sprintf("U opcode=0x%02x rd=x%d imm=0x%08x", in.Opcode, in.Rd, uint32(in.Imm))
	case JInst:
		return fmt.Sprintf("J rd=x%d imm=%d", in.Rd, in.Imm)
	case FenceInst:
		return "FENCE (nop)"
	default:
		return "?"
	}
}
