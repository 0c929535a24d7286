package vm

import (
	"encoding/json"
	"fmt"
	"io"
)

// Statistics accumulates counters over a run without affecting emulated
// semantics — the same non-interference contract as Trace.
type Statistics struct {
	Instructions     uint64
	Loads            uint64
	Stores           uint64
	BranchesTaken    uint64
	BranchesSkip     uint64
	PeakStackPointer uint32
	OpcodeCounts     map[string]uint64
}

// NewStatistics returns an empty counter set.
func NewStatistics() *Statistics {
	return &Statistics{OpcodeCounts: make(map[string]uint64)}
}

// Record updates counters for one retired instruction.
func (s *Statistics) Record(inst Decoded) {
	s.Instructions++

	switch in := inst.(type) {
	case IInst:
		if in.Opcode == 0b0000011 { // LOAD
			s.Loads++
		}
		s.OpcodeCounts[opcodeName(in.Opcode)]++
	case SInst:
		s.Stores++
		s.OpcodeCounts["STORE"]++
	case RInst:
		s.OpcodeCounts["OP"]++
	case UInst:
		s.OpcodeCounts[opcodeName(in.Opcode)]++
	case JInst:
		s.OpcodeCounts["JAL"]++
	case BInst:
		s.OpcodeCounts["BRANCH"]++
	case FenceInst:
		s.OpcodeCounts["FENCE"]++
	}
}

// RecordBranch lets the processor driver report taken/not-taken outcomes; kept
// separate from Record so branch bookkeeping stays opt-in for callers that
// only care about gross instruction counts.
func (s *Statistics) RecordBranch(taken bool) {
	if taken {
		s.BranchesTaken++
	} else {
		s.BranchesSkip++
	}
}

// ObserveStackPointer updates the high-water mark for the stack pointer
// register, for the "peak stack usage" figure in the summary output.
func (s *Statistics) ObserveStackPointer(sp uint32) {
	if sp > s.PeakStackPointer {
		s.PeakStackPointer = sp
	}
}

func opcodeName(opcode uint32) string {
	switch opcode {
	case 0b0010011:
		return "OP-IMM"
	case 0b1100111:
		return "JALR"
	case 0b0000011:
		return "LOAD"
	case 0b0110111:
		return "LUI"
	case 0b0010111:
		return "AUIPC"
	default:
		return fmt.Sprintf("0x%02x", opcode)
	}
}

// WriteText renders a human-readable summary.
func (s *Statistics) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "instructions=%d loads=%d stores=%d branches-taken=%d branches-not-taken=%d peak-sp=%d\n",
		s.Instructions, s.Loads, s.Stores, s.BranchesTaken, s.BranchesSkip, s.PeakStackPointer)
	if err != nil {
		return err
	}
	for op, count := range s.OpcodeCounts {
		if _, err := fmt.Fprintf(w, "  %-8s %d\n", op, count); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON renders the same counters as JSON.
func (s *Statistics) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
