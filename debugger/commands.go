package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// Execute parses and runs one command line against d, returning the text to
// display in the TUI's output pane.
func (d *Debugger) Execute(line string) string {
	d.History.Add(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "step":
		if err := d.Step(); err != nil {
			return err.Error()
		}
		if d.Halted {
			return "halted"
		}
		return fmt.Sprintf("pc=0x%08x", d.Proc.Regs.PC())

	case "continue":
		stopped, err := d.Continue()
		if err != nil {
			return err.Error()
		}
		if stopped {
			return fmt.Sprintf("breakpoint hit at pc=0x%08x", d.Proc.Regs.PC())
		}
		return "halted"

	case "break":
		if len(fields) != 2 {
			return "usage: break <word-index>"
		}
		idx, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Sprintf("invalid word index: %v", err)
		}
		d.SetBreakpoint(uint32(idx), false)
		return fmt.Sprintf("breakpoint set at word index %d", idx)

	case "regs":
		return d.FormatRegisters()

	case "mem":
		if len(fields) != 3 {
			return "usage: mem <index> <count>"
		}
		start, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Sprintf("invalid index: %v", err)
		}
		count, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return fmt.Sprintf("invalid count: %v", err)
		}
		words := d.MemorySnapshot(uint32(start), uint32(count))
		out := ""
		for i, w := range words {
			out += fmt.Sprintf("[%d] 0x%08x\n", uint32(start)+uint32(i), w)
		}
		return out

	case "quit":
		return "quit"

	default:
		return fmt.Sprintf("unrecognized command %q", fields[0])
	}
}
