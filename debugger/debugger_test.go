package debugger

import (
	"testing"

	"github.com/cressler/rv32i-emulator/encoder"
	"github.com/cressler/rv32i-emulator/vm"
)

func newTestDebugger(t *testing.T) *Debugger {
	t.Helper()
	words, err := encoder.Assemble([]string{
		"addi a0, zero, 1",
		"addi a0, a0, 1",
		"addi a0, a0, 1",
		"jalr zero, ra, 0",
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	p := vm.NewProcessor()
	p.LoadInstructions(words)
	return New(p, 100)
}

func TestBreakpointManagerSetAndClear(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Set(2, false)
	if !bm.ShouldStop(2) {
		t.Fatal("expected breakpoint at word 2 to stop execution")
	}
	if len(bm.List()) != 1 {
		t.Fatalf("List() = %v, want 1 breakpoint still present (not temporary)", bm.List())
	}
	bm.Clear(2)
	if bm.ShouldStop(2) {
		t.Fatal("cleared breakpoint should not stop execution")
	}
}

func TestBreakpointManagerTemporaryRemovesAfterHit(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Set(5, true)
	if !bm.ShouldStop(5) {
		t.Fatal("expected temporary breakpoint to fire once")
	}
	if bm.ShouldStop(5) {
		t.Fatal("temporary breakpoint should not fire twice")
	}
}

func TestHistoryBoundedRingBuffer(t *testing.T) {
	h := NewHistory(3)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	h.Add("d")
	got := h.Lines()
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDebuggerStepExecutesOneInstruction(t *testing.T) {
	d := newTestDebugger(t)
	if err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if d.Proc.Register(10) != 1 {
		t.Fatalf("a0 after one step = %d, want 1", d.Proc.Register(10))
	}
}

func TestDebuggerContinueStopsAtBreakpoint(t *testing.T) {
	d := newTestDebugger(t)
	d.SetBreakpoint(2, false) // third addi, word index 2
	stopped, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if !stopped {
		t.Fatal("expected Continue to stop at breakpoint")
	}
	if d.Proc.Register(10) != 2 {
		t.Fatalf("a0 at breakpoint = %d, want 2 (only first two addi executed)", d.Proc.Register(10))
	}
}

func TestDebuggerContinueRunsToHaltWithoutBreakpoints(t *testing.T) {
	d := newTestDebugger(t)
	stopped, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if stopped {
		t.Fatal("expected Continue to run to halt, not stop at a breakpoint")
	}
	if !d.Halted {
		t.Fatal("expected debugger to report halted")
	}
	if d.Proc.Register(10) != 3 {
		t.Fatalf("a0 at halt = %d, want 3", d.Proc.Register(10))
	}
}

func TestExecuteRegsAndMemCommands(t *testing.T) {
	d := newTestDebugger(t)
	if out := d.Execute("regs"); out == "" {
		t.Fatal("expected non-empty regs output")
	}
	if out := d.Execute("mem 0 2"); out == "" {
		t.Fatal("expected non-empty mem output")
	}
	if d.History.Len() != 2 {
		t.Fatalf("History.Len() = %d, want 2", d.History.Len())
	}
}
