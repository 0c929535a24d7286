package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the interactive text-mode front end: register, memory, and
// breakpoint panels plus a command input line. There is no source or
// disassembly panel — this dialect has no labels or source maps to show
// alongside the running program, unlike the ARM debugger this is adapted
// from.
type TUI struct {
	Dbg *Debugger

	App   *tview.Application
	Pages *tview.Pages

	MainLayout      *tview.Flex
	RegisterView    *tview.TextView
	MemoryView      *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField

	memoryAddress uint32
}

// NewTUI builds the interactive debugger UI around dbg.
func NewTUI(dbg *Debugger) *TUI {
	t := &TUI{
		Dbg: dbg,
		App: tview.NewApplication(),
	}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	t.RefreshAll()
	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.MemoryView.SetBorder(true).SetTitle(" Memory ")

	t.BreakpointsView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 10, 0, false).
		AddItem(t.MemoryView, 0, 1, false).
		AddItem(t.BreakpointsView, 8, 0, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(rightPanel, 0, 3, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.run("continue")
			return nil
		case tcell.KeyF11:
			t.run("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd == "" {
		return
	}
	t.CommandInput.SetText("")
	if cmd == "quit" {
		t.App.Stop()
		return
	}
	t.run(cmd)
}

func (t *TUI) run(cmd string) {
	output := t.Dbg.Execute(cmd)
	if output != "" {
		fmt.Fprintln(t.OutputView, output)
		t.OutputView.ScrollToEnd()
	}
	t.RefreshAll()
}

// RefreshAll redraws every panel from the debugger's current state.
func (t *TUI) RefreshAll() {
	t.RegisterView.SetText(t.Dbg.FormatRegisters())

	t.MemoryView.Clear()
	for _, w := range t.Dbg.MemorySnapshot(t.memoryAddress, 16) {
		fmt.Fprintf(t.MemoryView, "0x%08x\n", w)
	}

	t.BreakpointsView.Clear()
	for _, bp := range t.Dbg.Breakpoints.List() {
		fmt.Fprintf(t.BreakpointsView, "word %d  hits=%d  temp=%v\n", bp.WordIndex, bp.HitCount, bp.Temporary)
	}

	t.App.Draw()
}

// Run starts the TUI event loop. It blocks until the user quits.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}
