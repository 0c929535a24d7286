// Command rv32i-emulator assembles and runs a single RV32I source file:
// load config, seed argument registers, assemble and load the program,
// run to halt (or drop into the interactive debugger), then print final
// register state.
package main

import (
	"fmt"
	"os"
	"strconv"

	"flag"

	"github.com/cressler/rv32i-emulator/config"
	"github.com/cressler/rv32i-emulator/debugger"
	"github.com/cressler/rv32i-emulator/loader"
	"github.com/cressler/rv32i-emulator/vm"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rv32i-emulator", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a TOML config file")
	maxCycles := fs.Uint64("max-cycles", 0, "override config's execution.max_cycles (0 keeps the config value)")
	traceEnabled := fs.Bool("trace", false, "enable execution trace")
	traceFile := fs.String("trace-file", "", "trace output file (default: stdout)")
	statsEnabled := fs.Bool("stats", false, "enable run statistics")
	statsFile := fs.String("stats-file", "", "statistics output file (default: stdout)")
	statsFormat := fs.String("stats-format", "", "statistics format: text or json (default: config value)")
	debugMode := fs.Bool("debug", false, "launch the interactive debugger instead of free-running")

	var argRegs [8]*string
	for i := 0; i < 8; i++ {
		argRegs[i] = fs.String(fmt.Sprintf("a%d", i), "", fmt.Sprintf("initial value for register a%d", i))
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: rv32i-emulator [flags] <source-file>")
	}
	sourcePath := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *maxCycles != 0 {
		cfg.Execution.MaxCycles = *maxCycles
	}
	if *traceEnabled {
		cfg.Trace.Enabled = true
	}
	if *traceFile != "" {
		cfg.Trace.OutputFile = *traceFile
	}
	if *statsEnabled {
		cfg.Statistics.Enabled = true
	}
	if *statsFile != "" {
		cfg.Statistics.OutputFile = *statsFile
	}
	if *statsFormat != "" {
		cfg.Statistics.Format = *statsFormat
	}

	words, err := loader.AssembleFile(sourcePath)
	if err != nil {
		return err
	}

	p := vm.NewProcessor()
	p.Regs.Put(vm.RegSP, cfg.Execution.StackPointer)
	p.MaxCycles = cfg.Execution.MaxCycles
	p.LoadInstructions(words)

	for i, raw := range argRegs {
		if *raw == "" {
			continue
		}
		value, err := parseRegisterValue(*raw)
		if err != nil {
			return fmt.Errorf("-a%d: %w", i, err)
		}
		p.SetRegister(10+i, value) // a0..a7 are x10..x17
	}

	if cfg.Trace.Enabled {
		w, closeFn, err := openOutput(cfg.Trace.OutputFile)
		if err != nil {
			return err
		}
		defer closeFn()
		p.Trace = vm.NewTrace(w)
	}
	if cfg.Statistics.Enabled {
		p.Statistics = vm.NewStatistics()
	}

	if *debugMode {
		dbg := debugger.New(p, cfg.Debugger.HistorySize)
		tui := debugger.NewTUI(dbg)
		if err := tui.Run(); err != nil {
			return err
		}
	} else if err := p.Run(); err != nil {
		return err
	}

	if cfg.Statistics.Enabled {
		w, closeFn, err := openOutput(cfg.Statistics.OutputFile)
		if err != nil {
			return err
		}
		defer closeFn()
		switch cfg.Statistics.Format {
		case "json":
			err = p.Statistics.WriteJSON(w)
		default:
			err = p.Statistics.WriteText(w)
		}
		if err != nil {
			return err
		}
	}

	printRegisters(p)
	return nil
}

func parseRegisterValue(raw string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid register value %q: %w", raw, err)
	}
	return uint32(n), nil
}

func openOutput(path string) (w *os.File, closeFn func(), err error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func printRegisters(p *vm.Processor) {
	snap := p.Regs.Snapshot()
	for i := 0; i < 32; i += 4 {
		fmt.Printf("x%-2d=0x%08x  x%-2d=0x%08x  x%-2d=0x%08x  x%-2d=0x%08x\n",
			i, snap[i], i+1, snap[i+1], i+2, snap[i+2], i+3, snap[i+3])
	}
	fmt.Printf("pc=0x%08x\n", p.Regs.PC())
}
