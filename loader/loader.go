// Package loader reads assembler source from disk and turns it into
// machine words, the thin glue between encoder.Assemble and the CLI.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cressler/rv32i-emulator/encoder"
)

// ReadLines opens path, scans it line by line, and returns the lines the
// assembler should see: blank lines and lines whose first non-space rune
// is # or ; are dropped here, since the assembler's dialect has no comment
// syntax of its own and does not recognize them.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		lines = append(lines, trimmed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return lines, nil
}

// AssembleFile reads path and assembles it into machine words in one step.
func AssembleFile(path string) ([]uint32, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	words, err := encoder.Assemble(lines)
	if err != nil {
		return nil, fmt.Errorf("loader: assembling %s: %w", path, err)
	}
	return words, nil
}
