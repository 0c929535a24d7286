package parser

// Parse tokenizes a slice of source lines (blank lines and full-line
// comments already stripped by the caller) and expands every pseudo-
// instruction, returning the flat sequence of base-instruction Lines the
// encoder will turn into machine words. SourceNo and Raw on each returned
// Line refer back to the original source line, even when one source line
// expands into more than one base instruction (e.g. call, which becomes
// auipc+jalr), so diagnostics always point at what the programmer wrote.
func Parse(sourceLines []string) ([]Line, error) {
	var out []Line

	for i, raw := range sourceLines {
		lineNo := i + 1
		mnemonic, operands := tokenize(raw)
		if mnemonic == "" {
			continue
		}

		expanded, ok, err := expandPseudo(mnemonic, operands)
		if err != nil {
			return nil, &ParseError{LineNo: lineNo, Raw: raw, Reason: err.Error()}
		}
		if !ok {
			out = append(out, Line{Mnemonic: mnemonic, Operands: operands, SourceNo: lineNo, Raw: raw})
			continue
		}
		for _, l := range expanded {
			l.SourceNo = lineNo
			l.Raw = raw
			out = append(out, l)
		}
	}

	return out, nil
}
