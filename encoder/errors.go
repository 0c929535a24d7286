package encoder

import (
	"fmt"

	"github.com/cressler/rv32i-emulator/parser"
)

// EncodingError reports a problem turning a parsed Line into a machine
// word: an unknown mnemonic, a wrong operand count, or an operand that
// does not parse as the kind of thing its position requires.
type EncodingError struct {
	Line   parser.Line
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoder: line %d: %s (%q)", e.Line.SourceNo, e.Reason, e.Line.Raw)
}
