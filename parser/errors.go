package parser

import "fmt"

// ParseError reports a problem with one source line, tagged with its
// 1-based line number so the CLI and debugger can point back at it.
type ParseError struct {
	LineNo int
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: line %d: %s (%q)", e.LineNo, e.Reason, e.Raw)
}
