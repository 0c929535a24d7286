package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseImmediate parses a decimal or 0x-prefixed hexadecimal literal,
// with an optional leading sign, into a signed 32-bit value.
func ParseImmediate(token string) (int32, error) {
	neg := false
	t := token
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}

	base := 10
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		base = 16
		t = t[2:]
	}

	n, err := strconv.ParseInt(t, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid immediate %q: %w", token, err)
	}
	if neg {
		n = -n
	}
	if n < -(1<<31) || n > (1<<31)-1 {
		return 0, fmt.Errorf("immediate %q out of 32-bit range", token)
	}
	return int32(n), nil
}
