package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// abiAliases maps the ABI register names to their numeric index. The
// assembler resolves register operands against this table before an
// instruction is handed to the encoder.
var abiAliases = map[string]int{
	"zero": 0,
	"ra":   1,
	"sp":   2,
	"gp":   3,
	"tp":   4,
	"t0":   5,
	"t1":   6,
	"t2":   7,
	"s0":   8,
	"fp":   8,
	"s1":   9,
	"a0":   10,
	"a1":   11,
	"a2":   12,
	"a3":   13,
	"a4":   14,
	"a5":   15,
	"a6":   16,
	"a7":   17,
	"s2":   18,
	"s3":   19,
	"s4":   20,
	"s5":   21,
	"s6":   22,
	"s7":   23,
	"s8":   24,
	"s9":   25,
	"s10":  26,
	"s11":  27,
	"t3":   28,
	"t4":   29,
	"t5":   30,
	"t6":   31,
}

// ResolveRegister resolves a register operand token — either numeric form
// (x0..x31) or an ABI alias (sp, a0, t3, ...) — to its register index.
// Unknown tokens are fatal, per spec.
func ResolveRegister(token string) (int, error) {
	if strings.HasPrefix(token, "x") {
		n, err := strconv.Atoi(token[1:])
		if err == nil && n >= 0 && n <= 31 {
			return n, nil
		}
	}
	if idx, ok := abiAliases[token]; ok {
		return idx, nil
	}
	return 0, fmt.Errorf("unknown register %q", token)
}
