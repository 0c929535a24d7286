package parser

import "testing"

func TestTokenizeStripsCommas(t *testing.T) {
	mnemonic, operands := tokenize("  addi  a0, a0,  1   ")
	if mnemonic != "addi" {
		t.Fatalf("mnemonic = %q, want addi", mnemonic)
	}
	want := []string{"a0", "a0", "1"}
	if len(operands) != len(want) {
		t.Fatalf("operands = %v, want %v", operands, want)
	}
	for i := range want {
		if operands[i] != want[i] {
			t.Fatalf("operands[%d] = %q, want %q", i, operands[i], want[i])
		}
	}
}

func TestTokenizeBlankLine(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		mnemonic, operands := tokenize(raw)
		if mnemonic != "" || operands != nil {
			t.Fatalf("tokenize(%q) = (%q, %v), want empty", raw, mnemonic, operands)
		}
	}
}

func TestResolveRegisterAliasesAndNumeric(t *testing.T) {
	cases := map[string]int{
		"zero": 0, "ra": 1, "sp": 2, "a0": 10, "a7": 17,
		"s0": 8, "fp": 8, "t6": 31, "x0": 0, "x31": 31,
	}
	for token, want := range cases {
		got, err := ResolveRegister(token)
		if err != nil {
			t.Fatalf("ResolveRegister(%q): %v", token, err)
		}
		if got != want {
			t.Fatalf("ResolveRegister(%q) = %d, want %d", token, got, want)
		}
	}
}

func TestResolveRegisterUnknown(t *testing.T) {
	if _, err := ResolveRegister("notareg"); err == nil {
		t.Fatal("expected error for unknown register")
	}
}

func TestParseExpandsSimplePseudos(t *testing.T) {
	lines, err := Parse([]string{
		"nop",
		"mv a0, a1",
		"j 12",
		"ret",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"addi", "addi", "jal", "jalr"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, m := range want {
		if lines[i].Mnemonic != m {
			t.Fatalf("lines[%d].Mnemonic = %q, want %q", i, lines[i].Mnemonic, m)
		}
	}
}

func TestParseLiSmallImmediateIsSingleAddi(t *testing.T) {
	lines, err := Parse([]string{"li a0, 5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lines) != 1 || lines[0].Mnemonic != "addi" {
		t.Fatalf("got %+v, want single addi", lines)
	}
}

func TestParseLiOutOfRangeIsAnError(t *testing.T) {
	if _, err := Parse([]string{"li a0, 100000"}); err == nil {
		t.Fatal("expected error: li only supports 12-bit immediates in this dialect")
	}
}

func TestParsePseudoWrongOperandCountIsAnError(t *testing.T) {
	cases := []string{"mv a0", "beqz t0", "bgt a0, a1", "nop a0", "j"}
	for _, raw := range cases {
		if _, err := Parse([]string{raw}); err == nil {
			t.Fatalf("Parse(%q): expected wrong-operand-count error, got none", raw)
		}
	}
}

func TestParseCallExpandsToAuipcJalr(t *testing.T) {
	lines, err := Parse([]string{"call 4096"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lines) != 2 || lines[0].Mnemonic != "auipc" || lines[1].Mnemonic != "jalr" {
		t.Fatalf("got %+v, want auipc+jalr", lines)
	}
	if lines[0].SourceNo != 1 || lines[1].SourceNo != 1 {
		t.Fatalf("expanded lines should keep the originating source line number")
	}
}

func TestParseBranchPseudos(t *testing.T) {
	lines, err := Parse([]string{"beqz a0, 8", "bnez a0, 8", "bgt a0, a1, 8", "ble a0, a1, 8"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantMnemonics := []string{"beq", "bne", "blt", "bge"}
	for i, m := range wantMnemonics {
		if lines[i].Mnemonic != m {
			t.Fatalf("lines[%d].Mnemonic = %q, want %q", i, lines[i].Mnemonic, m)
		}
	}
	// bgt a0, a1, 8 -> blt a1, a0, 8
	if lines[2].Operands[0] != "a1" || lines[2].Operands[1] != "a0" {
		t.Fatalf("bgt expansion operands = %v, want [a1 a0 8]", lines[2].Operands)
	}
}
