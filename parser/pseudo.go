package parser

import (
	"fmt"
	"strconv"
)

// wantPseudoOperands reports a fatal error if operands does not have
// exactly n entries, naming the offending mnemonic per spec.md §7's
// "wrong operand count" taxonomy — the same contract encoder.wantOperands
// enforces for base instructions.
func wantPseudoOperands(mnemonic string, operands []string, n int) error {
	if len(operands) != n {
		return fmt.Errorf("%s wants %d operand(s), got %d", mnemonic, n, len(operands))
	}
	return nil
}

// expandPseudo rewrites a pseudo-instruction mnemonic into one or more base
// RV32I lines. ok is false for mnemonics that are not pseudo-instructions,
// telling the caller to keep the original line untouched.
func expandPseudo(mnemonic string, operands []string) (lines []Line, ok bool, err error) {
	switch mnemonic {
	case "nop":
		if err := wantPseudoOperands(mnemonic, operands, 0); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "addi", Operands: []string{"zero", "zero", "0"}}}, true, nil

	case "li":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return expandLi(operands)

	case "mv":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "addi", Operands: []string{operands[0], operands[1], "0"}}}, true, nil

	case "not":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "xori", Operands: []string{operands[0], operands[1], "-1"}}}, true, nil

	case "neg":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "sub", Operands: []string{operands[0], "zero", operands[1]}}}, true, nil

	case "seqz":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "sltiu", Operands: []string{operands[0], operands[1], "1"}}}, true, nil

	case "snez":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "sltu", Operands: []string{operands[0], "zero", operands[1]}}}, true, nil

	case "sltz":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "slt", Operands: []string{operands[0], operands[1], "zero"}}}, true, nil

	case "sgtz":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "slt", Operands: []string{operands[0], "zero", operands[1]}}}, true, nil

	case "beqz":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "beq", Operands: []string{operands[0], "zero", operands[1]}}}, true, nil

	case "bnez":
		if err := wantPseudoOperands(mnemonic, operands, 2); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "bne", Operands: []string{operands[0], "zero", operands[1]}}}, true, nil

	case "bgt":
		if err := wantPseudoOperands(mnemonic, operands, 3); err != nil {
			return nil, true, err
		}
		// bgt rs, rt, off == blt rt, rs, off
		return []Line{{Mnemonic: "blt", Operands: []string{operands[1], operands[0], operands[2]}}}, true, nil

	case "ble":
		if err := wantPseudoOperands(mnemonic, operands, 3); err != nil {
			return nil, true, err
		}
		// ble rs, rt, off == bge rt, rs, off
		return []Line{{Mnemonic: "bge", Operands: []string{operands[1], operands[0], operands[2]}}}, true, nil

	case "j":
		if err := wantPseudoOperands(mnemonic, operands, 1); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "jal", Operands: []string{"zero", operands[0]}}}, true, nil

	case "ret":
		if err := wantPseudoOperands(mnemonic, operands, 0); err != nil {
			return nil, true, err
		}
		return []Line{{Mnemonic: "jalr", Operands: []string{"zero", "ra", "0"}}}, true, nil

	case "call":
		if err := wantPseudoOperands(mnemonic, operands, 1); err != nil {
			return nil, true, err
		}
		off, err := ParseImmediate(operands[0])
		if err != nil {
			return nil, true, err
		}
		upper := off >> 12
		lower := off & 0xFFF
		return []Line{
			{Mnemonic: "auipc", Operands: []string{"t1", strconv.Itoa(int(upper))}},
			{Mnemonic: "jalr", Operands: []string{"ra", "t1", strconv.Itoa(int(lower))}},
		}, true, nil

	default:
		return nil, false, nil
	}
}

// expandLi lowers li into a single addi. Only immediates that fit the
// signed 12-bit addi immediate are supported; a full 32-bit li (lui+addi
// sequence) is out of scope for this dialect.
func expandLi(operands []string) ([]Line, bool, error) {
	rd := operands[0]
	imm, err := ParseImmediate(operands[1])
	if err != nil {
		return nil, true, err
	}
	if imm < -2048 || imm > 2047 {
		return nil, true, fmt.Errorf("li immediate %d out of 12-bit range (full 32-bit li is not supported)", imm)
	}
	return []Line{{Mnemonic: "addi", Operands: []string{rd, "zero", operands[1]}}}, true, nil
}
