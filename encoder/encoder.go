// Package encoder turns parsed assembler lines into RV32I machine words. It
// is the mirror image of vm.Decode: where that package pulls fields out of
// a word, this one packs fields into one, reusing the isa package's
// immediate codec so the bit layouts can never drift apart from decoding.
package encoder

import (
	"fmt"
	"strings"

	"github.com/cressler/rv32i-emulator/isa"
	"github.com/cressler/rv32i-emulator/parser"
)

// Encode turns one parsed Line into its 32-bit machine word.
func Encode(line parser.Line) (uint32, error) {
	d, ok := mnemonics[line.Mnemonic]
	if !ok {
		return 0, &EncodingError{Line: line, Reason: "unrecognized mnemonic"}
	}

	switch d.shape {
	case shapeR:
		return encodeR(line, d)
	case shapeOpImm:
		return encodeOpImm(line, d)
	case shapeShift:
		return encodeShift(line, d)
	case shapeJalr:
		return encodeJalr(line, d)
	case shapeLoad:
		return encodeLoad(line, d)
	case shapeStore:
		return encodeStore(line, d)
	case shapeBranch:
		return encodeBranch(line, d)
	case shapeU:
		return encodeU(line, d)
	case shapeJ:
		return encodeJ(line, d)
	case shapeFence:
		return isa.OpcodeFence, nil
	default:
		return 0, &EncodingError{Line: line, Reason: "internal: unhandled shape"}
	}
}

// Assemble runs the parser over sourceLines and encodes every resulting
// instruction, returning the flat word sequence LoadInstructions expects.
func Assemble(sourceLines []string) ([]uint32, error) {
	lines, err := parser.Parse(sourceLines)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, 0, len(lines))
	for _, l := range lines {
		word, err := Encode(l)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

func wantOperands(line parser.Line, n int) error {
	if len(line.Operands) != n {
		return &EncodingError{Line: line, Reason: fmt.Sprintf("%s wants %d operand(s), got %d", line.Mnemonic, n, len(line.Operands))}
	}
	return nil
}

func reg(line parser.Line, token string) (int, error) {
	r, err := parser.ResolveRegister(token)
	if err != nil {
		return 0, &EncodingError{Line: line, Reason: err.Error()}
	}
	return r, nil
}

func imm(line parser.Line, token string) (int32, error) {
	v, err := parser.ParseImmediate(token)
	if err != nil {
		return 0, &EncodingError{Line: line, Reason: err.Error()}
	}
	return v, nil
}

// splitOffset parses a "offset(reg)" operand into its two parts.
func splitOffset(line parser.Line, token string) (offset string, register string, err error) {
	open := strings.IndexByte(token, '(')
	shut := strings.IndexByte(token, ')')
	if open < 0 || shut < open {
		return "", "", &EncodingError{Line: line, Reason: fmt.Sprintf("expected offset(reg), got %q", token)}
	}
	return token[:open], token[open+1 : shut], nil
}

func encodeR(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 3); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	rs2, err := reg(line, line.Operands[2])
	if err != nil {
		return 0, err
	}
	return uint32(rd)<<7 | d.funct3<<12 | uint32(rs1)<<15 | uint32(rs2)<<20 | d.funct7<<25 | d.opcode, nil
}

func encodeOpImm(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 3); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	v, err := imm(line, line.Operands[2])
	if err != nil {
		return 0, err
	}
	return isa.EncodeI(v) | uint32(rd)<<7 | d.funct3<<12 | uint32(rs1)<<15 | d.opcode, nil
}

func encodeShift(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 3); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	shamt, err := imm(line, line.Operands[2])
	if err != nil {
		return 0, err
	}
	if shamt < 0 || shamt > 31 {
		return 0, &EncodingError{Line: line, Reason: "shift amount must be in [0, 31]"}
	}
	packed := int32(d.funct7<<5) | shamt
	return isa.EncodeI(packed) | uint32(rd)<<7 | d.funct3<<12 | uint32(rs1)<<15 | d.opcode, nil
}

func encodeJalr(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 3); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	v, err := imm(line, line.Operands[2])
	if err != nil {
		return 0, err
	}
	return isa.EncodeI(v) | uint32(rd)<<7 | d.funct3<<12 | uint32(rs1)<<15 | d.opcode, nil
}

func encodeLoad(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 2); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	offTok, regTok, err := splitOffset(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, regTok)
	if err != nil {
		return 0, err
	}
	v, err := imm(line, offTok)
	if err != nil {
		return 0, err
	}
	return isa.EncodeI(v) | uint32(rd)<<7 | d.funct3<<12 | uint32(rs1)<<15 | d.opcode, nil
}

func encodeStore(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 2); err != nil {
		return 0, err
	}
	rs2, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	offTok, regTok, err := splitOffset(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	rs1, err := reg(line, regTok)
	if err != nil {
		return 0, err
	}
	v, err := imm(line, offTok)
	if err != nil {
		return 0, err
	}
	return isa.EncodeS(v) | uint32(rs1)<<15 | d.funct3<<12 | uint32(rs2)<<20 | d.opcode, nil
}

func encodeBranch(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 3); err != nil {
		return 0, err
	}
	rs1, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	rs2, err := reg(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	v, err := imm(line, line.Operands[2])
	if err != nil {
		return 0, err
	}
	return isa.EncodeB(v) | d.funct3<<12 | uint32(rs1)<<15 | uint32(rs2)<<20 | d.opcode, nil
}

func encodeU(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 2); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	v, err := imm(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	// The written operand is the unshifted 20-bit upper immediate; isa.EncodeU
	// expects the already-shifted payload, matching how UInst.Imm is decoded.
	return isa.EncodeU(v<<12) | uint32(rd)<<7 | d.opcode, nil
}

func encodeJ(line parser.Line, d def) (uint32, error) {
	if err := wantOperands(line, 2); err != nil {
		return 0, err
	}
	rd, err := reg(line, line.Operands[0])
	if err != nil {
		return 0, err
	}
	v, err := imm(line, line.Operands[1])
	if err != nil {
		return 0, err
	}
	return isa.EncodeJ(v) | uint32(rd)<<7 | d.opcode, nil
}
