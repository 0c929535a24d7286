package encoder

import (
	"testing"

	"github.com/cressler/rv32i-emulator/parser"
	"github.com/cressler/rv32i-emulator/vm"
)

func encodeLine(t *testing.T, mnemonic string, operands ...string) uint32 {
	t.Helper()
	word, err := Encode(parser.Line{Mnemonic: mnemonic, Operands: operands})
	if err != nil {
		t.Fatalf("Encode(%s %v): %v", mnemonic, operands, err)
	}
	return word
}

func TestEncodeAddiDecodesBack(t *testing.T) {
	word := encodeLine(t, "addi", "a0", "zero", "5")
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in, ok := decoded.(vm.IInst)
	if !ok {
		t.Fatalf("decoded type = %T, want vm.IInst", decoded)
	}
	if in.Rd != 10 || in.Rs1 != 0 || in.Imm != 5 {
		t.Fatalf("decoded = %+v, want rd=10 rs1=0 imm=5", in)
	}
}

func TestEncodeAddDecodesBack(t *testing.T) {
	word := encodeLine(t, "add", "a0", "a1", "a2")
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in, ok := decoded.(vm.RInst)
	if !ok {
		t.Fatalf("decoded type = %T, want vm.RInst", decoded)
	}
	if in.Rd != 10 || in.Rs1 != 11 || in.Rs2 != 12 {
		t.Fatalf("decoded = %+v, want rd=10 rs1=11 rs2=12", in)
	}
}

func TestEncodeLoadStoreOffsetSyntax(t *testing.T) {
	lw := encodeLine(t, "lw", "a0", "4(sp)")
	decoded, err := vm.Decode(lw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in := decoded.(vm.IInst)
	if in.Rd != 10 || in.Rs1 != 2 || in.Imm != 4 {
		t.Fatalf("decoded lw = %+v, want rd=10 rs1=2 imm=4", in)
	}

	sw := encodeLine(t, "sw", "a0", "4(sp)")
	decodedS, err := vm.Decode(sw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sIn := decodedS.(vm.SInst)
	if sIn.Rs1 != 2 || sIn.Rs2 != 10 || sIn.Imm != 4 {
		t.Fatalf("decoded sw = %+v, want rs1=2 rs2=10 imm=4", sIn)
	}
}

func TestEncodeBranchNegativeOffset(t *testing.T) {
	word := encodeLine(t, "bne", "a0", "a1", "-8")
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in := decoded.(vm.BInst)
	if in.Imm != -8 {
		t.Fatalf("decoded imm = %d, want -8", in.Imm)
	}
}

func TestEncodeLuiShiftsOperand(t *testing.T) {
	word := encodeLine(t, "lui", "a0", "1")
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in := decoded.(vm.UInst)
	if in.Imm != 1<<12 {
		t.Fatalf("decoded imm = 0x%x, want 0x%x", in.Imm, 1<<12)
	}
}

func TestEncodeShiftPacksShamtAndFunct7(t *testing.T) {
	word := encodeLine(t, "srai", "a0", "a0", "3")
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	in := decoded.(vm.IInst)
	if in.Imm != int32(0b0100000<<5|3) {
		t.Fatalf("decoded imm = %d, want %d", in.Imm, 0b0100000<<5|3)
	}
}

func TestEncodeUnknownMnemonic(t *testing.T) {
	_, err := Encode(parser.Line{Mnemonic: "frobnicate", Operands: []string{"a0"}})
	if err == nil {
		t.Fatal("expected error for unknown mnemonic")
	}
}

func TestEncodeWrongOperandCount(t *testing.T) {
	_, err := Encode(parser.Line{Mnemonic: "add", Operands: []string{"a0", "a1"}})
	if err == nil {
		t.Fatal("expected error for wrong operand count")
	}
}

func TestAssembleEndToEnd(t *testing.T) {
	words, err := Assemble([]string{
		"addi a0, zero, 1",
		"addi a1, zero, 2",
		"add a2, a0, a1",
		"jalr zero, ra, 0",
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(words) != 4 {
		t.Fatalf("got %d words, want 4", len(words))
	}
}
