package vm

import (
	"fmt"

	"github.com/cressler/rv32i-emulator/isa"
)

// Decoded is a closed set of shapes, one per RV32I instruction format. Each
// concrete type carries only the fields that format actually has (R has no
// immediate, U has no rs1/rs2, and so on). Execution dispatches with a type
// switch on the concrete type, then a secondary switch on Funct3/Funct7 —
// there is no virtual "Execute" method on these types, since the semantics
// belong to the executor, not to the decoded instruction.
type Decoded interface {
	decoded()
}

// RInst is the R-type decoded shape: register-register ALU operations.
type RInst struct {
	Funct3, Funct7 uint32
	Rd, Rs1, Rs2   int
}

// IInst is the I-type decoded shape, shared by OP-IMM, JALR, and loads. The
// opcode is carried alongside Funct3 because all three use funct3=0b000 for
// at least one of their operations (ADDI vs. JALR vs. LB) and must be told
// apart by opcode.
type IInst struct {
	Opcode, Funct3 uint32
	Rd, Rs1        int
	Imm            int32
}

// SInst is the S-type decoded shape: stores.
type SInst struct {
	Funct3   uint32
	Rs1, Rs2 int
	Imm      int32
}

// BInst is the B-type decoded shape: conditional branches.
type BInst struct {
	Funct3   uint32
	Rs1, Rs2 int
	Imm      int32
}

// UInst is the U-type decoded shape: LUI and AUIPC. Imm is already in its
// shifted form (bits 31:12 populated, bits 11:0 zero) — see isa.DecodeU.
type UInst struct {
	Opcode uint32
	Rd     int
	Imm    int32
}

// JInst is the J-type decoded shape: JAL.
type JInst struct {
	Rd  int
	Imm int32
}

// FenceInst is decoded but executes as a no-op.
type FenceInst struct{}

func (RInst) decoded()     {}
func (IInst) decoded()     {}
func (SInst) decoded()     {}
func (BInst) decoded()     {}
func (UInst) decoded()     {}
func (JInst) decoded()     {}
func (FenceInst) decoded() {}

// DecodeError reports an unrecognized opcode, carrying the raw word for
// diagnostics.
type DecodeError struct {
	Word uint32
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vm: unrecognized opcode 0x%02X in word 0x%08X", e.Word&0x7F, e.Word)
}

// Decode classifies a 32-bit word by its primary opcode and extracts the
// fields for that format.
func Decode(word uint32) (Decoded, error) {
	opcode := word & 0x7F
	rd := int((word >> 7) & 0x1F)
	rs1 := int((word >> 15) & 0x1F)
	rs2 := int((word >> 20) & 0x1F)
	funct3 := (word >> 12) & 0x7
	funct7 := word >> 25

	switch opcode {
	case isa.OpcodeOpImm, isa.OpcodeJalr, isa.OpcodeLoad:
		return IInst{Opcode: opcode, Funct3: funct3, Rd: rd, Rs1: rs1, Imm: isa.DecodeI(word)}, nil
	case isa.OpcodeOp:
		return RInst{Funct3: funct3, Funct7: funct7, Rd: rd, Rs1: rs1, Rs2: rs2}, nil
	case isa.OpcodeLui, isa.OpcodeAuipc:
		return UInst{Opcode: opcode, Rd: rd, Imm: isa.DecodeU(word)}, nil
	case isa.OpcodeJal:
		return JInst{Rd: rd, Imm: isa.DecodeJ(word)}, nil
	case isa.OpcodeBranch:
		return BInst{Funct3: funct3, Rs1: rs1, Rs2: rs2, Imm: isa.DecodeB(word)}, nil
	case isa.OpcodeStore:
		return SInst{Funct3: funct3, Rs1: rs1, Rs2: rs2, Imm: isa.DecodeS(word)}, nil
	case isa.OpcodeFence:
		return FenceInst{}, nil
	default:
		return nil, &DecodeError{Word: word}
	}
}
