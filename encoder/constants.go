package encoder

import "github.com/cressler/rv32i-emulator/isa"

// shape identifies how a mnemonic's operand list must be read and which
// isa.Encode* function turns the parsed pieces into the immediate field.
type shape int

const (
	shapeR        shape = iota // rd, rs1, rs2
	shapeOpImm                 // rd, rs1, imm
	shapeShift                 // rd, rs1, shamt (SLLI/SRLI/SRAI: imm = funct7<<5 | shamt)
	shapeJalr                  // rd, rs1, imm
	shapeLoad                  // rd, offset(rs1)
	shapeStore                 // rs2, offset(rs1)
	shapeBranch                // rs1, rs2, imm
	shapeU                     // rd, imm20 (unshifted upper bits)
	shapeJ                     // rd, imm
	shapeFence                 // no operands
)

// def is one mnemonic's fixed encoding: its instruction shape plus the
// opcode/funct3/funct7 bits that do not depend on operands.
type def struct {
	shape  shape
	opcode uint32
	funct3 uint32
	funct7 uint32
}

var mnemonics = map[string]def{
	// R-type (OP)
	"add":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Addi, funct7: isa.Funct7Zero},
	"sub":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Addi, funct7: isa.Funct7Alt},
	"sll":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Slli, funct7: isa.Funct7Zero},
	"slt":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Slti, funct7: isa.Funct7Zero},
	"sltu": {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Sltiu, funct7: isa.Funct7Zero},
	"xor":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Xori, funct7: isa.Funct7Zero},
	"srl":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Srli, funct7: isa.Funct7Zero},
	"sra":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Srli, funct7: isa.Funct7Alt},
	"or":   {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Ori, funct7: isa.Funct7Zero},
	"and":  {shape: shapeR, opcode: isa.OpcodeOp, funct3: isa.Funct3Andi, funct7: isa.Funct7Zero},

	// OP-IMM
	"addi":  {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Addi},
	"slti":  {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Slti},
	"sltiu": {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Sltiu},
	"xori":  {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Xori},
	"ori":   {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Ori},
	"andi":  {shape: shapeOpImm, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Andi},
	"slli":  {shape: shapeShift, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Slli, funct7: isa.Funct7Zero},
	"srli":  {shape: shapeShift, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Srli, funct7: isa.Funct7Zero},
	"srai":  {shape: shapeShift, opcode: isa.OpcodeOpImm, funct3: isa.Funct3Srli, funct7: isa.Funct7Alt},

	// JALR
	"jalr": {shape: shapeJalr, opcode: isa.OpcodeJalr, funct3: isa.Funct3Addi},

	// LOAD
	"lb":  {shape: shapeLoad, opcode: isa.OpcodeLoad, funct3: isa.Funct3Lb},
	"lh":  {shape: shapeLoad, opcode: isa.OpcodeLoad, funct3: isa.Funct3Lh},
	"lw":  {shape: shapeLoad, opcode: isa.OpcodeLoad, funct3: isa.Funct3Lw},
	"lbu": {shape: shapeLoad, opcode: isa.OpcodeLoad, funct3: isa.Funct3Lbu},
	"lhu": {shape: shapeLoad, opcode: isa.OpcodeLoad, funct3: isa.Funct3Lhu},

	// STORE
	"sb": {shape: shapeStore, opcode: isa.OpcodeStore, funct3: isa.Funct3Sb},
	"sh": {shape: shapeStore, opcode: isa.OpcodeStore, funct3: isa.Funct3Sh},
	"sw": {shape: shapeStore, opcode: isa.OpcodeStore, funct3: isa.Funct3Sw},

	// BRANCH
	"beq":  {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Beq},
	"bne":  {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Bne},
	"blt":  {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Blt},
	"bge":  {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Bge},
	"bltu": {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Bltu},
	"bgeu": {shape: shapeBranch, opcode: isa.OpcodeBranch, funct3: isa.Funct3Bgeu},

	// U-type
	"lui":   {shape: shapeU, opcode: isa.OpcodeLui},
	"auipc": {shape: shapeU, opcode: isa.OpcodeAuipc},

	// J-type
	"jal": {shape: shapeJ, opcode: isa.OpcodeJal},

	// FENCE — no operands, executes as a no-op.
	"fence": {shape: shapeFence, opcode: isa.OpcodeFence},
}
