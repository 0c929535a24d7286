package isa

// RV32I architectural constants. These values come from the base integer
// instruction set encoding and should not be changed.

const (
	// MemoryWords is the fixed size of the word-addressed memory array.
	MemoryWords = 1024

	// RegisterCount is the number of general-purpose integer registers.
	RegisterCount = 32

	// InstructionSize is the size in bytes of every RV32I encoded word.
	InstructionSize = 4
)

// ABI register aliases used by the halt sentinel and the default stack
// pointer seed. The full zero/ra/sp/... alias table lives in the parser
// package, which is the only place that needs to resolve names.
const (
	RegZero = 0 // x0, hard-wired to zero
	RegRA   = 1 // x1, return address
	RegSP   = 2 // x2, stack pointer
)

// DefaultStackPointer is the word index seeded into RegSP at processor
// initialization. The source implementation uses 256; preserved here for
// compatibility with programs written against it.
const DefaultStackPointer = 256

// DefaultDataOrigin is the word index returned by Processor.LoadIntoMemory
// when the caller does not request a different origin.
const DefaultDataOrigin = 512

// Opcodes (bits [6:0] of an encoded instruction).
const (
	OpcodeOpImm  uint32 = 0b0010011
	OpcodeOp     uint32 = 0b0110011
	OpcodeLui    uint32 = 0b0110111
	OpcodeAuipc  uint32 = 0b0010111
	OpcodeJal    uint32 = 0b1101111
	OpcodeJalr   uint32 = 0b1100111
	OpcodeBranch uint32 = 0b1100011
	OpcodeLoad   uint32 = 0b0000011
	OpcodeStore  uint32 = 0b0100011
	OpcodeFence  uint32 = 0b0001111
)

// OP-IMM / OP funct3 selectors.
const (
	Funct3Addi  uint32 = 0b000 // also ADD/SUB on OP, also BEQ on BRANCH, also LB on LOAD, also SB on STORE
	Funct3Slli  uint32 = 0b001 // also SLL on OP, also BNE on BRANCH, also LH on LOAD, also SH on STORE
	Funct3Slti  uint32 = 0b010 // also SLT on OP, also LW on LOAD, also SW on STORE
	Funct3Sltiu uint32 = 0b011 // also SLTU on OP
	Funct3Xori  uint32 = 0b100 // also XOR on OP, also BLT on BRANCH, also LBU on LOAD
	Funct3Srli  uint32 = 0b101 // also SRL/SRA on OP, also BGE on BRANCH, also LHU on LOAD
	Funct3Ori   uint32 = 0b110 // also OR on OP, also BLTU on BRANCH
	Funct3Andi  uint32 = 0b111 // also AND on OP, also BGEU on BRANCH
)

// Branch funct3 selectors, named for clarity at call sites.
const (
	Funct3Beq  = Funct3Addi
	Funct3Bne  = Funct3Slli
	Funct3Blt  = Funct3Xori
	Funct3Bge  = Funct3Srli
	Funct3Bltu = Funct3Ori
	Funct3Bgeu = Funct3Andi
)

// Load funct3 selectors.
const (
	Funct3Lb  = Funct3Addi
	Funct3Lh  = Funct3Slli
	Funct3Lw  = Funct3Slti
	Funct3Lbu = Funct3Xori
	Funct3Lhu = Funct3Srli
)

// Store funct3 selectors.
const (
	Funct3Sb = Funct3Addi
	Funct3Sh = Funct3Slli
	Funct3Sw = Funct3Slti
)

// funct7 values that discriminate OP-IMM shifts and OP arithmetic/shift pairs.
const (
	Funct7Zero uint32 = 0b0000000 // ADD, SRL, SLLI, SRLI
	Funct7Alt  uint32 = 0b0100000 // SUB, SRA, SRAI
)
