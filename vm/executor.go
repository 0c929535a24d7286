package vm

import (
	"fmt"

	"github.com/cressler/rv32i-emulator/isa"
)

// ExecutionError reports a runtime fault that is not already a register or
// memory index panic (those are fatal and propagate as panics, matching the
// "all execution errors are fatal" contract in spec.md §7).
type ExecutionError struct {
	Message string
}

func (e *ExecutionError) Error() string {
	return "vm: " + e.Message
}

// Execute mutates regs and mem according to the decoded instruction. pc is
// the address of the instruction being executed — the pre-advance program
// counter, snapshotted and passed in explicitly so that AUIPC, JAL, and
// branches compute PC-relative targets against the right value regardless
// of when the caller chooses to advance the live PC.
func Execute(regs *RegisterFile, mem *Memory, pc uint32, inst Decoded) error {
	switch in := inst.(type) {
	case RInst:
		return executeR(regs, in)
	case IInst:
		return executeI(regs, mem, pc, in)
	case SInst:
		return executeS(regs, mem, in)
	case BInst:
		return executeB(regs, pc, in)
	case UInst:
		return executeU(regs, pc, in)
	case JInst:
		return executeJ(regs, pc, in)
	case FenceInst:
		return nil
	default:
		return &ExecutionError{Message: fmt.Sprintf("unhandled decoded instruction type %T", inst)}
	}
}

func executeR(regs *RegisterFile, in RInst) error {
	rs1 := regs.Get(in.Rs1)
	rs2 := regs.Get(in.Rs2)

	switch {
	case in.Funct3 == isa.Funct3Addi && in.Funct7 == isa.Funct7Zero: // ADD
		regs.Put(in.Rd, rs1+rs2)
	case in.Funct3 == isa.Funct3Addi && in.Funct7 == isa.Funct7Alt: // SUB
		regs.Put(in.Rd, rs1-rs2)
	case in.Funct3 == isa.Funct3Slli: // SLL
		regs.Put(in.Rd, rs1<<(rs2&0x1F))
	case in.Funct3 == isa.Funct3Slti: // SLT
		if int32(rs1) < int32(rs2) {
			regs.Put(in.Rd, 1)
		} else {
			regs.Put(in.Rd, 0)
		}
	case in.Funct3 == isa.Funct3Sltiu: // SLTU
		if rs1 < rs2 {
			regs.Put(in.Rd, 1)
		} else {
			regs.Put(in.Rd, 0)
		}
	case in.Funct3 == isa.Funct3Xori: // XOR
		regs.Put(in.Rd, rs1^rs2)
	case in.Funct3 == isa.Funct3Srli && in.Funct7 == isa.Funct7Zero: // SRL
		regs.Put(in.Rd, rs1>>(rs2&0x1F))
	case in.Funct3 == isa.Funct3Srli && in.Funct7 == isa.Funct7Alt: // SRA
		regs.Put(in.Rd, uint32(int32(rs1)>>(rs2&0x1F)))
	case in.Funct3 == isa.Funct3Ori: // OR
		regs.Put(in.Rd, rs1|rs2)
	case in.Funct3 == isa.Funct3Andi: // AND
		regs.Put(in.Rd, rs1&rs2)
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized OP funct3=0x%x funct7=0x%x", in.Funct3, in.Funct7)}
	}
	return nil
}

func executeI(regs *RegisterFile, mem *Memory, pc uint32, in IInst) error {
	switch in.Opcode {
	case isa.OpcodeOpImm:
		return executeOpImm(regs, in)
	case isa.OpcodeJalr:
		return executeJalr(regs, pc, in)
	case isa.OpcodeLoad:
		return executeLoad(regs, mem, in)
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized I-type opcode 0x%x", in.Opcode)}
	}
}

func executeOpImm(regs *RegisterFile, in IInst) error {
	rs1 := regs.Get(in.Rs1)

	switch in.Funct3 {
	case isa.Funct3Addi:
		regs.Put(in.Rd, isa.WrappingAddSigned(rs1, in.Imm))
	case isa.Funct3Slti:
		if int32(rs1) < in.Imm {
			regs.Put(in.Rd, 1)
		} else {
			regs.Put(in.Rd, 0)
		}
	case isa.Funct3Sltiu:
		if rs1 < uint32(in.Imm) {
			regs.Put(in.Rd, 1)
		} else {
			regs.Put(in.Rd, 0)
		}
	case isa.Funct3Xori:
		regs.Put(in.Rd, rs1^uint32(in.Imm))
	case isa.Funct3Ori:
		regs.Put(in.Rd, rs1|uint32(in.Imm))
	case isa.Funct3Andi:
		regs.Put(in.Rd, rs1&uint32(in.Imm))
	case isa.Funct3Slli:
		shamt := uint32(in.Imm) & 0x1F
		regs.Put(in.Rd, rs1<<shamt)
	case isa.Funct3Srli:
		shamt := uint32(in.Imm) & 0x1F
		top7 := (uint32(in.Imm) >> 5) & 0x7F
		if top7 == isa.Funct7Alt {
			regs.Put(in.Rd, uint32(int32(rs1)>>shamt)) // SRAI
		} else {
			regs.Put(in.Rd, rs1>>shamt) // SRLI
		}
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized OP-IMM funct3=0x%x", in.Funct3)}
	}
	return nil
}

func executeJalr(regs *RegisterFile, pc uint32, in IInst) error {
	rs1 := regs.Get(in.Rs1)
	target := isa.WrappingAddSigned(rs1, in.Imm) &^ 1
	if in.Rd != RegZero {
		regs.Put(in.Rd, pc+InstructionSize)
	}
	regs.SetPC(target)
	return nil
}

func executeLoad(regs *RegisterFile, mem *Memory, in IInst) error {
	addr := isa.WrappingAddSigned(regs.Get(in.Rs1), in.Imm)
	word := mem.Read(addr)

	switch in.Funct3 {
	case isa.Funct3Lb:
		regs.Put(in.Rd, uint32(int32(int8(word))))
	case isa.Funct3Lbu:
		regs.Put(in.Rd, word&0xFF)
	case isa.Funct3Lh:
		regs.Put(in.Rd, uint32(int32(int16(word))))
	case isa.Funct3Lhu:
		regs.Put(in.Rd, word&0xFFFF)
	case isa.Funct3Lw:
		regs.Put(in.Rd, word)
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized LOAD funct3=0x%x", in.Funct3)}
	}
	return nil
}

func executeS(regs *RegisterFile, mem *Memory, in SInst) error {
	addr := isa.WrappingAddSigned(regs.Get(in.Rs1), in.Imm)
	value := regs.Get(in.Rs2)

	switch in.Funct3 {
	case isa.Funct3Sb:
		mem.Write(addr, value&0xFF)
	case isa.Funct3Sh:
		mem.Write(addr, value&0xFFFF)
	case isa.Funct3Sw:
		mem.Write(addr, value)
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized STORE funct3=0x%x", in.Funct3)}
	}
	return nil
}

func executeB(regs *RegisterFile, pc uint32, in BInst) error {
	rs1 := regs.Get(in.Rs1)
	rs2 := regs.Get(in.Rs2)

	var taken bool
	switch in.Funct3 {
	case isa.Funct3Beq:
		taken = rs1 == rs2
	case isa.Funct3Bne:
		taken = rs1 != rs2
	case isa.Funct3Blt:
		taken = int32(rs1) < int32(rs2)
	case isa.Funct3Bge:
		taken = int32(rs1) >= int32(rs2)
	case isa.Funct3Bltu:
		taken = rs1 < rs2
	case isa.Funct3Bgeu:
		taken = rs1 >= rs2
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized BRANCH funct3=0x%x", in.Funct3)}
	}

	if taken {
		regs.SetPC(isa.WrappingAddSigned(pc, in.Imm))
	}
	return nil
}

func executeU(regs *RegisterFile, pc uint32, in UInst) error {
	switch in.Opcode {
	case isa.OpcodeLui:
		regs.Put(in.Rd, uint32(in.Imm))
	case isa.OpcodeAuipc:
		regs.Put(in.Rd, pc+uint32(in.Imm))
	default:
		return &ExecutionError{Message: fmt.Sprintf("unrecognized U-type opcode 0x%x", in.Opcode)}
	}
	return nil
}

func executeJ(regs *RegisterFile, pc uint32, in JInst) error {
	if in.Rd != RegZero {
		regs.Put(in.Rd, pc+InstructionSize)
	}
	regs.SetPC(isa.WrappingAddSigned(pc, in.Imm))
	return nil
}
