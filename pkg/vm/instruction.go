package vm

import (
	"fmt"
	"strconv"
	"strings"
)

type Opcode string

// Instruction set
const (
	OpMov   Opcode = "MOV"
	OpAdd   Opcode = "ADD"
	OpSub   Opcode = "SUB"
	OpMul   Opcode = "MUL"
	OpDiv   Opcode = "DIV"
	OpMod   Opcode = "MOD"
	OpExp   Opcode = "EXP"
	OpGt    Opcode = "GT"
	OpLt    Opcode = "LT"
	OpEq    Opcode = "EQ"
	OpPrint Opcode = "PRINT"
	OpJmp   Opcode = "JMP"
	OpJeq   Opcode = "JEQ"
	OpCall  Opcode = "CALL"
	OpRet   Opcode = "RET"
	OpAlloc Opcode = "ALLOC"
	OpStore Opcode = "STORE"
	OpLoad  Opcode = "LOAD"
)

const (
	// NumRegisters is the size of the register file (R0..R5)
	NumRegisters = 6
	// HeapSize is the capacity of the simulated heap, addressed 0..99
	HeapSize = 100
)

// Instruction is one decoded program slot. Operand meaning depends on Op:
// R1/R2 are register indices, Imm carries an immediate, allocation size,
// or heap address, Label names a jump or call target.
type Instruction struct {
	Op    Opcode
	R1    int
	R2    int
	Imm   int
	Label string
}

// String renders the instruction back in its textual form
func (in Instruction) String() string {
	switch in.Op {
	case OpMov:
		return fmt.Sprintf("MOV R%d %d", in.R1, in.Imm)
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpExp, OpGt, OpLt, OpEq:
		return fmt.Sprintf("%s R%d R%d", in.Op, in.R1, in.R2)
	case OpPrint:
		return fmt.Sprintf("PRINT R%d", in.R1)
	case OpJmp, OpCall:
		return fmt.Sprintf("%s %s", in.Op, in.Label)
	case OpJeq:
		return fmt.Sprintf("JEQ R%d R%d %s", in.R1, in.R2, in.Label)
	case OpRet:
		return "RET"
	case OpAlloc:
		return fmt.Sprintf("ALLOC %d", in.Imm)
	case OpStore, OpLoad:
		return fmt.Sprintf("%s R%d %d", in.Op, in.R1, in.Imm)
	default:
		return string(in.Op)
	}
}

// Parse decodes one textual instruction into its operand fields. The text
// is whitespace-tokenized, so register indices and immediates are not tied
// to fixed character positions.
func Parse(text string) (Instruction, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Instruction{}, fmt.Errorf("%w: empty instruction", ErrSyntax)
	}

	op := Opcode(fields[0])

	switch op {
	case OpMov:
		if err := wantOperands(fields, 2); err != nil {
			return Instruction{}, err
		}
		reg, err := parseRegister(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		imm, err := parseNumber(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, R1: reg, Imm: imm}, nil

	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpExp, OpGt, OpLt, OpEq:
		if err := wantOperands(fields, 2); err != nil {
			return Instruction{}, err
		}
		r1, err := parseRegister(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		r2, err := parseRegister(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, R1: r1, R2: r2}, nil

	case OpPrint:
		if err := wantOperands(fields, 1); err != nil {
			return Instruction{}, err
		}
		reg, err := parseRegister(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, R1: reg}, nil

	case OpJmp, OpCall:
		if err := wantOperands(fields, 1); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Label: fields[1]}, nil

	case OpJeq:
		if err := wantOperands(fields, 3); err != nil {
			return Instruction{}, err
		}
		r1, err := parseRegister(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		r2, err := parseRegister(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, R1: r1, R2: r2, Label: fields[3]}, nil

	case OpRet:
		if err := wantOperands(fields, 0); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op}, nil

	case OpAlloc:
		if err := wantOperands(fields, 1); err != nil {
			return Instruction{}, err
		}
		size, err := parseNumber(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Imm: size}, nil

	case OpStore, OpLoad:
		if err := wantOperands(fields, 2); err != nil {
			return Instruction{}, err
		}
		reg, err := parseRegister(fields[1])
		if err != nil {
			return Instruction{}, err
		}
		addr, err := parseNumber(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, R1: reg, Imm: addr}, nil

	default:
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownInstruction, fields[0])
	}
}

// IsLabelMarker reports whether a program line is a `name:` label marker
// rather than an instruction, returning the label name.
func IsLabelMarker(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 || !strings.HasSuffix(trimmed, ":") {
		return "", false
	}

	name := trimmed[:len(trimmed)-1]
	if strings.ContainsAny(name, " \t") {
		return "", false
	}

	return name, true
}

// wantOperands checks the operand count of a tokenized instruction
func wantOperands(fields []string, n int) error {
	if len(fields)-1 != n {
		return fmt.Errorf("%w: %s takes %d operands, got %d", ErrSyntax, fields[0], n, len(fields)-1)
	}

	return nil
}

// parseRegister decodes an `R<n>` operand and validates the index
func parseRegister(s string) (int, error) {
	if len(s) < 2 || s[0] != 'R' {
		return 0, fmt.Errorf("%w: expected register, got %q", ErrSyntax, s)
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: bad register %q", ErrSyntax, s)
	}
	if n < 0 || n >= NumRegisters {
		return 0, fmt.Errorf("%w: register %q outside R0..R%d", ErrSyntax, s, NumRegisters-1)
	}

	return n, nil
}

// parseNumber decodes an immediate, size, or address operand
func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, s)
	}

	return n, nil
}
