package vm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"torshi/pkg/vm/stack"
)

// VM executes decoded instructions against a small machine: a register
// file, a fixed-capacity heap owned by the instance, a stack pointer
// walked down by ALLOC, and a call stack of saved program counters.
type VM struct {
	registers [NumRegisters]int
	heap      [HeapSize]int
	sp        int

	program []Instruction
	pc      int

	calls  *stack.Stack
	labels map[string]int

	out io.Writer

	maxSteps int // maximum steps per run (0 = unlimited)
	steps    int // steps executed in the current run
}

type Option func(*VM)

// WithWriter sets the output writer for PRINT
func WithWriter(w io.Writer) Option {
	return func(v *VM) { v.out = w }
}

// WithMaxSteps bounds a run to n steps before returning ErrMaxStepsExceeded.
// JMP makes unbounded loops trivial to write, so drivers set this.
func WithMaxSteps(n int) Option {
	return func(v *VM) { v.maxSteps = n }
}

// New creates a VM with zeroed registers and heap
func New(opts ...Option) *VM {
	v := &VM{
		sp:     HeapSize - 1,
		calls:  stack.NewStack(),
		labels: make(map[string]int),
	}

	for _, o := range opts {
		o(v)
	}

	if v.out == nil {
		v.out = os.Stdout
	}

	return v
}

// Load decodes a textual program into the VM, resetting machine state.
// Lines of the form `name:` are label markers: they are recorded as the
// index of the next real instruction and dropped from the program, so a
// jump lands exactly where the marker sits in the listing. Blank lines
// are skipped. A bad opcode or malformed operand fails the whole load.
func (v *VM) Load(lines []string) error {
	v.Reset()
	v.program = v.program[:0]
	v.labels = make(map[string]int)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if name, ok := IsLabelMarker(trimmed); ok {
			v.labels[name] = len(v.program)
			continue
		}

		in, err := Parse(trimmed)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}

		v.program = append(v.program, in)
	}

	return nil
}

// DefineLabel registers a label at the current end of the program. Markers
// in the program text resolve on their own during Load; this is for
// drivers that append a target past the last loaded instruction.
func (v *VM) DefineLabel(name string) {
	v.labels[name] = len(v.program)
}

// Reset clears registers, heap, stack pointer, call stack, and counters
func (v *VM) Reset() {
	v.registers = [NumRegisters]int{}
	v.heap = [HeapSize]int{}
	v.sp = HeapSize - 1
	v.pc = 0
	v.steps = 0
	v.calls.Reset()
}

// Run executes from the start of the program until it falls off the end
// or an instruction fails. The failure of one instruction ends the run;
// output already emitted stands.
func (v *VM) Run() error {
	v.pc = 0
	v.steps = 0

	for {
		halted, err := v.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// Step fetches and executes a single instruction, returning (halted, error).
// The program counter advances before dispatch, so jump targets are
// absolute indices and CALL pushes the slot after itself.
func (v *VM) Step() (bool, error) {
	if v.maxSteps > 0 && v.steps >= v.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	if v.pc < 0 || v.pc >= len(v.program) {
		return true, nil
	}

	in := v.program[v.pc]
	v.pc++
	v.steps++

	if err := v.execute(in); err != nil {
		return false, fmt.Errorf("%s: %w", in, err)
	}

	return false, nil
}

// Register returns the value of register n
func (v *VM) Register(n int) int {
	return v.registers[n]
}

// Heap returns the value at a heap address
func (v *VM) Heap(addr int) int {
	return v.heap[addr]
}

// StackPointer returns the current simulated stack pointer
func (v *VM) StackPointer() int {
	return v.sp
}

// Program returns the decoded program
func (v *VM) Program() []Instruction {
	return v.program
}

// Labels returns the label table
func (v *VM) Labels() map[string]int {
	return v.labels
}

// execute dispatches one instruction
func (v *VM) execute(in Instruction) error {
	switch in.Op {
	case OpMov:
		v.registers[in.R1] = in.Imm

	case OpAdd:
		v.registers[in.R1] += v.registers[in.R2]

	case OpSub:
		v.registers[in.R1] -= v.registers[in.R2]

	case OpMul:
		v.registers[in.R1] *= v.registers[in.R2]

	case OpDiv:
		if v.registers[in.R2] == 0 {
			return fmt.Errorf("%w: division by zero", ErrArithmetic)
		}
		v.registers[in.R1] /= v.registers[in.R2]

	case OpMod:
		if v.registers[in.R2] == 0 {
			return fmt.Errorf("%w: modulus by zero", ErrArithmetic)
		}
		v.registers[in.R1] %= v.registers[in.R2]

	case OpExp:
		v.registers[in.R1] = ipow(v.registers[in.R1], v.registers[in.R2])

	case OpGt:
		v.registers[in.R1] = boolToInt(v.registers[in.R1] > v.registers[in.R2])

	case OpLt:
		v.registers[in.R1] = boolToInt(v.registers[in.R1] < v.registers[in.R2])

	case OpEq:
		v.registers[in.R1] = boolToInt(v.registers[in.R1] == v.registers[in.R2])

	case OpPrint:
		fmt.Fprintf(v.out, "Register %d: %d\n", in.R1, v.registers[in.R1])

	case OpJmp:
		return v.jump(in.Label)

	case OpJeq:
		if v.registers[in.R1] == v.registers[in.R2] {
			return v.jump(in.Label)
		}

	case OpCall:
		target, ok := v.labels[in.Label]
		if !ok {
			return fmt.Errorf("%w: %q", ErrLink, in.Label)
		}
		v.calls.Push(v.pc)
		v.pc = target

	case OpRet:
		ret, ok := v.calls.Pop()
		if !ok {
			return ErrStackUnderflow
		}
		v.pc = ret

	case OpAlloc:
		if v.sp-in.Imm < 0 {
			return fmt.Errorf("%w: %d slots requested, %d free", ErrOutOfMemory, in.Imm, v.sp)
		}
		v.sp -= in.Imm

	case OpStore:
		if in.Imm < 0 || in.Imm >= HeapSize {
			return fmt.Errorf("%w: %d", ErrOutOfRange, in.Imm)
		}
		v.heap[in.Imm] = v.registers[in.R1]

	case OpLoad:
		if in.Imm < 0 || in.Imm >= HeapSize {
			return fmt.Errorf("%w: %d", ErrOutOfRange, in.Imm)
		}
		v.registers[in.R1] = v.heap[in.Imm]

	default:
		return fmt.Errorf("%w: %q", ErrUnknownInstruction, in.Op)
	}

	return nil
}

// jump moves the program counter to a label target
func (v *VM) jump(label string) error {
	target, ok := v.labels[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLink, label)
	}

	v.pc = target
	return nil
}

// ipow is integer exponentiation. Negative exponents truncate toward zero,
// so only bases 1 and -1 survive them.
func ipow(base, exp int) int {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		default:
			return 0
		}
	}

	result := 1
	for range exp {
		result *= base
	}

	return result
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
