package vm

import "errors"

// Failure kinds surfaced by the VM. Load-time failures are ErrSyntax and
// ErrUnknownInstruction; the rest abort a run at the faulting instruction.
var (
	ErrSyntax             = errors.New("malformed instruction")
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrArithmetic         = errors.New("arithmetic error")
	ErrLink               = errors.New("undefined label")
	ErrStackUnderflow     = errors.New("return from empty call stack")
	ErrOutOfMemory        = errors.New("out of memory")
	ErrOutOfRange         = errors.New("invalid memory address")
	ErrMaxStepsExceeded   = errors.New("maximum steps exceeded")
)
