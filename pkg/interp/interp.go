package interp

import (
	"torshi/pkg/lexer"
)

// Function is a declared function: ordered parameter names plus the body
// captured as a token slice (brace-balanced at declaration time). The body
// is a single expression evaluated per call.
type Function struct {
	Params []string
	Body   []lexer.Token
}

// Interpreter holds the mutable symbol tables of one interpretation run:
// variables (scope stack), fixed-length integer arrays, and functions.
type Interpreter struct {
	env       *Env
	arrays    map[string][]int
	functions map[string]Function
}

// New creates an Interpreter with empty symbol tables
func New() *Interpreter {
	return &Interpreter{
		env:       NewEnv(),
		arrays:    make(map[string][]int),
		functions: make(map[string]Function),
	}
}

// Interpret tokenizes and executes a program of ';'-terminated statements.
// The first failure aborts the run; no resynchronization is attempted.
// Symbol tables survive across calls, so a session can feed sources
// incrementally.
func (it *Interpreter) Interpret(text string) error {
	p := &parser{
		it:   it,
		toks: lexer.Tokenize(text),
	}

	return p.program()
}

// Var reports the current value of a variable
func (it *Interpreter) Var(name string) (int, bool) {
	return it.env.Lookup(name)
}

// Array reports the current contents of a declared array
func (it *Interpreter) Array(name string) ([]int, bool) {
	a, ok := it.arrays[name]
	return a, ok
}

// HasFunction reports whether a function with the given name is declared
func (it *Interpreter) HasFunction(name string) bool {
	_, ok := it.functions[name]
	return ok
}
