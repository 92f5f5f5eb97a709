package interp

// Env is the variable environment: a stack of scopes with the globals at
// the bottom. Each function call pushes an overlay holding its parameter
// bindings, so a callee sees every live caller binding unless a parameter
// of the same name shadows it, and popping the overlay restores the
// caller's world exactly.
type Env struct {
	scopes []map[string]int
}

// NewEnv creates an environment with a single global scope
func NewEnv() *Env {
	return &Env{
		scopes: []map[string]int{{}},
	}
}

// Push adds an overlay scope with the given bindings
func (e *Env) Push(bindings map[string]int) {
	if bindings == nil {
		bindings = make(map[string]int)
	}

	e.scopes = append(e.scopes, bindings)
}

// Pop removes the innermost overlay scope. The global scope is never popped.
func (e *Env) Pop() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Lookup resolves a name, walking from the innermost scope outward
func (e *Env) Lookup(name string) (int, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			return v, true
		}
	}

	return 0, false
}

// Set overwrites the binding in the scope where the name resolves, or
// defines it in the innermost scope if it is new
func (e *Env) Set(name string, value int) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][name]; ok {
			e.scopes[i][name] = value
			return
		}
	}

	e.scopes[len(e.scopes)-1][name] = value
}

// Depth returns the number of scopes on the stack
func (e *Env) Depth() int {
	return len(e.scopes)
}
