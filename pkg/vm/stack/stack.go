package stack

// Stack holds saved program-counter values for subroutine calls.
type Stack struct {
	a []int
	l int
}

// NewStack creates a new stack instance
func NewStack(elm ...int) *Stack {
	stack := Stack{
		a: make([]int, 0),
		l: 0,
	}

	for _, e := range elm {
		stack.l++
		stack.a = append(stack.a, e)
	}

	return &stack
}

// Push adds an element to the top of the stack
func (s *Stack) Push(elm int) {
	s.l++
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack
func (s *Stack) Pop() (int, bool) {
	if s.l < 1 {
		return 0, false
	}

	s.l--
	elm := s.a[s.l]
	s.a = s.a[:s.l]

	return elm, true
}

// Peek returns the top element of the stack without removing it
func (s *Stack) Peek() (int, bool) {
	if s.l < 1 {
		return 0, false
	}

	return s.a[s.l-1], true
}

// Get the size of the stack
func (s *Stack) Size() int {
	return s.l
}

// Reset empties the stack
func (s *Stack) Reset() {
	s.a = s.a[:0]
	s.l = 0
}

// Array returns the underlying array of the stack
func (s Stack) Array() []int {
	return s.a
}
