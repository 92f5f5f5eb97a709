package stack_test

import (
	"testing"

	"torshi/pkg/vm/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.NewStack()

	s.Push(3)
	s.Push(7)

	if s.Size() != 2 {
		t.Fatalf("Expected size 2, got %d", s.Size())
	}

	if v, ok := s.Peek(); !ok || v != 7 {
		t.Errorf("Expected peek 7, got %d (ok=%v)", v, ok)
	}

	if v, ok := s.Pop(); !ok || v != 7 {
		t.Errorf("Expected pop 7, got %d (ok=%v)", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != 3 {
		t.Errorf("Expected pop 3, got %d (ok=%v)", v, ok)
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
}

func TestNewStackSeedsElements(t *testing.T) {
	s := stack.NewStack(1, 2, 3)

	if s.Size() != 3 {
		t.Fatalf("Expected size 3, got %d", s.Size())
	}
	if v, _ := s.Pop(); v != 3 {
		t.Errorf("Expected last seeded element on top, got %d", v)
	}
}

func TestReset(t *testing.T) {
	s := stack.NewStack(1, 2)
	s.Reset()

	if s.Size() != 0 {
		t.Errorf("Expected empty stack after reset, got size %d", s.Size())
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek after reset should report false")
	}
}
