package interp_test

import (
	"testing"

	"torshi/pkg/interp"
)

func TestEnvLookupWalksOutward(t *testing.T) {
	env := interp.NewEnv()
	env.Set("g", 1)
	env.Set("x", 2)

	env.Push(map[string]int{"x": 10})

	if v, ok := env.Lookup("x"); !ok || v != 10 {
		t.Errorf("Expected shadowed x = 10, got %d (ok=%v)", v, ok)
	}
	if v, ok := env.Lookup("g"); !ok || v != 1 {
		t.Errorf("Expected outer g = 1, got %d (ok=%v)", v, ok)
	}

	env.Pop()

	if v, ok := env.Lookup("x"); !ok || v != 2 {
		t.Errorf("Expected x = 2 after pop, got %d (ok=%v)", v, ok)
	}
}

func TestEnvSetUpdatesResolvingScope(t *testing.T) {
	env := interp.NewEnv()
	env.Set("g", 1)

	env.Push(map[string]int{"p": 5})
	env.Set("g", 7)
	env.Pop()

	if v, _ := env.Lookup("g"); v != 7 {
		t.Errorf("Write to outer binding should persist, got %d", v)
	}
	if _, ok := env.Lookup("p"); ok {
		t.Error("Overlay binding should be gone after pop")
	}
}

func TestEnvGlobalScopeNeverPops(t *testing.T) {
	env := interp.NewEnv()
	env.Set("g", 1)

	env.Pop()
	env.Pop()

	if env.Depth() != 1 {
		t.Fatalf("Expected depth 1, got %d", env.Depth())
	}
	if v, ok := env.Lookup("g"); !ok || v != 1 {
		t.Errorf("Global binding lost: %d (ok=%v)", v, ok)
	}
}
