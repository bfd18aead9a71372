package interp

import (
	"testing"

	"github.com/vecexlang/vecex/internal/runtime"
)

func TestScopeSetAndGet(t *testing.T) {
	s := NewScope()
	s.Set("x", &runtime.IntValue{V: 1})
	v, ok := s.Get("x")
	if !ok {
		t.Fatal("expected x to be set")
	}
	if v.(*runtime.IntValue).V != 1 {
		t.Errorf("x = %v, want 1", v)
	}
}

func TestScopeShadowingAcrossDepths(t *testing.T) {
	s := NewScope()
	s.Set("x", &runtime.IntValue{V: 1})
	s.Increment()
	s.Set("x", &runtime.IntValue{V: 2})
	v, _ := s.Get("x")
	if v.(*runtime.IntValue).V != 2 {
		t.Fatalf("inner x = %v, want 2", v)
	}
	s.Decrement()
	v, _ = s.Get("x")
	if v.(*runtime.IntValue).V != 1 {
		t.Fatalf("outer x after decrement = %v, want 1", v)
	}
}

func TestScopeDecrementPopsOnlyDeeperBindings(t *testing.T) {
	s := NewScope()
	s.Set("x", &runtime.IntValue{V: 1})
	s.Increment()
	s.Set("y", &runtime.IntValue{V: 2})
	s.Decrement()
	if s.IsSet("y") {
		t.Error("expected y to be unbound after its depth was popped")
	}
	if !s.IsSet("x") {
		t.Error("expected x to survive the decrement")
	}
}

func TestScopeSetAtSameDepthReplaces(t *testing.T) {
	s := NewScope()
	s.Set("x", &runtime.IntValue{V: 1})
	s.Set("x", &runtime.IntValue{V: 2})
	v, _ := s.Get("x")
	if v.(*runtime.IntValue).V != 2 {
		t.Fatalf("x = %v, want 2 (replaced, not shadowed, at same depth)", v)
	}
}

func TestGetBoundAtDepth(t *testing.T) {
	s := NewScope()
	s.Set("x", &runtime.IntValue{V: 1})
	s.Increment()
	s.Set("y", &runtime.IntValue{V: 2})
	if _, ok := s.GetBoundAtDepth("x", s.Depth()); ok {
		t.Error("x was bound at depth 0, not the current depth")
	}
	v, ok := s.GetBoundAtDepth("y", s.Depth())
	if !ok || v.(*runtime.IntValue).V != 2 {
		t.Errorf("expected y bound at current depth, got %v, %v", v, ok)
	}
}

func TestScopeGetOrReturnsDefaultWhenUnset(t *testing.T) {
	s := NewScope()
	fallback := &runtime.IntValue{V: 99}
	v := s.GetOr("missing", fallback)
	if v != fallback {
		t.Errorf("expected fallback value for an unset name")
	}
}
