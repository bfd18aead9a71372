package interp

import "github.com/vecexlang/vecex/internal/runtime"

// binding pairs a bound value with the scope depth it was set at.
type binding struct {
	value runtime.Value
	depth uint32
}

// Scope implements the name -> stack-of-(value, depth) model of spec §4.5,
// grounded on original_source/source/cpp/scoping.h's VariableScope. depth
// is a process-global counter advanced on closure entry and retracted on
// exit (§3 "Scope depth").
//
// Each name's bindings are stored most-recent-last; the last element is
// the top of its stack.
type Scope struct {
	vars  map[string][]binding
	depth uint32
}

// NewScope creates an empty root scope at depth 0.
func NewScope() *Scope {
	return &Scope{vars: make(map[string][]binding)}
}

// Increment advances the scope depth, as closure entry does (§4.6).
func (s *Scope) Increment() { s.depth++ }

// Decrement retracts the scope depth and pops every binding whose depth
// now exceeds it, removing any name left with no bindings (§4.5).
func (s *Scope) Decrement() {
	s.depth--
	for name, stack := range s.vars {
		i := len(stack)
		for i > 0 && stack[i-1].depth > s.depth {
			i--
		}
		if i == 0 {
			delete(s.vars, name)
			continue
		}
		if i != len(stack) {
			s.vars[name] = stack[:i]
		}
	}
}

// Depth returns the current scope depth.
func (s *Scope) Depth() uint32 { return s.depth }

// IsSet reports whether name has at least one binding visible at any
// enclosing depth.
func (s *Scope) IsSet(name string) bool {
	stack, ok := s.vars[name]
	return ok && len(stack) > 0
}

// Get returns the value bound to name, or ok=false if unbound.
func (s *Scope) Get(name string) (runtime.Value, bool) {
	stack, ok := s.vars[name]
	if !ok || len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1].value, true
}

// GetBoundAtDepth returns the top binding for name iff it was set at
// exactly the given depth. Used by closure-return value-capture inlining
// (§4.6) to find which free variables belong to the frame about to close.
func (s *Scope) GetBoundAtDepth(name string, depth uint32) (runtime.Value, bool) {
	stack, ok := s.vars[name]
	if !ok || len(stack) == 0 {
		return nil, false
	}
	top := stack[len(stack)-1]
	if top.depth != depth {
		return nil, false
	}
	return top.value, true
}

// GetOr returns the bound value, or fallback if name is unbound.
func (s *Scope) GetOr(name string, fallback runtime.Value) runtime.Value {
	if v, ok := s.Get(name); ok {
		return v
	}
	return fallback
}

// Set binds name to value at the current depth. Rebinding the same name at
// the same depth replaces the top entry; binding at a deeper scope pushes a
// new, shadowing entry (§4.5 Ordering).
func (s *Scope) Set(name string, value runtime.Value) {
	stack := s.vars[name]
	if n := len(stack); n > 0 && stack[n-1].depth == s.depth {
		stack[n-1].value = value
		s.vars[name] = stack
		return
	}
	s.vars[name] = append(stack, binding{value: value, depth: s.depth})
}

// Tally returns the total number of live bindings across all names.
func (s *Scope) Tally() int {
	n := 0
	for _, stack := range s.vars {
		n += len(stack)
	}
	return n
}
