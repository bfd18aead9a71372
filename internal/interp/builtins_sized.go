package interp

import (
	"strings"

	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

// normalizeIndex applies the "-1 == last" rule of §4.7. It does not bounds
// check; callers decide whether the allowed upper bound is size or size+1.
func normalizeIndex(i int, size int) int {
	if i < 0 {
		return size + i
	}
	return i
}

func init() {
	oneIterable := vecex.Compile([]string{"iterable"})
	getPattern := vecex.Compile([]string{"int"}, []string{"indexable"})
	slicePattern := vecex.Compile([]string{"indexable"}, []string{"int"}, []string{"int"}, []string{"int", "?"})
	insertPattern := vecex.Compile([]string{"any"}, []string{"int"}, []string{"vector"})
	linsertPattern := vecex.Compile([]string{"any"}, []string{"int"}, []string{"list"})
	pushPattern := vecex.Compile([]string{"any"}, []string{"vector"})
	popPattern := vecex.Compile([]string{"vector"})
	findPattern := vecex.Compile([]string{"any"}, []string{"iterable"})
	repeatPattern := vecex.Compile([]string{"any"}, []string{"int"})
	rangePattern := vecex.Compile([]string{"int"}, []string{"int"}, []string{"int", "?"})
	joinPattern := vecex.Compile([]string{"any", "+"})

	registerBuiltin(runtime.BuiltinLen, oneIterable, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return &runtime.IntValue{V: int64(runtime.Len(args[0]))}, nil
	})

	registerBuiltin(runtime.BuiltinGet, getPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		idx := int(args[0].(*runtime.IntValue).V)
		size := runtime.Len(args[1])
		idx = normalizeIndex(idx, size)
		if idx < 0 || idx >= size {
			return nil, &DomainError{Msg: "get: index out of bounds"}
		}
		switch v := args[1].(type) {
		case *runtime.VectorValue:
			return v.Items[idx], nil
		case *runtime.ListValue:
			val, _ := v.At(idx)
			return val, nil
		}
		return nil, &DomainError{Msg: "get: unsupported container"}
	})

	registerBuiltin(runtime.BuiltinSlice, slicePattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		vec, ok := args[0].(*runtime.VectorValue)
		if !ok {
			return nil, &DomainError{Msg: "slice: target must be a vector"}
		}
		size := len(vec.Items)
		start := normalizeIndex(int(args[1].(*runtime.IntValue).V), size)
		stop := normalizeIndex(int(args[2].(*runtime.IntValue).V), size)
		step := 1
		if len(args) == 4 {
			step = int(args[3].(*runtime.IntValue).V)
		}
		if step == 0 {
			return nil, &DomainError{Msg: "slice: step must not be zero"}
		}
		var out []runtime.Value
		if size == 0 {
			return &runtime.VectorValue{Items: out}, nil
		}
		if step > 0 {
			if stop < start {
				return &runtime.VectorValue{Items: out}, nil
			}
			for i := start; i <= stop && i < size; i += step {
				if i < 0 {
					continue
				}
				out = append(out, vec.Items[i])
			}
		} else {
			if stop > start {
				return &runtime.VectorValue{Items: out}, nil
			}
			for i := start; i >= stop && i >= 0; i += step {
				if i >= size {
					continue
				}
				out = append(out, vec.Items[i])
			}
		}
		return &runtime.VectorValue{Items: out}, nil
	})

	registerBuiltin(runtime.BuiltinInsert, insertPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		value := args[0]
		vec := args[2].(*runtime.VectorValue)
		size := len(vec.Items)
		idx := int(args[1].(*runtime.IntValue).V)
		if idx < 0 {
			idx = size + idx // -1 inserts before the last position
		}
		if idx < 0 || idx > size {
			return nil, &DomainError{Msg: "insert: index out of bounds"}
		}
		items := make([]runtime.Value, 0, size+1)
		items = append(items, vec.Items[:idx]...)
		items = append(items, value)
		items = append(items, vec.Items[idx:]...)
		return &runtime.VectorValue{Items: items}, nil
	})

	registerBuiltin(runtime.BuiltinLInsert, linsertPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		value := args[0]
		list := args[2].(*runtime.ListValue)
		size := list.Len()
		idx := int(args[1].(*runtime.IntValue).V)
		if idx < 0 {
			idx = size + idx // -1 inserts before the last position
		}
		if !list.InsertAt(idx, value) {
			return nil, &DomainError{Msg: "linsert: index out of bounds"}
		}
		return list, nil
	})

	registerBuiltin(runtime.BuiltinPush, pushPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		vec := args[1].(*runtime.VectorValue)
		vec.Items = append(vec.Items, args[0])
		return vec, nil
	})

	registerBuiltin(runtime.BuiltinPop, popPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		vec := args[0].(*runtime.VectorValue)
		n := len(vec.Items)
		if n == 0 {
			return nil, &DomainError{Msg: "pop: empty vector"}
		}
		last := vec.Items[n-1]
		vec.Items = vec.Items[:n-1]
		return last, nil
	})

	registerBuiltin(runtime.BuiltinFind, findPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		needle := args[0]
		switch hay := args[1].(type) {
		case *runtime.VectorValue:
			for i, v := range hay.Items {
				if runtime.Equal(v, needle) {
					return &runtime.IntValue{V: int64(i)}, nil
				}
			}
		case *runtime.ListValue:
			for i, v := range hay.Items() {
				if runtime.Equal(v, needle) {
					return &runtime.IntValue{V: int64(i)}, nil
				}
			}
		case *runtime.StringValue:
			ns, ok := needle.(*runtime.StringValue)
			if !ok {
				return nil, &DomainError{Msg: "find: needle must be a string when searching a string"}
			}
			return &runtime.IntValue{V: int64(strings.Index(hay.V, ns.V))}, nil
		}
		return &runtime.IntValue{V: -1}, nil
	})

	registerBuiltin(runtime.BuiltinRepeat, repeatPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		n := args[1].(*runtime.IntValue).V
		if n < 0 {
			return nil, &DomainError{Msg: "repeat: count must be non-negative"}
		}
		items := make([]runtime.Value, n)
		for i := range items {
			items[i] = args[0]
		}
		return &runtime.VectorValue{Items: items}, nil
	})

	registerBuiltin(runtime.BuiltinRange, rangePattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		start := args[0].(*runtime.IntValue).V
		stop := args[1].(*runtime.IntValue).V
		step := int64(1)
		if len(args) == 3 {
			step = args[2].(*runtime.IntValue).V
		}
		var out []runtime.Value
		if step == 0 {
			return &runtime.VectorValue{Items: out}, nil
		}
		if step > 0 {
			for i := start; i < stop; i += step {
				out = append(out, &runtime.IntValue{V: i})
			}
		} else {
			for i := start; i > stop; i += step {
				out = append(out, &runtime.IntValue{V: i})
			}
		}
		return &runtime.VectorValue{Items: out}, nil
	})

	registerBuiltin(runtime.BuiltinJoin, joinPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		tag := args[0].Tag()
		for _, a := range args[1:] {
			if a.Tag() != tag {
				return nil, &vecex.MismatchError{Pattern: "[(string +)] or [(vector +)]", Args: args}
			}
		}
		switch tag {
		case runtime.TagString:
			var b strings.Builder
			for _, a := range args {
				b.WriteString(a.(*runtime.StringValue).V)
			}
			return &runtime.StringValue{V: b.String()}, nil
		case runtime.TagVector:
			var items []runtime.Value
			for _, a := range args {
				items = append(items, a.(*runtime.VectorValue).Items...)
			}
			return &runtime.VectorValue{Items: items}, nil
		}
		return nil, &DomainError{Msg: "join: arguments must all be strings or all be vectors"}
	})
}
