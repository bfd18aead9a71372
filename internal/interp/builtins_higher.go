package interp

import (
	"github.com/vecexlang/vecex/internal/reader"
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

// applyCallable invokes a Builtin or Closure value with already-evaluated
// arguments, shared by `map`, `fold`, `accumulate`, `apply`, and `call`.
func (ev *Interpreter) applyCallable(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch c := callee.(type) {
	case *runtime.BuiltinValue:
		return ev.dispatchBuiltin(c.ID, args)
	case *runtime.ClosureValue:
		return ev.callClosure(c, args)
	}
	return nil, &DomainError{Msg: "not callable"}
}

func init() {
	mapPattern := vecex.Compile([]string{"callable"}, []string{"vector", "+"})
	foldPattern := vecex.Compile([]string{"callable"}, []string{"vector"}, []string{"any", "?"})
	applyPattern := vecex.Compile([]string{"callable"}, []string{"vector"})
	callPattern := vecex.Compile([]string{"callable"}, []string{"any", "*"})
	evalPattern := vecex.Compile([]string{"string"})
	evalExprPattern := vecex.Compile([]string{"expression"})

	registerBuiltin(runtime.BuiltinMap, mapPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		fn := args[0]
		vecs := make([]*runtime.VectorValue, len(args)-1)
		n := -1
		for i, a := range args[1:] {
			v := a.(*runtime.VectorValue)
			vecs[i] = v
			if n == -1 {
				n = len(v.Items)
			} else if len(v.Items) != n {
				return nil, &DomainError{Msg: "map: vectors must have equal length"}
			}
		}
		out := make([]runtime.Value, n)
		for i := 0; i < n; i++ {
			callArgs := make([]runtime.Value, len(vecs))
			for k, v := range vecs {
				callArgs[k] = v.Items[i]
			}
			r, err := ev.applyCallable(fn, callArgs)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return &runtime.VectorValue{Items: out}, nil
	})

	registerBuiltin(runtime.BuiltinFold, foldPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		fn := args[0]
		vec := args[1].(*runtime.VectorValue)
		items := vec.Items
		var acc runtime.Value
		if len(args) == 3 {
			acc = args[2]
		} else {
			if len(items) == 0 {
				return nil, &DomainError{Msg: "fold: empty vector with no accumulator"}
			}
			acc = items[0]
			items = items[1:]
		}
		for _, v := range items {
			r, err := ev.applyCallable(fn, []runtime.Value{acc, v})
			if err != nil {
				return nil, err
			}
			acc = r
		}
		return acc, nil
	})

	registerBuiltin(runtime.BuiltinAccumulate, foldPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		fn := args[0]
		vec := args[1].(*runtime.VectorValue)
		items := vec.Items
		var acc runtime.Value
		if len(args) == 3 {
			acc = args[2]
		} else {
			if len(items) == 0 {
				return nil, &DomainError{Msg: "accumulate: empty vector with no accumulator"}
			}
			acc = items[0]
			items = items[1:]
		}
		out := make([]runtime.Value, 0, len(items))
		for _, v := range items {
			r, err := ev.applyCallable(fn, []runtime.Value{acc, v})
			if err != nil {
				return nil, err
			}
			acc = r
			out = append(out, acc)
		}
		return &runtime.VectorValue{Items: out}, nil
	})

	registerBuiltin(runtime.BuiltinApply, applyPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		fn := args[0]
		vec := args[1].(*runtime.VectorValue)
		return ev.applyCallable(fn, vec.Items)
	})

	registerBuiltin(runtime.BuiltinCall, callPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return ev.applyCallable(args[0], args[1:])
	})

	registerBuiltin(runtime.BuiltinEval, evalPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		e, err := reader.Read(args[0].(*runtime.StringValue).V)
		if err != nil {
			return nil, err
		}
		return ev.EvalTree(e)
	})

	registerBuiltin(runtime.BuiltinEvalExpr, evalExprPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return ev.evalExpr(args[0].(*runtime.ExpressionValue))
	})
}
