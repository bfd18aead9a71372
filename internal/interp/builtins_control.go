package interp

import (
	"math/rand"

	"github.com/vecexlang/vecex/internal/reader"
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	variadicAny := vecex.Compile([]string{"any", "*"})
	ternaryPattern := vecex.Compile([]string{"booly"}, []string{"any"}, []string{"any"})
	whilePattern := vecex.Compile([]string{"expression"}, []string{"expression"})
	noArgs := vecex.Compile()
	optionalAny := vecex.Compile([]string{"any", "?"})
	optionalInt := vecex.Compile([]string{"int", "?"})
	assertPattern := vecex.Compile([]string{"booly"}, []string{"string", "?"})
	oneInt := vecex.Compile([]string{"int"})
	oneString := vecex.Compile([]string{"string"})

	registerBuiltin(runtime.BuiltinDo, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.Nil, nil
		}
		return args[len(args)-1], nil
	})

	registerBuiltin(runtime.BuiltinTernary, ternaryPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		t, err := runtime.Truthy(args[0])
		if err != nil {
			return nil, err
		}
		if t {
			return args[1], nil
		}
		return args[2], nil
	})

	registerBuiltin(runtime.BuiltinWhile, whilePattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		cond := args[0].(*runtime.ExpressionValue)
		body := args[1].(*runtime.ExpressionValue)
		for iterations := 0; ; iterations++ {
			if iterations >= maxWhileIterations {
				return nil, &InfiniteLoopError{}
			}
			cv, err := ev.evalExpr(cond)
			if err != nil {
				return nil, err
			}
			truthy, err := runtime.Truthy(cv)
			if err != nil {
				return nil, err
			}
			if !truthy {
				return runtime.Nil, nil
			}
			if _, err := ev.evalExpr(body); err != nil {
				if _, isBreak := err.(*BreakSignal); isBreak {
					return runtime.Nil, nil
				}
				return nil, err
			}
		}
	})

	registerBuiltin(runtime.BuiltinBreak, noArgs, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return nil, &BreakSignal{}
	})

	registerBuiltin(runtime.BuiltinReturn, optionalAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		v := runtime.Value(runtime.Nil)
		if len(args) == 1 {
			v = args[0]
		}
		return nil, &ReturnSignal{Value: v}
	})

	registerBuiltin(runtime.BuiltinExit, optionalInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		code := 0
		if len(args) == 1 {
			code = int(args[0].(*runtime.IntValue).V)
		}
		return nil, &ExitSignal{Code: code}
	})

	registerBuiltin(runtime.BuiltinAssert, assertPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		t, err := runtime.Truthy(args[0])
		if err != nil {
			return nil, err
		}
		if t {
			return runtime.Nil, nil
		}
		msg := ""
		if len(args) == 2 {
			msg = args[1].(*runtime.StringValue).V
		}
		return nil, &AssertError{Msg: msg}
	})

	registerBuiltin(runtime.BuiltinSeed, oneInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		ev.RNG = rand.New(rand.NewSource(args[0].(*runtime.IntValue).V))
		return runtime.Nil, nil
	})

	registerBuiltin(runtime.BuiltinRand, oneInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		n := args[0].(*runtime.IntValue).V
		if n <= 0 {
			return nil, &DomainError{Msg: "rand: bound must be positive"}
		}
		return &runtime.IntValue{V: ev.RNG.Int63n(n)}, nil
	})

	registerBuiltin(runtime.BuiltinParse, oneString, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		e, err := reader.Read(args[0].(*runtime.StringValue).V)
		if err != nil {
			return nil, err
		}
		return e, nil
	})

	registerBuiltin(runtime.BuiltinNoop, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return runtime.Nil, nil
	})
}
