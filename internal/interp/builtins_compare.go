package interp

import (
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	variadicAny := vecex.Compile([]string{"any", "*"})
	variadicNumeric := vecex.Compile([]string{"numeric", "*"})

	registerBuiltin(runtime.BuiltinEq, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return boolOf(chainEqual(args)), nil
	})

	registerBuiltin(runtime.BuiltinNeq, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return boolOf(true), nil
		}
		return boolOf(!chainEqual(args)), nil
	})

	registerBuiltin(runtime.BuiltinGt, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return boolOf(chainOrder(args, func(a, b float64) bool { return a > b })), nil
	})
	registerBuiltin(runtime.BuiltinLt, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return boolOf(chainOrder(args, func(a, b float64) bool { return a < b })), nil
	})
	registerBuiltin(runtime.BuiltinGeq, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return boolOf(chainOrder(args, func(a, b float64) bool { return a >= b })), nil
	})
	registerBuiltin(runtime.BuiltinLeq, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return boolOf(chainOrder(args, func(a, b float64) bool { return a <= b })), nil
	})
}

func boolOf(b bool) runtime.Value {
	if b {
		return &runtime.BoolValue{V: 1}
	}
	return &runtime.BoolValue{V: 0}
}

// chainEqual reports whether every successive pair of args is structurally
// equal (§8 `(eq x x)` is Yes; zero/one argument trivially true).
func chainEqual(args []runtime.Value) bool {
	for i := 1; i < len(args); i++ {
		if !runtime.Equal(args[i-1], args[i]) {
			return false
		}
	}
	return true
}

func chainOrder(args []runtime.Value, rel func(a, b float64) bool) bool {
	for i := 1; i < len(args); i++ {
		if !rel(runtime.NumericProjection(args[i-1]), runtime.NumericProjection(args[i])) {
			return false
		}
	}
	return true
}
