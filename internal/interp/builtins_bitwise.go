package interp

import (
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	variadicInt := vecex.Compile([]string{"int", "*"})

	registerBuiltin(runtime.BuiltinAnd, variadicInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		acc := int64(^0)
		for _, a := range args {
			acc &= a.(*runtime.IntValue).V
		}
		return &runtime.IntValue{V: acc}, nil
	})

	registerBuiltin(runtime.BuiltinOr, variadicInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		var acc int64
		for _, a := range args {
			acc |= a.(*runtime.IntValue).V
		}
		return &runtime.IntValue{V: acc}, nil
	})

	registerBuiltin(runtime.BuiltinXor, variadicInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		var acc int64
		for _, a := range args {
			acc ^= a.(*runtime.IntValue).V
		}
		return &runtime.IntValue{V: acc}, nil
	})
}
