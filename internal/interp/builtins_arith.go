package interp

import (
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

// numeric unwraps an Int/Bool/Float value into its int64 or float64
// payload, reporting whether the value carries a Float tag (arithmetic
// promotes to Float the moment one operand does, §4.7).
func numeric(v runtime.Value) (i int64, f float64, isFloat bool) {
	switch x := v.(type) {
	case *runtime.IntValue:
		return x.V, 0, false
	case *runtime.BoolValue:
		return x.V, 0, false
	case *runtime.FloatValue:
		return 0, float64(x.V), true
	}
	return 0, 0, false
}

func numericResult(i int64, f float64, isFloat bool) runtime.Value {
	if isFloat {
		return &runtime.FloatValue{V: float32(f)}
	}
	return &runtime.IntValue{V: i}
}

func init() {
	variadicNumeric := vecex.Compile([]string{"numeric", "*"})
	atLeastOneNumeric := vecex.Compile([]string{"numeric", "+"})
	oneNumeric := vecex.Compile([]string{"numeric"})
	atLeastOneInt := vecex.Compile([]string{"int", "+"})
	oneInt := vecex.Compile([]string{"int"})

	registerBuiltin(runtime.BuiltinAdd, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		var i int64
		var f float64
		var isFloat bool
		for _, a := range args {
			ai, af, afloat := numeric(a)
			if afloat && !isFloat {
				f += float64(i)
				isFloat = true
			}
			if isFloat {
				if afloat {
					f += af
				} else {
					f += float64(ai)
				}
			} else {
				i += ai
			}
		}
		return numericResult(i, f, isFloat), nil
	})

	registerBuiltin(runtime.BuiltinMul, variadicNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		i := int64(1)
		f := 1.0
		var isFloat bool
		for _, a := range args {
			ai, af, afloat := numeric(a)
			if afloat && !isFloat {
				f *= float64(i)
				isFloat = true
			}
			if isFloat {
				if afloat {
					f *= af
				} else {
					f *= float64(ai)
				}
			} else {
				i *= ai
			}
		}
		return numericResult(i, f, isFloat), nil
	})

	registerBuiltin(runtime.BuiltinSub, atLeastOneNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		i, f, isFloat := numeric(args[0])
		if len(args) == 1 {
			if isFloat {
				return &runtime.FloatValue{V: float32(-f)}, nil
			}
			return &runtime.IntValue{V: -i}, nil
		}
		for _, a := range args[1:] {
			ai, af, afloat := numeric(a)
			if afloat && !isFloat {
				f = float64(i)
				isFloat = true
			}
			if isFloat {
				if afloat {
					f -= af
				} else {
					f -= float64(ai)
				}
			} else {
				i -= ai
			}
		}
		return numericResult(i, f, isFloat), nil
	})

	registerBuiltin(runtime.BuiltinDiv, atLeastOneNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		i, f, isFloat := numeric(args[0])
		if len(args) == 1 {
			if isFloat {
				if f == 0 {
					return nil, &DomainError{Msg: "division by zero"}
				}
				return &runtime.FloatValue{V: float32(1 / f)}, nil
			}
			if i == 0 {
				return nil, &DomainError{Msg: "division by zero"}
			}
			return &runtime.IntValue{V: 1 / i}, nil
		}
		for _, a := range args[1:] {
			ai, af, afloat := numeric(a)
			if afloat && !isFloat {
				f = float64(i)
				isFloat = true
			}
			if isFloat {
				var d float64
				if afloat {
					d = af
				} else {
					d = float64(ai)
				}
				if d == 0 {
					return nil, &DomainError{Msg: "division by zero"}
				}
				f /= d
			} else {
				if ai == 0 {
					return nil, &DomainError{Msg: "division by zero"}
				}
				i /= ai
			}
		}
		return numericResult(i, f, isFloat), nil
	})

	registerBuiltin(runtime.BuiltinMod, atLeastOneInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		acc := args[0].(*runtime.IntValue).V
		for _, a := range args[1:] {
			d := a.(*runtime.IntValue).V
			if d == 0 {
				return nil, &DomainError{Msg: "mod by zero"}
			}
			acc %= d
		}
		return &runtime.IntValue{V: acc}, nil
	})

	registerBuiltin(runtime.BuiltinNeg, oneNumeric, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		i, f, isFloat := numeric(args[0])
		if isFloat {
			return &runtime.FloatValue{V: float32(-f)}, nil
		}
		return &runtime.IntValue{V: -i}, nil
	})

	registerBuiltin(runtime.BuiltinFlip, oneInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return &runtime.IntValue{V: ^args[0].(*runtime.IntValue).V}, nil
	})
}
