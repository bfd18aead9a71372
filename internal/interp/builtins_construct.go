package interp

import (
	"strconv"

	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	one := vecex.Compile([]string{"any"})
	oneString := vecex.Compile([]string{"string"})
	oneExpression := vecex.Compile([]string{"expression"})
	variadicAny := vecex.Compile([]string{"any", "*"})

	registerBuiltin(runtime.BuiltinInt, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		switch x := args[0].(type) {
		case *runtime.IntValue:
			return x, nil
		case *runtime.FloatValue:
			return &runtime.IntValue{V: int64(x.V)}, nil
		case *runtime.BoolValue:
			return &runtime.IntValue{V: x.V}, nil
		case *runtime.StringValue:
			n, err := strconv.ParseInt(x.V, 10, 64)
			if err != nil {
				return nil, &DomainError{Msg: "cannot convert '" + x.V + "' to int"}
			}
			return &runtime.IntValue{V: n}, nil
		}
		return nil, &DomainError{Msg: "cannot convert " + args[0].Tag().String() + " to int"}
	})

	registerBuiltin(runtime.BuiltinFloat, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		switch x := args[0].(type) {
		case *runtime.FloatValue:
			return x, nil
		case *runtime.IntValue:
			return &runtime.FloatValue{V: float32(x.V)}, nil
		case *runtime.BoolValue:
			return &runtime.FloatValue{V: float32(x.V)}, nil
		case *runtime.StringValue:
			f, err := strconv.ParseFloat(x.V, 32)
			if err != nil {
				return nil, &DomainError{Msg: "cannot convert '" + x.V + "' to float"}
			}
			return &runtime.FloatValue{V: float32(f)}, nil
		}
		return nil, &DomainError{Msg: "cannot convert " + args[0].Tag().String() + " to float"}
	})

	registerBuiltin(runtime.BuiltinBool, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		t, err := runtime.Truthy(args[0])
		if err != nil {
			return nil, err
		}
		return boolOf(t), nil
	})

	registerBuiltin(runtime.BuiltinType, oneString, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		name := args[0].(*runtime.StringValue).V
		if tag, ok := runtime.TagByName(name); ok {
			return runtime.NewConcreteType(tag), nil
		}
		if kind, ok := runtime.KindByName(name); ok {
			return runtime.NewKindType(kind), nil
		}
		return nil, &DomainError{Msg: "unknown type name '" + name + "'"}
	})

	registerBuiltin(runtime.BuiltinVector, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		items := make([]runtime.Value, len(args))
		copy(items, args)
		return &runtime.VectorValue{Items: items}, nil
	})

	registerBuiltin(runtime.BuiltinList, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return runtime.ListFromSlice(args), nil
	})

	registerBuiltin(runtime.BuiltinClosure, oneExpression, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		e := args[0].(*runtime.ExpressionValue)
		return &runtime.ClosureValue{Tree: e.Tree}, nil
	})
}
