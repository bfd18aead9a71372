package interp

import (
	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

// matchesKind reports whether v satisfies the given type-pattern kind,
// mirroring vecex's own compileCheck (§4.4) so `typematch` and the matcher
// agree on what each kind name means.
func matchesKind(v runtime.Value, k *runtime.TypeValue) bool {
	if k.Kind == runtime.KindConcrete {
		return v.Tag() == k.ConcreteTag
	}
	switch k.Kind {
	case runtime.KindAny:
		return true
	case runtime.KindBooly:
		return runtime.IsBooly(v)
	case runtime.KindTruthy:
		t, err := runtime.Truthy(v)
		return err == nil && t
	case runtime.KindFalsy:
		t, err := runtime.Truthy(v)
		return err == nil && !t
	case runtime.KindNumeric:
		return runtime.IsNumeric(v)
	case runtime.KindCallable:
		return runtime.IsCallable(v)
	case runtime.KindIterable:
		return runtime.IsIterable(v)
	case runtime.KindIndexable:
		return runtime.IsIndexable(v)
	}
	return false
}

func init() {
	one := vecex.Compile([]string{"any"})
	typematchPattern := vecex.Compile([]string{"any"}, []string{"type"})
	callableOrNone := vecex.Compile([]string{"callable", "?"})
	booly := vecex.Compile([]string{"booly"})

	registerBuiltin(runtime.BuiltinTypeof, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewConcreteType(args[0].Tag()), nil
	})

	registerBuiltin(runtime.BuiltinTypematch, typematchPattern, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		t := args[1].(*runtime.TypeValue)
		return boolOf(matchesKind(args[0], t)), nil
	})

	registerBuiltin(runtime.BuiltinHelp, callableOrNone, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return &runtime.StringValue{V: "help: pass a builtin or closure to describe"}, nil
		}
		switch c := args[0].(type) {
		case *runtime.BuiltinValue:
			if p, ok := builtinPatterns[c.ID]; ok {
				return &runtime.StringValue{V: c.ID.String() + " " + p.String()}, nil
			}
			return &runtime.StringValue{V: c.ID.String() + " (no declared pattern)"}, nil
		case *runtime.ClosureValue:
			return &runtime.StringValue{V: c.Tree.PrettyPrint()}, nil
		}
		return &runtime.StringValue{V: ""}, nil
	})

	registerBuiltin(runtime.BuiltinCopy, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		switch v := args[0].(type) {
		case *runtime.VectorValue:
			items := make([]runtime.Value, len(v.Items))
			copy(items, v.Items)
			return &runtime.VectorValue{Items: items}, nil
		case *runtime.ListValue:
			return runtime.ListFromSlice(v.Items()), nil
		}
		return args[0], nil
	})

	registerBuiltin(runtime.BuiltinNot, booly, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		t, err := runtime.Truthy(args[0])
		if err != nil {
			return nil, err
		}
		return boolOf(!t), nil
	})
}
