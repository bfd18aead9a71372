package interp

import (
	"regexp"

	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	twoStrings := vecex.Compile([]string{"string"}, []string{"string"})

	registerBuiltin(runtime.BuiltinMatch, twoStrings, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		pat := args[0].(*runtime.StringValue).V
		subj := args[1].(*runtime.StringValue).V
		re, err := regexp.Compile("^(?:" + pat + ")$")
		if err != nil {
			return nil, &RegexError{Msg: err.Error()}
		}
		return boolOf(re.MatchString(subj)), nil
	})

	registerBuiltin(runtime.BuiltinSplit, twoStrings, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		pat := args[0].(*runtime.StringValue).V
		subj := args[1].(*runtime.StringValue).V
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &RegexError{Msg: err.Error()}
		}
		parts := re.Split(subj, -1)
		items := make([]runtime.Value, len(parts))
		for i, p := range parts {
			items[i] = &runtime.StringValue{V: p}
		}
		return &runtime.VectorValue{Items: items}, nil
	})

	registerBuiltin(runtime.BuiltinFindall, twoStrings, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		pat := args[0].(*runtime.StringValue).V
		subj := args[1].(*runtime.StringValue).V
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &RegexError{Msg: err.Error()}
		}
		matches := re.FindAllString(subj, -1)
		items := make([]runtime.Value, len(matches))
		for i, m := range matches {
			items[i] = &runtime.StringValue{V: m}
		}
		return &runtime.VectorValue{Items: items}, nil
	})
}
