package interp

import (
	"fmt"
	"strings"

	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

func init() {
	variadicAny := vecex.Compile([]string{"any", "*"})
	noArgs := vecex.Compile()
	one := vecex.Compile([]string{"any"})
	oneInt := vecex.Compile([]string{"int"})
	oneString := vecex.Compile([]string{"string"})

	registerBuiltin(runtime.BuiltinPut, variadicAny, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(a.String())
		}
		fmt.Fprint(ev.Stdout, b.String())
		return runtime.Nil, nil
	})

	registerBuiltin(runtime.BuiltinInput, noArgs, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		line, err := ev.Stdin.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil && line == "" {
			return &runtime.StringValue{V: ""}, nil
		}
		return &runtime.StringValue{V: line}, nil
	})

	registerBuiltin(runtime.BuiltinRepr, one, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		return &runtime.StringValue{V: runtime.Repr(args[0])}, nil
	})

	registerBuiltin(runtime.BuiltinChr, oneInt, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		n := args[0].(*runtime.IntValue).V
		if n < 0 || n > 255 {
			return nil, &DomainError{Msg: "chr argument out of byte range"}
		}
		return &runtime.StringValue{V: string([]byte{byte(n)})}, nil
	})

	registerBuiltin(runtime.BuiltinOrd, oneString, func(ev *Interpreter, args []runtime.Value) (runtime.Value, error) {
		s := args[0].(*runtime.StringValue).V
		if len(s) == 0 {
			return nil, &DomainError{Msg: "ord on empty string"}
		}
		return &runtime.IntValue{V: int64(s[0])}, nil
	})
}
