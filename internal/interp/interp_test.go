package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecexlang/vecex/internal/reader"
	"github.com/vecexlang/vecex/internal/runtime"
)

// run parses and evaluates src against a fresh Interpreter, returning the
// final value, anything written to stdout, and any evaluation error.
func run(t *testing.T, src string) (runtime.Value, string, error) {
	t.Helper()
	expr, err := reader.Read(src)
	require.NoError(t, err, "source failed to parse: %s", src)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""), true, []string{"prog"})
	v, err := ev.EvalTree(expr)
	return v, out.String(), err
}

func TestArithmetic(t *testing.T) {
	v, _, err := run(t, "(add 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.(*runtime.IntValue).V)

	v, _, err = run(t, "(sub 10 3 2)")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*runtime.IntValue).V)

	v, _, err = run(t, "(div 1)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*runtime.IntValue).V)

	_, _, err = run(t, "(div 1 0)")
	require.Error(t, err)
	var de *DomainError
	assert.ErrorAs(t, err, &de)
}

func TestLetBindsAndReturnsValue(t *testing.T) {
	v, _, err := run(t, "(let x 5)")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*runtime.IntValue).V)
}

func TestVariableResolutionAcrossLet(t *testing.T) {
	v, _, err := run(t, "(do (let x 5) (add x 1))")
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.(*runtime.IntValue).V)
}

func TestUnboundVariableIsNameError(t *testing.T) {
	_, _, err := run(t, "nonexistent")
	require.Error(t, err)
	var ne *NameError
	assert.ErrorAs(t, err, &ne)
}

func TestClosureCallAndArity(t *testing.T) {
	v, _, err := run(t, "(do (let square (closure {{n} (mul n n)})) (call square 7))")
	require.NoError(t, err)
	assert.Equal(t, int64(49), v.(*runtime.IntValue).V)

	_, _, err = run(t, "(do (let square (closure {{n} (mul n n)})) (call square 1 2))")
	require.Error(t, err)
}

func TestClosureReturnSignalUnwinds(t *testing.T) {
	v, _, err := run(t, "(do (let f (closure {{n} (do (return (mul n 2)) (put \"unreached\"))})) (call f 5))")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.(*runtime.IntValue).V)
}

func TestWhileLoopAndBreak(t *testing.T) {
	src := `(do
		(let i 0)
		(let total 0)
		(while {lt i 5} {do
			(let total (add total i))
			(let i (add i 1))
			(ternary (eq i 3) (break) Nil)
		})
		total)`
	v, _, err := run(t, src)
	require.NoError(t, err)
	// i runs 0,1,2 before the break fires at i==3: total = 0+1+2 = 3.
	assert.Equal(t, int64(3), v.(*runtime.IntValue).V)
}

func TestSizedAccessors(t *testing.T) {
	v, _, err := run(t, "(get 1 [10 20 30])")
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.(*runtime.IntValue).V)

	v, _, err = run(t, "(len [1 2 3])")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*runtime.IntValue).V)

	v, _, err = run(t, "(slice [10 20 30 40 50] 1 3 1)")
	require.NoError(t, err)
	vec := v.(*runtime.VectorValue)
	require.Len(t, vec.Items, 3)
	assert.Equal(t, int64(20), vec.Items[0].(*runtime.IntValue).V)
	assert.Equal(t, int64(40), vec.Items[2].(*runtime.IntValue).V)
}

func TestHigherOrderMap(t *testing.T) {
	v, _, err := run(t, "(map (closure {{n} (mul n n)}) [1 2 3])")
	require.NoError(t, err)
	vec := v.(*runtime.VectorValue)
	require.Len(t, vec.Items, 3)
	assert.Equal(t, int64(9), vec.Items[2].(*runtime.IntValue).V)
}

func TestPutWritesToStdout(t *testing.T) {
	_, out, err := run(t, `(put "hello " "world")`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestSafeModeRejectsMismatchedArgs(t *testing.T) {
	_, _, err := run(t, `(add "not a number")`)
	require.Error(t, err)
}

func TestExitSignalPropagates(t *testing.T) {
	_, _, err := run(t, "(exit 3)")
	require.Error(t, err)
	var es *ExitSignal
	require.ErrorAs(t, err, &es)
	assert.Equal(t, 3, es.Code)
}

func TestEqChainAndZeroArgDefaults(t *testing.T) {
	v, _, err := run(t, "(eq 1 1 1)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*runtime.BoolValue).V)

	v, _, err = run(t, "(eq 1 1 2)")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*runtime.BoolValue).V)

	v, _, err = run(t, "(eq)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*runtime.BoolValue).V)

	v, _, err = run(t, "(neq)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*runtime.BoolValue).V)
}
