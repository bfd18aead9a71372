package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecexlang/vecex/internal/runtime"
)

func vecInts(vs ...int64) *runtime.VectorValue {
	items := make([]runtime.Value, len(vs))
	for i, v := range vs {
		items[i] = &runtime.IntValue{V: v}
	}
	return &runtime.VectorValue{Items: items}
}

func intsOf(t *testing.T, v runtime.Value) []int64 {
	t.Helper()
	vec, ok := v.(*runtime.VectorValue)
	require.True(t, ok, "expected a vector, got %T", v)
	out := make([]int64, len(vec.Items))
	for i, it := range vec.Items {
		out[i] = it.(*runtime.IntValue).V
	}
	return out
}

func TestSliceInclusiveStop(t *testing.T) {
	v, _, err := run(t, "(slice [10 20 30 40 50] 1 3)")
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 30, 40}, intsOf(t, v))
}

func TestSliceNegativeStep(t *testing.T) {
	v, _, err := run(t, "(slice [10 20 30 40 50] 3 1 -1)")
	require.NoError(t, err)
	assert.Equal(t, []int64{40, 30, 20}, intsOf(t, v))
}

func TestSliceNegativeIndices(t *testing.T) {
	v, _, err := run(t, "(slice [10 20 30 40 50] -3 -1)")
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 40, 50}, intsOf(t, v))
}

func TestRangeExclusiveStop(t *testing.T) {
	v, _, err := run(t, "(range 0 5)")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, intsOf(t, v))
}

func TestRangeWrongSignedStepIsEmpty(t *testing.T) {
	v, _, err := run(t, "(range 0 5 -1)")
	require.NoError(t, err)
	assert.Empty(t, intsOf(t, v))
}

func TestInsertAtNegativeOne(t *testing.T) {
	v, _, err := run(t, "(insert 99 -1 [1 2 3])")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 99, 3}, intsOf(t, v))
}

func TestPushAndPop(t *testing.T) {
	v, _, err := run(t, "(do (let v [1 2 3]) (push 4 v) v)")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, intsOf(t, v))

	v, _, err = run(t, "(pop [1 2 3])")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*runtime.IntValue).V)

	_, _, err = run(t, "(pop [])")
	require.Error(t, err)
}

func TestFindReturnsMinusOneWhenAbsent(t *testing.T) {
	v, _, err := run(t, "(find 99 [1 2 3])")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.(*runtime.IntValue).V)
}

func TestJoinStringsAndVectors(t *testing.T) {
	v, _, err := run(t, `(join "a" "b" "c")`)
	require.NoError(t, err)
	assert.Equal(t, "abc", v.(*runtime.StringValue).V)

	vv, _, err := run(t, "(join [1 2] [3 4])")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, intsOf(t, vv))

	_, _, err = run(t, `(join [1 2] "x")`)
	require.Error(t, err)
}

func TestRepeat(t *testing.T) {
	v, _, err := run(t, "(repeat 7 3)")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7}, intsOf(t, v))
}
