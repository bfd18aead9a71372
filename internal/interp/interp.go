// Package interp implements the tree-walking evaluator of spec §4.6: it
// walks a depth-tree, resolving Variable nodes against a Scope and
// dispatching Builtin/Closure nodes to the primitive library in this
// package.
package interp

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/vecexlang/vecex/internal/runtime"
	"github.com/vecexlang/vecex/internal/vecex"
)

// maxRecursionDepth and maxWhileIterations are the resource bounds of §5.
const (
	maxRecursionDepth  = 2048
	maxWhileIterations = 100000
)

// builtinFunc is the shape of a dispatchable primitive.
type builtinFunc func(ev *Interpreter, args []runtime.Value) (runtime.Value, error)

// Interpreter holds everything the evaluator needs beyond the depth-tree
// itself: the live scope, the process-wide I/O streams and RNG named as
// external collaborators in spec §1, and the safe/debug mode flags from
// the CLI (§6).
type Interpreter struct {
	Scope  *Scope
	Stdout io.Writer
	Stdin  *bufio.Reader
	RNG    *rand.Rand

	Safe  bool
	Debug bool
	Argv  []string

	callDepth int
}

// New builds an Interpreter bound to the given I/O streams and argv
// vector (§6: argv\[0\] is the program path).
func New(stdout io.Writer, stdin io.Reader, safe bool, argv []string) *Interpreter {
	ev := &Interpreter{
		Scope:  NewScope(),
		Stdout: stdout,
		Stdin:  bufio.NewReader(stdin),
		RNG:    rand.New(rand.NewSource(1)),
		Safe:   safe,
		Argv:   argv,
	}
	items := make([]runtime.Value, len(argv))
	for i, a := range argv {
		items[i] = &runtime.StringValue{V: a}
	}
	ev.Scope.Set("argv", &runtime.VectorValue{Items: items})
	return ev
}

// childIndices returns the indices of the direct children of node i (those
// one depth level deeper), skipping over grandchildren by jumping straight
// to the end of each child's own subtree (§4.6 step 6).
func childIndices(t *runtime.Tree, i int) []int {
	d := t.Depths[i]
	var out []int
	j := i + 1
	for j < len(t.Nodes) && t.Depths[j] > d {
		out = append(out, j)
		j = t.End(j)
	}
	return out
}

// Eval walks the subtree rooted at t.Nodes[i], following the eight-step
// procedure of spec §4.6.
func (ev *Interpreter) Eval(t *runtime.Tree, i int) (runtime.Value, error) {
	node := t.Nodes[i]

	if vv, ok := node.(*runtime.VariableValue); ok {
		val, ok := ev.Scope.Get(vv.Name)
		if !ok {
			return nil, &NameError{Name: vv.Name}
		}
		node = val
	}

	if !runtime.IsCallable(node) {
		return node, nil
	}

	if bv, ok := node.(*runtime.BuiltinValue); ok {
		switch bv.ID {
		case runtime.BuiltinExpression:
			return &runtime.ExpressionValue{Tree: t.Subtree(i)}, nil
		case runtime.BuiltinLet:
			return ev.evalLet(t, i)
		case runtime.BuiltinTernary:
			return ev.evalTernary(t, i)
		}
	}

	children := childIndices(t, i)
	if len(children) == 0 {
		// No call site detected: the name was merely referenced (§4.6 step 7).
		return node, nil
	}

	args := make([]runtime.Value, 0, len(children))
	for _, j := range children {
		v, err := ev.Eval(t, j)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if len(args) == 1 {
		if _, ok := args[0].(*runtime.NoArgsValue); ok {
			args = args[:0]
		}
	}

	switch callee := node.(type) {
	case *runtime.BuiltinValue:
		return ev.dispatchBuiltin(callee.ID, args)
	case *runtime.ClosureValue:
		return ev.callClosure(callee, args)
	}
	return nil, &DomainError{Msg: "uncallable node reached dispatch"}
}

// EvalTree evaluates a whole Expression from its root.
func (ev *Interpreter) EvalTree(e *runtime.ExpressionValue) (runtime.Value, error) {
	if e.Tree.Size() == 0 {
		return runtime.Nil, nil
	}
	return ev.Eval(e.Tree, 0)
}

// evalLet implements §4.6 step 5: nodes[i+1] names the binding (used
// literally, never resolved), nodes[i+2..] is the value subtree.
func (ev *Interpreter) evalLet(t *runtime.Tree, i int) (runtime.Value, error) {
	children := childIndices(t, i)
	if len(children) != 2 {
		return nil, &DomainError{Msg: "let requires exactly a name and a value"}
	}
	nameNode, ok := t.Nodes[children[0]].(*runtime.VariableValue)
	if !ok {
		return nil, &DomainError{Msg: "let requires a variable name in its first position"}
	}
	val, err := ev.Eval(t, children[1])
	if err != nil {
		return nil, err
	}
	ev.Scope.Set(nameNode.Name, val)
	return val, nil
}

// evalTernary is a special form, not an ordinary builtin: generic dispatch
// (step 6) eagerly evaluates every child before the callee ever sees them,
// which would run both branches of a recursive base case and recurse
// forever. `ternary` instead evaluates only its condition and the selected
// branch, the same way `let` only evaluates its value child.
func (ev *Interpreter) evalTernary(t *runtime.Tree, i int) (runtime.Value, error) {
	children := childIndices(t, i)
	if len(children) != 3 {
		return nil, &DomainError{Msg: "ternary requires a condition and two branches"}
	}
	cond, err := ev.Eval(t, children[0])
	if err != nil {
		return nil, err
	}
	truthy, err := runtime.Truthy(cond)
	if err != nil {
		return nil, err
	}
	if truthy {
		return ev.Eval(t, children[1])
	}
	return ev.Eval(t, children[2])
}

// dispatchBuiltin runs the pattern check (when safe mode is on) and then
// the primitive itself (§4.4, §4.7).
func (ev *Interpreter) dispatchBuiltin(id runtime.BuiltinID, args []runtime.Value) (runtime.Value, error) {
	if ev.Safe {
		if p, ok := builtinPatterns[id]; ok {
			if err := p.Check(args); err != nil {
				return nil, err
			}
		}
	}
	fn, ok := builtinFuncs[id]
	if !ok {
		return nil, &DomainError{Msg: "unimplemented builtin '" + id.String() + "'"}
	}
	return fn(ev, args)
}

// callClosure implements §4.6's "Closure call" procedure. A closure's
// tree is shaped `{ {p1 ... pn} body }`: two direct children of the root
// expression marker, the first itself an expression wrapping the
// parameter names, the second the unevaluated body.
func (ev *Interpreter) callClosure(cl *runtime.ClosureValue, args []runtime.Value) (runtime.Value, error) {
	t := cl.Tree
	if t.Size() == 0 {
		return nil, &DomainError{Msg: "malformed closure: empty body"}
	}
	top := childIndices(t, 0)
	if len(top) != 2 {
		return nil, &DomainError{Msg: "malformed closure: expected a parameter list and a body"}
	}
	paramsIdx, bodyIdx := top[0], top[1]
	paramIndices := childIndices(t, paramsIdx)
	if len(paramIndices) != len(args) {
		return nil, &DomainError{Msg: "closure arity mismatch"}
	}

	if ev.callDepth >= maxRecursionDepth {
		return nil, &ScopeOverflowError{}
	}
	ev.callDepth++
	ev.Scope.Increment()

	for k, pidx := range paramIndices {
		pv, ok := t.Nodes[pidx].(*runtime.VariableValue)
		if !ok {
			ev.Scope.Decrement()
			ev.callDepth--
			return nil, &DomainError{Msg: "closure parameter must be a name"}
		}
		ev.Scope.Set(pv.Name, args[k])
	}

	result, err := ev.Eval(t, bodyIdx)
	if rs, ok := err.(*ReturnSignal); ok {
		result, err = rs.Value, nil
	}
	if err == nil {
		if inner, ok := result.(*runtime.ClosureValue); ok {
			result = ev.inlineCapturedValues(inner)
		}
	}

	ev.Scope.Decrement()
	ev.callDepth--
	return result, err
}

// inlineCapturedValues implements the capture-by-value inlining pass of
// §4.6: every Variable node in the returned closure's tree whose name is
// bound at the current (about-to-exit) depth is replaced by the bound
// value, letting an inner closure close over its enclosing parameters
// before that scope goes away.
func (ev *Interpreter) inlineCapturedValues(cl *runtime.ClosureValue) *runtime.ClosureValue {
	depth := ev.Scope.Depth()
	tree := cl.Tree
	nameSlots := letNameSlots(tree)
	for _, p := range closureParamSlots(tree) {
		nameSlots[p] = true
	}
	nodes := make([]runtime.Value, len(tree.Nodes))
	copy(nodes, tree.Nodes)
	for idx, n := range nodes {
		if nameSlots[idx] {
			continue
		}
		vv, ok := n.(*runtime.VariableValue)
		if !ok {
			continue
		}
		if val, ok := ev.Scope.GetBoundAtDepth(vv.Name, depth); ok {
			nodes[idx] = val
		}
	}
	depths := make([]uint32, len(tree.Depths))
	copy(depths, tree.Depths)
	return &runtime.ClosureValue{Tree: &runtime.Tree{Nodes: nodes, Depths: depths}}
}

// letNameSlots marks the node index of every `let`'s name position, which
// names a binding literally and must never be replaced by value inlining.
func letNameSlots(t *runtime.Tree) map[int]bool {
	slots := make(map[int]bool)
	for i, n := range t.Nodes {
		bv, ok := n.(*runtime.BuiltinValue)
		if !ok || bv.ID != runtime.BuiltinLet {
			continue
		}
		children := childIndices(t, i)
		if len(children) > 0 {
			slots[children[0]] = true
		}
	}
	return slots
}

// closureParamSlots returns the node indices naming a closure's own
// parameters, both for the tree's own implicit `{{params} body}` shape and
// for any nested `(closure {...})` construction inside it. Parameter names
// are binding declarations, not references, and must never be replaced by
// value inlining even if a same-named free variable is in scope.
func closureParamSlots(t *runtime.Tree) []int {
	var out []int
	paramSlotsOf := func(paramsIdx int) {
		out = append(out, childIndices(t, paramsIdx)...)
	}

	if t.Size() > 0 {
		top := childIndices(t, 0)
		if len(top) >= 1 {
			paramSlotsOf(top[0])
		}
	}

	for i, n := range t.Nodes {
		bv, ok := n.(*runtime.BuiltinValue)
		if !ok || bv.ID != runtime.BuiltinClosure {
			continue
		}
		children := childIndices(t, i)
		if len(children) != 1 {
			continue
		}
		inner := childIndices(t, children[0])
		if len(inner) >= 1 {
			paramSlotsOf(inner[0])
		}
	}
	return out
}

// evalExpr runs an already-captured Expression value as code, used by
// builtins that invoke the evaluator on an argument they received
// unevaluated (`while`, `eval_expr`, ...). Unlike EvalTree (which re-enters
// Eval at the tree's root and, for a `{...}`-rooted tree, hits the
// `expression` special case and hands the quoted tree straight back), this
// runs the marker's direct children as a `do`-style sequence, returning the
// last one's value (or Nil for an empty body) — e.Tree's root is always the
// `expression` marker node the `{...}` sugar captured it under (§4.2).
func (ev *Interpreter) evalExpr(e *runtime.ExpressionValue) (runtime.Value, error) {
	forms := childIndices(e.Tree, 0)
	result := runtime.Value(runtime.Nil)
	for _, idx := range forms {
		v, err := ev.Eval(e.Tree, idx)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

var builtinPatterns map[runtime.BuiltinID]*vecex.Pattern
var builtinFuncs map[runtime.BuiltinID]builtinFunc

func registerBuiltin(id runtime.BuiltinID, pattern *vecex.Pattern, fn builtinFunc) {
	if builtinPatterns == nil {
		builtinPatterns = make(map[runtime.BuiltinID]*vecex.Pattern)
	}
	if builtinFuncs == nil {
		builtinFuncs = make(map[runtime.BuiltinID]builtinFunc)
	}
	builtinPatterns[id] = pattern
	builtinFuncs[id] = fn
}
