// Package vecex implements the small value-sequence regular-expression
// engine described in spec §4.4: the gatekeeper that validates a builtin's
// argument vector against its declared type pattern. Grounded directly on
// original_source/source/cpp/vecex.h (same node kinds apart from Union,
// same greedy, no-backtracking matching semantics).
package vecex

import (
	"fmt"
	"strings"

	"github.com/vecexlang/vecex/internal/runtime"
)

// nodeKind mirrors vecex.h's Tag enum (Just/Dot/Between/Intersection); there
// is no Union kind.
type nodeKind int

const (
	kindJust nodeKind = iota
	kindDot
	kindBetween
	kindIntersection
)

// check is one constraint atom compiled from a pattern token.
type check struct {
	name string
	fn   func(runtime.Value) bool
}

// node is one compiled pattern token.
type node struct {
	kind   nodeKind
	seq    []*node // kindJust
	checks []check // kindIntersection
	sub    *node   // kindBetween
	min    int
	max    int // < 0 means infinite (U_INFINITY in vecex.h)
}

// Pattern is a compiled, top-level vecex token: a Just sequence of
// per-position constraints, each wrapped in a Between node when the
// position carries a repetition marker.
type Pattern struct {
	root  *node
	descr string
}

// MismatchError names the expected pattern and the actual argument list
// (§4.4 Failure), matching the casting-error wording spec §7 requires.
type MismatchError struct {
	Pattern string
	Args    []runtime.Value
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString("casting error: expected ")
	b.WriteString(e.Pattern)
	b.WriteString(", got [")
	for i, a := range e.Args {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(runtime.Repr(a))
	}
	b.WriteString("]")
	return b.String()
}

// Compile builds a Pattern from one token-list per argument position, e.g.
// Compile([]string{"int"}, []string{"any", "*"}) for a one-required-int-then-
// anything pattern. A position's tokens are ANDed together
// (Intersection) except for a trailing repetition marker ("*", "+", "?"),
// which wraps the rest in a Between node.
func Compile(positions ...[]string) *Pattern {
	seq := make([]*node, 0, len(positions))
	var parts []string
	for _, toks := range positions {
		seq = append(seq, compilePosition(toks))
		parts = append(parts, "("+strings.Join(toks, " ")+")")
	}
	return &Pattern{
		root:  &node{kind: kindJust, seq: seq},
		descr: "[" + strings.Join(parts, " ") + "]",
	}
}

func compilePosition(toks []string) *node {
	min, max := 1, 1
	var rest []string
	for _, t := range toks {
		switch t {
		case "*":
			min, max = 0, -1
		case "+":
			min, max = 1, -1
		case "?":
			min, max = 0, 1
		default:
			rest = append(rest, t)
		}
	}

	var inner *node
	if len(rest) == 1 && rest[0] == "any" {
		inner = &node{kind: kindDot}
	} else {
		checks := make([]check, 0, len(rest))
		for _, t := range rest {
			checks = append(checks, compileCheck(t))
		}
		inner = &node{kind: kindIntersection, checks: checks}
	}

	if min == 1 && max == 1 {
		return inner
	}
	return &node{kind: kindBetween, sub: inner, min: min, max: max}
}

func compileCheck(name string) check {
	if tag, ok := runtime.TagByName(name); ok {
		return check{name: name, fn: func(v runtime.Value) bool { return v.Tag() == tag }}
	}
	switch name {
	case "any":
		return check{name: name, fn: func(runtime.Value) bool { return true }}
	case "booly":
		return check{name: name, fn: runtime.IsBooly}
	case "truthy":
		return check{name: name, fn: func(v runtime.Value) bool { ok, err := runtime.Truthy(v); return err == nil && ok }}
	case "falsy":
		return check{name: name, fn: func(v runtime.Value) bool { ok, err := runtime.Truthy(v); return err == nil && !ok }}
	case "numeric":
		return check{name: name, fn: runtime.IsNumeric}
	case "callable":
		return check{name: name, fn: runtime.IsCallable}
	case "iterable":
		return check{name: name, fn: runtime.IsIterable}
	case "indexable":
		return check{name: name, fn: runtime.IsIndexable}
	}
	return check{name: name, fn: func(runtime.Value) bool { return false }}
}

// Match reports whether args satisfies the pattern. A match is successful
// iff the whole argument vector is consumed (§4.4 Matching semantics).
func (p *Pattern) Match(args []runtime.Value) bool {
	consumed, ok := matchNode(p.root, args, 0)
	return ok && consumed == len(args)
}

// Check validates args against p, returning a *MismatchError (wrapping
// p.descr and args) on failure.
func (p *Pattern) Check(args []runtime.Value) error {
	if p.Match(args) {
		return nil
	}
	return &MismatchError{Pattern: p.descr, Args: args}
}

func (p *Pattern) String() string { return p.descr }

// matchNode is the greedy, no-backtracking matcher of §4.4, grounded on
// vecex.h's `inner` lambda.
func matchNode(n *node, items []runtime.Value, start int) (consumed int, ok bool) {
	switch n.kind {
	case kindJust:
		i := start
		for _, sub := range n.seq {
			c, good := matchNode(sub, items, i)
			if !good {
				return i - start, false
			}
			i += c
		}
		return i - start, true

	case kindDot:
		if start >= len(items) {
			return 0, false
		}
		return 1, true

	case kindIntersection:
		if start >= len(items) {
			return 0, false
		}
		for _, c := range n.checks {
			if !c.fn(items[start]) {
				return 0, false
			}
		}
		return 1, true

	case kindBetween:
		maxItems := len(items)
		if n.max >= 0 && start+n.max < maxItems {
			maxItems = start + n.max
		}
		i := start
		for i < maxItems {
			c, good := matchNode(n.sub, items, i)
			if !good || c == 0 {
				break
			}
			i += c
		}
		count := i - start
		if count < n.min {
			return count, false
		}
		if n.max >= 0 && count > n.max {
			return count, false
		}
		return count, true
	}
	panic(fmt.Sprintf("vecex: unreachable node kind %d", n.kind))
}
