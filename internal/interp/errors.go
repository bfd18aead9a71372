package interp

import (
	"fmt"

	"github.com/vecexlang/vecex/internal/runtime"
)

// NameError reports an unresolved Variable reference (§4.6 step 2).
type NameError struct{ Name string }

func (e *NameError) Error() string {
	return fmt.Sprintf("name error: could not resolve variable '%s'", e.Name)
}

// DomainError reports a builtin rejecting an otherwise type-correct
// argument value (division by zero, an out-of-range index, ...), per
// spec §7.
type DomainError struct{ Msg string }

func (e *DomainError) Error() string { return "domain error: " + e.Msg }

// RegexError reports a malformed pattern passed to match/split/findall.
type RegexError struct{ Msg string }

func (e *RegexError) Error() string { return "regex error: " + e.Msg }

// ScopeOverflowError reports recursion past the resource bound of §5.
type ScopeOverflowError struct{}

func (e *ScopeOverflowError) Error() string { return "scope overflow: recursion too deep" }

// InfiniteLoopError reports a `while` exceeding its iteration cap (§5).
type InfiniteLoopError struct{}

func (e *InfiniteLoopError) Error() string { return "infinite loop: while exceeded iteration cap" }

// AssertError reports a failed `assert` (§4.7).
type AssertError struct{ Msg string }

func (e *AssertError) Error() string {
	if e.Msg == "" {
		return "assertion failed"
	}
	return "assertion failed: " + e.Msg
}

// ReturnSignal, BreakSignal and ExitSignal are the sum-type-via-error
// control-flow signals of §9: ordinary Go errors caught at the
// appropriate boundary (closure call, while loop, CLI entrypoint) rather
// than host panic/recover.
type ReturnSignal struct{ Value runtime.Value }

func (e *ReturnSignal) Error() string { return "return used outside a closure" }

type BreakSignal struct{}

func (e *BreakSignal) Error() string { return "break used outside a while loop" }

type ExitSignal struct{ Code int }

func (e *ExitSignal) Error() string { return fmt.Sprintf("exit(%d)", e.Code) }
