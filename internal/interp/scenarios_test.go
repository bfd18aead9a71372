package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScenarios snapshots the observable stdout of small end-to-end programs
// exercising the evaluator, reader sugar, and builtin library together.
func TestScenarios(t *testing.T) {
	scenarios := map[string]string{
		"fibonacci": `(do
			(let fib (closure {{n}
				(ternary (lt n 2) n (add (call fib (sub n 1)) (call fib (sub n 2))))}))
			(put (call fib 10)))`,
		"higher_order_pipeline": `(do
			(let doubled (map (closure {{n} (mul n 2)}) [1 2 3 4]))
			(put (fold (closure {{a b} (add a b)}) doubled)))`,
		"vector_slice_and_range": `(do
			(put (slice (range 0 10) 2 4)))`,
		"closure_counter": `(do
			(let make_counter (closure {{start}
				(closure {{} (let start (add start 1))})}))
			(let counter (call make_counter 10))
			(put (call counter))
			(put " ")
			(put (call counter)))`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, out, err := run(t, src)
			if err != nil {
				t.Fatalf("scenario %s failed: %v", name, err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
