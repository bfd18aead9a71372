package runtime

import "strings"

// Tree is the flat `(nodes[], depths[])` encoding of an S-expression
// (§4.1). depths[0] == 0 and consecutive depths never rise by more than
// one level at a time (they may fall by any number of levels).
type Tree struct {
	Nodes  []Value
	Depths []uint32
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int { return len(t.Nodes) }

// Subtree returns a new tree containing nodes[i] (rebased to depth 0) and
// every subsequent node while depths[j] > depths[i].
func (t *Tree) Subtree(i int) *Tree {
	base := t.Depths[i]
	j := i + 1
	for j < len(t.Nodes) && t.Depths[j] > base {
		j++
	}
	n := j - i
	nodes := make([]Value, n)
	depths := make([]uint32, n)
	copy(nodes, t.Nodes[i:j])
	for k := 0; k < n; k++ {
		depths[k] = t.Depths[i+k] - base
	}
	return &Tree{Nodes: nodes, Depths: depths}
}

// End returns the index one past the last node belonging to the subtree
// rooted at i (i.e. the same bound Subtree uses internally).
func (t *Tree) End(i int) int {
	base := t.Depths[i]
	j := i + 1
	for j < len(t.Nodes) && t.Depths[j] > base {
		j++
	}
	return j
}

// PrettyPrint renders the tree with box-drawing indentation, per §6:
// each line indented by "│ " for depth >= 1 and "· " for each additional
// level, followed by the node's own to_str.
func (t *Tree) PrettyPrint() string {
	var b strings.Builder
	for i, n := range t.Nodes {
		d := t.Depths[i]
		if d >= 1 {
			b.WriteString("│ ")
			for j := uint32(1); j < d; j++ {
				b.WriteString("· ")
			}
		}
		b.WriteString(n.String())
		if i != len(t.Nodes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Equal compares two trees structurally, node-by-node and depth-by-depth.
func (t *Tree) Equal(o *Tree) bool {
	if t.Size() != o.Size() {
		return false
	}
	for i := range t.Nodes {
		if t.Depths[i] != o.Depths[i] {
			return false
		}
		if !Equal(t.Nodes[i], o.Nodes[i]) {
			return false
		}
	}
	return true
}
