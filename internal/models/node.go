package models

import (
	"fmt"
	"strings"
)

// Node is either a decision leaf holding a label in Value, or a split node
// holding a feature index in Value with both children set. Left is taken when
// the feature is 0.
type Node struct {
	Decision bool  `json:"decision"`
	Value    int   `json:"value"`
	Left     *Node `json:"left,omitempty"`
	Right    *Node `json:"right,omitempty"`
}

func leaf(label int) *Node { return &Node{Decision: true, Value: label} }

// Predict walks the tree for x and returns the label of the leaf reached.
func (n *Node) Predict(x []int) (int, error) {
	if n == nil {
		return 0, ErrNotFitted
	}
	for !n.Decision {
		if n.Value >= len(x) {
			return 0, fmt.Errorf("%w: feature %d, vetor com %d", ErrFeatureOutOfRange, n.Value, len(x))
		}
		if x[n.Value] == 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value, nil
}

// Depth counts the split nodes on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.Decision {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.Decision {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Preorder dumps the tree root-first: split nodes as their feature index,
// leaves as "_<label>".
func Preorder(n *Node) string {
	var parts []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Decision {
			parts = append(parts, fmt.Sprintf("_%d", n.Value))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n.Value))
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return strings.Join(parts, " ")
}

func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, "")
	return b.String()
}

func (n *Node) write(b *strings.Builder, indent string) {
	if n == nil {
		return
	}
	if n.Decision {
		fmt.Fprintf(b, "%s-> %d\n", indent, n.Value)
		return
	}
	fmt.Fprintf(b, "%s[f%d == 0]\n", indent, n.Value)
	n.Left.write(b, indent+"  ")
	fmt.Fprintf(b, "%s[f%d == 1]\n", indent, n.Value)
	n.Right.write(b, indent+"  ")
}
