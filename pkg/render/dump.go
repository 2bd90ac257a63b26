package render

import (
	"fmt"
	"strconv"

	"github.com/xlab/treeprint"

	"github.com/crel-dev/crel/pkg/node"
)

// maxLeafLen truncates long text and markup in dumps.
const maxLeafLen = 40

// Dump returns an outline of the node tree for debugging:
//
//	.
//	└── <p class="lead">
//	    ├── "Hello "
//	    └── safe "<b>you</b>"
//
// Dump drains single-pass sequences, so a tree containing a node.Seq cannot
// be rendered after it was dumped. Invalid values are reported the same way
// Render reports them.
func Dump(nodes ...node.Node) (string, error) {
	tree := treeprint.New()
	for _, n := range nodes {
		if err := dumpNode(tree, n); err != nil {
			return "", err
		}
	}
	return tree.String(), nil
}

func dumpNode(tree treeprint.Tree, n node.Node) error {
	switch node.KindOf(n) {
	case node.KindElement:
		el := n.(*node.Element)
		branch := tree.AddBranch(el.Open)
		for _, child := range el.Children {
			if err := dumpNode(branch, child); err != nil {
				return err
			}
		}
	case node.KindSafe:
		tree.AddNode("safe " + quote(string(n.(node.SafeString))))
	case node.KindText:
		tree.AddNode(quote(fmt.Sprint(n)))
	case node.KindTag:
		tree.AddNode(string(n.(*node.Tag).Rendered()))
	case node.KindGroup:
		branch := tree.AddBranch("group")
		for _, child := range node.Children(n) {
			if err := dumpNode(branch, child); err != nil {
				return err
			}
		}
	case node.KindSeq:
		branch := tree.AddBranch("seq")
		seq, err := seqOf(n)
		if err != nil {
			return err
		}
		for child := range seq {
			if err := dumpNode(branch, child); err != nil {
				return err
			}
		}
	default:
		if err := node.ErrOf(n); err != nil {
			return err
		}
		return unsupported(n)
	}
	return nil
}

func quote(s string) string {
	if len(s) > maxLeafLen {
		s = s[:maxLeafLen] + "..."
	}
	return strconv.Quote(s)
}
