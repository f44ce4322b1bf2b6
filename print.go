package kdtree

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented rendering of the tree to w, one node per line.
// Left children are marked "<--- " and right children ">--- ":
//
//	>--- (1,1)
//	    <--- (0,0)
//	    |    >--- (0,3)
//	    >--- (3,0)
//	        >--- (2,2)
func (t *Tree) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.root != nil {
		printNode(bw, "", t.root, false)
	}
	return bw.Flush()
}

// String renders the tree the same way as Fprint.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

func printNode(w *bufio.Writer, prefix string, n *Node, isLeft bool) {
	w.WriteString(prefix)
	if isLeft {
		w.WriteString("<--- ")
	} else {
		w.WriteString(">--- ")
	}
	w.WriteString(formatPoint(n.point))
	w.WriteByte('\n')

	childPrefix := prefix + "    "
	if isLeft {
		childPrefix = prefix + "|    "
	}
	if n.left != nil {
		printNode(w, childPrefix, n.left, true)
	}
	if n.right != nil {
		printNode(w, childPrefix, n.right, false)
	}
}

// formatPoint renders p as "(x,y,...)".
func formatPoint(p Point) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range coordsOf(p) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
