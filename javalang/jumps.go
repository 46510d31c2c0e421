package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// labelText returns the raw UTF-8 source text of the identifier child of n,
// used for both the declaring label of labeled_statement and the optional
// label of break_statement/continue_statement. It returns nil when n has no
// identifier child (an unlabeled jump).
func labelText(n *astnode.Node, source []byte) *string {
	for _, child := range n.NamedChildren() {
		if child.Type() == "identifier" {
			s := child.Text(source)
			return &s
		}
	}
	return nil
}

// lowerLabeled implements §4.2.7. It lowers the inner statement directly
// (bypassing lower()'s dispatch for loop forms) so it can recover the
// loop's continue target and rewire labeled continue/break statements
// that the loop's own unlabeled-only rewire left pending.
func lowerLabeled(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	label := labelText(n, c.source)

	inner := n.ChildByFieldName("statement")
	if inner == nil && n.NamedChildCount() > 1 {
		inner = n.NamedChild(n.NamedChildCount() - 1)
	}
	if inner == nil {
		return 0, 0, adg.ErrMissingField
	}

	var entry, exit, contTarget adg.NodeID
	var err error
	switch inner.Type() {
	case "for_statement":
		entry, exit, contTarget, err = lowerFor(c, inner, parent)
	case "enhanced_for_statement":
		entry, exit, contTarget, err = lowerEnhancedFor(c, inner, parent)
	case "while_statement":
		entry, exit, contTarget, err = lowerWhile(c, inner, parent)
	case "do_statement":
		entry, exit, contTarget, err = lowerDoWhile(c, inner, parent)
	default:
		entry, exit, err = lower(c, inner, parent)
	}
	if err != nil {
		return 0, 0, err
	}

	if contTarget != 0 {
		c.graph.RewireContinue(contTarget, label)
	}
	c.graph.RewireBreak(exit, label)

	return entry, exit, nil
}

// lowerContinue implements the `continue` half of §4.2.8: a single node,
// pushed into the pending continue table with its optional label, wired
// to its parent with a syntax edge only. The enclosing loop (or, for a
// labeled continue, the labeled_statement wrapping it) is responsible for
// the eventual cflow edge.
func lowerContinue(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	id := c.graph.AddASTNode(n, "")
	if parent != noParent {
		c.graph.AddEdge(parent, id, adg.RelSyntax)
	}
	c.graph.PushContinue(id, labelText(n, c.source))
	return id, id, nil
}

// lowerBreak implements the `break` half of §4.2.8.
func lowerBreak(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	id := c.graph.AddASTNode(n, "")
	if parent != noParent {
		c.graph.AddEdge(parent, id, adg.RelSyntax)
	}
	c.graph.PushBreak(id, labelText(n, c.source))
	return id, id, nil
}

// lowerReturn implements the `return` half of §4.2.8.
func lowerReturn(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	id := c.graph.AddASTNode(n, "")
	if parent != noParent {
		c.graph.AddEdge(parent, id, adg.RelSyntax)
	}
	c.graph.PushReturn(id)
	return id, id, nil
}
