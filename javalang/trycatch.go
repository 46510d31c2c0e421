package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerTry implements §4.2.9 for both try_statement and
// try_with_resources_statement. Exceptional control flow is approximated
// structurally, per the open question in §9: both the try's entry and the
// exit of its body (resources + block) reach every catch entry, modeling
// "an exception may occur anywhere in the body" without real type-based
// dispatch; catches chain linearly so an unhandled one falls through to
// the next.
func lowerTry(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "try_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	cur := entry
	if resSpec := n.ChildByFieldName("resources"); resSpec != nil {
		for _, res := range resSpec.NamedChildren() {
			resID := c.graph.AddASTNode(res, "")
			c.graph.AddEdge(entry, resID, adg.RelSyntax, adg.RelCDep)
			c.graph.AddEdge(cur, resID, adg.RelCFlow)
			cur = resID
		}
	}

	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return 0, 0, adg.ErrMissingField
	}
	bodyEntry, tryExit, err := lower(c, bodyNode, entry)
	if err != nil {
		return 0, 0, err
	}
	c.graph.AddEdge(cur, bodyEntry, adg.RelCFlow, adg.RelCDep)

	exit := c.graph.AddASTNode(nil, "try_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	var catchEntries, catchExits []adg.NodeID
	var finallyClause *astnode.Node
	for _, child := range n.NamedChildren() {
		switch child.Type() {
		case "catch_clause":
			catchEntry := c.graph.AddASTNode(child, "catch_entry")
			c.graph.AddEdge(entry, catchEntry, adg.RelSyntax)

			var stmts []*astnode.Node
			if param := child.ChildByFieldName("parameter"); param != nil {
				stmts = append(stmts, param)
			}
			if catchBody := child.ChildByFieldName("body"); catchBody != nil {
				stmts = append(stmts, catchBody)
			}
			_, catchExit, err := lowerStatementSeq(c, catchEntry, stmts)
			if err != nil {
				return 0, 0, err
			}
			catchEntries = append(catchEntries, catchEntry)
			catchExits = append(catchExits, catchExit)
		case "finally_clause":
			finallyClause = child
		}
	}

	for _, catchEntry := range catchEntries {
		c.graph.AddEdge(entry, catchEntry, adg.RelCFlow)
		c.graph.AddEdge(tryExit, catchEntry, adg.RelCFlow)
	}
	for i := 1; i < len(catchEntries); i++ {
		c.graph.AddEdge(catchExits[i-1], catchEntries[i], adg.RelCFlow)
	}

	var lastCatchExit adg.NodeID
	if len(catchExits) > 0 {
		lastCatchExit = catchExits[len(catchExits)-1]
	}

	if finallyClause != nil {
		finallyBody := finallyClause.ChildByFieldName("body")
		if finallyBody == nil {
			finallyBody = finallyClause
		}
		finallyEntry, finallyExit, err := lower(c, finallyBody, entry)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(tryExit, finallyEntry, adg.RelCFlow)
		if lastCatchExit != 0 {
			c.graph.AddEdge(lastCatchExit, finallyEntry, adg.RelCFlow)
		}
		c.graph.AddEdge(finallyExit, exit, adg.RelCFlow)
	} else {
		c.graph.AddEdge(tryExit, exit, adg.RelCFlow)
		if lastCatchExit != 0 {
			c.graph.AddEdge(lastCatchExit, exit, adg.RelCFlow)
		}
	}

	return entry, exit, nil
}
