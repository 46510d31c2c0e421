package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerMethod implements §4.2.10 for method_declaration and
// constructor_declaration: formal parameters lower as a linear var_decl
// chain, then the body, then wire_returns attaches every pending return
// to method_exit.
func lowerMethod(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "method_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	cur := entry
	if params := n.ChildByFieldName("parameters"); params != nil {
		for _, param := range params.NamedChildren() {
			paramID, _, err := lower(c, param, entry)
			if err != nil {
				return 0, 0, err
			}
			c.graph.AddEdge(cur, paramID, adg.RelCFlow)
			cur = paramID
		}
	}

	exit := c.graph.AddASTNode(nil, "method_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	if body := n.ChildByFieldName("body"); body != nil {
		bodyEntry, bodyExit, err := lower(c, body, entry)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(cur, bodyEntry, adg.RelCFlow)
		c.graph.AddEdge(bodyExit, exit, adg.RelCFlow)
	} else {
		c.graph.AddEdge(cur, exit, adg.RelCFlow)
	}

	c.graph.WireReturns(exit)

	return entry, exit, nil
}
