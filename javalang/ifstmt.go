package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerIf implements §4.2.2.
func lowerIf(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "if_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	condNode := n.ChildByFieldName("condition")
	if condNode == nil {
		return 0, 0, adg.ErrMissingField
	}
	condEntry, _, err := lower(c, condNode, entry)
	if err != nil {
		return 0, 0, err
	}
	c.graph.AddEdge(entry, condEntry, adg.RelCFlow, adg.RelCDep)

	exit := c.graph.AddASTNode(nil, "if_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	consNode := n.ChildByFieldName("consequence")
	if consNode == nil {
		return 0, 0, adg.ErrMissingField
	}
	consEntry, consExit, err := lower(c, consNode, entry)
	if err != nil {
		return 0, 0, err
	}
	c.graph.AddEdge(condEntry, consEntry, adg.RelCFlow, adg.RelCDep)
	c.graph.AddEdge(consExit, exit, adg.RelCFlow)

	if altNode := n.ChildByFieldName("alternative"); altNode != nil {
		altEntry, altExit, err := lower(c, altNode, entry)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(condEntry, altEntry, adg.RelCFlow, adg.RelCDep)
		c.graph.AddEdge(altExit, exit, adg.RelCFlow)
	} else {
		c.graph.AddEdge(condEntry, exit, adg.RelCFlow)
	}

	return entry, exit, nil
}
