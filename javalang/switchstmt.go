package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerSwitch implements §4.2.6 for both statement and arrow-form
// expression switches. Arms chain linearly by cflow: a non-matching
// condition falls through to the next arm's entry, and falling off the
// end of an arm's body (no break) reaches only that arm's own exit, which
// then feeds the next arm's entry. Unlabeled break statements anywhere in
// the switch are resolved, once, directly to switch_exit — matching
// scenario S7, where `break` skips every remaining arm rather than
// merely stopping at its own arm boundary.
func lowerSwitch(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "switch_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	condNode := n.ChildByFieldName("condition")
	if condNode == nil {
		return 0, 0, adg.ErrMissingField
	}
	condID, _, err := lower(c, condNode, entry)
	if err != nil {
		return 0, 0, err
	}
	c.graph.AddEdge(entry, condID, adg.RelCFlow, adg.RelCDep)

	exit := c.graph.AddASTNode(nil, "switch_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	bodyNode := n.ChildByFieldName("body")
	var arms []*astnode.Node
	if bodyNode != nil {
		arms = switchArms(bodyNode)
	}

	if len(arms) == 0 {
		c.graph.AddEdge(condID, exit, adg.RelCFlow)
		return entry, exit, nil
	}

	var prevExit adg.NodeID
	var firstArmEntry adg.NodeID
	for i, arm := range arms {
		label, bodyStmts := switchArmGroup(arm)

		armEntry := c.graph.AddASTNode(arm, "arm_entry")
		c.graph.AddEdge(entry, armEntry, adg.RelSyntax)

		var caseCond adg.NodeID
		if label != nil {
			caseCond = c.graph.AddASTNode(label, "case_condition")
		} else {
			caseCond = c.graph.AddASTNode(nil, "case_condition")
		}
		c.graph.AddEdge(armEntry, caseCond, adg.RelSyntax, adg.RelCFlow, adg.RelCDep)

		armExit := c.graph.AddASTNode(nil, "arm_exit")
		c.graph.AddEdge(armEntry, armExit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

		bodyEntry, bodyExit, err := lowerStatementSeq(c, armEntry, bodyStmts)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(caseCond, bodyEntry, adg.RelCFlow, adg.RelCDep)
		c.graph.AddEdge(bodyExit, armExit, adg.RelCFlow)
		c.graph.AddEdge(caseCond, armExit, adg.RelCFlow)

		if i == 0 {
			firstArmEntry = armEntry
		} else {
			c.graph.AddEdge(prevExit, armEntry, adg.RelCFlow)
		}
		prevExit = armExit
	}

	c.graph.AddEdge(condID, firstArmEntry, adg.RelCFlow)
	c.graph.AddEdge(prevExit, exit, adg.RelCFlow)

	unlabeled := (*string)(nil)
	c.graph.RewireBreak(exit, unlabeled)

	return entry, exit, nil
}
