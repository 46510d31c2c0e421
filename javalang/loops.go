package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerFor implements §4.2.3. The third return value is the node a
// `continue` targets (for_update), exposed so an enclosing labeled_statement
// can rewire labeled continues that this constructor's own unlabeled-only
// rewire left untouched.
func lowerFor(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "for_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	initID := entry
	if initNode := n.ChildByFieldName("init"); initNode != nil {
		initID, _, _ = lower(c, initNode, entry)
	}

	condID := entry
	if condNode := n.ChildByFieldName("condition"); condNode != nil {
		condID, _, _ = lower(c, condNode, entry)
	}

	updateID := entry
	if updateNode := n.ChildByFieldName("update"); updateNode != nil {
		updateID, _, _ = lower(c, updateNode, entry)
	}

	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	bodyEntry, bodyExit, err := lower(c, bodyNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}

	exit := c.graph.AddASTNode(nil, "for_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	if initID != entry {
		c.graph.AddEdge(entry, initID, adg.RelCFlow)
	}
	condSource := entry
	if initID != entry {
		condSource = initID
	}
	c.graph.AddEdge(condSource, condID, adg.RelCFlow)
	c.graph.AddEdge(condID, bodyEntry, adg.RelCFlow, adg.RelCDep)
	c.graph.AddEdge(bodyExit, updateID, adg.RelCFlow)
	c.graph.AddEdge(updateID, condID, adg.RelCFlow, adg.RelBack)
	c.graph.AddEdge(condID, exit, adg.RelCFlow)

	unlabeled := (*string)(nil)
	c.graph.RewireContinue(updateID, unlabeled)
	c.graph.RewireBreak(exit, unlabeled)

	return entry, exit, updateID, nil
}

// lowerEnhancedFor implements §4.2.4: for_entry is both the iteration point
// and the continue target.
func lowerEnhancedFor(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "for_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	bodyEntry, bodyExit, err := lower(c, bodyNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}

	exit := c.graph.AddASTNode(nil, "for_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	c.graph.AddEdge(entry, bodyEntry, adg.RelCFlow, adg.RelCDep)
	c.graph.AddEdge(bodyExit, entry, adg.RelCFlow, adg.RelBack)
	c.graph.AddEdge(entry, exit, adg.RelCFlow)

	unlabeled := (*string)(nil)
	c.graph.RewireContinue(entry, unlabeled)
	c.graph.RewireBreak(exit, unlabeled)

	return entry, exit, entry, nil
}

// lowerWhile implements the `while` shape of §4.2.5: entry->condition;
// condition->body->condition; condition->exit.
func lowerWhile(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "while_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	condNode := n.ChildByFieldName("condition")
	if condNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	condID, _, err := lower(c, condNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}
	c.graph.AddEdge(entry, condID, adg.RelCFlow, adg.RelCDep)

	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	bodyEntry, bodyExit, err := lower(c, bodyNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}

	exit := c.graph.AddASTNode(nil, "while_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	c.graph.AddEdge(condID, bodyEntry, adg.RelCFlow, adg.RelCDep)
	c.graph.AddEdge(bodyExit, condID, adg.RelCFlow, adg.RelBack)
	c.graph.AddEdge(condID, exit, adg.RelCFlow)

	unlabeled := (*string)(nil)
	c.graph.RewireContinue(condID, unlabeled)
	c.graph.RewireBreak(exit, unlabeled)

	return entry, exit, condID, nil
}

// lowerDoWhile implements the `do-while` shape of §4.2.5: entry->body;
// body->condition; condition->body (back edge); condition->exit.
func lowerDoWhile(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "do_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	bodyEntry, bodyExit, err := lower(c, bodyNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}

	condNode := n.ChildByFieldName("condition")
	if condNode == nil {
		return 0, 0, 0, adg.ErrMissingField
	}
	condID, _, err := lower(c, condNode, entry)
	if err != nil {
		return 0, 0, 0, err
	}

	exit := c.graph.AddASTNode(nil, "do_exit")
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	c.graph.AddEdge(entry, bodyEntry, adg.RelCFlow, adg.RelCDep)
	c.graph.AddEdge(bodyExit, condID, adg.RelCFlow)
	c.graph.AddEdge(condID, bodyEntry, adg.RelCFlow, adg.RelBack)
	c.graph.AddEdge(condID, exit, adg.RelCFlow)

	unlabeled := (*string)(nil)
	c.graph.RewireContinue(condID, unlabeled)
	c.graph.RewireBreak(exit, unlabeled)

	return entry, exit, condID, nil
}
