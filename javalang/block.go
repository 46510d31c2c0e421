package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerBlock implements §4.2.1 for "block", "program", and
// "constructor_body": a block_entry/block_exit pair chaining the cflow of
// its named, non-comment children; non-named children and comments attach
// as syntax-only leaves of block_entry.
func lowerBlock(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	entry := c.graph.AddASTNode(n, "block_entry")
	if parent != noParent {
		c.graph.AddEdge(parent, entry, adg.RelSyntax)
	}

	var entries, exits []adg.NodeID
	for _, child := range n.Children() {
		if !child.IsNamed() || child.Type() == "line_comment" || child.Type() == "block_comment" {
			leaf := c.graph.AddASTNode(child, "")
			c.graph.AddEdge(entry, leaf, adg.RelSyntax)
			continue
		}
		childEntry, childExit, err := lower(c, child, entry)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(entry, childEntry, adg.RelCDep)
		entries = append(entries, childEntry)
		exits = append(exits, childExit)
	}

	if len(entries) == 0 {
		return entry, entry, nil
	}

	exit := c.graph.AddASTNode(nil, "block_exit")
	c.graph.AddEdge(entry, entries[0], adg.RelCFlow)
	for i := 1; i < len(entries); i++ {
		c.graph.AddEdge(exits[i-1], entries[i], adg.RelCFlow)
	}
	c.graph.AddEdge(exits[len(exits)-1], exit, adg.RelCFlow)
	c.graph.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)
	return entry, exit, nil
}

// lowerStatementSeq chains an already-materialized slice of statement
// nodes the same way lowerBlock chains a block's children, without
// allocating its own block_entry/block_exit pair: callers (switch arms,
// catch clauses)
// supply the entry/exit nodes that already own this role. If stmts is
// empty, parent itself stands in for both entry and exit.
func lowerStatementSeq(c *ctx, parent adg.NodeID, stmts []*astnode.Node) (adg.NodeID, adg.NodeID, error) {
	var entries, exits []adg.NodeID
	for _, child := range stmts {
		if !child.IsNamed() || child.Type() == "line_comment" || child.Type() == "block_comment" {
			leaf := c.graph.AddASTNode(child, "")
			c.graph.AddEdge(parent, leaf, adg.RelSyntax)
			continue
		}
		childEntry, childExit, err := lower(c, child, parent)
		if err != nil {
			return 0, 0, err
		}
		c.graph.AddEdge(parent, childEntry, adg.RelCDep)
		entries = append(entries, childEntry)
		exits = append(exits, childExit)
	}

	if len(entries) == 0 {
		return parent, parent, nil
	}

	c.graph.AddEdge(parent, entries[0], adg.RelCFlow)
	for i := 1; i < len(entries); i++ {
		c.graph.AddEdge(exits[i-1], entries[i], adg.RelCFlow)
	}
	return entries[0], exits[len(exits)-1], nil
}
