package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// lowerVarDecl implements §4.2.11 for local_variable_declaration and
// formal_parameter: a single leaf node flagged var_decl.
func lowerVarDecl(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	id := c.graph.AddASTNode(n, "")
	if parent != noParent {
		c.graph.AddEdge(parent, id, adg.RelSyntax)
	}
	c.graph.MarkVarDecl(id)
	return id, id, nil
}
