package javalang

import (
	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// noParent marks the absence of a syntactic parent id: valid ids start at 1.
const noParent adg.NodeID = 0

// lower dispatches n to its specialized constructor by grammar node type,
// falling back to a default leaf for anything unrecognized (§7: not an
// error). Every constructor returns (entry, exit) and, when parent is not
// noParent, has already added a syntax edge parent -> entry.
func lower(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	if err := c.enter(); err != nil {
		return 0, 0, err
	}
	defer c.leave()

	switch n.Type() {
	case "block", "program", "constructor_body":
		return lowerBlock(c, n, parent)
	case "class_declaration", "interface_declaration", "enum_declaration":
		return lowerTypeDeclaration(c, n, parent)
	case "if_statement":
		return lowerIf(c, n, parent)
	case "for_statement":
		entry, exit, _, err := lowerFor(c, n, parent)
		return entry, exit, err
	case "enhanced_for_statement":
		entry, exit, _, err := lowerEnhancedFor(c, n, parent)
		return entry, exit, err
	case "while_statement":
		entry, exit, _, err := lowerWhile(c, n, parent)
		return entry, exit, err
	case "do_statement":
		entry, exit, _, err := lowerDoWhile(c, n, parent)
		return entry, exit, err
	case "switch_statement", "switch_expression":
		return lowerSwitch(c, n, parent)
	case "labeled_statement":
		return lowerLabeled(c, n, parent)
	case "continue_statement":
		return lowerContinue(c, n, parent)
	case "break_statement":
		return lowerBreak(c, n, parent)
	case "return_statement":
		return lowerReturn(c, n, parent)
	case "try_statement", "try_with_resources_statement":
		return lowerTry(c, n, parent)
	case "method_declaration", "constructor_declaration":
		return lowerMethod(c, n, parent)
	case "local_variable_declaration", "formal_parameter":
		return lowerVarDecl(c, n, parent)
	default:
		return lowerLeaf(c, n, parent)
	}
}

// lowerTypeDeclaration handles a class/interface/enum declaration by
// descending into its first contained method_declaration (or
// constructor_declaration, for a class with no methods), exactly mirroring
// the original's class_declaration case: "methods = filter_nodes(node,
// ['method_declaration']); return mk_adg(methods[0], adg, parent_adg_node,
// source)". No node is added for the declaration itself; the resolved
// method is lowered directly against parent. A declaration with no
// lowerable method (an empty interface, a marker annotation type) falls
// back to a plain leaf rather than an error, per §7.
func lowerTypeDeclaration(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	methods := findNodesByType(n, "method_declaration")
	if len(methods) == 0 {
		methods = findNodesByType(n, "constructor_declaration")
	}
	if len(methods) == 0 {
		return lowerLeaf(c, n, parent)
	}
	return lower(c, methods[0], parent)
}

// lowerLeaf is the default constructor for any AST node not matched by a
// specialized constructor (§4.2.11): a single node with a syntax edge to
// its parent.
func lowerLeaf(c *ctx, n *astnode.Node, parent adg.NodeID) (adg.NodeID, adg.NodeID, error) {
	id := c.graph.AddASTNode(n, "")
	if parent != noParent {
		c.graph.AddEdge(parent, id, adg.RelSyntax)
	}
	return id, id, nil
}
