package javalang

import (
	"strings"

	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// extractor accumulates the ordered write/read identifier lists for one
// statement subtree, per §4.3.
type extractor struct {
	source []byte
	writes []ident
	reads  []ident
}

// ident pairs an identifier AST node with an optional declared type,
// carried alongside so writes from different declaring constructs can
// stamp their own type text without a second lookup pass.
type ident struct {
	node     *astnode.Node
	typeText string
}

func (e *extractor) addWrite(n *astnode.Node, typeText string) {
	if n == nil {
		return
	}
	e.writes = append(e.writes, ident{node: n, typeText: typeText})
}

func (e *extractor) addRead(n *astnode.Node) {
	if n == nil {
		return
	}
	e.reads = append(e.reads, ident{node: n})
}

// extractVariables computes (reads, writes) for a statement subtree per
// §4.3, returning them as adg.Variable slices keyed by source text.
func extractVariables(n *astnode.Node, source []byte) (reads, writes []adg.Variable) {
	e := &extractor{source: source}
	e.walk(n)
	return toVariables(e.reads, source), toVariables(e.writes, source)
}

func toVariables(ids []ident, source []byte) []adg.Variable {
	if len(ids) == 0 {
		return nil
	}
	out := make([]adg.Variable, 0, len(ids))
	for _, id := range ids {
		out = append(out, adg.Variable{Name: id.node.Text(source), Type: id.typeText})
	}
	return out
}

// leftmostIdentifier returns the first identifier found by depth-first
// traversal that stops descending at a nested assignment_expression.
func leftmostIdentifier(n *astnode.Node) *astnode.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "identifier" {
		return n
	}
	if n.Type() == "assignment_expression" {
		return nil
	}
	for _, child := range n.NamedChildren() {
		if found := leftmostIdentifier(child); found != nil {
			return found
		}
	}
	return nil
}

var excludedIdentifierParents = map[string]bool{
	"labeled_statement":  true,
	"break_statement":    true,
	"continue_statement": true,
	"method_declaration": true,
	"class_declaration":  true,
}

func (e *extractor) walk(n *astnode.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "assignment_expression":
		e.walkAssignment(n)
	case "variable_declarator":
		e.walkVariableDeclarator(n)
	case "local_variable_declaration":
		for _, decl := range n.NamedChildren() {
			if decl.Type() == "variable_declarator" {
				e.walk(decl)
			}
		}
	case "update_expression":
		e.walkUpdateExpression(n)
	case "field_access":
		e.walk(n.ChildByFieldName("object"))
	case "method_invocation":
		e.walk(n.ChildByFieldName("object"))
		e.walk(n.ChildByFieldName("arguments"))
	case "object_creation_expression":
		e.walk(n.ChildByFieldName("arguments"))
	case "formal_parameter", "catch_formal_parameter", "resource":
		e.addWrite(n.ChildByFieldName("name"), typeFieldText(n, e.source))
	case "enhanced_for_statement":
		e.addWrite(n.ChildByFieldName("name"), typeFieldText(n, e.source))
		e.walk(n.ChildByFieldName("value"))
	case "class_declaration":
		e.walk(n.ChildByFieldName("body"))
	case "lambda_expression":
		// body is scoped out; contributes neither reads nor writes.
	case "identifier":
		if parent := n.Parent(); parent == nil || !excludedIdentifierParents[parent.Type()] {
			e.addRead(n)
		}
	default:
		for _, child := range n.NamedChildren() {
			e.walk(child)
		}
	}
}

func (e *extractor) walkAssignment(n *astnode.Node) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	e.walk(right)

	L := leftmostIdentifier(left)
	if left != nil && left.Type() != "identifier" {
		e.walk(left)
	}
	if L == nil {
		return
	}
	e.addWrite(L, "")

	op := ""
	if opNode := n.ChildByFieldName("operator"); opNode != nil {
		op = opNode.Text(e.source)
	}
	throughAccess := left != nil && left.Type() != "identifier"
	if op != "=" || throughAccess {
		e.addRead(L)
	}
}

func (e *extractor) walkVariableDeclarator(n *astnode.Node) {
	nameNode := n.ChildByFieldName("name")
	L := leftmostIdentifier(nameNode)
	typeText := ""
	if parent := n.Parent(); parent != nil {
		typeText = typeFieldText(parent, e.source)
	}
	e.addWrite(L, typeText)
	e.walk(n.ChildByFieldName("value"))
}

func (e *extractor) walkUpdateExpression(n *astnode.Node) {
	operand := n.ChildByFieldName("operand")
	if operand == nil && n.NamedChildCount() > 0 {
		operand = n.NamedChild(0)
	}
	L := leftmostIdentifier(operand)
	if L == nil {
		return
	}
	e.addWrite(L, "")
	e.addRead(L)
}

// typeFieldText returns the source text of n's "type" field, used as the
// declared type stamped on writes from formal_parameter,
// catch_formal_parameter, enhanced_for_statement, and
// local_variable_declaration.
func typeFieldText(n *astnode.Node, source []byte) string {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return ""
	}
	return strings.TrimSpace(typeNode.Text(source))
}
