package javalang

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	javasitter "github.com/smacker/go-tree-sitter/java"

	"github.com/viant/adgraph/adg"
	"github.com/viant/adgraph/astnode"
)

// Parse is the library's primary entry point (§6): it invokes the
// tree-sitter Java grammar to obtain a root AST node, then drives
// ParseFromAST over it.
func Parse(source []byte, cfg Config) (*adg.ADG, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javasitter.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("javalang: failed to parse Java source: %w", err)
	}

	return ParseFromAST(astnode.Wrap(tree.RootNode()), source, cfg)
}

// ParseMethod parses source and lowers only the first method_declaration
// found in it (or, if there is none, the first constructor_declaration),
// with that method as the graph's root.
func ParseMethod(source []byte, cfg Config) (*adg.ADG, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javasitter.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("javalang: failed to parse Java source: %w", err)
	}

	root := astnode.Wrap(tree.RootNode())
	method := findNodeByType(root, "method_declaration")
	if method == nil {
		method = findNodeByType(root, "constructor_declaration")
	}
	if method == nil {
		return nil, fmt.Errorf("javalang: no method_declaration found in source")
	}
	return ParseFromAST(method, source, cfg)
}

// ParseFromAST runs lowering over an already-parsed AST root, wires
// pending returns at the root (covering program roots with no enclosing
// method_declaration), and then runs the data-dependence pass (§6).
func ParseFromAST(root *astnode.Node, source []byte, cfg Config) (*adg.ADG, error) {
	g := adg.New()
	c := newCtx(g, source, cfg)

	entry, exit, err := lower(c, root, noParent)
	if err != nil {
		return nil, err
	}
	g.WireReturns(exit)

	runDataDependence(g, source)

	_ = entry
	return g, nil
}

// findNodeByType returns the first node of the given type found by a
// depth-first search rooted at n, or nil if none exists.
func findNodeByType(n *astnode.Node, nodeType string) *astnode.Node {
	if n == nil {
		return nil
	}
	if n.Type() == nodeType {
		return n
	}
	for _, child := range n.Children() {
		if found := findNodeByType(child, nodeType); found != nil {
			return found
		}
	}
	return nil
}

// findNodesByType returns every node of the given type found by a
// depth-first search rooted at n, in source order.
func findNodesByType(n *astnode.Node, nodeType string) []*astnode.Node {
	var out []*astnode.Node
	if n == nil {
		return out
	}
	if n.Type() == nodeType {
		out = append(out, n)
	}
	for _, child := range n.Children() {
		out = append(out, findNodesByType(child, nodeType)...)
	}
	return out
}
