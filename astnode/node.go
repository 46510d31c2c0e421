package astnode

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node wraps a *sitter.Node, exposing only the read-only view the lowering
// and extraction passes need: type, children, byte span, and field lookups.
type Node struct {
	raw *sitter.Node
}

// Wrap adapts a *sitter.Node. It returns nil if n is nil, so callers can
// chain ChildByFieldName/Parent lookups without nil-checking tree-sitter's
// type directly.
func Wrap(n *sitter.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{raw: n}
}

// Raw exposes the underlying tree-sitter node for callers (tests, the
// parser entry point) that need it directly.
func (n *Node) Raw() *sitter.Node {
	if n == nil {
		return nil
	}
	return n.raw
}

// Type returns the grammar node type, e.g. "for_statement".
func (n *Node) Type() string {
	if n == nil {
		return ""
	}
	return n.raw.Type()
}

// IsNamed reports whether this node corresponds to a named rule in the
// grammar, as opposed to an anonymous token such as "{" or ";".
func (n *Node) IsNamed() bool {
	return n != nil && n.raw.IsNamed()
}

// Start returns the inclusive start byte offset of the node's span.
func (n *Node) Start() int {
	if n == nil {
		return 0
	}
	return int(n.raw.StartByte())
}

// End returns the exclusive end byte offset of the node's span.
func (n *Node) End() int {
	if n == nil {
		return 0
	}
	return int(n.raw.EndByte())
}

// Text returns the UTF-8 source text spanned by the node.
func (n *Node) Text(source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.Start():n.End()])
}

// ChildCount returns the total number of children, named and anonymous.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return int(n.raw.ChildCount())
}

// Child returns the i-th child, named or anonymous.
func (n *Node) Child(i int) *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.raw.Child(i))
}

// Children returns all children in source order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	count := n.ChildCount()
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.Child(i))
	}
	return out
}

// NamedChildCount returns the number of named children.
func (n *Node) NamedChildCount() int {
	if n == nil {
		return 0
	}
	return int(n.raw.NamedChildCount())
}

// NamedChild returns the i-th named child.
func (n *Node) NamedChild(i int) *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.raw.NamedChild(i))
}

// NamedChildren returns all named children in source order.
func (n *Node) NamedChildren() []*Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// ChildByFieldName returns the child bound to the given grammar field, or
// nil if the field is absent on this node.
func (n *Node) ChildByFieldName(name string) *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.raw.ChildByFieldName(name))
}

// Parent returns the syntactic parent, or nil at the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.raw.Parent())
}
