// Package astnode provides a thin, read-only adapter over a tree-sitter
// parse tree: node type, ordered children, byte spans, and field-name
// lookups. It adds no behavior beyond what github.com/smacker/go-tree-sitter
// already exposes; the adapter exists so the rest of the module depends on
// a small, stable surface rather than on tree-sitter's Node type directly.
package astnode
