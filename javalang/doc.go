// Package javalang lowers a tree-sitter Java parse tree into an adg.ADG:
// statement lowering (§4.2), variable read/write extraction (§4.3), and the
// data-dependence fixpoint (§4.4). It knows the tree-sitter Java grammar's
// node-type vocabulary; adg itself stays language-agnostic.
package javalang
