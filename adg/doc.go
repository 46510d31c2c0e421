// Package adg implements the Any-Dependency Graph: a single directed
// multi-relation graph whose edges carry one or more of four semantic
// relations (syntax, control-flow, control-dependence, data-dependence)
// plus two structural markers (exit, back). Projecting onto a single
// relation yields the corresponding classical graph (AST, CFG, CDG, DDG).
//
// The graph store here is deliberately generic: it knows nothing about
// Java or tree-sitter. Statement lowering and variable extraction for Java
// live in package javalang, which builds ADGs using the API below.
package adg
