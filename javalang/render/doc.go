// Package render renders an adg.ADG as the textual edge table described
// in §6: one row per edge with aligned from-label, to-label and
// relation-set columns, with labels preferring name:id, else ast.type:id,
// else id.
package render
