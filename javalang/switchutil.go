package javalang

import (
	"strings"

	"github.com/viant/adgraph/astnode"
)

// isSwitchLabel reports whether n is a `case`/`default` switch label node.
func isSwitchLabel(n *astnode.Node) bool {
	return n != nil && n.Type() == "switch_label"
}

// isDefaultLabel reports whether a switch_label node is the `default` arm,
// distinguished from `case` by its leading source text.
func isDefaultLabel(label *astnode.Node, source []byte) bool {
	if label == nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(label.Text(source)), "default")
}

// switchArmGroup splits a classic switch_block_statement_group or an
// arrow-form switch_rule into its leading switch_label(s) (the `case`/
// `default` tokens introducing the arm — only the first is kept as the
// arm's representative condition node, matching §4.2.6's single
// `case_condition` per arm) and the statement nodes that follow the
// labels and form the arm body.
func switchArmGroup(group *astnode.Node) (label *astnode.Node, body []*astnode.Node) {
	for _, child := range group.NamedChildren() {
		if isSwitchLabel(child) {
			if label == nil {
				label = child
			}
			continue
		}
		body = append(body, child)
	}
	return label, body
}

// switchArms returns every arm group (classic switch_block_statement_group
// or arrow-form switch_rule) found directly under a switch_block body, in
// source order.
func switchArms(switchBlock *astnode.Node) []*astnode.Node {
	var arms []*astnode.Node
	for _, child := range switchBlock.NamedChildren() {
		switch child.Type() {
		case "switch_block_statement_group", "switch_rule":
			arms = append(arms, child)
		}
	}
	return arms
}
