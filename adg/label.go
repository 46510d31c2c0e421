package adg

import "strconv"

// Label returns the display label for a node: its synthetic Name if set,
// else its AST node type, each suffixed with ":id", else its bare id.
func (g *ADG) Label(id NodeID) string {
	n := g.nodes[id]
	if n == nil {
		return strconv.Itoa(int(id))
	}
	switch {
	case n.Name != "":
		return n.Name + ":" + strconv.Itoa(int(id))
	case n.ASTRef != nil:
		return n.ASTRef.Type() + ":" + strconv.Itoa(int(id))
	default:
		return strconv.Itoa(int(id))
	}
}

// Labels returns the display label for every node, keyed by id.
func (g *ADG) Labels() map[NodeID]string {
	out := make(map[NodeID]string, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out[id] = g.Label(id)
	}
	return out
}
