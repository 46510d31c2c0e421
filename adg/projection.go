package adg

// GetEntryNode returns the program/method entry node, which by
// construction is always the first node allocated (invariant 1).
func (g *ADG) GetEntryNode() NodeID {
	return 1
}

// GetExitNode returns the unique node with zero cflow out-degree and
// positive cflow in-degree. Per invariant 3, a fully lowered method has
// exactly one such node; any other count is an error.
func (g *ADG) GetExitNode() (NodeID, error) {
	var candidates []NodeID
	for _, id := range g.NodeIDs() {
		hasCFlowOut := false
		for _, to := range g.Successors(id) {
			if g.EdgeHasRelation(id, to, RelCFlow) {
				hasCFlowOut = true
				break
			}
		}
		if hasCFlowOut {
			continue
		}
		hasCFlowIn := false
		for _, from := range g.Predecessors(id) {
			if g.EdgeHasRelation(from, id, RelCFlow) {
				hasCFlowIn = true
				break
			}
		}
		if hasCFlowIn {
			candidates = append(candidates, id)
		}
	}
	switch len(candidates) {
	case 0:
		return 0, ErrNoExitNode
	case 1:
		return candidates[0], nil
	default:
		return 0, ErrAmbiguousExitNode
	}
}

// project returns a deep copy of g containing only nodes that remain
// non-isolated once every edge not carrying rel has been dropped.
func (g *ADG) project(rel uint) *ADG {
	out := g.Copy()
	var drop []EdgeEndpoints
	for _, e := range out.Edges() {
		if !out.EdgeHasRelation(e.From, e.To, rel) {
			drop = append(drop, e)
		}
	}
	out.RemoveEdgesFrom(drop)
	out.RemoveNodesFrom(out.Isolates())
	return out
}

// ToAST projects the syntax relation, yielding the plain AST-child tree.
func (g *ADG) ToAST() *ADG { return g.project(RelSyntax) }

// ToCFG projects the control-flow relation.
func (g *ADG) ToCFG() *ADG { return g.project(RelCFlow) }

// ToCDG projects the control-dependence relation.
func (g *ADG) ToCDG() *ADG { return g.project(RelCDep) }

// ToDDG projects the data-dependence relation.
func (g *ADG) ToDDG() *ADG { return g.project(RelDDep) }
