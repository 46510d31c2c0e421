package javalang

import (
	"github.com/viant/adgraph/adg"
)

// varTable is vt(N): variable name -> set of writer node ids that may
// reach N along some CFG path (§4.4).
type varTable map[string]map[adg.NodeID]bool

func cloneVarTable(vt varTable) varTable {
	out := make(varTable, len(vt))
	for name, writers := range vt {
		cp := make(map[adg.NodeID]bool, len(writers))
		for w := range writers {
			cp[w] = true
		}
		out[name] = cp
	}
	return out
}

func unionInto(dst, src varTable) {
	for name, writers := range src {
		cur, ok := dst[name]
		if !ok {
			cur = make(map[adg.NodeID]bool, len(writers))
			dst[name] = cur
		}
		for w := range writers {
			cur[w] = true
		}
	}
}

func varTableEqual(a, b varTable) bool {
	if len(a) != len(b) {
		return false
	}
	for name, writersA := range a {
		writersB, ok := b[name]
		if !ok || len(writersA) != len(writersB) {
			return false
		}
		for w := range writersA {
			if !writersB[w] {
				return false
			}
		}
	}
	return true
}

// killAndGen replaces vtIn[name] with {at} for each name the node writes,
// leaving every other entry untouched (§4.4's kill_and_gen).
func killAndGen(vtIn varTable, at adg.NodeID, writes []adg.Variable) varTable {
	out := cloneVarTable(vtIn)
	for _, w := range writes {
		out[w.Name] = map[adg.NodeID]bool{at: true}
	}
	return out
}

func cflowPredecessors(g *adg.ADG, n adg.NodeID) []adg.NodeID {
	var out []adg.NodeID
	for _, p := range g.Predecessors(n) {
		if g.EdgeHasRelation(p, n, adg.RelCFlow) {
			out = append(out, p)
		}
	}
	return out
}

func cflowSuccessors(g *adg.ADG, n adg.NodeID) []adg.NodeID {
	var out []adg.NodeID
	for _, s := range g.Successors(n) {
		if g.EdgeHasRelation(n, s, adg.RelCFlow) {
			out = append(out, s)
		}
	}
	return out
}

// hasSyntaxOutEdge reports whether n has any outgoing syntax edge, i.e.
// whether its AST subtree is further decomposed in the ADG.
func hasSyntaxOutEdge(g *adg.ADG, n adg.NodeID) bool {
	for _, s := range g.Successors(n) {
		if g.EdgeHasRelation(n, s, adg.RelSyntax) {
			return true
		}
	}
	return false
}

// runDataDependence implements §4.4 in full: it first extracts (reads,
// writes) on every syntactic-leaf statement node, then computes the
// reaching-definitions fixpoint over the CFG projection with an explicit
// worklist (§9: the reference implementation's recursive formulation is
// replaced here to avoid deep recursion on large CFGs), and finally emits
// DDG edges from every reaching writer to every matching read.
func runDataDependence(g *adg.ADG, source []byte) {
	for _, id := range g.NodeIDs() {
		node := g.Node(id)
		if node == nil || node.ASTRef == nil || hasSyntaxOutEdge(g, id) {
			continue
		}
		reads, writes := extractVariables(node.ASTRef, source)
		g.SetVariables(id, reads, writes)
	}

	entry := g.GetEntryNode()
	vtIn := make(map[adg.NodeID]varTable)
	vtOut := make(map[adg.NodeID]varTable)
	visited := make(map[adg.NodeID]bool)

	queue := []adg.NodeID{entry}
	queued := map[adg.NodeID]bool{entry: true}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queued[id] = false

		merged := varTable{}
		for _, pred := range cflowPredecessors(g, id) {
			unionInto(merged, vtOut[pred])
		}
		vtIn[id] = merged

		writes := []adg.Variable(nil)
		if node := g.Node(id); node != nil {
			writes = node.WriteVars
		}
		out := killAndGen(merged, id, writes)

		changed := !visited[id] || !varTableEqual(out, vtOut[id])
		visited[id] = true
		vtOut[id] = out

		if changed {
			for _, succ := range cflowSuccessors(g, id) {
				if !queued[succ] {
					queue = append(queue, succ)
					queued[succ] = true
				}
			}
		}
	}

	for _, id := range g.NodeIDs() {
		node := g.Node(id)
		if node == nil || len(node.ReadVars) == 0 {
			continue
		}
		in, ok := vtIn[id]
		if !ok {
			continue
		}
		for _, r := range node.ReadVars {
			for w := range in[r.Name] {
				g.AddDDGEdge(w, id, r.Name)
			}
		}
	}
}
