package adg

import (
	"sort"

	"github.com/viant/adgraph/astnode"
)

// AddNode allocates a fresh node id and attaches an optional synthetic
// name (e.g. "block-exit"). Ids are dense and monotonically increasing
// starting at 1 (invariant 1).
func (g *ADG) AddNode(name string) NodeID {
	g.nextID++
	id := g.nextID
	g.nodes[id] = &Node{ID: id, Name: name}
	g.edges[id] = make(map[NodeID]*edge)
	g.inEdges[id] = make(map[NodeID]*edge)
	return id
}

// AddASTNode allocates a node bound to an AST subtree, with an optional
// synthetic name alongside the AST reference.
func (g *ADG) AddASTNode(ref *astnode.Node, name string) NodeID {
	id := g.AddNode(name)
	g.nodes[id].ASTRef = ref
	return id
}

// Node returns the node record for id, or nil if unknown.
func (g *ADG) Node(id NodeID) *Node {
	return g.nodes[id]
}

// MarkVarDecl flags a node as a local_variable_declaration / formal_parameter leaf.
func (g *ADG) MarkVarDecl(id NodeID) {
	if n := g.nodes[id]; n != nil {
		n.VarDecl = true
	}
}

// SetVariables records the reads/writes computed for a leaf statement node.
func (g *ADG) SetVariables(id NodeID, reads, writes []Variable) {
	if n := g.nodes[id]; n != nil {
		n.ReadVars = reads
		n.WriteVars = writes
	}
}

// NodeIDs returns every node id currently in the graph, sorted ascending.
func (g *ADG) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddEdge adds an edge a->b carrying the given relations, or unions the
// relations into the existing edge if one is already present (idempotent,
// per §4.1's add_edge contract).
func (g *ADG) AddEdge(a, b NodeID, rels ...uint) {
	e, ok := g.edges[a][b]
	if !ok {
		e = newEdge(a, b)
		g.edges[a][b] = e
		g.inEdges[b][a] = e
	}
	for _, r := range rels {
		e.Flags.Set(r)
	}
}

// AddDDGEdge adds (or extends) a data-dependence edge carrying the given
// variable name; per invariant 7, two nodes share at most one DDG edge
// and its Vars set accumulates.
func (g *ADG) AddDDGEdge(from, to NodeID, varName string) {
	e, ok := g.edges[from][to]
	if !ok {
		e = newEdge(from, to)
		g.edges[from][to] = e
		g.inEdges[to][from] = e
	}
	e.Flags.Set(RelDDep)
	if e.Vars == nil {
		e.Vars = make(map[string]bool)
	}
	e.Vars[varName] = true
}

// HasEdge reports whether a has an edge to b carrying at least one relation.
func (g *ADG) HasEdge(a, b NodeID) bool {
	_, ok := g.edges[a][b]
	return ok
}

// EdgeVars returns the DDG variable set on the edge a->b, or nil.
func (g *ADG) EdgeVars(a, b NodeID) []string {
	e, ok := g.edges[a][b]
	if !ok || e.Vars == nil {
		return nil
	}
	out := make([]string, 0, len(e.Vars))
	for v := range e.Vars {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// EdgeHasRelation reports whether the edge a->b carries the given relation.
func (g *ADG) EdgeHasRelation(a, b NodeID, rel uint) bool {
	e, ok := g.edges[a][b]
	return ok && e.has(rel)
}

// Successors returns every node b such that there is an edge a->b.
func (g *ADG) Successors(a NodeID) []NodeID {
	return sortedKeys(g.edges[a])
}

// Predecessors returns every node a such that there is an edge a->b.
func (g *ADG) Predecessors(b NodeID) []NodeID {
	return sortedKeys(g.inEdges[b])
}

func sortedKeys(m map[NodeID]*edge) []NodeID {
	out := make([]NodeID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OutDegree is the number of distinct successors of n.
func (g *ADG) OutDegree(n NodeID) int {
	return len(g.edges[n])
}

// InDegree is the number of distinct predecessors of n.
func (g *ADG) InDegree(n NodeID) int {
	return len(g.inEdges[n])
}

// EdgeEndpoints is a single edge (a, b) for iteration, without its data.
type EdgeEndpoints struct {
	From, To NodeID
}

// Edges returns every edge currently in the graph, in deterministic order.
func (g *ADG) Edges() []EdgeEndpoints {
	var out []EdgeEndpoints
	for _, from := range g.NodeIDs() {
		for _, to := range g.Successors(from) {
			out = append(out, EdgeEndpoints{From: from, To: to})
		}
	}
	return out
}

// Isolates returns every node with both zero in-degree and zero out-degree.
func (g *ADG) Isolates() []NodeID {
	var out []NodeID
	for _, id := range g.NodeIDs() {
		if g.OutDegree(id) == 0 && g.InDegree(id) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// RemoveEdgesFrom deletes each of the given edges, if present.
func (g *ADG) RemoveEdgesFrom(edges []EdgeEndpoints) {
	for _, e := range edges {
		delete(g.edges[e.From], e.To)
		delete(g.inEdges[e.To], e.From)
	}
}

// RemoveNodesFrom deletes each of the given nodes along with any incident edges.
func (g *ADG) RemoveNodesFrom(ids []NodeID) {
	for _, id := range ids {
		for to := range g.edges[id] {
			delete(g.inEdges[to], id)
		}
		for from := range g.inEdges[id] {
			delete(g.edges[from], id)
		}
		delete(g.edges, id)
		delete(g.inEdges, id)
		delete(g.nodes, id)
	}
}

// Copy returns a deep copy of the ADG: nodes, edges (with their relation
// flags and DDG variable sets), and the pending-jump tables.
func (g *ADG) Copy() *ADG {
	out := New()
	out.nextID = g.nextID
	for id, n := range g.nodes {
		cp := *n
		cp.ReadVars = append([]Variable(nil), n.ReadVars...)
		cp.WriteVars = append([]Variable(nil), n.WriteVars...)
		out.nodes[id] = &cp
		out.edges[id] = make(map[NodeID]*edge)
		out.inEdges[id] = make(map[NodeID]*edge)
	}
	for from, succs := range g.edges {
		for to, e := range succs {
			c := e.clone()
			out.edges[from][to] = c
			out.inEdges[to][from] = c
		}
	}
	for id, label := range g.pendingContinue {
		out.pendingContinue[id] = label
	}
	for id, label := range g.pendingBreak {
		out.pendingBreak[id] = label
	}
	out.pendingReturn = append([]NodeID(nil), g.pendingReturn...)
	return out
}
