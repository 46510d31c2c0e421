package adg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNode_FirstIDIsOne(t *testing.T) {
	g := New()
	id := g.AddNode("block_entry")
	assert.Equal(t, NodeID(1), id)

	id2 := g.AddNode("block_exit")
	assert.Equal(t, NodeID(2), id2)
}

func TestAddEdge_UnionsFlagsIdempotently(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")

	g.AddEdge(a, b, RelSyntax)
	assert.True(t, g.EdgeHasRelation(a, b, RelSyntax))
	assert.False(t, g.EdgeHasRelation(a, b, RelCFlow))

	g.AddEdge(a, b, RelCFlow)
	assert.True(t, g.EdgeHasRelation(a, b, RelSyntax))
	assert.True(t, g.EdgeHasRelation(a, b, RelCFlow))

	assert.Equal(t, 1, g.OutDegree(a))
	assert.Equal(t, 1, g.InDegree(b))
}

func TestAddDDGEdge_AccumulatesVars(t *testing.T) {
	g := New()
	w := g.AddNode("writer")
	r := g.AddNode("reader")

	g.AddDDGEdge(w, r, "a")
	g.AddDDGEdge(w, r, "b")

	vars := g.EdgeVars(w, r)
	assert.ElementsMatch(t, []string{"a", "b"}, vars)
	assert.True(t, g.EdgeHasRelation(w, r, RelDDep))
}

func TestPredecessorsSuccessors(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, RelCFlow)
	g.AddEdge(a, c, RelCFlow)

	assert.ElementsMatch(t, []NodeID{b, c}, g.Successors(a))
	assert.ElementsMatch(t, []NodeID{a}, g.Predecessors(b))
}

func TestIsolates(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	iso := g.AddNode("iso")
	g.AddEdge(a, b, RelCFlow)

	assert.Equal(t, []NodeID{iso}, g.Isolates())
}

func TestRemoveNodesFrom(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, RelCFlow)

	g.RemoveNodesFrom([]NodeID{b})
	assert.Nil(t, g.Node(b))
	assert.Equal(t, 0, g.OutDegree(a))
}

func TestCopy_IsDeep(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, RelCFlow, RelCDep)

	cp := g.Copy()
	cp.RemoveNodesFrom([]NodeID{b})

	assert.NotNil(t, g.Node(b), "mutating the copy must not affect the original")
	assert.Equal(t, 1, g.OutDegree(a))
}
