package adg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewireContinue_UnlabeledOnly(t *testing.T) {
	g := New()
	loop := g.AddNode("loop_update")
	other := g.AddNode("other_target")
	c1 := g.AddNode("continue1")
	c2 := g.AddNode("labeled_continue")

	g.AddEdge(c1, g.AddNode("dummy_successor"), RelCFlow)
	label := "outer"
	g.PushContinue(c1, nil)
	g.PushContinue(c2, &label)

	g.RewireContinue(loop, nil)

	assert.True(t, g.EdgeHasRelation(c1, loop, RelCFlow))
	assert.Equal(t, 1, g.OutDegree(c1))
	_, stillPending := g.pendingContinue[c2]
	assert.True(t, stillPending, "labeled continue must survive an unlabeled rewire")

	g.RewireContinue(other, &label)
	assert.True(t, g.EdgeHasRelation(c2, other, RelCFlow))
}

func TestRewireBreak_ReplacesAllCFlowOutEdges(t *testing.T) {
	g := New()
	exit := g.AddNode("for_exit")
	brk := g.AddNode("break")
	staleTarget := g.AddNode("stale")

	g.AddEdge(brk, staleTarget, RelCFlow)
	g.PushBreak(brk, nil)

	g.RewireBreak(exit, nil)

	assert.False(t, g.EdgeHasRelation(brk, staleTarget, RelCFlow))
	assert.True(t, g.EdgeHasRelation(brk, exit, RelCFlow))
	assert.Equal(t, 1, g.OutDegree(brk))
}

func TestWireReturns_DrainsPendingAndMarksExit(t *testing.T) {
	g := New()
	methodExit := g.AddNode("method_exit")
	ret1 := g.AddNode("return1")
	ret2 := g.AddNode("return2")

	g.PushReturn(ret1)
	g.PushReturn(ret2)

	g.WireReturns(methodExit)

	assert.True(t, g.EdgeHasRelation(ret1, methodExit, RelCFlow))
	assert.True(t, g.EdgeHasRelation(ret1, methodExit, RelExit))
	assert.True(t, g.EdgeHasRelation(ret2, methodExit, RelCFlow))

	g.PushReturn(g.AddNode("return3"))
	assert.Equal(t, 1, len(g.pendingReturn))
}
