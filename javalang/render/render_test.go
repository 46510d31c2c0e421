package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/adgraph/adg"
)

func TestRender_ListsEveryEdgeWithItsRelations(t *testing.T) {
	g := adg.New()
	entry := g.AddNode("block_entry")
	exit := g.AddNode("block_exit")
	g.AddEdge(entry, exit, adg.RelSyntax, adg.RelCDep, adg.RelExit)

	out := Render(g)
	assert.True(t, strings.Contains(out, "block_entry:1"))
	assert.True(t, strings.Contains(out, "block_exit:2"))
	assert.True(t, strings.Contains(out, "syntax"))
	assert.True(t, strings.Contains(out, "cdep"))
	assert.True(t, strings.Contains(out, "exit"))
}

func TestRender_IncludesDDGVars(t *testing.T) {
	g := adg.New()
	w := g.AddNode("writer")
	r := g.AddNode("reader")
	g.AddDDGEdge(w, r, "a")

	out := Render(g)
	assert.True(t, strings.Contains(out, "vars=a"))
}
