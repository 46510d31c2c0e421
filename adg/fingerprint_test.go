package adg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_StableAcrossEquivalentBuilds(t *testing.T) {
	build := func() *ADG {
		g := New()
		a := g.AddNode("a")
		b := g.AddNode("b")
		g.AddEdge(a, b, RelCFlow, RelSyntax)
		g.AddDDGEdge(a, b, "x")
		return g
	}

	h1, err1 := build().Fingerprint()
	h2, err2 := build().Fingerprint()
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, h1, h2)
}

func TestFingerprint_DiffersOnStructuralChange(t *testing.T) {
	g1 := New()
	a := g1.AddNode("a")
	b := g1.AddNode("b")
	g1.AddEdge(a, b, RelCFlow)

	g2 := New()
	c := g2.AddNode("a")
	d := g2.AddNode("b")
	g2.AddEdge(c, d, RelCFlow, RelCDep)

	h1, _ := g1.Fingerprint()
	h2, _ := g2.Fingerprint()
	assert.NotEqual(t, h1, h2)
}

func TestFingerprint_ProjectionRoundTripIsStable(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, RelCFlow)

	cfg := g.ToCFG()
	h1, _ := cfg.Fingerprint()
	h2, _ := cfg.ToCFG().Fingerprint()
	assert.Equal(t, h1, h2)
}
