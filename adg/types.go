package adg

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/viant/adgraph/astnode"
)

// NodeID is a dense, monotonically allocated node identifier. The first
// node allocated in an ADG is always id 1 (GetEntryNode's contract).
type NodeID int

// Relation bit positions within an edge's flag bitset. An edge may satisfy
// several relations at once (e.g. the edge from an if-statement header to
// its condition is both "syntax" and "cflow" and "cdep").
const (
	RelSyntax uint = iota
	RelCFlow
	RelCDep
	RelDDep
	RelExit
	RelBack
)

// Variable identifies a Java variable by source text alone (no scope
// resolution, per the data model's variable-identity design note): two
// same-named variables in disjoint scopes are deliberately conflated.
type Variable struct {
	Name string
	Type string // empty for reads; derived from the declaring site for writes
}

// Node is an ADG vertex: either a lowered AST subtree (ASTRef set) or a
// synthetic control point (block-exit, loop-exit, method-exit, ...).
type Node struct {
	ID NodeID

	// Name is the synthetic label assigned at construction time (e.g.
	// "for_exit", "method_exit"); empty for plain AST-backed nodes whose
	// label is derived from ASTRef's node type instead.
	Name string

	// ASTRef is the AST subtree this node was lowered from, if any.
	ASTRef *astnode.Node

	// VarDecl marks a local_variable_declaration / formal_parameter leaf.
	VarDecl bool

	// ReadVars and WriteVars are populated by the data-dependence pass
	// (§4.4) for leaf statement nodes only: nodes with an AST reference
	// and no outgoing syntax edges.
	ReadVars  []Variable
	WriteVars []Variable
}

// edge is the internal representation of a multi-relation ADG edge.
type edge struct {
	From, To NodeID
	Flags    *bitset.BitSet
	// Vars holds the DDG variable names a ddep edge carries. Non-nil only
	// when Flags.Test(RelDDep) is true.
	Vars map[string]bool
}

func newEdge(from, to NodeID) *edge {
	return &edge{From: from, To: to, Flags: bitset.New(0)}
}

func (e *edge) has(rel uint) bool {
	return e.Flags.Test(rel)
}

func (e *edge) clone() *edge {
	c := &edge{From: e.From, To: e.To, Flags: e.Flags.Clone()}
	if e.Vars != nil {
		c.Vars = make(map[string]bool, len(e.Vars))
		for v := range e.Vars {
			c.Vars[v] = true
		}
	}
	return c
}

// ADG is the Any-Dependency Graph container: a dense-id multi-relation
// graph plus the pending-jump side tables used while lowering (§3, §4.1).
type ADG struct {
	nodes    map[NodeID]*Node
	nextID   NodeID
	edges    map[NodeID]map[NodeID]*edge // adjacency: from -> to -> edge
	inEdges  map[NodeID]map[NodeID]*edge // reverse adjacency: to -> from -> edge
	pendingContinue map[NodeID]*string // node -> optional label
	pendingBreak    map[NodeID]*string
	pendingReturn   []NodeID
}

// New returns an empty ADG ready for lowering.
func New() *ADG {
	return &ADG{
		nodes:           make(map[NodeID]*Node),
		edges:           make(map[NodeID]map[NodeID]*edge),
		inEdges:         make(map[NodeID]map[NodeID]*edge),
		pendingContinue: make(map[NodeID]*string),
		pendingBreak:    make(map[NodeID]*string),
	}
}
