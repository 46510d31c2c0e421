package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/viant/adgraph/adg"
)

var relationNames = []struct {
	flag uint
	name string
}{
	{adg.RelSyntax, "syntax"},
	{adg.RelCFlow, "cflow"},
	{adg.RelCDep, "cdep"},
	{adg.RelDDep, "ddep"},
	{adg.RelExit, "exit"},
	{adg.RelBack, "back"},
}

// Render renders every edge of g as a table of space-aligned columns
// (from label, to label, relation set): a "from to relations" header row,
// then one row per edge in deterministic (from, to) order. The relation
// set is comma-separated and ends with "vars=..." on DDG edges.
func Render(g *adg.ADG) string {
	labels := g.Labels()

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "from\tto\trelations")
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", labels[e.From], labels[e.To], relationSet(g, e.From, e.To))
	}
	w.Flush()
	return buf.String()
}

func relationSet(g *adg.ADG, from, to adg.NodeID) string {
	var names []string
	for _, r := range relationNames {
		if g.EdgeHasRelation(from, to, r.flag) {
			names = append(names, r.name)
		}
	}
	if vars := g.EdgeVars(from, to); len(vars) > 0 {
		names = append(names, "vars="+strings.Join(vars, ","))
	}
	return strings.Join(names, ",")
}
