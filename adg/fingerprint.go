package adg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns a structural hash of the graph: every edge
// (from, to, relation flags, sorted ddep vars), rendered deterministically
// and hashed with HighwayHash. Two graphs built from the same source via
// independent Parse calls, or a graph and its own re-projection round
// trip, fingerprint identically.
func (g *ADG) Fingerprint() (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	var b strings.Builder
	for _, e := range g.Edges() {
		edg := g.edges[e.From][e.To]
		b.WriteString(strconv.Itoa(int(e.From)))
		b.WriteByte('>')
		b.WriteString(strconv.Itoa(int(e.To)))
		b.WriteByte(':')
		for rel := uint(0); rel <= RelBack; rel++ {
			if edg.Flags.Test(rel) {
				fmt.Fprintf(&b, "%d", rel)
			}
		}
		if vars := g.EdgeVars(e.From, e.To); len(vars) > 0 {
			b.WriteByte(':')
			b.WriteString(strings.Join(vars, ","))
		}
		b.WriteByte('\n')
	}
	if _, err := hash.Write([]byte(b.String())); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}
