package javalang

// Config holds the tunables of a lowering/analysis run.
type Config struct {
	// MaxRecursionDepth bounds the lowering recursion depth, guarding
	// against pathologically deep or malformed input where the reference
	// implementation instead raised a process stack limit. The
	// data-dependence pass runs on an explicit worklist and is not bounded
	// by it.
	MaxRecursionDepth int

	// StructuralCDG records that control-dependence edges are the ad hoc,
	// lowering-time ones of the reference implementation rather than a
	// post-dominator-based CDG. Lowering does not read it: the structural
	// CDG edges are built whatever its value.
	StructuralCDG bool
}

// DefaultConfig returns the standard configuration to pass to Parse,
// ParseMethod, or ParseFromAST.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 4096,
		StructuralCDG:     true,
	}
}
