package fx

// Contract checks: the concrete effect types must keep satisfying the
// exported interfaces.
var (
	_ Disjoint[int, string]     = Right[string](0)
	_ Accumulating[int, string] = Valid[string](0)
	_ ValueProvider[int]        = Right[string](0)
	_ ValueProvider[int]        = Valid[string](0)
)
