package regen

// Policy controls what a regeneration run is allowed to do.
// It is passed explicitly to every call.
type Policy struct {
	Force               bool // Rebuild every artifact
	ForceResources      bool // Rebuild resource artifacts only
	ContinueOnToolError bool // Report a failing generator and move on
	DryRun              bool // Print planned operations without running them
}

// ForceFor reports whether kind must be rebuilt regardless of timestamps.
func (p Policy) ForceFor(kind Kind) bool {
	return p.Force || (p.ForceResources && kind.Name == ResourceKindName)
}
