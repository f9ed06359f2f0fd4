package starfield

// TransformStep is the depth distance between two consecutive table entries.
const TransformStep = 0.09

// Transform is a precomputed appearance for a star that has advanced a given
// number of steps toward the viewer. Scale and Opacity share one factor in
// [0, 2); values above 1 are left for the host to clamp or overshoot.
type Transform struct {
	Scale   float64
	Opacity float64
}

// TransformTable is an immutable ladder of transforms indexed by animation
// progress. Index 0 is the farthest sampled depth (factor 0), the last index
// the nearest. Stars reference entries by index, never by copy.
type TransformTable struct {
	entries []Transform
}

// BuildTransforms samples depths from depthMax down to just above zero by
// repeatedly subtracting TransformStep, and linearly maps each sample d to
// (1 - d/depthMax) * 2. The length follows that decrement loop: usually
// ceil(depthMax/TransformStep), but one more when depthMax/TransformStep is
// a whole number and float drift leaves a tiny positive remainder (depth 9
// gives 101 entries, the last with a factor just under 2). The table is
// empty for depthMax <= 0.
func BuildTransforms(depthMax int) TransformTable {
	if depthMax <= 0 {
		return TransformTable{}
	}
	dm := float64(depthMax)
	entries := make([]Transform, 0, int(dm/TransformStep)+1)
	for current := dm; current > 0; current -= TransformStep {
		f := (1 - current/dm) * 2
		entries = append(entries, Transform{Scale: f, Opacity: f})
	}
	return TransformTable{entries: entries}
}

// Len returns the number of entries.
func (t TransformTable) Len() int {
	return len(t.entries)
}

// Last returns the highest valid index, or -1 for an empty table.
func (t TransformTable) Last() int {
	return len(t.entries) - 1
}

// At returns the transform at index i. Panics if i is out of range.
func (t TransformTable) At(i int) Transform {
	return t.entries[i]
}

// Each calls fn for every entry in index order.
func (t TransformTable) Each(fn func(i int, tr Transform)) {
	for i, tr := range t.entries {
		fn(i, tr)
	}
}
