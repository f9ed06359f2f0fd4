package starfield

// Star is one particle of the pool. Stars are owned by a Simulator and
// mutated in place; the pool is never reallocated.
type Star struct {
	// X and Y are lateral offsets from the projection origin.
	X, Y int
	// Z is the depth. Strictly positive between Advance calls.
	Z float64
	// TransformIndex selects the star's appearance from the TransformTable.
	TransformIndex int
}
