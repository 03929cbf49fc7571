package diag

// Ranger wraps the Range method.
type Ranger interface {
	// Range returns the byte range of the value in its source.
	Range() Ranging
}

// Ranging is a half-open range [From, To) of byte offsets within a source
// text. An empty range marks a position, like the place of a missing operand.
//
// Tokens and errors embed it to implement [Ranger].
type Ranging struct {
	From int
	To   int
}

// Range returns r itself.
func (r Ranging) Range() Ranging { return r }
