package playfair

// Shift directions for Transform.
const (
	EncryptShift = +1
	DecryptShift = -1
)

// Transform applies the Playfair positional rule to each consecutive
// non-overlapping digraph of the input.
//
// Rules:
//   - Same row: both letters shift one column in the given direction, wrapping
//   - Same column: both letters shift one row in the given direction, wrapping
//   - Rectangle: columns swap, rows stay (self-inverse, direction irrelevant)
//
// A digraph with a letter absent from the grid contributes nothing, as does
// a trailing unpaired letter. Transforming with DecryptShift exactly inverts
// a transform with EncryptShift over the same grid.
func Transform(digraphs []byte, grid Grid, direction int) []byte {
	out := make([]byte, 0, len(digraphs))
	for i := 0; i+1 < len(digraphs); i += 2 {
		a, b := digraphs[i], digraphs[i+1]

		colA, rowA, okA := grid.locate(a)
		colB, rowB, okB := grid.locate(b)
		if !okA || !okB {
			continue
		}

		switch {
		case rowA == rowB:
			out = append(out, grid.At(colA+direction, rowA), grid.At(colB+direction, rowB))
		case colA == colB:
			out = append(out, grid.At(colA, rowA+direction), grid.At(colB, rowB+direction))
		default:
			out = append(out, grid.At(colB, rowA), grid.At(colA, rowB))
		}
	}
	return out
}
