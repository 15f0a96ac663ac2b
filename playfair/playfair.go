package playfair

// Process runs the full cipher pipeline: grid construction, text
// normalization, and digraph transformation. The result is an even-length
// (possibly empty) sequence of uppercase letters; presentation is the
// caller's concern.
//
// Decryption must use the key and reduction mode the ciphertext was
// encrypted with. A mismatch is not detected and produces garbage letters.
func Process(key, text string, mode ReductionMode, encrypt bool) []byte {
	grid := BuildGrid(key, mode)

	direction := EncryptShift
	if !encrypt {
		direction = DecryptShift
	}
	return Transform(Normalize(text, mode, encrypt), grid, direction)
}
