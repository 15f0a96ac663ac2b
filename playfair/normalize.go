package playfair

// Normalize converts raw input into the digraph-ready letter sequence.
// Characters are uppercased, non-letters dropped, and the reduction mode
// applied, preserving order. For encryption the filtered letters are then
// regrouped so no digraph holds two equal letters: when a pair would, the
// pad letter is emitted after the first letter and the second letter starts
// the next pair. For decryption the letters are taken as given. Either way
// a trailing odd letter gets one pad appended, so the result has even
// length. Empty input yields an empty sequence.
func Normalize(text string, mode ReductionMode, forEncryption bool) []byte {
	letters := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := reduceLetter(text[i], mode)
		if c == 0 {
			continue
		}
		letters = append(letters, c)
	}

	if forEncryption {
		letters = separateDoubles(letters)
	}

	if len(letters)%2 == 1 {
		letters = append(letters, PadLetter)
	}
	return letters
}

// separateDoubles walks the letters pairwise, inserting the pad letter
// between equal adjacent letters. The second letter of a broken pair is
// reconsidered as the start of the next pair.
func separateDoubles(letters []byte) []byte {
	paired := make([]byte, 0, len(letters)+1)
	for i := 0; i < len(letters); {
		paired = append(paired, letters[i])
		if i+1 == len(letters) {
			break
		}
		if letters[i] == letters[i+1] {
			paired = append(paired, PadLetter)
			i++
			continue
		}
		paired = append(paired, letters[i+1])
		i += 2
	}
	return paired
}
