package playfair

import (
	"strings"
)

const pairsPerLine = 26

// FormatDigraphs renders a letter sequence as space-separated two-letter
// pairs, starting a new line after every 26 pairs. A trailing unpaired
// letter is not rendered.
func FormatDigraphs(letters []byte) string {
	var b strings.Builder
	b.Grow(len(letters) + len(letters)/2)

	pairs := 0
	for i := 0; i+1 < len(letters); i += 2 {
		if pairs > 0 {
			if pairs%pairsPerLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(letters[i])
		b.WriteByte(letters[i+1])
		pairs++
	}
	return b.String()
}
