package playfair_test

import (
	"strings"
	"testing"

	"playfair-backend/playfair"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_KeyLettersFirst(t *testing.T) {
	grid := playfair.BuildGrid("PLAYFAIR", playfair.MergeJIntoI)

	assert.Equal(t, []string{"PLAYF", "IRBCD", "EGHKM", "NOQST", "UVWXZ"}, grid.Rows())
}

func TestBuildGrid_EmptyKeyUsesDefault(t *testing.T) {
	grid := playfair.BuildGrid("", playfair.MergeJIntoI)

	// Default key is KEYWORD
	assert.Equal(t, []string{"KEYWO", "RDABC", "FGHIL", "MNPQS", "TUVXZ"}, grid.Rows())
}

func TestBuildGrid_DropQ(t *testing.T) {
	grid := playfair.BuildGrid("PLAYFAIR", playfair.DropQ)

	assert.Equal(t, []string{"PLAYF", "IRBCD", "EGHJK", "MNOST", "UVWXZ"}, grid.Rows())
}

func TestBuildGrid_IgnoresNonLetters(t *testing.T) {
	plain := playfair.BuildGrid("PLAYFAIR", playfair.MergeJIntoI)
	noisy := playfair.BuildGrid("p-l@a y!f a1i r?", playfair.MergeJIntoI)

	assert.Equal(t, plain.Rows(), noisy.Rows())
}

func TestBuildGrid_CoversAlphabetOnce(t *testing.T) {
	keys := []string{"", "PLAYFAIR", "JAZZ QUIZ", "monarchy", "aaaaaaaaaaaaaaaaaaa", "The quick brown fox jumps over the lazy dog"}

	for _, mode := range []playfair.ReductionMode{playfair.MergeJIntoI, playfair.DropQ} {
		excluded := byte('J')
		if mode == playfair.DropQ {
			excluded = 'Q'
		}

		for _, key := range keys {
			letters := strings.Join(playfair.BuildGrid(key, mode).Rows(), "")
			require.Len(t, letters, 25, "key %q mode %v", key, mode)

			seen := map[byte]bool{}
			for i := 0; i < len(letters); i++ {
				assert.False(t, seen[letters[i]], "duplicate %c for key %q mode %v", letters[i], key, mode)
				seen[letters[i]] = true
			}

			for c := byte('A'); c <= 'Z'; c++ {
				if c == excluded {
					assert.False(t, seen[c], "excluded %c present for key %q mode %v", c, key, mode)
				} else {
					assert.True(t, seen[c], "missing %c for key %q mode %v", c, key, mode)
				}
			}
		}
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	first := playfair.BuildGrid("MONARCHY", playfair.DropQ)
	second := playfair.BuildGrid("MONARCHY", playfair.DropQ)

	assert.Equal(t, first.Rows(), second.Rows())
}

func TestGridAt_WrapsBothDirections(t *testing.T) {
	grid := playfair.BuildGrid("PLAYFAIR", playfair.MergeJIntoI)

	// First row is PLAYF
	assert.Equal(t, byte('P'), grid.At(5, 0))
	assert.Equal(t, byte('F'), grid.At(-1, 0))
	// First column is PIENU
	assert.Equal(t, byte('P'), grid.At(0, 5))
	assert.Equal(t, byte('U'), grid.At(0, -1))
}

func TestParseReductionMode(t *testing.T) {
	mode, err := playfair.ParseReductionMode("merge-j-into-i")
	require.NoError(t, err)
	assert.Equal(t, playfair.MergeJIntoI, mode)

	mode, err = playfair.ParseReductionMode("drop-q")
	require.NoError(t, err)
	assert.Equal(t, playfair.DropQ, mode)

	_, err = playfair.ParseReductionMode("rot13")
	require.Error(t, err)
}
