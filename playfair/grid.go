// Package playfair implements the classical Playfair digraph substitution cipher
package playfair

import (
	"fmt"
)

const (
	gridSize   = 5
	gridCells  = gridSize * gridSize
	defaultKey = "KEYWORD"
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// PadLetter separates equal letters inside a digraph and completes a
	// trailing odd pair. It survives decryption as a literal letter;
	// stripping it is up to the caller.
	PadLetter = 'X'
)

// ReductionMode selects how the 26-letter alphabet is reduced to the 25
// letters a 5x5 grid can hold. The same mode must be used when encrypting
// and when decrypting the resulting ciphertext.
type ReductionMode int

const (
	// MergeJIntoI rewrites every J to I; Q stays in the alphabet.
	MergeJIntoI ReductionMode = iota
	// DropQ discards every Q; J stays in the alphabet.
	DropQ
)

// ParseReductionMode converts the wire representation of a reduction mode.
func ParseReductionMode(s string) (ReductionMode, error) {
	switch s {
	case "merge-j-into-i":
		return MergeJIntoI, nil
	case "drop-q":
		return DropQ, nil
	}
	return MergeJIntoI, fmt.Errorf("unknown reduction mode: %q", s)
}

func (m ReductionMode) String() string {
	if m == DropQ {
		return "drop-q"
	}
	return "merge-j-into-i"
}

// reduceLetter uppercases c and applies the reduction mode, returning 0 for
// characters that do not survive.
func reduceLetter(c byte, mode ReductionMode) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0
	}
	if mode == MergeJIntoI && c == 'J' {
		return 'I'
	}
	if mode == DropQ && c == 'Q' {
		return 0
	}
	return c
}

// Grid is an immutable 5x5 key square together with a letter position index
// for constant-time lookups.
type Grid struct {
	cells [gridSize][gridSize]byte
	pos   [26]int8
}

// BuildGrid derives the key square from a key string. An empty key falls
// back to the default key. Only letters matter; the key letters are kept in
// first-seen order, followed by the rest of the reduced alphabet, filled
// row by row. The result always covers all 25 permitted letters exactly once.
func BuildGrid(key string, mode ReductionMode) Grid {
	if key == "" {
		key = defaultKey
	}
	stream := key + alphabet

	var g Grid
	for i := range g.pos {
		g.pos[i] = -1
	}

	filled := 0
	for i := 0; i < len(stream) && filled < gridCells; i++ {
		c := reduceLetter(stream[i], mode)
		if c == 0 || g.pos[c-'A'] >= 0 {
			continue
		}
		g.pos[c-'A'] = int8(filled)
		g.cells[filled/gridSize][filled%gridSize] = c
		filled++
	}
	return g
}

// At returns the letter at the given coordinates, wrapping both indices
// modulo the grid size so that -1 maps to 4 and 5 maps to 0.
func (g Grid) At(col, row int) byte {
	col = ((col % gridSize) + gridSize) % gridSize
	row = ((row % gridSize) + gridSize) % gridSize
	return g.cells[row][col]
}

// Rows returns the five grid rows top to bottom, for display.
func (g Grid) Rows() []string {
	rows := make([]string, gridSize)
	for r := 0; r < gridSize; r++ {
		rows[r] = string(g.cells[r][:])
	}
	return rows
}

func (g Grid) locate(c byte) (col, row int, ok bool) {
	if c < 'A' || c > 'Z' {
		return 0, 0, false
	}
	p := g.pos[c-'A']
	if p < 0 {
		return 0, 0, false
	}
	return int(p) % gridSize, int(p) / gridSize, true
}
