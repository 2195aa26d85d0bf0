package puzzle

import (
	"math/rand"
	"strings"

	"github.com/rivo/uniseg"
)

// Scramble holds the letters of a word-scramble level. Letters are grapheme
// clusters so accented or combined characters move as one tile.
type Scramble struct {
	letters []string
	rng     *rand.Rand
}

// NewScramble splits word into grapheme clusters in their catalog order.
func NewScramble(word string, rng *rand.Rand) *Scramble {
	var letters []string
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		letters = append(letters, g.Str())
	}
	return &Scramble{letters: letters, rng: rng}
}

// Letters returns the current arrangement.
func (s *Scramble) Letters() []string {
	out := make([]string, len(s.letters))
	copy(out, s.letters)
	return out
}

// String returns the arrangement as space-separated tiles.
func (s *Scramble) String() string {
	return strings.Join(s.letters, " ")
}

// Reshuffle permutes the letters with a Fisher-Yates shuffle.
func (s *Scramble) Reshuffle() {
	s.rng.Shuffle(len(s.letters), func(i, j int) {
		s.letters[i], s.letters[j] = s.letters[j], s.letters[i]
	})
}
