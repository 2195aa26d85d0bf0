// Package assistant answers help-chat questions by looking up the closest
// example question in a fixed corpus.
package assistant

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/corpus.yaml
var defaultCorpus []byte

// Threshold is the similarity a corpus example must exceed to be used.
const Threshold = 0.2

// Example pairs a question with its answer.
type Example struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Category string `yaml:"category"`
}

// Corpus is the YAML document an Assistant is built from.
type Corpus struct {
	Fallback string    `yaml:"fallback"`
	Examples []Example `yaml:"examples"`
}

// Assistant is safe for concurrent use.
type Assistant struct {
	mu       sync.RWMutex
	fallback string
	examples []Example
}

// New builds an assistant from a corpus.
func New(c Corpus) *Assistant {
	return &Assistant{
		fallback: c.Fallback,
		examples: append([]Example(nil), c.Examples...),
	}
}

// Default returns an assistant over the embedded corpus.
func Default() (*Assistant, error) {
	return Parse(defaultCorpus)
}

// Parse builds an assistant from a YAML corpus document.
func Parse(data []byte) (*Assistant, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("assistant: parse corpus: %w", err)
	}
	if c.Fallback == "" {
		return nil, fmt.Errorf("assistant: corpus has no fallback reply")
	}
	return New(c), nil
}

// Reply returns the answer of the most similar example, or the fallback
// when nothing scores above Threshold. Ties keep the earlier example.
func (a *Assistant) Reply(input string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	q := words(input)
	best, bestScore := -1, 0.0
	for i, ex := range a.examples {
		score := similarity(q, words(ex.Input))
		if score > bestScore && score > Threshold {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return a.fallback
	}
	return a.examples[best].Output
}

// Learn adds an example.
func (a *Assistant) Learn(input, output, category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.examples = append(a.examples, Example{Input: input, Output: output, Category: category})
}

// Len returns the number of examples.
func (a *Assistant) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.examples)
}

// Categories returns the distinct categories in corpus order.
func (a *Assistant) Categories() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []string
	seen := make(map[string]bool)
	for _, ex := range a.examples {
		if !seen[ex.Category] {
			seen[ex.Category] = true
			out = append(out, ex.Category)
		}
	}
	return out
}

// words lower-cases s, splits it on whitespace and trims punctuation from
// each word, so "level?" and "level" match.
func words(s string) []string {
	fields := strings.Fields(cases.Lower(language.Und).String(s))
	for i, f := range fields {
		fields[i] = strings.TrimFunc(f, unicode.IsPunct)
	}
	return fields
}

// similarity counts words of q longer than two characters that also appear
// in ex, relative to the longer of the two word lists.
func similarity(q, ex []string) float64 {
	n := max(len(q), len(ex))
	if n == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(ex))
	for _, w := range ex {
		set[w] = struct{}{}
	}
	matches := 0
	for _, w := range q {
		if _, ok := set[w]; ok && len([]rune(w)) > 2 {
			matches++
		}
	}
	return float64(matches) / float64(n)
}
