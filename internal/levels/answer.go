package levels

import (
	"fmt"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAnswer prepares raw player input for a level predicate:
// surrounding whitespace is trimmed, then the text is lower-cased.
func NormalizeAnswer(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// answerEnv is the environment visible to answer expressions.
type answerEnv struct {
	Answer string `expr:"answer"`
}

// Checker is a pure answer predicate built from catalog data: a list of
// accepted answers, an expr-lang boolean expression over `answer`, or both.
// An answer is accepted when either matches.
type Checker struct {
	answers    []string
	expression string
	program    *vm.Program
}

// NewChecker compiles a predicate. Answers are normalized up front so that
// catalog authors can write them in any case.
func NewChecker(answers []string, expression string) (*Checker, error) {
	if len(answers) == 0 && expression == "" {
		return nil, nil
	}

	c := &Checker{expression: expression}
	for _, a := range answers {
		if n := NormalizeAnswer(a); n != "" {
			c.answers = append(c.answers, n)
		}
	}

	if expression != "" {
		program, err := expr.Compile(expression, expr.Env(answerEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling answer expression %q: %w", expression, err)
		}
		c.program = program
	}

	if len(c.answers) == 0 && c.program == nil {
		return nil, nil
	}
	return c, nil
}

// Match reports whether the normalized answer satisfies the predicate.
// Evaluation errors count as a mismatch.
func (c *Checker) Match(normalized string) bool {
	if c == nil {
		return false
	}
	if slices.Contains(c.answers, normalized) {
		return true
	}
	if c.program == nil {
		return false
	}
	out, err := expr.Run(c.program, answerEnv{Answer: normalized})
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}
