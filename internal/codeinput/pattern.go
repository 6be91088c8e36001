package codeinput

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern gates single characters and whole pastes. A candidate is accepted
// only when the expression matches it from start to end.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// CompilePattern compiles expr. A blank expression yields a nil Pattern,
// which accepts everything.
func CompilePattern(expr string) (*Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return &Pattern{source: expr, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Accepts reports whether s passes the pattern. Match errors count as a
// rejection.
func (p *Pattern) Accepts(s string) bool {
	if p == nil || p.re == nil {
		return true
	}
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}
