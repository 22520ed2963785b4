package location

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Match is the result of a successful lookup.
type Match struct {
	// Name is the table entry that matched.
	Name string
	// Token is the alias text as it appears in the line, without a plural "s".
	Token string
}

// Matcher recognises tracked locations in chat lines.
//
// All entries are compiled into one pattern of the form
//
//	^.*\b(alias1|alias2|...)s?(?:\b|$)
//
// matched case-insensitively with Unicode word boundaries. The greedy prefix
// backtracks from the end of the line, so the rightmost position where any
// alias matches wins; at that position the first entry in table order that
// completes the match is chosen.
type Matcher struct {
	re    *regexp2.Regexp
	names []string
}

const tokenGroup = "token"

var defaultMatcher = MustNewMatcher(DefaultTable)

// Default returns the matcher for DefaultTable.
func Default() *Matcher {
	return defaultMatcher
}

// NewMatcher compiles t into a Matcher.
func NewMatcher(t Table) (*Matcher, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	alts := make([]string, len(t.Entries))
	names := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		alts[i] = fmt.Sprintf("(?<%s>%s)", groupName(i), e.Pattern)
		names[i] = strings.TrimSpace(e.Name)
	}

	pattern := `^.*\b(?<` + tokenGroup + `>` + strings.Join(alts, "|") + `)s?(?:\b|$)`
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compile location pattern: %w", err)
	}

	return &Matcher{re: re, names: names}, nil
}

// MustNewMatcher is like NewMatcher but panics on an invalid table.
func MustNewMatcher(t Table) *Matcher {
	m, err := NewMatcher(t)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports the tracked location referenced by line, if any.
func (m *Matcher) Match(line string) (Match, bool) {
	found, err := m.re.FindStringMatch(line)
	if err != nil || found == nil {
		return Match{}, false
	}

	token := found.GroupByName(tokenGroup)
	if token == nil || len(token.Captures) == 0 {
		return Match{}, false
	}

	match := Match{Token: token.String()}
	for i, name := range m.names {
		if g := found.GroupByName(groupName(i)); g != nil && len(g.Captures) > 0 {
			match.Name = name
			break
		}
	}
	return match, true
}

// Len returns the number of entries the matcher was built from.
func (m *Matcher) Len() int {
	return len(m.names)
}

func groupName(i int) string {
	return fmt.Sprintf("loc%d", i)
}
