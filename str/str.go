// Package str provides the string counterparts of the list helpers:
// splitting, regular-expression testing and replacement, and case
// conversion.
//
//	str.Split(",", "a,b,c")                    // ["a" "b" "c"]
//	str.Test(regexp.MustCompile(`^\d+$`), "42") // true
//	str.Capitalize("go forth")                  // "Go forth"
package str

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-rambda-utils/list"
)

// Split cuts s around every occurrence of sep.
func Split(sep, s string) []string {
	return strings.Split(s, sep)
}

// SplitEvery cuts s into chunks of n runes; the final chunk may be shorter.
// Returns list.ErrInvalidSliceLength when n < 1.
func SplitEvery(n int, s string) ([]string, error) {
	groups, err := list.SplitEvery(n, []rune(s))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	return out, nil
}

// Test reports whether re matches anywhere in s.
func Test(re *regexp.Regexp, s string) bool {
	return re.MatchString(s)
}

// Match returns every match of re in s. The result is empty, never nil,
// when there is no match.
func Match(re *regexp.Regexp, s string) []string {
	if found := re.FindAllString(s, -1); found != nil {
		return found
	}
	return []string{}
}

// Replace substitutes the first match of re in s. $1-style references in
// repl expand to submatches.
func Replace(re *regexp.Regexp, repl, s string) string {
	done := false
	return re.ReplaceAllStringFunc(s, func(m string) string {
		if done {
			return m
		}
		done = true
		out := []byte{}
		for _, sub := range re.FindAllStringSubmatchIndex(m, 1) {
			out = re.ExpandString(out, repl, m, sub)
		}
		return string(out)
	})
}

// ReplaceAll substitutes every match of re in s.
func ReplaceAll(re *regexp.Regexp, repl, s string) string {
	return re.ReplaceAllString(s, repl)
}

// ToUpper upper-cases s.
func ToUpper(s string) string { return strings.ToUpper(s) }

// ToLower lower-cases s.
func ToLower(s string) string { return strings.ToLower(s) }

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// Capitalize upper-cases the first rune of s, leaving the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	head := cases.Upper(language.Und).String(string(runes[0]))
	return head + string(runes[1:])
}

// Title title-cases every word of s using Unicode casing rules.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
