// Package pagerange parses user page range specifications such as "1-3, 5, 9-10".
//
// Page numbers in specifications are 1-based and inclusive. Parsed selections are
// returned as zero-based page indices in the order the user wrote them: ranges
// expand ascending, and tokens are neither sorted nor deduplicated, so "3,1-2"
// selects pages 3, 1, 2 in that order.
package pagerange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benedoc-inc/pdfsplit/types"
)

// Token is one comma-separated element of a range specification.
// A single page has Start == End.
type Token struct {
	Raw   string // Token text with surrounding whitespace removed
	Start int    // First page number (1-based)
	End   int    // Last page number (1-based, inclusive)
}

// String returns the normalized form of the token ("5" or "5-7")
func (t Token) String() string {
	if t.Start == t.End && !strings.Contains(t.Raw, "-") {
		return strconv.Itoa(t.Start)
	}
	return fmt.Sprintf("%d-%d", t.Start, t.End)
}

// Len returns the number of pages the token selects
func (t Token) Len() int {
	return t.End - t.Start + 1
}

// Pages returns the zero-based page indices selected by the token, ascending
func (t Token) Pages() []int {
	pages := make([]int, 0, t.Len())
	for p := t.Start; p <= t.End; p++ {
		pages = append(pages, p-1)
	}
	return pages
}

// Check verifies that every page of the token exists in a document of totalPages pages
func (t Token) Check(totalPages int) error {
	if t.Start < 1 || t.End > totalPages {
		return types.PageOutOfRange(t.Raw, totalPages)
	}
	return nil
}

// Split splits a specification on commas and trims each group.
// Empty groups are kept so callers can number groups by position.
func Split(spec string) []string {
	groups := strings.Split(spec, ",")
	for i, g := range groups {
		groups[i] = strings.TrimSpace(g)
	}
	return groups
}

// ParseToken parses a single comma-free token without checking page bounds
func ParseToken(raw string) (Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Token{}, types.EmptySpecification()
	}

	if startStr, endStr, isRange := strings.Cut(raw, "-"); isRange {
		start, ok := parsePageNumber(startStr)
		if !ok {
			return Token{}, types.InvalidRangeToken(raw, "range start is not a page number")
		}
		end, ok := parsePageNumber(endStr)
		if !ok {
			return Token{}, types.InvalidRangeToken(raw, "range end is not a page number")
		}
		if start < 1 {
			return Token{}, types.InvalidRangeToken(raw, "pages are numbered from 1")
		}
		if start > end {
			return Token{}, types.InvalidRangeToken(raw, "range start is after range end")
		}
		return Token{Raw: raw, Start: start, End: end}, nil
	}

	n, ok := parsePageNumber(raw)
	if !ok {
		return Token{}, types.InvalidRangeToken(raw, "not a page number")
	}
	if n < 1 {
		return Token{}, types.InvalidRangeToken(raw, "pages are numbered from 1")
	}
	return Token{Raw: raw, Start: n, End: n}, nil
}

// parsePageNumber accepts decimal digits only; signs, spaces inside the
// number and anything else are rejected. Numbers too large for an int
// become math.MaxInt so that bounds checking reports them as out of range.
func parsePageNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tokenize parses every token of spec without checking page bounds.
// Empty groups between commas are ignored; a spec with no tokens at all
// fails with EMPTY_SPECIFICATION.
func Tokenize(spec string) ([]Token, error) {
	var tokens []Token
	for _, group := range Split(spec) {
		if group == "" {
			continue
		}
		tok, err := ParseToken(group)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, types.EmptySpecification()
	}
	return tokens, nil
}

// Parse parses spec against a document of totalPages pages and returns the
// selected zero-based page indices. The parse is atomic: the first malformed
// or out-of-bounds token fails the whole call and no selection is returned.
func Parse(spec string, totalPages int) ([]int, error) {
	var pages []int
	seen := 0
	for _, group := range Split(spec) {
		if group == "" {
			continue
		}
		seen++
		tok, err := ParseToken(group)
		if err != nil {
			return nil, err
		}
		if err := tok.Check(totalPages); err != nil {
			return nil, err
		}
		pages = append(pages, tok.Pages()...)
	}
	if seen == 0 {
		return nil, types.EmptySpecification()
	}
	return pages, nil
}

// ParseGroup parses one comma-free group against a document of totalPages
// pages. It applies the same rules as Parse to that group alone.
func ParseGroup(group string, totalPages int) (Token, []int, error) {
	if strings.Contains(group, ",") {
		return Token{}, nil, types.InvalidRangeToken(strings.TrimSpace(group), "a group cannot contain commas")
	}
	tok, err := ParseToken(group)
	if err != nil {
		return Token{}, nil, err
	}
	if err := tok.Check(totalPages); err != nil {
		return Token{}, nil, err
	}
	return tok, tok.Pages(), nil
}

// Format renders zero-based page indices as a 1-based specification,
// collapsing ascending runs into ranges. Order is preserved, so
// Parse(Format(p), n) returns p for any valid selection p.
func Format(pages []int) string {
	var b strings.Builder
	for i := 0; i < len(pages); {
		j := i
		for j+1 < len(pages) && pages[j+1] == pages[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		if j == i {
			b.WriteString(strconv.Itoa(pages[i] + 1))
		} else {
			fmt.Fprintf(&b, "%d-%d", pages[i]+1, pages[j]+1)
		}
		i = j + 1
	}
	return b.String()
}
