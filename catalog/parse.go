package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ErrMalformedRecord marks a record missing its course number or title.
var ErrMalformedRecord = errors.New("malformed record")

// ParseRecord turns one delimited record into a Course.
// Field layout: course number, title, then any number of prerequisite
// fields. A single prerequisite field may carry several tokens separated
// by whitespace, '|', ';' or ',' ("CSCI200 | MATH201").
func ParseRecord(fields []string) (*Course, error) {
	trimmed := make([]string, len(fields))
	for i, f := range fields {
		trimmed[i] = strings.TrimSpace(f)
	}
	if len(trimmed) < 2 {
		return nil, fmt.Errorf("%w: want course number and title, got %d field(s)", ErrMalformedRecord, len(trimmed))
	}
	if trimmed[0] == "" {
		return nil, fmt.Errorf("%w: empty course number", ErrMalformedRecord)
	}
	if trimmed[1] == "" {
		return nil, fmt.Errorf("%w: empty title", ErrMalformedRecord)
	}

	c := &Course{
		Number: NormalizeCourseNumber(trimmed[0]),
		Title:  trimmed[1],
	}

	var prereqs []string
	for _, f := range trimmed[2:] {
		for _, tok := range splitPrereqTokens(f) {
			prereqs = append(prereqs, NormalizeCourseNumber(tok))
		}
	}
	slices.Sort(prereqs)
	c.Prerequisites = slices.Compact(prereqs)
	return c, nil
}

func splitPrereqTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '|' || r == ';' || r == ','
	})
}
