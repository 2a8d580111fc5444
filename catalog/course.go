package catalog

import "strings"

// Course is a single catalog record: a course number, its display title,
// and the normalized numbers of its prerequisite courses.
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// NormalizeCourseNumber trims surrounding whitespace and upper-cases a
// course number so lookups and tree ordering agree on one representation.
func NormalizeCourseNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
