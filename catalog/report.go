package catalog

import (
	"errors"
	"fmt"
	"io"
)

// ErrCourseNotFound is returned by CourseInfo for an unknown course number.
var ErrCourseNotFound = errors.New("course not found")

// PrereqInfo is one resolved prerequisite: the course number plus its
// title when the catalog knows the course.
type PrereqInfo struct {
	Number string
	Title  string
	Known  bool
}

// CourseReport is a course together with its prerequisites resolved
// against the same catalog.
type CourseReport struct {
	Course  *Course
	Prereqs []PrereqInfo
}

// CourseInfo looks up number and resolves each prerequisite with a
// second lookup against the same store. A prerequisite the catalog does
// not know resolves to Known=false, never an error.
func (c *Catalog) CourseInfo(number string) (*CourseReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := NormalizeCourseNumber(number)
	course := c.tree.Find(key)
	if course == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, key)
	}

	rep := &CourseReport{Course: course}
	for _, p := range course.Prerequisites {
		info := PrereqInfo{Number: p}
		if pc := c.tree.Find(p); pc != nil {
			info.Title = pc.Title
			info.Known = true
		}
		rep.Prereqs = append(rep.Prereqs, info)
	}
	return rep, nil
}

// Format writes the report in the advising layout: the course line, then
// one line per prerequisite with its title or an unknown marker.
func (r *CourseReport) Format(w io.Writer) {
	fmt.Fprintf(w, "Course: %s - %s\n", r.Course.Number, r.Course.Title)
	if len(r.Prereqs) == 0 {
		fmt.Fprintln(w, "Prerequisites: None")
		return
	}
	fmt.Fprintln(w, "Prerequisites:")
	for _, p := range r.Prereqs {
		if p.Known {
			fmt.Fprintf(w, "  - %s - %s\n", p.Number, p.Title)
		} else {
			fmt.Fprintf(w, "  - %s - (title unknown)\n", p.Number)
		}
	}
}

// WriteCourseList writes every course as "NUMBER: Title" in ascending
// course-number order.
func (c *Catalog) WriteCourseList(w io.Writer) {
	c.ForEach(func(course *Course) bool {
		fmt.Fprintf(w, "%s: %s\n", course.Number, course.Title)
		return true
	})
}
