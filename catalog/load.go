package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrNoCourses is returned when a load finishes without a single valid record.
var ErrNoCourses = errors.New("no valid course records")

// LoadStats summarizes one ingestion pass.
type LoadStats struct {
	Added   int
	Skipped int
}

// LoadCourses reads delimited course records from r and inserts each
// parsed course into tree. Blank lines and '#' comments are skipped.
// Malformed records are logged at Warn with their line number and
// counted, never fatal; one bad line must not stop the load. Only an
// unreadable source or a load with zero valid records is an error.
func LoadCourses(r io.Reader, tree *AVLTree, log *slog.Logger) (LoadStats, error) {
	if log == nil {
		log = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var stats LoadStats
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return stats, fmt.Errorf("read course data: %w", err)
			}
			log.Warn("unreadable line", "line", pe.Line, "err", pe.Err)
			stats.Skipped++
			continue
		}
		line, _ := cr.FieldPos(0)

		course, err := ParseRecord(record)
		if err != nil {
			log.Warn("skipping record", "line", line, "err", err)
			stats.Skipped++
			continue
		}
		tree.Insert(course.Number, course)
		stats.Added++
	}

	if stats.Added == 0 {
		return stats, ErrNoCourses
	}
	return stats, nil
}

// LoadCoursesFile opens path and loads it with LoadCourses.
func LoadCoursesFile(path string, tree *AVLTree, log *slog.Logger) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("%s: could not open course data, %w", path, err)
	}
	defer f.Close()

	stats, err := LoadCourses(f, tree, log)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}
