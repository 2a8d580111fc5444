package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoadReplacesContents(t *testing.T) {
	cat := NewCatalog(nil)

	_, err := cat.Load(strings.NewReader("CSCI100,Intro\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = cat.Load(strings.NewReader("MATH201,Discrete Math\nMATH202,Calculus\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Nil(t, cat.Find("CSCI100"), "previous load should be discarded")
}

func TestCatalogFailedLoadLeavesEmpty(t *testing.T) {
	cat := NewCatalog(nil)

	_, err := cat.Load(strings.NewReader("CSCI100,Intro\n"))
	require.NoError(t, err)

	_, err = cat.Load(strings.NewReader("# nothing but comments\n"))
	assert.ErrorIs(t, err, ErrNoCourses)
	assert.Equal(t, 0, cat.Len())
	assert.Nil(t, cat.Find("CSCI100"))
}

func TestCatalogFindNormalizes(t *testing.T) {
	cat := NewCatalog(nil)
	_, err := cat.Load(strings.NewReader("CSCI100,Intro\n"))
	require.NoError(t, err)

	require.NotNil(t, cat.Find("  csci100  "))
	assert.Nil(t, cat.Find("csci999"))
}

func TestCourseInfoResolvesPrereqs(t *testing.T) {
	cat := NewCatalog(nil)
	_, err := cat.Load(strings.NewReader("X100,Intro Course\nX200,Second Course,X100,X999\n"))
	require.NoError(t, err)

	rep, err := cat.CourseInfo("x200")
	require.NoError(t, err)
	assert.Equal(t, "X200", rep.Course.Number)
	require.Len(t, rep.Prereqs, 2)

	assert.Equal(t, PrereqInfo{Number: "X100", Title: "Intro Course", Known: true}, rep.Prereqs[0])
	assert.Equal(t, PrereqInfo{Number: "X999", Known: false}, rep.Prereqs[1])
}

func TestCourseInfoNotFound(t *testing.T) {
	cat := NewCatalog(nil)
	_, err := cat.Load(strings.NewReader("X100,Intro Course\n"))
	require.NoError(t, err)

	_, err = cat.CourseInfo("X404")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseReportFormat(t *testing.T) {
	cat := NewCatalog(nil)
	_, err := cat.Load(strings.NewReader("X100,Intro Course\nX200,Second Course,X100,X999\n"))
	require.NoError(t, err)

	rep, err := cat.CourseInfo("X200")
	require.NoError(t, err)

	var buf strings.Builder
	rep.Format(&buf)
	assert.Equal(t,
		"Course: X200 - Second Course\n"+
			"Prerequisites:\n"+
			"  - X100 - Intro Course\n"+
			"  - X999 - (title unknown)\n",
		buf.String())

	rep, err = cat.CourseInfo("X100")
	require.NoError(t, err)
	buf.Reset()
	rep.Format(&buf)
	assert.Equal(t, "Course: X100 - Intro Course\nPrerequisites: None\n", buf.String())
}

func TestWriteCourseList(t *testing.T) {
	cat := NewCatalog(nil)
	_, err := cat.Load(strings.NewReader("MATH201,Discrete Math\nCSCI100,Intro\nCSCI200,Data Structures\n"))
	require.NoError(t, err)

	var buf strings.Builder
	cat.WriteCourseList(&buf)
	assert.Equal(t,
		"CSCI100: Intro\n"+
			"CSCI200: Data Structures\n"+
			"MATH201: Discrete Math\n",
		buf.String())
}
