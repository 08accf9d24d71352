package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayID(t *testing.T) {
	assert.Equal(t, "STU_001", FormatDisplayID(StudentIDPrefix, 1))
	assert.Equal(t, "COURSE_042", FormatDisplayID(CourseIDPrefix, 42))
	assert.Equal(t, "ENROLL_1000", FormatDisplayID(EnrollmentIDPrefix, 1000))
}

func TestParseDisplayID(t *testing.T) {
	n, err := ParseDisplayID("STU_007")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ParseDisplayID("COURSE_123")
	assert.NoError(t, err)
	assert.Equal(t, 123, n)

	_, err = ParseDisplayID("nounderscore")
	assert.Error(t, err)

	_, err = ParseDisplayID("STU_abc")
	assert.Error(t, err)
}

func TestNextDisplayID(t *testing.T) {
	id, err := NextDisplayID(StudentIDPrefix, "")
	assert.NoError(t, err)
	assert.Equal(t, "STU_001", id)

	id, err = NextDisplayID(StudentIDPrefix, "STU_009")
	assert.NoError(t, err)
	assert.Equal(t, "STU_010", id)

	id, err = NextDisplayID(CourseIDPrefix, "COURSE_099")
	assert.NoError(t, err)
	assert.Equal(t, "COURSE_100", id)

	_, err = NextDisplayID(StudentIDPrefix, "garbage")
	assert.Error(t, err)
}

func TestNextDisplayIDRoundTrip(t *testing.T) {
	current := ""
	for i := 1; i <= 12; i++ {
		id, err := NextDisplayID(LessonIDPrefix, current)
		assert.NoError(t, err)
		n, err := ParseDisplayID(id)
		assert.NoError(t, err)
		assert.Equal(t, i, n)
		current = id
	}
}
