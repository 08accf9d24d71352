package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Display-ID prefixes, one per collection.
const (
	StudentIDPrefix    = "STU"
	InstructorIDPrefix = "INST"
	CourseIDPrefix     = "COURSE"
	LessonIDPrefix     = "LESSON"
	AssignmentIDPrefix = "ASSIGN"
	EnrollmentIDPrefix = "ENROLL"
	SubmissionIDPrefix = "SUB"
)

// FormatDisplayID renders a display ID as PREFIX_nnn, zero-padded to three
// digits.
func FormatDisplayID(prefix string, n int) string {
	return fmt.Sprintf("%s_%03d", prefix, n)
}

// ParseDisplayID extracts the numeric suffix of a display ID.
func ParseDisplayID(id string) (int, error) {
	idx := strings.LastIndex(id, "_")
	if idx < 0 {
		return 0, fmt.Errorf("malformed display ID %q", id)
	}
	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed display ID %q: %w", id, err)
	}
	return n, nil
}

// NextDisplayID increments the numeric suffix of the current maximum display
// ID of a collection. An empty current ID starts the sequence at 1. This
// read-then-write allocation is not atomic: concurrent creators can mint the
// same ID and the unique index rejects the loser with a duplicate-key error.
func NextDisplayID(prefix, current string) (string, error) {
	if current == "" {
		return FormatDisplayID(prefix, 1), nil
	}
	n, err := ParseDisplayID(current)
	if err != nil {
		return "", err
	}
	return FormatDisplayID(prefix, n+1), nil
}
