package service

import (
	"math/rand"
	"strings"
	"testing"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUsers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	users := buildUsers(20, rng)
	require.Len(t, users, 20)

	var instructors, students int
	for _, u := range users {
		switch u.Role {
		case model.RoleInstructor:
			instructors++
			assert.True(t, strings.HasPrefix(u.UserID, "INST_"), u.UserID)
		case model.RoleStudent:
			students++
			assert.True(t, strings.HasPrefix(u.UserID, "STU_"), u.UserID)
		default:
			t.Fatalf("unexpected role %q", u.Role)
		}
		assert.Empty(t, schema.ValidateUser(&u))
		assert.True(t, u.IsActive)
	}
	assert.Equal(t, 5, instructors)
	assert.Equal(t, 15, students)

	seen := make(map[string]bool)
	for _, u := range users {
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestBuildCoursesReferenceInstructors(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	users := buildUsers(20, rng)

	var instructors []model.User
	for _, u := range users {
		if u.Role == model.RoleInstructor {
			instructors = append(instructors, u)
		}
	}

	courses := buildCourses(8, instructors, rng)
	require.Len(t, courses, 8)

	known := make(map[string]bool)
	for _, inst := range instructors {
		known[inst.UserID] = true
	}
	for _, c := range courses {
		assert.True(t, known[c.InstructorID], "course %s references unknown instructor %s", c.CourseID, c.InstructorID)
		assert.Empty(t, schema.ValidateCourse(&c))
		for _, tag := range c.Tags {
			assert.Equal(t, strings.ToLower(tag), tag)
			assert.Greater(t, len(tag), 3)
		}
	}
}

func TestBuildCoursesCappedByTitles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	instructors := buildUsers(8, rng)[:2]
	courses := buildCourses(100, instructors, rng)
	assert.Len(t, courses, len(courseTitles))
}

func TestBuildEnrollmentsDistinctPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	users := buildUsers(20, rng)

	var students []model.User
	var instructors []model.User
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students = append(students, u)
		} else {
			instructors = append(instructors, u)
		}
	}
	courses := buildCourses(8, instructors, rng)

	enrollments := buildEnrollments(15, students, courses, rng)
	assert.LessOrEqual(t, len(enrollments), 15)

	seen := make(map[[2]string]bool)
	for _, e := range enrollments {
		key := [2]string{e.StudentID, e.CourseID}
		assert.False(t, seen[key], "duplicate pair %v", key)
		seen[key] = true
		assert.Empty(t, schema.ValidateEnrollment(&e))
	}
}

func TestBuildEnrollmentsExhaustsPairSpace(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	users := buildUsers(8, rng)

	var students []model.User
	var instructors []model.User
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students = append(students, u)
		} else {
			instructors = append(instructors, u)
		}
	}
	students = students[:2]
	courses := buildCourses(2, instructors, rng)

	// Only 4 distinct pairs exist, so most of the 50 slots get skipped.
	enrollments := buildEnrollments(50, students, courses, rng)
	assert.LessOrEqual(t, len(enrollments), 50)

	seen := make(map[[2]string]bool)
	for _, e := range enrollments {
		key := [2]string{e.StudentID, e.CourseID}
		assert.False(t, seen[key])
		seen[key] = true
	}
	assert.LessOrEqual(t, len(seen), 4)
}

func TestBuildSubmissionsMatchEnrollments(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	users := buildUsers(20, rng)

	var students []model.User
	var instructors []model.User
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students = append(students, u)
		} else {
			instructors = append(instructors, u)
		}
	}
	courses := buildCourses(8, instructors, rng)
	assignments := buildAssignments(10, courses, rng)
	enrollments := buildEnrollments(15, students, courses, rng)

	assignmentCourse := make(map[string]string)
	for _, a := range assignments {
		assignmentCourse[a.CourseID] = a.CourseID
	}
	byAssignment := make(map[string]model.Assignment)
	for _, a := range assignments {
		byAssignment[a.AssignmentID] = a
	}
	enrolled := make(map[[2]string]bool)
	for _, e := range enrollments {
		enrolled[[2]string{e.StudentID, e.CourseID}] = true
	}

	submissions := buildSubmissions(12, assignments, enrollments, rng)
	for _, s := range submissions {
		a, ok := byAssignment[s.AssignmentID]
		require.True(t, ok, "submission %s references unknown assignment", s.SubmissionID)
		assert.True(t, enrolled[[2]string{s.StudentID, a.CourseID}],
			"student %s submitted to %s without an enrollment in %s", s.StudentID, s.AssignmentID, a.CourseID)
		assert.Empty(t, schema.ValidateSubmission(&s))
	}
}

func TestBuildLessonsOrderRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	instructors := buildUsers(8, rng)[:2]
	courses := buildCourses(4, instructors, rng)

	lessons := buildLessons(25, courses, rng)
	require.Len(t, lessons, 25)
	for _, l := range lessons {
		assert.GreaterOrEqual(t, l.Order, 1)
		assert.LessOrEqual(t, l.Order, 10)
		assert.Empty(t, schema.ValidateLesson(&l))
	}
}

func TestSampleSkills(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 50; i++ {
		skills := sampleSkills(rng, 2, 5)
		assert.GreaterOrEqual(t, len(skills), 2)
		assert.LessOrEqual(t, len(skills), 5)

		seen := make(map[string]bool)
		for _, s := range skills {
			assert.False(t, seen[s], "duplicate skill %s", s)
			seen[s] = true
		}
	}
}
