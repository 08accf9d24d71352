package schema

import (
	"testing"

	"eduhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func validUser() *model.User {
	return &model.User{
		UserID:    "STU_001",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Role:      model.RoleStudent,
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.org"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestValidateUser(t *testing.T) {
	assert.Empty(t, ValidateUser(validUser()))

	u := validUser()
	u.Email = "broken"
	messages := ValidateUser(u)
	assert.Contains(t, messages, "Invalid email format")

	u = validUser()
	u.Role = "admin"
	messages = ValidateUser(u)
	assert.Contains(t, messages, "Role must be 'student' or 'instructor'")

	messages = ValidateUser(&model.User{})
	assert.Contains(t, messages, "Missing required field: userId")
	assert.Contains(t, messages, "Missing required field: email")
	assert.Contains(t, messages, "Missing required field: firstName")
	assert.Contains(t, messages, "Missing required field: lastName")
	assert.Contains(t, messages, "Missing required field: role")
}

func TestValidateCourse(t *testing.T) {
	c := &model.Course{
		CourseID:     "COURSE_001",
		Title:        "Intro to Databases",
		InstructorID: "INST_001",
		Level:        model.LevelBeginner,
	}
	assert.Empty(t, ValidateCourse(c))

	c.Level = "expert"
	assert.Contains(t, ValidateCourse(c), "Level must be 'beginner', 'intermediate' or 'advanced'")

	messages := ValidateCourse(&model.Course{})
	assert.Contains(t, messages, "Missing required field: courseId")
	assert.Contains(t, messages, "Missing required field: title")
	assert.Contains(t, messages, "Missing required field: instructorId")
}

func TestValidateLesson(t *testing.T) {
	l := &model.Lesson{
		LessonID: "LESSON_001",
		CourseID: "COURSE_001",
		Title:    "Getting Started",
		Order:    1,
	}
	assert.Empty(t, ValidateLesson(l))

	l.Order = 0
	assert.Contains(t, ValidateLesson(l), "Lesson order must be at least 1")
}

func TestValidateEnrollment(t *testing.T) {
	e := &model.Enrollment{
		EnrollmentID: "ENROLL_001",
		StudentID:    "STU_001",
		CourseID:     "COURSE_001",
		Status:       model.EnrollmentActive,
		Progress:     50,
	}
	assert.Empty(t, ValidateEnrollment(e))

	e.Status = "paused"
	assert.Contains(t, ValidateEnrollment(e), "Status must be 'active', 'completed' or 'dropped'")

	e.Status = model.EnrollmentActive
	e.Progress = 101
	assert.Contains(t, ValidateEnrollment(e), "Progress must be between 0 and 100")

	e.Progress = -1
	assert.Contains(t, ValidateEnrollment(e), "Progress must be between 0 and 100")
}

func TestValidateSubmission(t *testing.T) {
	s := &model.Submission{
		SubmissionID: "SUB_001",
		AssignmentID: "ASSIGN_001",
		StudentID:    "STU_001",
	}
	assert.Empty(t, ValidateSubmission(s))

	grade := 85
	s.Grade = &grade
	assert.Empty(t, ValidateSubmission(s))

	grade = 120
	assert.Contains(t, ValidateSubmission(s), "Grade must be between 0 and 100")
}
