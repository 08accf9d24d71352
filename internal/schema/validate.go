package schema

import (
	"fmt"
	"regexp"

	"eduhub_backend/internal/model"
)

var emailRegexp = regexp.MustCompile(EmailPattern)

// ValidEmail reports whether the address matches the store validator pattern.
func ValidEmail(address string) bool {
	return emailRegexp.MatchString(address)
}

func requireString(messages []string, field, value string) []string {
	if value == "" {
		return append(messages, fmt.Sprintf("Missing required field: %s", field))
	}
	return messages
}

// ValidateUser checks required fields, email format and the role enum.
// Returns the full list of human-readable problems; empty means valid.
func ValidateUser(u *model.User) []string {
	var messages []string
	messages = requireString(messages, "userId", u.UserID)
	messages = requireString(messages, "email", u.Email)
	messages = requireString(messages, "firstName", u.FirstName)
	messages = requireString(messages, "lastName", u.LastName)
	messages = requireString(messages, "role", string(u.Role))

	if u.Email != "" && !ValidEmail(u.Email) {
		messages = append(messages, "Invalid email format")
	}
	if u.Role != "" && u.Role != model.RoleStudent && u.Role != model.RoleInstructor {
		messages = append(messages, "Role must be 'student' or 'instructor'")
	}

	return messages
}

// ValidateCourse checks required fields and the level enum.
func ValidateCourse(c *model.Course) []string {
	var messages []string
	messages = requireString(messages, "courseId", c.CourseID)
	messages = requireString(messages, "title", c.Title)
	messages = requireString(messages, "instructorId", c.InstructorID)

	switch c.Level {
	case "", model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced:
	default:
		messages = append(messages, "Level must be 'beginner', 'intermediate' or 'advanced'")
	}

	return messages
}

func ValidateLesson(l *model.Lesson) []string {
	var messages []string
	messages = requireString(messages, "lessonId", l.LessonID)
	messages = requireString(messages, "courseId", l.CourseID)
	messages = requireString(messages, "title", l.Title)
	if l.Order < 1 {
		messages = append(messages, "Lesson order must be at least 1")
	}
	return messages
}

func ValidateAssignment(a *model.Assignment) []string {
	var messages []string
	messages = requireString(messages, "assignmentId", a.AssignmentID)
	messages = requireString(messages, "courseId", a.CourseID)
	messages = requireString(messages, "title", a.Title)
	return messages
}

// ValidateEnrollment checks required fields, the status enum and the
// progress range.
func ValidateEnrollment(e *model.Enrollment) []string {
	var messages []string
	messages = requireString(messages, "enrollmentId", e.EnrollmentID)
	messages = requireString(messages, "studentId", e.StudentID)
	messages = requireString(messages, "courseId", e.CourseID)

	switch e.Status {
	case model.EnrollmentActive, model.EnrollmentCompleted, model.EnrollmentDropped:
	default:
		messages = append(messages, "Status must be 'active', 'completed' or 'dropped'")
	}
	if e.Progress < 0 || e.Progress > 100 {
		messages = append(messages, "Progress must be between 0 and 100")
	}

	return messages
}

// ValidateSubmission checks required fields and a plausible grade range.
func ValidateSubmission(s *model.Submission) []string {
	var messages []string
	messages = requireString(messages, "submissionId", s.SubmissionID)
	messages = requireString(messages, "assignmentId", s.AssignmentID)
	messages = requireString(messages, "studentId", s.StudentID)

	if s.Grade != nil && (*s.Grade < 0 || *s.Grade > 100) {
		messages = append(messages, "Grade must be between 0 and 100")
	}

	return messages
}
