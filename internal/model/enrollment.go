package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

const EnrollmentsCollection = "enrollments"

// Enrollment links a student to a course; the (studentId, courseId) pair is
// unique. Progress is a percentage in [0, 100].
type Enrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EnrollmentID   string             `bson:"enrollmentId" json:"enrollmentId"`
	StudentID      string             `bson:"studentId" json:"studentId"`
	CourseID       string             `bson:"courseId" json:"courseId"`
	EnrollmentDate time.Time          `bson:"enrollmentDate" json:"enrollmentDate"`
	Status         EnrollmentStatus   `bson:"status" json:"status"`
	Progress       int                `bson:"progress" json:"progress"`
	CompletionDate *time.Time         `bson:"completionDate" json:"completionDate"`
}
