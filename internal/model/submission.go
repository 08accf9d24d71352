package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SubmissionsCollection = "submissions"

// Submission keeps grade, feedback and gradedDate as pointers: an ungraded
// submission carries nulls, and null grades stay out of grade averages.
type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmissionID   string             `bson:"submissionId" json:"submissionId"`
	AssignmentID   string             `bson:"assignmentId" json:"assignmentId"`
	StudentID      string             `bson:"studentId" json:"studentId"`
	SubmissionDate time.Time          `bson:"submissionDate" json:"submissionDate"`
	Content        string             `bson:"content" json:"content"`
	Attachments    []string           `bson:"attachments" json:"attachments"`
	Grade          *int               `bson:"grade" json:"grade"`
	Feedback       *string            `bson:"feedback" json:"feedback"`
	GradedDate     *time.Time         `bson:"gradedDate" json:"gradedDate"`
}

// Collections lists every collection of the platform in insert dependency
// order.
var Collections = []string{
	UsersCollection,
	CoursesCollection,
	LessonsCollection,
	AssignmentsCollection,
	EnrollmentsCollection,
	SubmissionsCollection,
}
