package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AssignmentsCollection = "assignments"

type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignmentId" json:"assignmentId"`
	CourseID     string             `bson:"courseId" json:"courseId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	DueDate      time.Time          `bson:"dueDate" json:"dueDate"`
	MaxPoints    int                `bson:"maxPoints" json:"maxPoints"`
	Instructions string             `bson:"instructions" json:"instructions"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
