package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

const CoursesCollection = "courses"

// Course references its instructor by display ID; InstructorID must point at
// a user with role=instructor.
type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID     string             `bson:"courseId" json:"courseId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	InstructorID string             `bson:"instructorId" json:"instructorId"`
	Category     string             `bson:"category" json:"category"`
	Level        CourseLevel        `bson:"level" json:"level"`
	Duration     int                `bson:"duration" json:"duration"`
	Price        float64            `bson:"price" json:"price"`
	Tags         []string           `bson:"tags" json:"tags"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
	IsPublished  bool               `bson:"isPublished" json:"isPublished"`
}
