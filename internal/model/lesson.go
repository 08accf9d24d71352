package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LessonsCollection = "lessons"

// Lesson order is unique within a course and grows monotonically as lessons
// are appended.
type Lesson struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LessonID  string             `bson:"lessonId" json:"lessonId"`
	CourseID  string             `bson:"courseId" json:"courseId"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Duration  int                `bson:"duration" json:"duration"`
	Order     int                `bson:"order" json:"order"`
	VideoURL  string             `bson:"videoUrl" json:"videoUrl"`
	Materials []string           `bson:"materials" json:"materials"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
