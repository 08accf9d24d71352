package repository

import (
	"context"
	"errors"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LessonRepository struct {
	Coll *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{Coll: db.Collection(model.LessonsCollection)}
}

func (r *LessonRepository) Insert(ctx context.Context, lesson *model.Lesson) error {
	_, err := r.Coll.InsertOne(ctx, lesson)
	return translateErr(err)
}

func (r *LessonRepository) FindByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Coll.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, err
	}
	var lessons []model.Lesson
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonRepository) MaxDisplayID(ctx context.Context) (string, error) {
	return maxDisplayID(ctx, r.Coll, "lessonId", bson.M{})
}

// MaxOrderInCourse returns the highest lesson order within a course, 0 when
// the course has no lessons yet.
func (r *LessonRepository) MaxOrderInCourse(ctx context.Context, courseID string) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "order", Value: -1}}).
		SetProjection(bson.M{"order": 1})

	var doc struct {
		Order int `bson:"order"`
	}
	err := r.Coll.FindOne(ctx, bson.M{"courseId": courseID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Order, nil
}

// Delete hard-deletes a lesson by its display ID.
func (r *LessonRepository) Delete(ctx context.Context, lessonID string) (int64, error) {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"lessonId": lessonID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *LessonRepository) InsertMany(ctx context.Context, lessons []model.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}
	docs := make([]interface{}, len(lessons))
	for i := range lessons {
		docs[i] = lessons[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
