package repository

import (
	"context"
	"time"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository struct {
	Coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{Coll: db.Collection(model.CoursesCollection)}
}

func (r *CourseRepository) Insert(ctx context.Context, course *model.Course) error {
	_, err := r.Coll.InsertOne(ctx, course)
	return translateErr(err)
}

func (r *CourseRepository) FindByCourseID(ctx context.Context, courseID string) (*model.Course, error) {
	var course model.Course
	err := r.Coll.FindOne(ctx, bson.M{"courseId": courseID}).Decode(&course)
	if err != nil {
		return nil, translateErr(err)
	}
	return &course, nil
}

func (r *CourseRepository) FindByCategory(ctx context.Context, category string) ([]model.Course, error) {
	return r.findAll(ctx, bson.M{"category": category})
}

// SearchByTitle matches the query as a case-insensitive substring of the
// course title.
func (r *CourseRepository) SearchByTitle(ctx context.Context, query string) ([]model.Course, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	return r.findAll(ctx, bson.M{"title": bson.M{"$regex": pattern}})
}

func (r *CourseRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]model.Course, error) {
	return r.findAll(ctx, bson.M{"price": bson.M{"$gte": min, "$lte": max}})
}

// FindByTags returns courses carrying at least one of the given tags.
func (r *CourseRepository) FindByTags(ctx context.Context, tags []string) ([]model.Course, error) {
	return r.findAll(ctx, bson.M{"tags": bson.M{"$in": tags}})
}

func (r *CourseRepository) findAll(ctx context.Context, filter bson.M) ([]model.Course, error) {
	cur, err := r.Coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) MaxDisplayID(ctx context.Context) (string, error) {
	return maxDisplayID(ctx, r.Coll, "courseId", bson.M{})
}

// MarkPublished flips isPublished and stamps updatedAt. The matched count
// is returned so callers can tell a missing course from an already
// published one.
func (r *CourseRepository) MarkPublished(ctx context.Context, courseID string) (int64, error) {
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"courseId": courseID},
		bson.M{"$set": bson.M{"isPublished": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.MatchedCount, nil
}

// AddTags unions the given tags into the course's tag set ($addToSet, no
// duplicates) and stamps updatedAt.
func (r *CourseRepository) AddTags(ctx context.Context, courseID string, tags []string) (int64, error) {
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"courseId": courseID},
		bson.M{
			"$addToSet": bson.M{"tags": bson.M{"$each": tags}},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.ModifiedCount, nil
}

func (r *CourseRepository) InsertMany(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	docs := make([]interface{}, len(courses))
	for i := range courses {
		docs[i] = courses[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
