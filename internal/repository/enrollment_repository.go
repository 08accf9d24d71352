package repository

import (
	"context"
	"errors"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository struct {
	Coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{Coll: db.Collection(model.EnrollmentsCollection)}
}

func (r *EnrollmentRepository) Insert(ctx context.Context, enrollment *model.Enrollment) error {
	_, err := r.Coll.InsertOne(ctx, enrollment)
	return translateErr(err)
}

// FindByStudentAndCourse returns the enrollment for a (student, course)
// pair, or nil when the student is not enrolled.
func (r *EnrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.Coll.FindOne(ctx, bson.M{"studentId": studentID, "courseId": courseID}).Decode(&enrollment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, err
	}
	var enrollments []model.Enrollment
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) MaxDisplayID(ctx context.Context) (string, error) {
	return maxDisplayID(ctx, r.Coll, "enrollmentId", bson.M{})
}

// Delete hard-deletes an enrollment by its display ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, enrollmentID string) (int64, error) {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"enrollmentId": enrollmentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, enrollmentID string, status model.EnrollmentStatus, progress int) (int64, error) {
	if progress < 0 || progress > 100 {
		return 0, util.NewValidationError([]string{"Progress must be between 0 and 100"})
	}
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"enrollmentId": enrollmentID},
		bson.M{"$set": bson.M{"status": status, "progress": progress}},
	)
	if err != nil {
		return 0, translateErr(err)
	}
	// Matched, not modified: rewriting identical values is not a miss.
	return res.MatchedCount, nil
}

func (r *EnrollmentRepository) InsertMany(ctx context.Context, enrollments []model.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}
	docs := make([]interface{}, len(enrollments))
	for i := range enrollments {
		docs[i] = enrollments[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
