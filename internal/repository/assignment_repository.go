package repository

import (
	"context"
	"time"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentRepository struct {
	Coll *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{Coll: db.Collection(model.AssignmentsCollection)}
}

func (r *AssignmentRepository) Insert(ctx context.Context, assignment *model.Assignment) error {
	_, err := r.Coll.InsertOne(ctx, assignment)
	return translateErr(err)
}

func (r *AssignmentRepository) FindByCourse(ctx context.Context, courseID string) ([]model.Assignment, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, err
	}
	var assignments []model.Assignment
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindDueBetween returns assignments with a due date inside [from, to].
func (r *AssignmentRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]model.Assignment, error) {
	cur, err := r.Coll.Find(ctx, bson.M{
		"dueDate": bson.M{"$gte": from, "$lte": to},
	})
	if err != nil {
		return nil, err
	}
	var assignments []model.Assignment
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepository) MaxDisplayID(ctx context.Context) (string, error) {
	return maxDisplayID(ctx, r.Coll, "assignmentId", bson.M{})
}

func (r *AssignmentRepository) InsertMany(ctx context.Context, assignments []model.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	docs := make([]interface{}, len(assignments))
	for i := range assignments {
		docs[i] = assignments[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
