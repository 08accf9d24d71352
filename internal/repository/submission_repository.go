package repository

import (
	"context"
	"time"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionRepository struct {
	Coll *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Coll: db.Collection(model.SubmissionsCollection)}
}

func (r *SubmissionRepository) Insert(ctx context.Context, submission *model.Submission) error {
	_, err := r.Coll.InsertOne(ctx, submission)
	return translateErr(err)
}

func (r *SubmissionRepository) FindBySubmissionID(ctx context.Context, submissionID string) (*model.Submission, error) {
	var submission model.Submission
	err := r.Coll.FindOne(ctx, bson.M{"submissionId": submissionID}).Decode(&submission)
	if err != nil {
		return nil, translateErr(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) FindByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"assignmentId": assignmentID})
	if err != nil {
		return nil, err
	}
	var submissions []model.Submission
	if err := cur.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) MaxDisplayID(ctx context.Context) (string, error) {
	return maxDisplayID(ctx, r.Coll, "submissionId", bson.M{})
}

// UpdateGrade sets the grade and gradedDate, plus feedback when supplied.
func (r *SubmissionRepository) UpdateGrade(ctx context.Context, submissionID string, grade int, feedback *string) (int64, error) {
	fields := bson.M{
		"grade":      grade,
		"gradedDate": time.Now(),
	}
	if feedback != nil {
		fields["feedback"] = *feedback
	}

	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"submissionId": submissionID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.MatchedCount, nil
}

func (r *SubmissionRepository) InsertMany(ctx context.Context, submissions []model.Submission) error {
	if len(submissions) == 0 {
		return nil
	}
	docs := make([]interface{}, len(submissions))
	for i := range submissions {
		docs[i] = submissions[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
