// Package schema owns the shape contracts of the six platform collections:
// the $jsonSchema validators and unique/secondary indexes enforced by the
// store, and the client-side validation rules applied before any write.
package schema

import (
	"context"
	"errors"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmailPattern is shared by the store validator and the client-side check.
const EmailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

const namespaceExistsCode = 48

func userValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"userId", "email", "firstName", "lastName", "role"},
			"properties": bson.M{
				"userId": bson.M{"bsonType": "string"},
				"email": bson.M{
					"bsonType": "string",
					"pattern":  EmailPattern,
				},
				"firstName": bson.M{"bsonType": "string"},
				"lastName":  bson.M{"bsonType": "string"},
				"role": bson.M{
					"bsonType": "string",
					"enum":     []string{string(model.RoleStudent), string(model.RoleInstructor)},
				},
				"dateJoined": bson.M{"bsonType": "date"},
				"profile": bson.M{
					"bsonType": "object",
					"properties": bson.M{
						"bio":    bson.M{"bsonType": "string"},
						"avatar": bson.M{"bsonType": "string"},
						"skills": bson.M{
							"bsonType": "array",
							"items":    bson.M{"bsonType": "string"},
						},
					},
				},
				"isActive": bson.M{"bsonType": "bool"},
			},
		},
	}
}

func courseValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"courseId", "title", "instructorId"},
			"properties": bson.M{
				"courseId":     bson.M{"bsonType": "string"},
				"title":        bson.M{"bsonType": "string"},
				"description":  bson.M{"bsonType": "string"},
				"instructorId": bson.M{"bsonType": "string"},
				"category":     bson.M{"bsonType": "string"},
				"level": bson.M{
					"bsonType": "string",
					"enum": []string{
						string(model.LevelBeginner),
						string(model.LevelIntermediate),
						string(model.LevelAdvanced),
					},
				},
				"duration": bson.M{"bsonType": "number"},
				"price":    bson.M{"bsonType": "number"},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"createdAt":   bson.M{"bsonType": "date"},
				"updatedAt":   bson.M{"bsonType": "date"},
				"isPublished": bson.M{"bsonType": "bool"},
			},
		},
	}
}

// EnsureCollections creates every collection, attaching schema validators to
// users and courses. Existing collections are left as they are.
func EnsureCollections(ctx context.Context, db *mongo.Database) error {
	validators := map[string]bson.M{
		model.UsersCollection:   userValidator(),
		model.CoursesCollection: courseValidator(),
	}

	for _, name := range model.Collections {
		opts := options.CreateCollection()
		if v, ok := validators[name]; ok {
			opts.SetValidator(v)
		}
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsCode {
				continue
			}
			return err
		}
	}

	return nil
}

func unique() *options.IndexOptions {
	return options.Index().SetUnique(true)
}

// EnsureIndexes creates the uniqueness and query-performance indexes. Safe to
// call repeatedly; index creation is idempotent for identical definitions.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		model.UsersCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		model.CoursesCollection: {
			{Keys: bson.D{{Key: "courseId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "title", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "instructorId", Value: 1}}},
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
		},
		model.EnrollmentsCollection: {
			{Keys: bson.D{{Key: "enrollmentId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "courseId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "enrollmentDate", Value: 1}}},
		},
		model.LessonsCollection: {
			{Keys: bson.D{{Key: "lessonId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
		},
		model.AssignmentsCollection: {
			{Keys: bson.D{{Key: "assignmentId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
			{Keys: bson.D{{Key: "dueDate", Value: 1}}},
		},
		model.SubmissionsCollection: {
			{Keys: bson.D{{Key: "submissionId", Value: 1}}, Options: unique()},
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "assignmentId", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}
