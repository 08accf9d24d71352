// Package repository implements the data-access layer over the document
// store: per-entity CRUD plus the analytics aggregation pipelines.
package repository

import (
	"context"
	"errors"

	"eduhub_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// translateErr maps driver errors onto the package's error taxonomy so
// callers can distinguish duplicate keys from generic failures.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return util.ErrDuplicateKey
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return util.ErrNotFound
	}
	return err
}

// maxDisplayID returns the lexicographically highest display ID stored under
// field for documents matching filter, or "" when none exist. Reading the
// max and inserting max+1 is not atomic; the unique index on the field is
// the backstop and turns a concurrent collision into ErrDuplicateKey.
func maxDisplayID(ctx context.Context, coll *mongo.Collection, field string, filter bson.M) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: field, Value: -1}}).
		SetProjection(bson.M{field: 1})

	var doc bson.M
	err := coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	id, _ := doc[field].(string)
	return id, nil
}
