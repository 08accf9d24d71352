package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExplainFind returns the execution plan of a find query with
// executionStats verbosity. Offline diagnostics only; nothing at runtime
// depends on its output.
func ExplainFind(ctx context.Context, db *mongo.Database, collection string, filter bson.M) (bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}

	var plan bson.M
	err := db.RunCommand(ctx, bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: collection},
			{Key: "filter", Value: filter},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// CollStats returns the raw collStats command output for a collection.
func CollStats(ctx context.Context, db *mongo.Database, collection string) (bson.M, error) {
	var stats bson.M
	err := db.RunCommand(ctx, bson.D{
		{Key: "collStats", Value: collection},
	}).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
