package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeValueObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id.Hex(), normalizeValue(id))
}

func TestNormalizeValueDates(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-15T09:30:00Z", normalizeValue(ts))
	assert.Equal(t, "2024-03-15T09:30:00Z", normalizeValue(primitive.NewDateTimeFromTime(ts)))
}

func TestNormalizeValueNestedDocument(t *testing.T) {
	id := primitive.NewObjectID()
	ts := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)

	doc := bson.M{
		"_id":    id,
		"userId": "STU_001",
		"profile": bson.M{
			"skills": bson.A{"Go", "MongoDB"},
		},
		"dateJoined": primitive.NewDateTimeFromTime(ts),
		"progress":   42,
		"grade":      nil,
	}

	normalized, ok := normalizeValue(doc).(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, id.Hex(), normalized["_id"])
	assert.Equal(t, "STU_001", normalized["userId"])
	assert.Equal(t, "2023-11-02T00:00:00Z", normalized["dateJoined"])
	assert.Equal(t, 42, normalized["progress"])
	assert.Nil(t, normalized["grade"])

	profile, ok := normalized["profile"].(map[string]interface{})
	require.True(t, ok)
	skills, ok := profile["skills"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Go", "MongoDB"}, skills)
}

func TestNormalizeValueBsonD(t *testing.T) {
	doc := bson.D{
		{Key: "courseId", Value: "COURSE_001"},
		{Key: "created", Value: primitive.NewDateTimeFromTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))},
	}

	normalized, ok := normalizeValue(doc).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "COURSE_001", normalized["courseId"])
	assert.Equal(t, "2024-01-01T12:00:00Z", normalized["created"])
}

func TestNormalizedDocumentMarshalsCleanly(t *testing.T) {
	doc := bson.M{
		"_id":  primitive.NewObjectID(),
		"when": primitive.NewDateTimeFromTime(time.Now()),
		"list": bson.A{bson.M{"inner": primitive.NewObjectID()}},
	}

	data, err := json.Marshal(normalizeValue(doc))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Binary")
}
