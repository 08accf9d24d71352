package repository

import (
	"testing"

	"eduhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageKeys(p mongo.Pipeline) []string {
	keys := make([]string, len(p))
	for i, stage := range p {
		keys[i] = stage[0].Key
	}
	return keys
}

func stageValue(t *testing.T, p mongo.Pipeline, index int) bson.M {
	t.Helper()
	require.Less(t, index, len(p))
	v, ok := p[index][0].Value.(bson.M)
	require.True(t, ok, "stage %d value is not bson.M", index)
	return v
}

func TestCourseEnrollmentStatsPipeline(t *testing.T) {
	p := CourseEnrollmentStatsPipeline()
	assert.Equal(t, []string{"$lookup", "$group", "$sort"}, stageKeys(p))

	lookup := stageValue(t, p, 0)
	assert.Equal(t, model.EnrollmentsCollection, lookup["from"])
	assert.Equal(t, "courseId", lookup["localField"])
	assert.Equal(t, "courseId", lookup["foreignField"])
	assert.Equal(t, "courseEnrollments", lookup["as"])

	group := stageValue(t, p, 1)
	assert.Equal(t, "$category", group["_id"])
	assert.Equal(t, bson.M{"$avg": "$price"}, group["averagePrice"])
	assert.Equal(t, bson.M{"$sum": 1}, group["totalCourses"])

	sort := p[2][0].Value.(bson.D)
	assert.Equal(t, "totalEnrollments", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestStudentPerformancePipeline(t *testing.T) {
	p := StudentPerformancePipeline()
	assert.Equal(t, []string{"$lookup", "$unwind", "$lookup", "$unwind", "$group", "$addFields", "$sort"}, stageKeys(p))

	assignments := stageValue(t, p, 0)
	assert.Equal(t, model.AssignmentsCollection, assignments["from"])
	assert.Equal(t, "assignmentInfo", assignments["as"])

	users := stageValue(t, p, 2)
	assert.Equal(t, model.UsersCollection, users["from"])
	assert.Equal(t, "userId", users["foreignField"])

	group := stageValue(t, p, 4)
	assert.Equal(t, "$studentId", group["_id"])
	// $avg ignores null grades, so ungraded submissions do not drag the average.
	assert.Equal(t, bson.M{"$avg": "$grade"}, group["averageGrade"])
	assert.Equal(t, bson.M{"$addToSet": "$assignmentInfo.courseId"}, group["coursesParticipated"])

	addFields := stageValue(t, p, 5)
	assert.Equal(t, bson.M{"$size": "$coursesParticipated"}, addFields["coursesCount"])

	sort := p[6][0].Value.(bson.D)
	assert.Equal(t, "averageGrade", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestInstructorAnalyticsPipeline(t *testing.T) {
	p := InstructorAnalyticsPipeline()
	assert.Equal(t, []string{"$lookup", "$unwind", "$lookup", "$group", "$sort"}, stageKeys(p))

	group := stageValue(t, p, 3)
	assert.Equal(t, "$instructorId", group["_id"])

	revenue, ok := group["totalRevenue"].(bson.M)
	require.True(t, ok)
	sum, ok := revenue["$sum"].(bson.M)
	require.True(t, ok)
	multiply, ok := sum["$multiply"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, "$price", multiply[0])
	assert.Equal(t, bson.M{"$size": "$courseEnrollments"}, multiply[1])
}

func TestMonthlyTrendsPipeline(t *testing.T) {
	p := MonthlyTrendsPipeline()
	assert.Equal(t, []string{"$group", "$sort"}, stageKeys(p))

	group := stageValue(t, p, 0)
	id, ok := group["_id"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$year": "$enrollmentDate"}, id["year"])
	assert.Equal(t, bson.M{"$month": "$enrollmentDate"}, id["month"])

	sort := p[1][0].Value.(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, "_id.year", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
	assert.Equal(t, "_id.month", sort[1].Key)
	assert.Equal(t, 1, sort[1].Value)
}

func TestEngagementPipeline(t *testing.T) {
	p := EngagementPipeline()
	assert.Equal(t, []string{"$group"}, stageKeys(p))

	group := stageValue(t, p, 0)
	assert.Equal(t, "$status", group["_id"])
	assert.Equal(t, bson.M{"$sum": 1}, group["count"])
	assert.Equal(t, bson.M{"$avg": "$progress"}, group["averageProgress"])
}

func TestCourseDetailPipeline(t *testing.T) {
	p := CourseDetailPipeline("COURSE_003")
	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project"}, stageKeys(p))

	match := stageValue(t, p, 0)
	assert.Equal(t, "COURSE_003", match["courseId"])

	project := stageValue(t, p, 3)
	assert.Equal(t, 1, project["instructorInfo.firstName"])
	assert.Equal(t, 1, project["instructorInfo.profile.bio"])
	assert.NotContains(t, project, "instructorInfo.dateJoined")
}

func TestEnrolledStudentsPipeline(t *testing.T) {
	p := EnrolledStudentsPipeline("COURSE_001")
	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project"}, stageKeys(p))

	lookup := stageValue(t, p, 1)
	assert.Equal(t, model.UsersCollection, lookup["from"])
	assert.Equal(t, "studentId", lookup["localField"])
	assert.Equal(t, "userId", lookup["foreignField"])
	assert.Equal(t, "studentInfo", lookup["as"])
}
