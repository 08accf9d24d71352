package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/schema"
	"eduhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration tests need a reachable mongod; they are skipped unless
// EDUHUB_TEST_MONGO_URI is set, e.g.
//
//	EDUHUB_TEST_MONGO_URI=mongodb://localhost:27017 go test ./...
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("EDUHUB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("EDUHUB_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("eduhub_test_%d", time.Now().UnixNano()))
	require.NoError(t, schema.EnsureCollections(ctx, db))
	require.NoError(t, schema.EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func testUser(id string, role model.UserRole) model.User {
	return model.User{
		UserID:     id,
		Email:      fmt.Sprintf("%s@example.com", id),
		FirstName:  "Test",
		LastName:   id,
		Role:       role,
		DateJoined: time.Now().AddDate(0, -2, 0),
		IsActive:   true,
	}
}

func testCourse(id, instructorID, category string, price float64) model.Course {
	return model.Course{
		CourseID:     id,
		Title:        "Course " + id,
		InstructorID: instructorID,
		Category:     category,
		Level:        model.LevelBeginner,
		Duration:     40,
		Price:        price,
		CreatedAt:    time.Now().AddDate(0, -1, 0),
		UpdatedAt:    time.Now(),
	}
}

func testEnrollment(id, studentID, courseID string, status model.EnrollmentStatus, progress int) model.Enrollment {
	return model.Enrollment{
		EnrollmentID:   id,
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().AddDate(0, 0, -14),
		Status:         status,
		Progress:       progress,
	}
}

func TestEnrollmentUniquePair(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(db)

	first := testEnrollment("ENROLL_001", "STU_001", "COURSE_001", model.EnrollmentActive, 0)
	require.NoError(t, repo.Insert(ctx, &first))

	second := testEnrollment("ENROLL_002", "STU_001", "COURSE_001", model.EnrollmentActive, 0)
	err := repo.Insert(ctx, &second)
	assert.ErrorIs(t, err, util.ErrDuplicateKey)
}

func TestDeactivateKeepsUserRetrievable(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	u := testUser("STU_001", model.RoleStudent)
	require.NoError(t, repo.Insert(ctx, &u))

	matched, err := repo.Deactivate(ctx, "STU_001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := repo.FindByUserID(ctx, "STU_001")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	active, err := repo.FindActiveStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAddTagsSetUnion(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewCourseRepository(db)

	c := testCourse("COURSE_001", "INST_001", "Programming", 199)
	c.Tags = []string{"go", "backend"}
	require.NoError(t, repo.Insert(ctx, &c))

	_, err := repo.AddTags(ctx, "COURSE_001", []string{"backend", "mongodb"})
	require.NoError(t, err)

	got, err := repo.FindByCourseID(ctx, "COURSE_001")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "backend", "mongodb"}, got.Tags)
}

func TestEngagementBuckets(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	enrollments := NewEnrollmentRepository(db)

	rows := []model.Enrollment{
		testEnrollment("ENROLL_001", "STU_001", "COURSE_001", model.EnrollmentActive, 0),
		testEnrollment("ENROLL_002", "STU_002", "COURSE_001", model.EnrollmentActive, 50),
		testEnrollment("ENROLL_003", "STU_003", "COURSE_001", model.EnrollmentCompleted, 100),
	}
	require.NoError(t, enrollments.InsertMany(ctx, rows))

	analytics := NewAnalyticsRepository(db)
	result, err := analytics.AdvancedAnalytics(ctx)
	require.NoError(t, err)

	byStatus := make(map[model.EnrollmentStatus]model.EngagementMetrics)
	for _, m := range result.EngagementMetrics {
		byStatus[m.Status] = m
	}

	active := byStatus[model.EnrollmentActive]
	assert.Equal(t, 2, active.Count)
	require.NotNil(t, active.AverageProgress)
	assert.InDelta(t, 25.0, *active.AverageProgress, 0.001)

	completed := byStatus[model.EnrollmentCompleted]
	assert.Equal(t, 1, completed.Count)
	require.NotNil(t, completed.AverageProgress)
	assert.InDelta(t, 100.0, *completed.AverageProgress, 0.001)
}

func TestRepeatedUpdatesStillMatch(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	courses := NewCourseRepository(db)
	enrollments := NewEnrollmentRepository(db)

	c := testCourse("COURSE_001", "INST_001", "Programming", 199)
	require.NoError(t, courses.Insert(ctx, &c))

	e := testEnrollment("ENROLL_001", "STU_001", "COURSE_001", model.EnrollmentActive, 50)
	require.NoError(t, enrollments.Insert(ctx, &e))

	for i := 0; i < 2; i++ {
		matched, err := courses.MarkPublished(ctx, "COURSE_001")
		require.NoError(t, err)
		// The second publish changes nothing but the course still exists.
		assert.Equal(t, int64(1), matched)
	}

	for i := 0; i < 2; i++ {
		matched, err := enrollments.UpdateStatus(ctx, "ENROLL_001", model.EnrollmentActive, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	}

	matched, err := courses.MarkPublished(ctx, "COURSE_999")
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestCategoryTotalsMatchEnrollmentCount(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	courses := NewCourseRepository(db)
	enrollments := NewEnrollmentRepository(db)

	require.NoError(t, courses.InsertMany(ctx, []model.Course{
		testCourse("COURSE_001", "INST_001", "Programming", 100),
		testCourse("COURSE_002", "INST_001", "Programming", 200),
		testCourse("COURSE_003", "INST_002", "Design", 150),
	}))

	rows := []model.Enrollment{
		testEnrollment("ENROLL_001", "STU_001", "COURSE_001", model.EnrollmentActive, 10),
		testEnrollment("ENROLL_002", "STU_002", "COURSE_001", model.EnrollmentActive, 40),
		testEnrollment("ENROLL_003", "STU_001", "COURSE_002", model.EnrollmentCompleted, 100),
		testEnrollment("ENROLL_004", "STU_003", "COURSE_003", model.EnrollmentActive, 5),
	}
	require.NoError(t, enrollments.InsertMany(ctx, rows))

	analytics := NewAnalyticsRepository(db)
	stats, err := analytics.CourseEnrollmentStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byCategory := make(map[string]model.CategoryStats)
	sum := 0
	for _, s := range stats {
		require.NotNil(t, s.Category)
		byCategory[*s.Category] = s
		sum += s.TotalEnrollments
	}

	// Every enrollment lands in exactly one category bucket.
	assert.Equal(t, len(rows), sum)

	prog := byCategory["Programming"]
	assert.Equal(t, 2, prog.TotalCourses)
	assert.Equal(t, 3, prog.TotalEnrollments)
	require.NotNil(t, prog.AveragePrice)
	assert.InDelta(t, 150.0, *prog.AveragePrice, 0.001)

	design := byCategory["Design"]
	assert.Equal(t, 1, design.TotalCourses)
	assert.Equal(t, 1, design.TotalEnrollments)

	popular, err := analytics.AdvancedAnalytics(ctx)
	require.NoError(t, err)
	popSum := 0
	for _, p := range popular.PopularCategories {
		popSum += p.TotalEnrollments
	}
	assert.Equal(t, len(rows), popSum)
}

func TestInstructorRevenue(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	courses := NewCourseRepository(db)
	enrollments := NewEnrollmentRepository(db)

	inst := testUser("INST_001", model.RoleInstructor)
	require.NoError(t, users.Insert(ctx, &inst))

	c1 := testCourse("COURSE_001", "INST_001", "Programming", 100)
	c2 := testCourse("COURSE_002", "INST_001", "Programming", 250)
	require.NoError(t, courses.InsertMany(ctx, []model.Course{c1, c2}))

	rows := []model.Enrollment{
		testEnrollment("ENROLL_001", "STU_001", "COURSE_001", model.EnrollmentActive, 10),
		testEnrollment("ENROLL_002", "STU_002", "COURSE_001", model.EnrollmentActive, 20),
		testEnrollment("ENROLL_003", "STU_001", "COURSE_002", model.EnrollmentCompleted, 100),
	}
	require.NoError(t, enrollments.InsertMany(ctx, rows))

	analytics := NewAnalyticsRepository(db)
	result, err := analytics.InstructorAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)

	row := result[0]
	assert.Equal(t, "INST_001", row.InstructorID)
	assert.Equal(t, 2, row.TotalCourses)
	assert.Equal(t, 3, row.TotalStudents)
	// 2 x 100 + 1 x 250
	assert.InDelta(t, 450.0, row.TotalRevenue, 0.001)
}

func TestStudentAverageExcludesUngraded(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	assignments := NewAssignmentRepository(db)
	submissions := NewSubmissionRepository(db)

	stu := testUser("STU_001", model.RoleStudent)
	require.NoError(t, users.Insert(ctx, &stu))

	a := model.Assignment{
		AssignmentID: "ASSIGN_001",
		CourseID:     "COURSE_001",
		Title:        "Quiz 1",
		DueDate:      time.Now().AddDate(0, 0, 7),
		MaxPoints:    100,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, assignments.Insert(ctx, &a))

	g1, g2 := 80, 90
	rows := []model.Submission{
		{SubmissionID: "SUB_001", AssignmentID: "ASSIGN_001", StudentID: "STU_001", SubmissionDate: time.Now(), Grade: &g1},
		{SubmissionID: "SUB_002", AssignmentID: "ASSIGN_001", StudentID: "STU_001", SubmissionDate: time.Now(), Grade: &g2},
		{SubmissionID: "SUB_003", AssignmentID: "ASSIGN_001", StudentID: "STU_001", SubmissionDate: time.Now()},
	}
	require.NoError(t, submissions.InsertMany(ctx, rows))

	analytics := NewAnalyticsRepository(db)
	result, err := analytics.StudentPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)

	row := result[0]
	assert.Equal(t, 3, row.TotalSubmissions)
	require.NotNil(t, row.AverageGrade)
	// The ungraded submission is excluded from both sides of the average.
	assert.InDelta(t, 85.0, *row.AverageGrade, 0.001)
	assert.Equal(t, []string{"COURSE_001"}, row.CoursesParticipated)
	assert.Equal(t, 1, row.CoursesCount)
}

func TestGradeUpdateStampsGradedDate(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewSubmissionRepository(db)

	s := model.Submission{
		SubmissionID:   "SUB_001",
		AssignmentID:   "ASSIGN_001",
		StudentID:      "STU_001",
		SubmissionDate: time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, &s))

	feedback := "Solid work"
	matched, err := repo.UpdateGrade(ctx, "SUB_001", 92, &feedback)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := repo.FindBySubmissionID(ctx, "SUB_001")
	require.NoError(t, err)
	require.NotNil(t, got.Grade)
	assert.Equal(t, 92, *got.Grade)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "Solid work", *got.Feedback)
	assert.NotNil(t, got.GradedDate)
}

func TestMaxDisplayIDPerRole(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.InsertMany(ctx, []model.User{
		testUser("STU_001", model.RoleStudent),
		testUser("STU_002", model.RoleStudent),
		testUser("INST_001", model.RoleInstructor),
	}))

	current, err := repo.MaxDisplayID(ctx, model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "STU_002", current)

	next, err := util.NextDisplayID(util.StudentIDPrefix, current)
	require.NoError(t, err)
	assert.Equal(t, "STU_003", next)
}
