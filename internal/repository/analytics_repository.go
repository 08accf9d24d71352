package repository

import (
	"context"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/pkg/monitoring"

	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository runs the read-only aggregation reports. Every method
// is a single aggregate call; failures propagate as-is, there are no
// partial results.
type AnalyticsRepository struct {
	DB *mongo.Database
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) aggregate(ctx context.Context, report, collection string, pipeline mongo.Pipeline, out interface{}) error {
	defer monitoring.ObserveReport(report, time.Now())

	cur, err := r.DB.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// CourseEnrollmentStats groups courses by category with enrollment totals.
func (r *AnalyticsRepository) CourseEnrollmentStats(ctx context.Context) ([]model.CategoryStats, error) {
	var stats []model.CategoryStats
	err := r.aggregate(ctx, "course_enrollment_stats", model.CoursesCollection,
		CourseEnrollmentStatsPipeline(), &stats)
	return stats, err
}

// StudentPerformance ranks students by average grade.
func (r *AnalyticsRepository) StudentPerformance(ctx context.Context) ([]model.StudentPerformance, error) {
	var performance []model.StudentPerformance
	err := r.aggregate(ctx, "student_performance", model.SubmissionsCollection,
		StudentPerformancePipeline(), &performance)
	return performance, err
}

// InstructorAnalytics ranks instructors by total revenue.
func (r *AnalyticsRepository) InstructorAnalytics(ctx context.Context) ([]model.InstructorAnalytics, error) {
	var analytics []model.InstructorAnalytics
	err := r.aggregate(ctx, "instructor_analytics", model.CoursesCollection,
		InstructorAnalyticsPipeline(), &analytics)
	return analytics, err
}

// AdvancedAnalytics runs the three independent aggregates of the advanced
// report and returns them together.
func (r *AnalyticsRepository) AdvancedAnalytics(ctx context.Context) (*model.AdvancedAnalytics, error) {
	result := &model.AdvancedAnalytics{}

	if err := r.aggregate(ctx, "monthly_trends", model.EnrollmentsCollection,
		MonthlyTrendsPipeline(), &result.MonthlyTrends); err != nil {
		return nil, err
	}
	if err := r.aggregate(ctx, "category_popularity", model.CoursesCollection,
		CategoryPopularityPipeline(), &result.PopularCategories); err != nil {
		return nil, err
	}
	if err := r.aggregate(ctx, "engagement", model.EnrollmentsCollection,
		EngagementPipeline(), &result.EngagementMetrics); err != nil {
		return nil, err
	}

	return result, nil
}

// CourseDetail returns one course joined with its instructor, or nil when
// the course (or its instructor) does not exist.
func (r *AnalyticsRepository) CourseDetail(ctx context.Context, courseID string) (*model.CourseDetail, error) {
	var details []model.CourseDetail
	err := r.aggregate(ctx, "course_detail", model.CoursesCollection,
		CourseDetailPipeline(courseID), &details)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// EnrolledStudents returns one course's enrollments joined with each
// student's public profile.
func (r *AnalyticsRepository) EnrolledStudents(ctx context.Context, courseID string) ([]model.EnrolledStudent, error) {
	var students []model.EnrolledStudent
	err := r.aggregate(ctx, "enrolled_students", model.EnrollmentsCollection,
		EnrolledStudentsPipeline(courseID), &students)
	return students, err
}
