package service

import (
	"context"
	"encoding/json"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/pkg/logger"
	"eduhub_backend/pkg/monitoring"
	"eduhub_backend/pkg/tracing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const reportCacheTTL = 5 * time.Minute

// AnalyticsService fronts the aggregation reports with a read-through
// redis cache. A missing or failing cache degrades to direct computation;
// the cache is never a correctness dependency.
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	Redis         *redis.Client
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{AnalyticsRepo: analyticsRepo, Redis: rdb}
}

func cacheKey(report string) string {
	return "analytics:" + report
}

func (s *AnalyticsService) fromCache(ctx context.Context, report string, out interface{}) bool {
	if s.Redis == nil {
		return false
	}
	raw, err := s.Redis.Get(ctx, cacheKey(report)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("report cache read failed", zap.String("report", report), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	monitoring.ReportCacheHits.WithLabelValues(report).Inc()
	return true
}

func (s *AnalyticsService) toCache(ctx context.Context, report string, value interface{}) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, cacheKey(report), raw, reportCacheTTL).Err(); err != nil {
		logger.Log.Warn("report cache write failed", zap.String("report", report), zap.Error(err))
	}
}

func (s *AnalyticsService) CourseEnrollmentStats(ctx context.Context) ([]model.CategoryStats, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.course_enrollment_stats")
	defer span.End()

	const report = "course_enrollment_stats"
	var cached []model.CategoryStats
	if s.fromCache(ctx, report, &cached) {
		return cached, nil
	}

	stats, err := s.AnalyticsRepo.CourseEnrollmentStats(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, report, stats)
	return stats, nil
}

func (s *AnalyticsService) StudentPerformance(ctx context.Context) ([]model.StudentPerformance, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.student_performance")
	defer span.End()

	const report = "student_performance"
	var cached []model.StudentPerformance
	if s.fromCache(ctx, report, &cached) {
		return cached, nil
	}

	performance, err := s.AnalyticsRepo.StudentPerformance(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, report, performance)
	return performance, nil
}

func (s *AnalyticsService) InstructorAnalytics(ctx context.Context) ([]model.InstructorAnalytics, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.instructor_analytics")
	defer span.End()

	const report = "instructor_analytics"
	var cached []model.InstructorAnalytics
	if s.fromCache(ctx, report, &cached) {
		return cached, nil
	}

	analytics, err := s.AnalyticsRepo.InstructorAnalytics(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, report, analytics)
	return analytics, nil
}

func (s *AnalyticsService) AdvancedAnalytics(ctx context.Context) (*model.AdvancedAnalytics, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.advanced")
	defer span.End()

	const report = "advanced"
	var cached model.AdvancedAnalytics
	if s.fromCache(ctx, report, &cached) {
		return &cached, nil
	}

	result, err := s.AnalyticsRepo.AdvancedAnalytics(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, report, result)
	return result, nil
}

// CourseDetail is a per-course lookup; not cached.
func (s *AnalyticsService) CourseDetail(ctx context.Context, courseID string) (*model.CourseDetail, error) {
	return s.AnalyticsRepo.CourseDetail(ctx, courseID)
}

func (s *AnalyticsService) EnrolledStudents(ctx context.Context, courseID string) ([]model.EnrolledStudent, error) {
	return s.AnalyticsRepo.EnrolledStudents(ctx, courseID)
}
