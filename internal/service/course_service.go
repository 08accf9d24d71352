package service

import (
	"context"
	"errors"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/schema"
	"eduhub_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo, UserRepo: userRepo}
}

type CreateCourseInput struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	InstructorID string            `json:"instructorId"`
	Category     string            `json:"category"`
	Level        model.CourseLevel `json:"level"`
	Duration     int               `json:"duration"`
	Price        float64           `json:"price"`
	Tags         []string          `json:"tags"`
}

// CreateCourse validates the input, verifies the instructor reference, and
// inserts the course with the next COURSE_nnn display ID. New courses start
// unpublished.
func (s *CourseService) CreateCourse(ctx context.Context, input CreateCourseInput) (*model.Course, error) {
	instructor, err := s.UserRepo.FindByUserID(ctx, input.InstructorID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}
	if instructor == nil || instructor.Role != model.RoleInstructor {
		return nil, util.ErrInstructorRequired
	}

	current, err := s.CourseRepo.MaxDisplayID(ctx)
	if err != nil {
		return nil, err
	}
	courseID, err := util.NextDisplayID(util.CourseIDPrefix, current)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	course := &model.Course{
		CourseID:     courseID,
		Title:        input.Title,
		Description:  input.Description,
		InstructorID: input.InstructorID,
		Category:     input.Category,
		Level:        input.Level,
		Duration:     input.Duration,
		Price:        input.Price,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsPublished:  false,
	}

	if messages := schema.ValidateCourse(course); len(messages) > 0 {
		return nil, util.NewValidationError(messages)
	}

	if err := s.CourseRepo.Insert(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) ByCategory(ctx context.Context, category string) ([]model.Course, error) {
	return s.CourseRepo.FindByCategory(ctx, category)
}

func (s *CourseService) SearchByTitle(ctx context.Context, query string) ([]model.Course, error) {
	return s.CourseRepo.SearchByTitle(ctx, query)
}

func (s *CourseService) ByPriceRange(ctx context.Context, min, max float64) ([]model.Course, error) {
	return s.CourseRepo.FindByPriceRange(ctx, min, max)
}

func (s *CourseService) WithTags(ctx context.Context, tags []string) ([]model.Course, error) {
	return s.CourseRepo.FindByTags(ctx, tags)
}

// MarkPublished publishes a course and stamps updatedAt.
func (s *CourseService) MarkPublished(ctx context.Context, courseID string) (int64, error) {
	return s.CourseRepo.MarkPublished(ctx, courseID)
}

// AddTags unions tags into the course tag set.
func (s *CourseService) AddTags(ctx context.Context, courseID string, tags []string) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}
	return s.CourseRepo.AddTags(ctx, courseID, tags)
}
