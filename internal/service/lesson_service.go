package service

import (
	"context"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/schema"
	"eduhub_backend/internal/util"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository) *LessonService {
	return &LessonService{LessonRepo: lessonRepo}
}

type AddLessonInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Duration  int      `json:"duration"`
	VideoURL  string   `json:"videoUrl"`
	Materials []string `json:"materials"`
}

// AddLessonToCourse appends a lesson to a course: the next LESSON_nnn
// display ID, and an order of max(order within the course) + 1 so order
// stays unique and monotonic per insertion.
func (s *LessonService) AddLessonToCourse(ctx context.Context, courseID string, input AddLessonInput) (*model.Lesson, error) {
	current, err := s.LessonRepo.MaxDisplayID(ctx)
	if err != nil {
		return nil, err
	}
	lessonID, err := util.NextDisplayID(util.LessonIDPrefix, current)
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.LessonRepo.MaxOrderInCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	materials := input.Materials
	if materials == nil {
		materials = []string{}
	}

	lesson := &model.Lesson{
		LessonID:  lessonID,
		CourseID:  courseID,
		Title:     input.Title,
		Content:   input.Content,
		Duration:  input.Duration,
		Order:     maxOrder + 1,
		VideoURL:  input.VideoURL,
		Materials: materials,
		CreatedAt: time.Now(),
	}

	if messages := schema.ValidateLesson(lesson); len(messages) > 0 {
		return nil, util.NewValidationError(messages)
	}

	if err := s.LessonRepo.Insert(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

func (s *LessonService) ByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	return s.LessonRepo.FindByCourse(ctx, courseID)
}

// DeleteLesson hard-deletes a lesson; returns the deleted count.
func (s *LessonService) DeleteLesson(ctx context.Context, lessonID string) (int64, error) {
	return s.LessonRepo.Delete(ctx, lessonID)
}
