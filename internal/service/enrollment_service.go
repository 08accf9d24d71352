package service

import (
	"context"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/util"
	"eduhub_backend/pkg/logger"

	"go.uber.org/zap"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{EnrollmentRepo: enrollmentRepo}
}

// Register enrolls a student in a course. Re-registering an already
// enrolled student is a no-op: the existing enrollment is returned with
// created=false, never an error, and the pair count stays at one.
func (s *EnrollmentService) Register(ctx context.Context, studentID, courseID string) (*model.Enrollment, bool, error) {
	existing, err := s.EnrollmentRepo.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		logger.Log.Info("student already enrolled",
			zap.String("studentId", studentID), zap.String("courseId", courseID))
		return existing, false, nil
	}

	current, err := s.EnrollmentRepo.MaxDisplayID(ctx)
	if err != nil {
		return nil, false, err
	}
	enrollmentID, err := util.NextDisplayID(util.EnrollmentIDPrefix, current)
	if err != nil {
		return nil, false, err
	}

	enrollment := &model.Enrollment{
		EnrollmentID:   enrollmentID,
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now(),
		Status:         model.EnrollmentActive,
		Progress:       0,
		CompletionDate: nil,
	}

	// The unique (studentId, courseId) index closes the window between the
	// existence check and the insert under concurrent registration.
	if err := s.EnrollmentRepo.Insert(ctx, enrollment); err != nil {
		return nil, false, err
	}

	return enrollment, true, nil
}

// UpdateProgress moves an enrollment along: progress in [0, 100], status
// one of the enrollment enum values. Returns the matched count.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, enrollmentID string, status model.EnrollmentStatus, progress int) (int64, error) {
	switch status {
	case model.EnrollmentActive, model.EnrollmentCompleted, model.EnrollmentDropped:
	default:
		return 0, util.NewValidationError([]string{"Status must be 'active', 'completed' or 'dropped'"})
	}
	return s.EnrollmentRepo.UpdateStatus(ctx, enrollmentID, status, progress)
}

// Remove hard-deletes an enrollment; returns the deleted count.
func (s *EnrollmentService) Remove(ctx context.Context, enrollmentID string) (int64, error) {
	return s.EnrollmentRepo.Delete(ctx, enrollmentID)
}
