package service

import (
	"context"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/util"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewSubmissionService(submissionRepo *repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{SubmissionRepo: submissionRepo}
}

// Grade records a grade on a submission, stamping gradedDate; feedback is
// only written when supplied. Returns the matched count.
func (s *SubmissionService) Grade(ctx context.Context, submissionID string, grade int, feedback *string) (int64, error) {
	if grade < 0 || grade > 100 {
		return 0, util.NewValidationError([]string{"Grade must be between 0 and 100"})
	}
	return s.SubmissionRepo.UpdateGrade(ctx, submissionID, grade, feedback)
}

func (s *SubmissionService) ByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	return s.SubmissionRepo.FindByAssignment(ctx, assignmentID)
}

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{AssignmentRepo: assignmentRepo}
}

// DueNextWeek returns assignments due within the next seven days.
func (s *AssignmentService) DueNextWeek(ctx context.Context) ([]model.Assignment, error) {
	now := time.Now()
	return s.AssignmentRepo.FindDueBetween(ctx, now, now.AddDate(0, 0, 7))
}

func (s *AssignmentService) ByCourse(ctx context.Context, courseID string) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindByCourse(ctx, courseID)
}
