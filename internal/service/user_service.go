package service

import (
	"context"
	"fmt"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/schema"
	"eduhub_backend/internal/util"
	"eduhub_backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// RegisterStudentInput carries the caller-supplied fields of a new student.
type RegisterStudentInput struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
}

// RegisterStudent validates the input, allocates the next STU_nnn display
// ID and inserts the student. A duplicate email or a display-ID collision
// under concurrency comes back as util.ErrDuplicateKey.
func (s *UserService) RegisterStudent(ctx context.Context, input RegisterStudentInput) (*model.User, error) {
	current, err := s.UserRepo.MaxDisplayID(ctx, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	userID, err := util.NextDisplayID(util.StudentIDPrefix, current)
	if err != nil {
		return nil, err
	}

	n, _ := util.ParseDisplayID(userID)
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	user := &model.User{
		UserID:     userID,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       model.RoleStudent,
		DateJoined: time.Now(),
		Profile: model.Profile{
			Bio:    input.Bio,
			Avatar: fmt.Sprintf("https://avatars.example.com/student_%d.png", n),
			Skills: skills,
		},
		IsActive: true,
	}

	if messages := schema.ValidateUser(user); len(messages) > 0 {
		return nil, util.NewValidationError(messages)
	}

	if err := s.UserRepo.Insert(ctx, user); err != nil {
		logger.Log.Warn("student registration failed",
			zap.String("userId", userID), zap.Error(err))
		return nil, err
	}

	return user, nil
}

// UpdateProfile changes only the supplied profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, bio, avatar *string, skills []string) (int64, error) {
	fields := bson.M{}
	if bio != nil {
		fields["profile.bio"] = *bio
	}
	if skills != nil {
		fields["profile.skills"] = skills
	}
	if avatar != nil {
		fields["profile.avatar"] = *avatar
	}

	return s.UserRepo.UpdateProfile(ctx, userID, fields)
}

// Deactivate soft-deletes a user; the document stays retrievable by ID.
func (s *UserService) Deactivate(ctx context.Context, userID string) (int64, error) {
	return s.UserRepo.Deactivate(ctx, userID)
}

func (s *UserService) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	return s.UserRepo.FindByUserID(ctx, userID)
}

func (s *UserService) ActiveStudents(ctx context.Context) ([]model.User, error) {
	return s.UserRepo.FindActiveStudents(ctx)
}

// RecentlyJoined returns users who joined within the last monthsBack months
// (30-day months, matching the range-filter semantics of the report).
func (s *UserService) RecentlyJoined(ctx context.Context, monthsBack int) ([]model.User, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	cutoff := time.Now().AddDate(0, 0, -30*monthsBack)
	return s.UserRepo.FindJoinedSince(ctx, cutoff)
}
