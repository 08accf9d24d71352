package controller

import (
	"strconv"

	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Register student
// @Description Register a new student account
// @Tags users
// @Accept json
// @Produce json
// @Param student body service.RegisterStudentInput true "Student fields"
// @Success 201 {object} util.Response
// @Router /api/users/students [post]
func (c *UserController) RegisterStudent(ctx *gin.Context) {
	var input service.RegisterStudentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.RegisterStudent(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// @Summary Get user
// @Description Fetch one user by display ID
// @Tags users
// @Produce json
// @Param userId path string true "User display ID"
// @Success 200 {object} util.Response
// @Router /api/users/{userId} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetByUserID(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Active students
// @Description List all active student accounts
// @Tags users
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/students/active [get]
func (c *UserController) ActiveStudents(ctx *gin.Context) {
	users, err := c.UserService.ActiveStudents(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"users": users, "total": len(users)})
}

// @Summary Recently joined users
// @Description List users who joined within the last N months
// @Tags users
// @Produce json
// @Param months query int false "Months back" default(6)
// @Success 200 {object} util.Response
// @Router /api/users/recent [get]
func (c *UserController) RecentlyJoined(ctx *gin.Context) {
	months, err := strconv.Atoi(ctx.DefaultQuery("months", "6"))
	if err != nil || months <= 0 {
		util.BadRequest(ctx, "months must be a positive integer")
		return
	}

	users, err := c.UserService.RecentlyJoined(ctx.Request.Context(), months)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"users": users, "total": len(users)})
}

type updateProfileRequest struct {
	Bio    *string  `json:"bio"`
	Avatar *string  `json:"avatar"`
	Skills []string `json:"skills"`
}

// @Summary Update profile
// @Description Update the supplied profile fields, leaving others intact
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User display ID"
// @Param profile body updateProfileRequest true "Profile fields to change"
// @Success 200 {object} util.Response
// @Router /api/users/{userId}/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	modified, err := c.UserService.UpdateProfile(ctx.Request.Context(), ctx.Param("userId"), req.Bio, req.Avatar, req.Skills)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"modified": modified})
}

// @Summary Deactivate user
// @Description Soft-delete a user by clearing its active flag
// @Tags users
// @Produce json
// @Param userId path string true "User display ID"
// @Success 200 {object} util.Response
// @Router /api/users/{userId} [delete]
func (c *UserController) Deactivate(ctx *gin.Context) {
	matched, err := c.UserService.Deactivate(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if matched == 0 {
		util.NotFoundResponse(ctx)
		return
	}
	util.Success(ctx, gin.H{"matched": matched})
}
