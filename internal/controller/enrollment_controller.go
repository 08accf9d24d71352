package controller

import (
	"eduhub_backend/internal/model"
	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type registerEnrollmentRequest struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// @Summary Enroll student
// @Description Enroll a student in a course; repeating the call is a no-op
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body registerEnrollmentRequest true "Student and course IDs"
// @Success 200 {object} util.Response
// @Success 201 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Register(ctx *gin.Context) {
	var req registerEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.StudentID == "" || req.CourseID == "" {
		util.BadRequest(ctx, "studentId and courseId are required")
		return
	}

	enrollment, created, err := c.EnrollmentService.Register(ctx.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if created {
		util.Created(ctx, enrollment)
		return
	}
	util.Success(ctx, enrollment)
}

type updateProgressRequest struct {
	Status   model.EnrollmentStatus `json:"status"`
	Progress int                    `json:"progress"`
}

// @Summary Update enrollment progress
// @Description Set an enrollment's status and progress percentage
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollmentId path string true "Enrollment display ID"
// @Param progress body updateProgressRequest true "Status and progress"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{enrollmentId} [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	var req updateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	matched, err := c.EnrollmentService.UpdateProgress(ctx.Request.Context(), ctx.Param("enrollmentId"), req.Status, req.Progress)
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

// @Summary Remove enrollment
// @Description Delete one enrollment by display ID
// @Tags enrollments
// @Produce json
// @Param enrollmentId path string true "Enrollment display ID"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{enrollmentId} [delete]
func (c *EnrollmentController) Remove(ctx *gin.Context) {
	deleted, err := c.EnrollmentService.Remove(ctx.Request.Context(), ctx.Param("enrollmentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if deleted == 0 {
		util.NotFoundResponse(ctx)
		return
	}
	util.Success(ctx, gin.H{"deleted": deleted})
}
