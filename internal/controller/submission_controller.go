package controller

import (
	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	AssignmentService *service.AssignmentService
}

func NewSubmissionController(submissionService *service.SubmissionService, assignmentService *service.AssignmentService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService, AssignmentService: assignmentService}
}

type gradeRequest struct {
	Grade    int     `json:"grade"`
	Feedback *string `json:"feedback"`
}

// @Summary Grade submission
// @Description Record a grade, optional feedback and the grading time
// @Tags submissions
// @Accept json
// @Produce json
// @Param submissionId path string true "Submission display ID"
// @Param grade body gradeRequest true "Grade and optional feedback"
// @Success 200 {object} util.Response
// @Router /api/submissions/{submissionId}/grade [put]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	var req gradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	matched, err := c.SubmissionService.Grade(ctx.Request.Context(), ctx.Param("submissionId"), req.Grade, req.Feedback)
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

// @Summary Assignment submissions
// @Description List all submissions for one assignment
// @Tags submissions
// @Produce json
// @Param assignmentId path string true "Assignment display ID"
// @Success 200 {object} util.Response
// @Router /api/assignments/{assignmentId}/submissions [get]
func (c *SubmissionController) ByAssignment(ctx *gin.Context) {
	submissions, err := c.SubmissionService.ByAssignment(ctx.Request.Context(), ctx.Param("assignmentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"submissions": submissions, "total": len(submissions)})
}

// @Summary Assignments due soon
// @Description Assignments due within the next seven days
// @Tags assignments
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assignments/due [get]
func (c *SubmissionController) DueNextWeek(ctx *gin.Context) {
	assignments, err := c.AssignmentService.DueNextWeek(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignments": assignments, "total": len(assignments)})
}

// @Summary Course assignments
// @Description List all assignments for a course
// @Tags assignments
// @Produce json
// @Param courseId path string true "Course display ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/assignments [get]
func (c *SubmissionController) AssignmentsByCourse(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ByCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignments": assignments, "total": len(assignments)})
}
