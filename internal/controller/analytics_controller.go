package controller

import (
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Course enrollment stats
// @Description Per-category totals, enrollment counts and average prices
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/courses [get]
func (c *AnalyticsController) CourseEnrollmentStats(ctx *gin.Context) {
	stats, err := c.AnalyticsService.CourseEnrollmentStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary Student performance
// @Description Average graded score and distinct courses per student
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/students [get]
func (c *AnalyticsController) StudentPerformance(ctx *gin.Context) {
	performance, err := c.AnalyticsService.StudentPerformance(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, performance)
}

// @Summary Instructor analytics
// @Description Course counts, student totals and revenue per instructor
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/instructors [get]
func (c *AnalyticsController) InstructorAnalytics(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.InstructorAnalytics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

// @Summary Advanced analytics
// @Description Monthly enrollment trends, category popularity and engagement
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/advanced [get]
func (c *AnalyticsController) AdvancedAnalytics(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.AdvancedAnalytics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

type explainRequest struct {
	Collection string `json:"collection"`
	Filter     bson.M `json:"filter"`
}

// @Summary Explain query
// @Description Run a find through the query planner and return execution stats
// @Tags analytics
// @Accept json
// @Produce json
// @Param query body explainRequest true "Collection and filter"
// @Success 200 {object} util.Response
// @Router /api/analytics/explain [post]
func (c *AnalyticsController) Explain(ctx *gin.Context) {
	var req explainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Collection == "" {
		util.BadRequest(ctx, "collection is required")
		return
	}
	if req.Filter == nil {
		req.Filter = bson.M{}
	}

	plan, err := repository.ExplainFind(ctx.Request.Context(), c.AnalyticsService.AnalyticsRepo.DB, req.Collection, req.Filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}
