package controller

import (
	"strconv"
	"strings"

	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService    *service.CourseService
	AnalyticsService *service.AnalyticsService
}

func NewCourseController(courseService *service.CourseService, analyticsService *service.AnalyticsService) *CourseController {
	return &CourseController{CourseService: courseService, AnalyticsService: analyticsService}
}

// @Summary Create course
// @Description Create a new unpublished course for an existing instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param course body service.CreateCourseInput true "Course fields"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var input service.CreateCourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary List courses
// @Description List courses filtered by category, tags or price range
// @Tags courses
// @Produce json
// @Param category query string false "Category filter"
// @Param tags query string false "Comma-separated tag filter"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	if category := ctx.Query("category"); category != "" {
		courses, err := c.CourseService.ByCategory(rctx, category)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"courses": courses, "total": len(courses)})
		return
	}

	if tags := ctx.Query("tags"); tags != "" {
		courses, err := c.CourseService.WithTags(rctx, strings.Split(tags, ","))
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"courses": courses, "total": len(courses)})
		return
	}

	min, err := strconv.ParseFloat(ctx.DefaultQuery("minPrice", "0"), 64)
	if err != nil {
		util.BadRequest(ctx, "minPrice must be a number")
		return
	}
	max, err := strconv.ParseFloat(ctx.DefaultQuery("maxPrice", "1000000"), 64)
	if err != nil {
		util.BadRequest(ctx, "maxPrice must be a number")
		return
	}

	courses, err := c.CourseService.ByPriceRange(rctx, min, max)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses, "total": len(courses)})
}

// @Summary Search courses
// @Description Case-insensitive partial match on course titles
// @Tags courses
// @Produce json
// @Param q query string true "Title fragment"
// @Success 200 {object} util.Response
// @Router /api/courses/search [get]
func (c *CourseController) Search(ctx *gin.Context) {
	q := ctx.Query("q")
	if q == "" {
		util.BadRequest(ctx, "q is required")
		return
	}

	courses, err := c.CourseService.SearchByTitle(ctx.Request.Context(), q)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses, "total": len(courses)})
}

// @Summary Course detail
// @Description Course document joined with its instructor
// @Tags courses
// @Produce json
// @Param courseId path string true "Course display ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) CourseDetail(ctx *gin.Context) {
	detail, err := c.AnalyticsService.CourseDetail(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if detail == nil {
		util.NotFoundResponse(ctx)
		return
	}
	util.Success(ctx, detail)
}

// @Summary Enrolled students
// @Description Students enrolled in a course, joined from enrollments
// @Tags courses
// @Produce json
// @Param courseId path string true "Course display ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/students [get]
func (c *CourseController) EnrolledStudents(ctx *gin.Context) {
	students, err := c.AnalyticsService.EnrolledStudents(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"students": students, "total": len(students)})
}

// @Summary Publish course
// @Description Mark a course as published
// @Tags courses
// @Produce json
// @Param courseId path string true "Course display ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/publish [put]
func (c *CourseController) Publish(ctx *gin.Context) {
	matched, err := c.CourseService.MarkPublished(ctx.Request.Context(), ctx.Param("courseId"))
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

type addTagsRequest struct {
	Tags []string `json:"tags"`
}

// @Summary Add tags
// @Description Add tags to a course without duplicating existing ones
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course display ID"
// @Param tags body addTagsRequest true "Tags to add"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/tags [post]
func (c *CourseController) AddTags(ctx *gin.Context) {
	var req addTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	modified, err := c.CourseService.AddTags(ctx.Request.Context(), ctx.Param("courseId"), req.Tags)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"modified": modified})
}
