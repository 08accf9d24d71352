package controller

import (
	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary Add lesson
// @Description Append a lesson to a course at the next order position
// @Tags lessons
// @Accept json
// @Produce json
// @Param courseId path string true "Course display ID"
// @Param lesson body service.AddLessonInput true "Lesson fields"
// @Success 201 {object} util.Response
// @Router /api/courses/{courseId}/lessons [post]
func (c *LessonController) AddLesson(ctx *gin.Context) {
	var input service.AddLessonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.AddLessonToCourse(ctx.Request.Context(), ctx.Param("courseId"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Course lessons
// @Description List a course's lessons in order
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course display ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/lessons [get]
func (c *LessonController) ByCourse(ctx *gin.Context) {
	lessons, err := c.LessonService.ByCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lessons": lessons, "total": len(lessons)})
}

// @Summary Delete lesson
// @Description Remove one lesson by display ID
// @Tags lessons
// @Produce json
// @Param lessonId path string true "Lesson display ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	deleted, err := c.LessonService.DeleteLesson(ctx.Request.Context(), ctx.Param("lessonId"))
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
