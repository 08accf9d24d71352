package controller

import (
	"eduhub_backend/internal/service"
	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController covers export, seeding and database introspection.
type AdminController struct {
	ExportService *service.ExportService
	SeedService   *service.SeedService
}

func NewAdminController(exportService *service.ExportService, seedService *service.SeedService) *AdminController {
	return &AdminController{ExportService: exportService, SeedService: seedService}
}

// @Summary Export database
// @Description Dump every collection into one JSON file on the configured storage
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/export [post]
func (c *AdminController) Export(ctx *gin.Context) {
	file, counts, err := c.ExportService.ExportAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"file": file, "counts": counts})
}

// @Summary Seed sample data
// @Description Clear all collections and repopulate them with sample data
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/seed [post]
func (c *AdminController) Seed(ctx *gin.Context) {
	counts, err := c.SeedService.Populate(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"counts": counts})
}

// @Summary Database info
// @Description Collection names with document counts and sizes
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/info [get]
func (c *AdminController) DatabaseInfo(ctx *gin.Context) {
	info, err := c.ExportService.DatabaseInfo(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, info)
}
