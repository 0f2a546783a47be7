package controllers

import (
	"github.com/gin-gonic/gin"

	"rentwise/internal/models/db_models"
	"rentwise/internal/services"
	"rentwise/pkg/utils"
)

type AdminController struct {
	dashboardService  services.DashboardService
	moderationService services.ModerationServiceInterface
	buildingService   services.BuildingServiceInterface
}

func NewAdminController(
	dashboardService services.DashboardService,
	moderationService services.ModerationServiceInterface,
	buildingService services.BuildingServiceInterface,
) *AdminController {
	return &AdminController{
		dashboardService:  dashboardService,
		moderationService: moderationService,
		buildingService:   buildingService,
	}
}

// GetStats godoc
// @Summary Moderation dashboard counters
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/stats [get]
func (a *AdminController) GetStats(c *gin.Context) {
	stats, err := a.dashboardService.GetAdminStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

// ListBuildings is the admin listing; unlike the public one it honours ?status=.
func (a *AdminController) ListBuildings(c *gin.Context) {
	query := listingQuery(c)
	query.Status = c.Query("status")

	page, err := a.buildingService.ListBuildings(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Buildings fetched successfully")
}

func (a *AdminController) GetBuilding(c *gin.Context) {
	id, ok := pathID(c, utils.ErrBuildingNotFound)
	if !ok {
		return
	}

	building, err := a.buildingService.GetBuildingForAdmin(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, building, "Building fetched successfully")
}

func (a *AdminController) PendingBuildings(c *gin.Context) {
	buildings, err := a.moderationService.ListPendingBuildings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, buildings, "")
}

func (a *AdminController) PendingReviews(c *gin.Context) {
	reviews, err := a.moderationService.ListPendingReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "")
}

func (a *AdminController) ApproveBuilding(c *gin.Context) {
	a.setBuildingStatus(c, db_models.StatusApproved, "Building approved")
}

func (a *AdminController) DenyBuilding(c *gin.Context) {
	a.setBuildingStatus(c, db_models.StatusDenied, "Building denied")
}

func (a *AdminController) ApproveReview(c *gin.Context) {
	a.setReviewStatus(c, db_models.StatusApproved, "Review approved")
}

func (a *AdminController) DenyReview(c *gin.Context) {
	a.setReviewStatus(c, db_models.StatusDenied, "Review denied")
}

func (a *AdminController) setBuildingStatus(c *gin.Context, status db_models.ModerationStatus, message string) {
	id, ok := pathID(c, utils.ErrBuildingNotFound)
	if !ok {
		return
	}

	building, err := a.moderationService.SetBuildingStatus(c.Request.Context(), id, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, building, message)
}

func (a *AdminController) setReviewStatus(c *gin.Context, status db_models.ModerationStatus, message string) {
	id, ok := pathID(c, utils.ErrReviewNotFound)
	if !ok {
		return
	}

	review, err := a.moderationService.SetReviewStatus(c.Request.Context(), id, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, message)
}
