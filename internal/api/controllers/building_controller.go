package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwise/internal/models/request_models"
	"rentwise/internal/services"
	"rentwise/pkg/utils"
)

type BuildingController struct {
	buildingService services.BuildingServiceInterface
}

func NewBuildingController(buildingService services.BuildingServiceInterface) *BuildingController {
	return &BuildingController{buildingService: buildingService}
}

// ListBuildings godoc
// @Summary List approved buildings
// @Description Filter, sort and paginate approved buildings with their aggregated ratings
// @Tags Buildings
// @Produce json
// @Param q query string false "Substring of name, address or neighborhood"
// @Param neighborhood query string false "Neighborhood or all"
// @Param buildingType query string false "Building type or all"
// @Param sortBy query string false "rating | reviews | newest" default(rating)
// @Param limit query int false "Page size" default(12) minimum(1) maximum(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/buildings [get]
func (b *BuildingController) ListBuildings(c *gin.Context) {
	page, err := b.buildingService.ListBuildings(c.Request.Context(), listingQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Buildings fetched successfully")
}

// GetBuilding godoc
// @Summary Get a building
// @Tags Buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/buildings/{id} [get]
func (b *BuildingController) GetBuilding(c *gin.Context) {
	id, ok := pathID(c, utils.ErrBuildingNotFound)
	if !ok {
		return
	}

	building, err := b.buildingService.GetBuilding(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, building, "Building fetched successfully")
}

// Autocomplete godoc
// @Summary Building name/address suggestions
// @Tags Buildings
// @Produce json
// @Param q query string true "At least 2 characters"
// @Success 200 {object} utils.APIResponse
// @Router /api/buildings/autocomplete [get]
func (b *BuildingController) Autocomplete(c *gin.Context) {
	suggestions, err := b.buildingService.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "")
}

// CreateBuilding godoc
// @Summary Submit a building for moderation
// @Tags Buildings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBuildingRequest true "Building payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/buildings [post]
func (b *BuildingController) CreateBuilding(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req request_models.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	building, err := b.buildingService.CreateBuilding(c.Request.Context(), req, caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, building, "Building submitted for review")
}

func (b *BuildingController) FloorInsights(c *gin.Context) {
	id, ok := pathID(c, utils.ErrBuildingNotFound)
	if !ok {
		return
	}

	insights, err := b.buildingService.FloorInsights(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insights, "")
}

func (b *BuildingController) ReferenceData(c *gin.Context) {
	utils.RespondSuccess(c, b.buildingService.ReferenceData(), "")
}
