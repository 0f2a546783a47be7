package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentwise/internal/models/request_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/services"
	"rentwise/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List approved reviews of a building
// @Tags Reviews
// @Produce json
// @Param id path string true "Building ID"
// @Param sortBy query string false "newest | highest | lowest" default(newest)
// @Success 200 {object} utils.APIResponse
// @Router /api/buildings/{id}/reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	// an id that cannot name a building lists no reviews, same as an unknown one
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondSuccess(c, []response_models.ReviewWithDetails{}, "Reviews fetched successfully")
		return
	}

	reviews, err := r.reviewService.ListReviews(c.Request.Context(), id, c.Query("sortBy"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// CreateReview godoc
// @Summary Submit a review for moderation
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/buildings/{id}/reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, utils.ErrBuildingNotFound)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), id, req, caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review submitted for moderation")
}
