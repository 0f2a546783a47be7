package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentwise/internal/api/controllers"
	"rentwise/internal/config"
	"rentwise/pkg/middleware"
)

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	buildingController *controllers.BuildingController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController,
) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	RegisterRoutes(r, []byte(cfg.Auth.JWTSecret), cfg.Auth.AdminRole, buildingController, reviewController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	secret []byte,
	adminRole string,
	buildingController *controllers.BuildingController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController) {

	authenticated := middleware.JWTAuthMiddleware(secret)

	apiGroup := r.Group("/api")
	apiGroup.GET("/meta", buildingController.ReferenceData)

	buildingsGroup := apiGroup.Group("/buildings")
	buildingsGroup.GET("", buildingController.ListBuildings)
	buildingsGroup.GET("/autocomplete", buildingController.Autocomplete)
	buildingsGroup.GET("/:id", buildingController.GetBuilding)
	buildingsGroup.GET("/:id/floor-insights", buildingController.FloorInsights)
	buildingsGroup.GET("/:id/reviews", reviewController.ListReviews)
	buildingsGroup.POST("", authenticated, buildingController.CreateBuilding)
	buildingsGroup.POST("/:id/reviews", authenticated, reviewController.CreateReview)

	adminGroup := apiGroup.Group("/admin", authenticated, middleware.RoleMiddleware(adminRole))
	adminGroup.GET("/stats", adminController.GetStats)
	adminGroup.GET("/buildings", adminController.ListBuildings)
	adminGroup.GET("/buildings/pending", adminController.PendingBuildings)
	adminGroup.GET("/buildings/:id", adminController.GetBuilding)
	adminGroup.POST("/buildings/:id/approve", adminController.ApproveBuilding)
	adminGroup.POST("/buildings/:id/deny", adminController.DenyBuilding)
	adminGroup.GET("/reviews/pending", adminController.PendingReviews)
	adminGroup.POST("/reviews/:id/approve", adminController.ApproveReview)
	adminGroup.POST("/reviews/:id/deny", adminController.DenyReview)
}
