package review_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentwise/internal/api/controllers"
	"rentwise/internal/repositories"
	"rentwise/internal/services"
	"rentwise/internal/validation"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	buildingRepo repositories.BuildingRepository,
	userRepo repositories.UserRepositoryInterface,
	users services.UserServiceInterface,
	validator *validation.Validator,
	logger *zap.Logger,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, buildingRepo, userRepo, users, validator, logger)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
