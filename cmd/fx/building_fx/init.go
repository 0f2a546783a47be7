package building_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentwise/internal/config"
	"rentwise/internal/listing"
	"rentwise/internal/repositories"
	"rentwise/internal/services"
	"rentwise/internal/validation"
	mem "rentwise/pkg/memcache"
)

var Module = fx.Provide(
	provideBuildingRepo, provideUserRepo, provideUserService, provideListingEngine, provideBuildingService,
)

func provideBuildingRepo(db *gorm.DB) repositories.BuildingRepository {
	return repositories.NewBuildingRepository(db)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, logger)
}

func provideListingEngine(cfg *config.Config, buildingRepo repositories.BuildingRepository) listing.Engine {
	if cfg.Listing.Engine == config.EngineSQL {
		return listing.NewSQLEngine(buildingRepo)
	}
	return listing.NewMemoryEngine(buildingRepo)
}

func provideBuildingService(
	cfg *config.Config,
	buildingRepo repositories.BuildingRepository,
	engine listing.Engine,
	cache mem.BuildingCache,
	users services.UserServiceInterface,
	validator *validation.Validator,
	logger *zap.Logger,
) services.BuildingServiceInterface {
	limits := listing.Limits{DefaultLimit: cfg.Listing.DefaultLimit, MaxLimit: cfg.Listing.MaxLimit}
	return services.NewBuildingService(buildingRepo, engine, limits, cache, users, validator, logger)
}
