package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentwise/internal/models/db_models"
	"rentwise/internal/repositories"
	mem "rentwise/pkg/memcache"
	"rentwise/pkg/utils"
)

type ModerationServiceInterface interface {
	SetBuildingStatus(ctx context.Context, id uuid.UUID, status db_models.ModerationStatus) (*db_models.Building, error)
	SetReviewStatus(ctx context.Context, id uuid.UUID, status db_models.ModerationStatus) (*db_models.Review, error)
	ListPendingBuildings(ctx context.Context) ([]db_models.Building, error)
	ListPendingReviews(ctx context.Context) ([]db_models.Review, error)
}

type ModerationService struct {
	buildingRepo repositories.BuildingRepository
	reviewRepo   repositories.ReviewRepositoryInterface
	cache        mem.BuildingCache
	logger       *zap.Logger
}

func NewModerationService(
	buildingRepo repositories.BuildingRepository,
	reviewRepo repositories.ReviewRepositoryInterface,
	cache mem.BuildingCache,
	logger *zap.Logger,
) ModerationServiceInterface {
	return &ModerationService{
		buildingRepo: buildingRepo,
		reviewRepo:   reviewRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *ModerationService) SetBuildingStatus(ctx context.Context, id uuid.UUID, status db_models.ModerationStatus) (*db_models.Building, error) {
	building, err := s.buildingRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find building for moderation", zap.String("building_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if building == nil {
		return nil, utils.ErrBuildingNotFound
	}
	if !building.Status.CanTransitionTo(status) {
		return nil, utils.ErrInvalidTransition
	}

	updated, err := s.buildingRepo.UpdateStatus(ctx, id, building.Status, status)
	if err != nil {
		s.logger.Error("update building status", zap.String("building_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if !updated {
		// moderated concurrently by someone else
		return nil, utils.ErrInvalidTransition
	}

	s.cache.Invalidate(id)
	s.logger.Info("building moderated",
		zap.String("building_id", id.String()),
		zap.String("from", string(building.Status)),
		zap.String("to", string(status)),
	)

	building.Status = status
	return building, nil
}

func (s *ModerationService) SetReviewStatus(ctx context.Context, id uuid.UUID, status db_models.ModerationStatus) (*db_models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find review for moderation", zap.String("review_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	if !review.Status.CanTransitionTo(status) {
		return nil, utils.ErrInvalidTransition
	}

	updated, err := s.reviewRepo.UpdateStatus(ctx, id, review.Status, status)
	if err != nil {
		s.logger.Error("update review status", zap.String("review_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if !updated {
		return nil, utils.ErrInvalidTransition
	}

	// the building's aggregates change with the set of approved reviews
	s.cache.Invalidate(review.BuildingID)
	s.logger.Info("review moderated",
		zap.String("review_id", id.String()),
		zap.String("building_id", review.BuildingID.String()),
		zap.String("from", string(review.Status)),
		zap.String("to", string(status)),
	)

	review.Status = status
	return review, nil
}

func (s *ModerationService) ListPendingBuildings(ctx context.Context) ([]db_models.Building, error) {
	buildings, err := s.buildingRepo.ListByStatus(ctx, db_models.StatusPending)
	if err != nil {
		s.logger.Error("list pending buildings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return buildings, nil
}

func (s *ModerationService) ListPendingReviews(ctx context.Context) ([]db_models.Review, error) {
	reviews, err := s.reviewRepo.ListByStatus(ctx, db_models.StatusPending)
	if err != nil {
		s.logger.Error("list pending reviews", zap.String("entity", "review"), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}
