package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentwise/internal/models/db_models"
	"rentwise/internal/models/request_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/repositories"
	"rentwise/internal/validation"
	"rentwise/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, buildingID uuid.UUID, req request_models.CreateReviewRequest, caller request_models.Caller) (*response_models.ReviewWithDetails, error)
	ListReviews(ctx context.Context, buildingID uuid.UUID, sortBy string) ([]response_models.ReviewWithDetails, error)
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepositoryInterface
	buildingRepo repositories.BuildingRepository
	userRepo     repositories.UserRepositoryInterface
	users        UserServiceInterface
	validator    *validation.Validator
	logger       *zap.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	buildingRepo repositories.BuildingRepository,
	userRepo repositories.UserRepositoryInterface,
	users UserServiceInterface,
	validator *validation.Validator,
	logger *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		buildingRepo: buildingRepo,
		userRepo:     userRepo,
		users:        users,
		validator:    validator,
		logger:       logger,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, buildingID uuid.UUID, req request_models.CreateReviewRequest, caller request_models.Caller) (*response_models.ReviewWithDetails, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	building, err := s.buildingRepo.FindByID(ctx, buildingID)
	if err != nil {
		s.logger.Error("find building for review", zap.String("building_id", buildingID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if building == nil || building.Status != db_models.StatusApproved {
		return nil, utils.ErrBuildingNotFound
	}

	if err := s.users.SyncCaller(ctx, caller); err != nil {
		return nil, err
	}

	isAnonymous := true
	if req.IsAnonymous != nil {
		isAnonymous = *req.IsAnonymous
	}

	review := &db_models.Review{
		BuildingID:        buildingID,
		UserID:            caller.UserID,
		OverallRating:     req.OverallRating,
		FloorNumber:       req.FloorNumber,
		NoiseRating:       req.NoiseRating,
		CleanlinessRating: req.CleanlinessRating,
		MaintenanceRating: req.MaintenanceRating,
		SafetyRating:      req.SafetyRating,
		PestRating:        req.PestRating,
		ReviewText:        req.ReviewText,
		IsAnonymous:       isAnonymous,
		Status:            db_models.StatusPending,
	}
	if err := s.reviewRepo.CreateWithPhotos(ctx, review, req.PhotoURLs); err != nil {
		s.logger.Error("create review", zap.String("building_id", buildingID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ReviewWithDetails{
		Review: *review,
		Photos: nonNilPhotos(review.Photos),
	}, nil
}

// ListReviews returns the approved reviews of a building. Authors are loaded in one batch
// and never exposed for anonymous reviews.
func (s *ReviewService) ListReviews(ctx context.Context, buildingID uuid.UUID, sortBy string) ([]response_models.ReviewWithDetails, error) {
	reviews, err := s.reviewRepo.ListApprovedByBuilding(ctx, buildingID, parseReviewSort(sortBy))
	if err != nil {
		s.logger.Error("list reviews", zap.String("building_id", buildingID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	var authorIDs []string
	seen := make(map[string]bool)
	for _, r := range reviews {
		if r.IsAnonymous || seen[r.UserID] {
			continue
		}
		seen[r.UserID] = true
		authorIDs = append(authorIDs, r.UserID)
	}

	authors, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		s.logger.Error("load review authors", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ReviewWithDetails, 0, len(reviews))
	for _, r := range reviews {
		details := response_models.ReviewWithDetails{
			Review: r,
			Photos: nonNilPhotos(r.Photos),
		}
		if !r.IsAnonymous {
			if u, ok := authors[r.UserID]; ok {
				details.UserName = displayName(u)
				details.UserProfileImage = u.ProfileImageURL
			}
		}
		out = append(out, details)
	}
	return out, nil
}

func parseReviewSort(sortBy string) repositories.ReviewSort {
	switch repositories.ReviewSort(sortBy) {
	case repositories.ReviewSortHighest, repositories.ReviewSortLowest:
		return repositories.ReviewSort(sortBy)
	default:
		return repositories.ReviewSortNewest
	}
}

func nonNilPhotos(photos []db_models.ReviewPhoto) []db_models.ReviewPhoto {
	if photos == nil {
		return []db_models.ReviewPhoto{}
	}
	return photos
}
