package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentwise/internal/listing"
	"rentwise/internal/models/db_models"
	"rentwise/internal/models/request_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/ratings"
	"rentwise/internal/repositories"
	"rentwise/internal/validation"
	mem "rentwise/pkg/memcache"
	"rentwise/pkg/utils"
)

const (
	autocompleteMinLength = 2
	autocompleteLimit     = 8
	defaultCity           = "New York"
)

type BuildingServiceInterface interface {
	ListBuildings(ctx context.Context, raw request_models.ListBuildingsQuery) (response_models.PaginatedBuildings, error)
	GetBuilding(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error)
	GetBuildingForAdmin(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error)
	Autocomplete(ctx context.Context, q string) ([]response_models.BuildingSuggestion, error)
	CreateBuilding(ctx context.Context, req request_models.CreateBuildingRequest, caller request_models.Caller) (*db_models.Building, error)
	FloorInsights(ctx context.Context, id uuid.UUID) ([]ratings.FloorInsight, error)
	ReferenceData() response_models.ReferenceData
}

type BuildingService struct {
	buildingRepo repositories.BuildingRepository
	engine       listing.Engine
	limits       listing.Limits
	cache        mem.BuildingCache
	users        UserServiceInterface
	validator    *validation.Validator
	logger       *zap.Logger
}

func NewBuildingService(
	buildingRepo repositories.BuildingRepository,
	engine listing.Engine,
	limits listing.Limits,
	cache mem.BuildingCache,
	users UserServiceInterface,
	validator *validation.Validator,
	logger *zap.Logger,
) BuildingServiceInterface {
	return &BuildingService{
		buildingRepo: buildingRepo,
		engine:       engine,
		limits:       limits,
		cache:        cache,
		users:        users,
		validator:    validator,
		logger:       logger,
	}
}

func (s *BuildingService) ListBuildings(ctx context.Context, raw request_models.ListBuildingsQuery) (response_models.PaginatedBuildings, error) {
	params, err := listing.ParseParams(raw, s.limits)
	if err != nil {
		return response_models.PaginatedBuildings{}, err
	}

	page, err := s.engine.List(ctx, params)
	if err != nil {
		s.logger.Error("list buildings", zap.Error(err))
		return response_models.PaginatedBuildings{}, utils.ErrDatabaseError
	}
	return page, nil
}

// GetBuilding is the public read: only approved buildings are visible.
func (s *BuildingService) GetBuilding(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error) {
	if cached, ok := s.cache.Get(id); ok {
		return &cached, nil
	}

	building, err := s.findWithRatings(ctx, id)
	if err != nil {
		return nil, err
	}
	if building.Status != db_models.StatusApproved {
		return nil, utils.ErrBuildingNotFound
	}

	s.cache.Set(id, *building)
	return building, nil
}

func (s *BuildingService) GetBuildingForAdmin(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error) {
	return s.findWithRatings(ctx, id)
}

func (s *BuildingService) findWithRatings(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error) {
	building, err := s.buildingRepo.FindWithRatingsByID(ctx, id)
	if err != nil {
		s.logger.Error("get building", zap.String("building_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if building == nil {
		return nil, utils.ErrBuildingNotFound
	}
	return building, nil
}

func (s *BuildingService) Autocomplete(ctx context.Context, q string) ([]response_models.BuildingSuggestion, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < autocompleteMinLength {
		return []response_models.BuildingSuggestion{}, nil
	}

	suggestions, err := s.buildingRepo.Autocomplete(ctx, q, autocompleteLimit)
	if err != nil {
		s.logger.Error("autocomplete", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return suggestions, nil
}

func (s *BuildingService) CreateBuilding(ctx context.Context, req request_models.CreateBuildingRequest, caller request_models.Caller) (*db_models.Building, error) {
	req = normalizeBuilding(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if err := s.users.SyncCaller(ctx, caller); err != nil {
		return nil, err
	}

	building := &db_models.Building{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		ZipCode:      req.ZipCode,
		Neighborhood: req.Neighborhood,
		BuildingType: req.BuildingType,
		LandlordName: req.LandlordName,
		Status:       db_models.StatusPending,
		CreatedBy:    &caller.UserID,
	}
	if err := s.buildingRepo.Create(ctx, building); err != nil {
		s.logger.Error("create building", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return building, nil
}

// normalizeBuilding trims text fields, drops blank optionals and fills the default city.
func normalizeBuilding(req request_models.CreateBuildingRequest) request_models.CreateBuildingRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.ZipCode = strings.TrimSpace(req.ZipCode)
	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		req.City = defaultCity
	}
	req.Neighborhood = optionalPtr(req.Neighborhood)
	req.BuildingType = optionalPtr(req.BuildingType)
	req.LandlordName = optionalPtr(req.LandlordName)
	return req
}

func optionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}

func (s *BuildingService) FloorInsights(ctx context.Context, id uuid.UUID) ([]ratings.FloorInsight, error) {
	if _, err := s.GetBuilding(ctx, id); err != nil {
		return nil, err
	}

	tallies, err := s.buildingRepo.FloorTallies(ctx, id)
	if err != nil {
		s.logger.Error("floor insights", zap.String("building_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	insights := make([]ratings.FloorInsight, 0, len(tallies))
	for _, t := range tallies {
		insights = append(insights, t.Insight())
	}
	return insights, nil
}

func (s *BuildingService) ReferenceData() response_models.ReferenceData {
	return response_models.ReferenceData{
		Neighborhoods: append([]string(nil), db_models.Neighborhoods...),
		BuildingTypes: append([]string(nil), db_models.BuildingTypes...),
	}
}
