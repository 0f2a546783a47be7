package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dbm "rentwise/internal/models/db_models"
	resp "rentwise/internal/models/response_models"
	"rentwise/internal/repositories"
	"rentwise/pkg/utils"
)

type DashboardService interface {
	GetAdminStats(ctx context.Context) (*resp.AdminStats, error)
}

type dashboardService struct {
	repo   repositories.DashboardRepository
	logger *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// GetAdminStats counts with the same status scopes as the public listing:
// totals are approved rows only.
func (s *dashboardService) GetAdminStats(ctx context.Context) (*resp.AdminStats, error) {
	var stats resp.AdminStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalBuildings, err = s.repo.CountBuildings(gctx, dbm.StatusApproved)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingBuildings, err = s.repo.CountBuildings(gctx, dbm.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalReviews, err = s.repo.CountReviews(gctx, dbm.StatusApproved)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingReviews, err = s.repo.CountReviews(gctx, dbm.StatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("admin stats", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &stats, nil
}
