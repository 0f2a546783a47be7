package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "rentwise/internal/models/db_models"
)

// DashboardRepository backs the admin stats counters.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountBuildings(ctx context.Context, status dbm.ModerationStatus) (int64, error)
	CountReviews(ctx context.Context, status dbm.ModerationStatus) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Counts ----------
func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountBuildings(ctx context.Context, status dbm.ModerationStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Building{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountReviews(ctx context.Context, status dbm.ModerationStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
