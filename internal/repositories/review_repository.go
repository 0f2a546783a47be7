package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentwise/internal/models/db_models"
)

type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
)

type ReviewRepositoryInterface interface {
	// CreateWithPhotos inserts the review and its photos atomically.
	CreateWithPhotos(ctx context.Context, review *db_models.Review, photoURLs []string) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	// ListApprovedByBuilding returns approved reviews with their photos preloaded.
	ListApprovedByBuilding(ctx context.Context, buildingID uuid.UUID, sortBy ReviewSort) ([]db_models.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error)
	ListByStatus(ctx context.Context, status db_models.ModerationStatus) ([]db_models.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateWithPhotos(ctx context.Context, review *db_models.Review, photoURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Photos").Create(review).Error; err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		if len(photoURLs) == 0 {
			review.Photos = []db_models.ReviewPhoto{}
			return nil
		}

		photos := make([]db_models.ReviewPhoto, 0, len(photoURLs))
		for _, url := range photoURLs {
			photos = append(photos, db_models.ReviewPhoto{ReviewID: review.ID, ImageURL: url})
		}
		if err := tx.Create(&photos).Error; err != nil {
			return fmt.Errorf("create review photos: %w", err)
		}
		review.Photos = photos
		return nil
	})
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func reviewOrder(sortBy ReviewSort) string {
	switch sortBy {
	case ReviewSortHighest:
		return "overall_rating DESC, created_at DESC, id ASC"
	case ReviewSortLowest:
		return "overall_rating ASC, created_at DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

func (r *ReviewRepository) ListApprovedByBuilding(ctx context.Context, buildingID uuid.UUID, sortBy ReviewSort) ([]db_models.Review, error) {
	reviews := []db_models.Review{}
	err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("building_id = ? AND status = ?", buildingID, db_models.StatusApproved).
		Order(reviewOrder(sortBy)).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("update review status: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *ReviewRepository) ListByStatus(ctx context.Context, status db_models.ModerationStatus) ([]db_models.Review, error) {
	reviews := []db_models.Review{}
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews by status: %w", err)
	}
	return reviews, nil
}
