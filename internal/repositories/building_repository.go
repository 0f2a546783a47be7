package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentwise/internal/listing"
	"rentwise/internal/models/db_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/ratings"
)

type BuildingRepository interface {
	Create(ctx context.Context, building *db_models.Building) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Building, error)
	FindWithRatingsByID(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error)

	// FindWithRatings returns every building matching filter with its aggregates.
	FindWithRatings(ctx context.Context, filter listing.Filter) ([]response_models.BuildingWithRatings, error)
	// PageWithRatings sorts and slices in the database and counts the full filtered set.
	PageWithRatings(ctx context.Context, params listing.Params) ([]response_models.BuildingWithRatings, int64, error)

	Autocomplete(ctx context.Context, q string, limit int) ([]response_models.BuildingSuggestion, error)
	FloorTallies(ctx context.Context, buildingID uuid.UUID) ([]ratings.FloorTally, error)

	// UpdateStatus moves the building from one status to another. It reports false when the
	// row was not in the expected status anymore.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error)
	ListByStatus(ctx context.Context, status db_models.ModerationStatus) ([]db_models.Building, error)
}

type buildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) BuildingRepository {
	return &buildingRepository{db: db}
}

// ---------- Aggregate query ----------

// approvedTallies sums every rating column per building over approved reviews only.
// COUNT(col) skips NULLs so optional columns average over the reviews that filled them in.
const approvedTallies = `
SELECT building_id,
       COUNT(*)                 AS review_count,
       SUM(overall_rating)      AS sum_overall,
       SUM(noise_rating)        AS sum_noise,
       COUNT(noise_rating)      AS count_noise,
       SUM(cleanliness_rating)  AS sum_cleanliness,
       COUNT(cleanliness_rating) AS count_cleanliness,
       SUM(maintenance_rating)  AS sum_maintenance,
       COUNT(maintenance_rating) AS count_maintenance,
       SUM(safety_rating)       AS sum_safety,
       COUNT(safety_rating)     AS count_safety,
       SUM(pest_rating)         AS sum_pest,
       COUNT(pest_rating)       AS count_pest
  FROM reviews
 WHERE status = 'approved'
 GROUP BY building_id`

const aggregateColumns = `b.id, b.created_at, b.name, b.address, b.city, b.zip_code,
       b.neighborhood, b.building_type, b.landlord_name, b.status, b.created_by,
       COALESCE(t.review_count, 0)      AS review_count,
       COALESCE(t.sum_overall, 0)       AS sum_overall,
       COALESCE(t.sum_noise, 0)         AS sum_noise,
       COALESCE(t.count_noise, 0)       AS count_noise,
       COALESCE(t.sum_cleanliness, 0)   AS sum_cleanliness,
       COALESCE(t.count_cleanliness, 0) AS count_cleanliness,
       COALESCE(t.sum_maintenance, 0)   AS sum_maintenance,
       COALESCE(t.count_maintenance, 0) AS count_maintenance,
       COALESCE(t.sum_safety, 0)        AS sum_safety,
       COALESCE(t.count_safety, 0)      AS count_safety,
       COALESCE(t.sum_pest, 0)          AS sum_pest,
       COALESCE(t.count_pest, 0)        AS count_pest,
       COALESCE(t.sum_overall::float8 / NULLIF(t.review_count, 0), 0) AS overall_avg`

// buildingRatingsRow is one row of the building + tally join.
type buildingRatingsRow struct {
	ID           uuid.UUID                  `gorm:"column:id"`
	CreatedAt    time.Time                  `gorm:"column:created_at"`
	Name         string                     `gorm:"column:name"`
	Address      string                     `gorm:"column:address"`
	City         string                     `gorm:"column:city"`
	ZipCode      string                     `gorm:"column:zip_code"`
	Neighborhood *string                    `gorm:"column:neighborhood"`
	BuildingType *string                    `gorm:"column:building_type"`
	LandlordName *string                    `gorm:"column:landlord_name"`
	Status       db_models.ModerationStatus `gorm:"column:status"`
	CreatedBy    *string                    `gorm:"column:created_by"`
	ratings.Tally
}

func (r buildingRatingsRow) toResponse() response_models.BuildingWithRatings {
	return response_models.BuildingWithRatings{
		Building: db_models.Building{
			BaseModel:    db_models.BaseModel{ID: r.ID, CreatedAt: r.CreatedAt},
			Name:         r.Name,
			Address:      r.Address,
			City:         r.City,
			ZipCode:      r.ZipCode,
			Neighborhood: r.Neighborhood,
			BuildingType: r.BuildingType,
			LandlordName: r.LandlordName,
			Status:       r.Status,
			CreatedBy:    r.CreatedBy,
		},
		Ratings: r.Tally.Ratings(),
	}
}

func toResponses(rows []buildingRatingsRow) []response_models.BuildingWithRatings {
	out := make([]response_models.BuildingWithRatings, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toResponse())
	}
	return out
}

func (r *buildingRepository) aggregateQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("buildings AS b").
		Select(aggregateColumns).
		Joins("LEFT JOIN (" + approvedTallies + ") AS t ON t.building_id = b.id")
}

func applyFilter(tx *gorm.DB, filter listing.Filter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("b.status = ?", filter.Status)
	}
	if filter.Neighborhood != nil {
		tx = tx.Where("b.neighborhood = ?", *filter.Neighborhood)
	}
	if filter.BuildingType != nil {
		tx = tx.Where("b.building_type = ?", *filter.BuildingType)
	}
	if filter.Q != "" {
		pattern := containsPattern(filter.Q)
		tx = tx.Where("(b.name ILIKE ? OR b.address ILIKE ? OR b.neighborhood ILIKE ?)", pattern, pattern, pattern)
	}
	return tx
}

// containsPattern escapes LIKE wildcards so q is matched literally.
func containsPattern(q string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + escaped + "%"
}

func orderClause(sortBy listing.SortBy) string {
	switch sortBy {
	case listing.SortReviews:
		return "review_count DESC, overall_avg DESC, b.id ASC"
	case listing.SortNewest:
		return "b.created_at DESC, b.id ASC"
	default:
		return "overall_avg DESC, review_count DESC, b.id ASC"
	}
}

// ---------- Reads ----------

func (r *buildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Building, error) {
	var building db_models.Building
	err := r.db.WithContext(ctx).First(&building, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find building: %w", err)
	}
	return &building, nil
}

func (r *buildingRepository) FindWithRatingsByID(ctx context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error) {
	var rows []buildingRatingsRow
	err := r.aggregateQuery(ctx).
		Where("b.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find building with ratings: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	result := rows[0].toResponse()
	return &result, nil
}

func (r *buildingRepository) FindWithRatings(ctx context.Context, filter listing.Filter) ([]response_models.BuildingWithRatings, error) {
	var rows []buildingRatingsRow
	if err := applyFilter(r.aggregateQuery(ctx), filter).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list buildings with ratings: %w", err)
	}
	return toResponses(rows), nil
}

func (r *buildingRepository) PageWithRatings(ctx context.Context, params listing.Params) ([]response_models.BuildingWithRatings, int64, error) {
	var total int64
	countQuery := applyFilter(r.db.WithContext(ctx).Table("buildings AS b"), params.Filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count buildings: %w", err)
	}

	var rows []buildingRatingsRow
	err := applyFilter(r.aggregateQuery(ctx), params.Filter).
		Order(orderClause(params.SortBy)).
		Limit(params.Limit).
		Offset(params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("page buildings with ratings: %w", err)
	}
	return toResponses(rows), total, nil
}

func (r *buildingRepository) Autocomplete(ctx context.Context, q string, limit int) ([]response_models.BuildingSuggestion, error) {
	suggestions := []response_models.BuildingSuggestion{}
	pattern := containsPattern(q)
	err := r.db.WithContext(ctx).
		Model(&db_models.Building{}).
		Select("id, name, address").
		Where("status = ?", db_models.StatusApproved).
		Where("(name ILIKE ? OR address ILIKE ?)", pattern, pattern).
		Order("name ASC, id ASC").
		Limit(limit).
		Scan(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("autocomplete buildings: %w", err)
	}
	return suggestions, nil
}

func (r *buildingRepository) FloorTallies(ctx context.Context, buildingID uuid.UUID) ([]ratings.FloorTally, error) {
	var rows []ratings.FloorTally
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("floor_number, COUNT(*) AS review_count, SUM(overall_rating) AS sum_overall").
		Where("building_id = ? AND status = ?", buildingID, db_models.StatusApproved).
		Group("floor_number").
		Order("floor_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("floor tallies: %w", err)
	}
	return rows, nil
}

func (r *buildingRepository) ListByStatus(ctx context.Context, status db_models.ModerationStatus) ([]db_models.Building, error) {
	buildings := []db_models.Building{}
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&buildings).Error
	if err != nil {
		return nil, fmt.Errorf("list buildings by status: %w", err)
	}
	return buildings, nil
}

// ---------- Writes ----------

func (r *buildingRepository) Create(ctx context.Context, building *db_models.Building) error {
	if err := r.db.WithContext(ctx).Create(building).Error; err != nil {
		return fmt.Errorf("create building: %w", err)
	}
	return nil
}

func (r *buildingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Building{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("update building status: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
