// Package ratings turns grouped review sums into the averages shown to users.
//
// The store only ever returns sums and non-null counts per rating column, produced by a
// single GROUP BY over approved reviews. Averages are derived here so that the zero-default
// policy lives in one place: a column with no values averages to 0, never null.
package ratings

import (
	"math"

	"github.com/google/uuid"
)

// Ratings is the aggregate view of one building's approved reviews.
type Ratings struct {
	ReviewCount       int64   `json:"reviewCount"`
	OverallRating     float64 `json:"overallRating"`
	NoiseRating       float64 `json:"noiseRating"`
	CleanlinessRating float64 `json:"cleanlinessRating"`
	MaintenanceRating float64 `json:"maintenanceRating"`
	SafetyRating      float64 `json:"safetyRating"`
	PestRating        float64 `json:"pestRating"`
}

// Tally is one row of the grouped aggregate query.
type Tally struct {
	BuildingID       uuid.UUID `gorm:"column:building_id"`
	ReviewCount      int64     `gorm:"column:review_count"`
	SumOverall       int64     `gorm:"column:sum_overall"`
	SumNoise         int64     `gorm:"column:sum_noise"`
	CountNoise       int64     `gorm:"column:count_noise"`
	SumCleanliness   int64     `gorm:"column:sum_cleanliness"`
	CountCleanliness int64     `gorm:"column:count_cleanliness"`
	SumMaintenance   int64     `gorm:"column:sum_maintenance"`
	CountMaintenance int64     `gorm:"column:count_maintenance"`
	SumSafety        int64     `gorm:"column:sum_safety"`
	CountSafety      int64     `gorm:"column:count_safety"`
	SumPest          int64     `gorm:"column:sum_pest"`
	CountPest        int64     `gorm:"column:count_pest"`
}

// Ratings derives the averages. overall_rating is NOT NULL so its count is ReviewCount.
func (t Tally) Ratings() Ratings {
	return Ratings{
		ReviewCount:       t.ReviewCount,
		OverallRating:     mean(t.SumOverall, t.ReviewCount),
		NoiseRating:       mean(t.SumNoise, t.CountNoise),
		CleanlinessRating: mean(t.SumCleanliness, t.CountCleanliness),
		MaintenanceRating: mean(t.SumMaintenance, t.CountMaintenance),
		SafetyRating:      mean(t.SumSafety, t.CountSafety),
		PestRating:        mean(t.SumPest, t.CountPest),
	}
}

func mean(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// FloorTally is one row of the per-floor grouped query.
type FloorTally struct {
	FloorNumber int   `gorm:"column:floor_number"`
	ReviewCount int64 `gorm:"column:review_count"`
	SumOverall  int64 `gorm:"column:sum_overall"`
}

// FloorInsight is the per-floor overall average, rounded to one decimal.
type FloorInsight struct {
	Floor         int     `json:"floor"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

func (f FloorTally) Insight() FloorInsight {
	return FloorInsight{
		Floor:         f.FloorNumber,
		AverageRating: math.Round(mean(f.SumOverall, f.ReviewCount)*10) / 10,
		ReviewCount:   f.ReviewCount,
	}
}
