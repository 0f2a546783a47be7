package listing

import (
	"strconv"
	"strings"

	"rentwise/internal/models/db_models"
	"rentwise/internal/models/request_models"
	"rentwise/pkg/utils"
)

type SortBy string

const (
	SortRating  SortBy = "rating"
	SortReviews SortBy = "reviews"
	SortNewest  SortBy = "newest"
)

// allFilter disables the status, neighborhood and building type filters.
const allFilter = "all"

// Filter restricts which buildings enter the listing.
type Filter struct {
	Q            string
	Neighborhood *string
	BuildingType *string
	Status       db_models.ModerationStatus
}

type Params struct {
	Filter
	SortBy SortBy
	Limit  int
	Offset int
}

type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

// ParseParams validates raw listing parameters. Bad limit/offset values are rejected rather than clamped.
func ParseParams(raw request_models.ListBuildingsQuery, limits Limits) (Params, error) {
	p := Params{
		Filter: Filter{
			Q:      strings.TrimSpace(raw.Q),
			Status: db_models.StatusApproved,
		},
		SortBy: SortRating,
		Limit:  limits.DefaultLimit,
	}

	switch raw.Status {
	case "":
	case allFilter:
		p.Status = ""
	default:
		status, err := db_models.ParseModerationStatus(raw.Status)
		if err != nil {
			return Params{}, utils.InvalidQuery("status must be all, pending, approved or denied")
		}
		p.Status = status
	}

	if n := strings.TrimSpace(raw.Neighborhood); n != "" && n != allFilter {
		if !db_models.IsNeighborhood(n) {
			return Params{}, utils.InvalidQuery("unknown neighborhood %q", n)
		}
		p.Neighborhood = &n
	}

	if bt := strings.TrimSpace(raw.BuildingType); bt != "" && bt != allFilter {
		if !db_models.IsBuildingType(bt) {
			return Params{}, utils.InvalidQuery("unknown building type %q", bt)
		}
		p.BuildingType = &bt
	}

	switch SortBy(raw.SortBy) {
	case "":
	case SortRating, SortReviews, SortNewest:
		p.SortBy = SortBy(raw.SortBy)
	default:
		return Params{}, utils.InvalidQuery("sortBy must be rating, reviews or newest")
	}

	if raw.Limit != "" {
		limit, err := strconv.Atoi(raw.Limit)
		if err != nil || limit < 1 || limit > limits.MaxLimit {
			return Params{}, utils.InvalidQuery("limit must be an integer between 1 and %d", limits.MaxLimit)
		}
		p.Limit = limit
	}

	if raw.Offset != "" {
		offset, err := strconv.Atoi(raw.Offset)
		if err != nil || offset < 0 {
			return Params{}, utils.InvalidQuery("offset must be a non-negative integer")
		}
		p.Offset = offset
	}

	return p, nil
}
