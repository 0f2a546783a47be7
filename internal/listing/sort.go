package listing

import (
	"bytes"
	"sort"

	"rentwise/internal/models/response_models"
)

// Less reports whether a ranks before b. Every ordering ends on id so pages never overlap.
//
//	rating:  overallRating desc, reviewCount desc, id asc
//	reviews: reviewCount desc, overallRating desc, id asc
//	newest:  createdAt desc, id asc
func Less(sortBy SortBy, a, b response_models.BuildingWithRatings) bool {
	switch sortBy {
	case SortReviews:
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		if a.OverallRating != b.OverallRating {
			return a.OverallRating > b.OverallRating
		}
	case SortNewest:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	default:
		if a.OverallRating != b.OverallRating {
			return a.OverallRating > b.OverallRating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func Sort(rows []response_models.BuildingWithRatings, sortBy SortBy) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(sortBy, rows[i], rows[j])
	})
}

// Paginate slices an already sorted result. total counts every row before slicing.
func Paginate(rows []response_models.BuildingWithRatings, limit, offset int) response_models.PaginatedBuildings {
	total := len(rows)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := make([]response_models.BuildingWithRatings, end-start)
	copy(page, rows[start:end])

	return response_models.PaginatedBuildings{
		Buildings: page,
		Total:     int64(total),
		HasMore:   hasMore(offset, limit, int64(total)),
	}
}

// hasMore reports offset+limit < total without overflowing on huge offsets.
func hasMore(offset, limit int, total int64) bool {
	off := int64(offset)
	return off < total && int64(limit) < total-off
}
