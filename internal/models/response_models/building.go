package response_models

import (
	"github.com/google/uuid"

	"rentwise/internal/models/db_models"
	"rentwise/internal/ratings"
)

type BuildingWithRatings struct {
	db_models.Building
	ratings.Ratings
}

type PaginatedBuildings struct {
	Buildings []BuildingWithRatings `json:"buildings"`
	Total     int64                 `json:"total"`
	HasMore   bool                  `json:"hasMore"`
}

// BuildingSuggestion is the lightweight autocomplete entry.
type BuildingSuggestion struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

type ReferenceData struct {
	Neighborhoods []string `json:"neighborhoods"`
	BuildingTypes []string `json:"buildingTypes"`
}
