package response_models

type AdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalBuildings   int64 `json:"totalBuildings"`
	PendingBuildings int64 `json:"pendingBuildings"`
	TotalReviews     int64 `json:"totalReviews"`
	PendingReviews   int64 `json:"pendingReviews"`
}
