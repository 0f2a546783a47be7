package request_models

type CreateReviewRequest struct {
	OverallRating     int      `json:"overallRating" validate:"required,min=1,max=5"`
	FloorNumber       int      `json:"floorNumber" validate:"required,min=1,max=100"`
	NoiseRating       *int     `json:"noiseRating" validate:"omitempty,min=1,max=5"`
	CleanlinessRating *int     `json:"cleanlinessRating" validate:"omitempty,min=1,max=5"`
	MaintenanceRating *int     `json:"maintenanceRating" validate:"omitempty,min=1,max=5"`
	SafetyRating      *int     `json:"safetyRating" validate:"omitempty,min=1,max=5"`
	PestRating        *int     `json:"pestRating" validate:"omitempty,min=1,max=5"`
	ReviewText        string   `json:"reviewText" validate:"required,min=50,max=10000"`
	IsAnonymous       *bool    `json:"isAnonymous"`
	PhotoURLs         []string `json:"photoUrls" validate:"omitempty,max=5,dive,http_url"`
}
