package response_models

import "rentwise/internal/models/db_models"

// ReviewWithDetails is the public representation of an approved review.
// UserName and UserProfileImage are nil whenever the review is anonymous.
type ReviewWithDetails struct {
	db_models.Review
	Photos           []db_models.ReviewPhoto `json:"photos"`
	UserName         *string                 `json:"userName,omitempty"`
	UserProfileImage *string                 `json:"userProfileImage,omitempty"`
}
