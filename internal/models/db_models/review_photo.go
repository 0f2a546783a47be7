package db_models

import "github.com/google/uuid"

type ReviewPhoto struct {
	BaseModel
	ReviewID uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviewId"`
	ImageURL string    `gorm:"type:text;not null" json:"imageUrl"`
}

func (ReviewPhoto) TableName() string {
	return "review_photos"
}
