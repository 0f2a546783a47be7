package db_models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	BuildingID        uuid.UUID        `gorm:"type:uuid;not null;index;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"buildingId"`
	UserID            string           `gorm:"type:varchar(128);not null;index" json:"userId"`
	OverallRating     int              `gorm:"type:int;not null;check:overall_rating >= 1 AND overall_rating <= 5" json:"overallRating"`
	FloorNumber       int              `gorm:"type:int;not null;check:floor_number >= 1 AND floor_number <= 100" json:"floorNumber"`
	NoiseRating       *int             `gorm:"type:int;check:noise_rating >= 1 AND noise_rating <= 5" json:"noiseRating"`
	CleanlinessRating *int             `gorm:"type:int;check:cleanliness_rating >= 1 AND cleanliness_rating <= 5" json:"cleanlinessRating"`
	MaintenanceRating *int             `gorm:"type:int;check:maintenance_rating >= 1 AND maintenance_rating <= 5" json:"maintenanceRating"`
	SafetyRating      *int             `gorm:"type:int;check:safety_rating >= 1 AND safety_rating <= 5" json:"safetyRating"`
	PestRating        *int             `gorm:"type:int;check:pest_rating >= 1 AND pest_rating <= 5" json:"pestRating"`
	ReviewText        string           `gorm:"type:text;not null" json:"reviewText"`
	IsAnonymous       bool             `gorm:"not null" json:"isAnonymous"`
	Status            ModerationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`

	Photos []ReviewPhoto `gorm:"foreignKey:ReviewID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
