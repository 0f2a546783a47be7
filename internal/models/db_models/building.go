package db_models

type Building struct {
	BaseModel
	Name         string           `gorm:"type:text;not null" json:"name"`
	Address      string           `gorm:"type:text;not null" json:"address"`
	City         string           `gorm:"type:text;not null;default:'New York'" json:"city"`
	ZipCode      string           `gorm:"type:text;not null" json:"zipCode"`
	Neighborhood *string          `gorm:"type:text;index" json:"neighborhood"`
	BuildingType *string          `gorm:"type:text;index" json:"buildingType"`
	LandlordName *string          `gorm:"type:text" json:"landlordName"`
	Status       ModerationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	CreatedBy    *string          `gorm:"type:varchar(128)" json:"createdBy"`

	Reviews []Review `gorm:"foreignKey:BuildingID" json:"-"`
}

func (Building) TableName() string {
	return "buildings"
}
