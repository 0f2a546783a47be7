package db_models

import "time"

// User mirrors the identity provider's profile. Rows are written only by the
// attribution sync on authenticated writes.
type User struct {
	ID              string    `gorm:"type:varchar(128);primaryKey" json:"id"`
	FirstName       *string   `gorm:"type:text" json:"firstName"`
	LastName        *string   `gorm:"type:text" json:"lastName"`
	Email           *string   `gorm:"type:text" json:"email"`
	ProfileImageURL *string   `gorm:"type:text" json:"profileImageUrl"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
