package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentwise/internal/models/db_models"
)

type UserRepositoryInterface interface {
	// Upsert inserts the user or refreshes its profile fields.
	Upsert(ctx context.Context, user *db_models.User) error
	FindByIDs(ctx context.Context, ids []string) (map[string]db_models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, user *db_models.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "profile_image_url", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]db_models.User, error) {
	users := make(map[string]db_models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []db_models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}
