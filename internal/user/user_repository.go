package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository reads profiles. Profiles are written by the auth provider.
type UserRepository interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetProfileByID returns nil, nil when no profile exists yet.
func (r *userRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *userRepository) GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]Profile, error) {
	var profiles []Profile
	if len(ids) == 0 {
		return profiles, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("full_name asc").Find(&profiles).Error
	return profiles, err
}
