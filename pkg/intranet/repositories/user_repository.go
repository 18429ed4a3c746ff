package repositories

import (
	"context"
	"errors"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"gorm.io/gorm"
)

// ErrUserExists means the one-time registration window has closed.
var ErrUserExists = errors.New("a user is already registered")

type UserRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	// CreateUser inserts the bootstrap admin. The count re-check runs inside
	// the transaction and the singleton unique index backs it up, so two
	// concurrent registrations cannot both land.
	CreateUser(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrUserExists
		}
		return tx.Create(user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExists
	}
	return err
}
