package repositories

import (
	"context"
	"errors"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	GetApplications(ctx context.Context) ([]models.Application, error)
	GetApplicationByID(ctx context.Context, id string) (*models.Application, error)
	Save(ctx context.Context, app *models.Application) error
	UpdateApplication(ctx context.Context, app *models.Application) error
	DeleteApplication(ctx context.Context, id string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) GetApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Save(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) UpdateApplication(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) DeleteApplication(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id).Error
}
