package repositories

import (
	"context"
	"errors"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"gorm.io/gorm"
)

type FileRepository interface {
	GetFiles(ctx context.Context) ([]models.File, error)
	GetFileByID(ctx context.Context, id string) (*models.File, error)
	Save(ctx context.Context, file *models.File) error
	UpdateFile(ctx context.Context, file *models.File) error
	DeleteFile(ctx context.Context, id string) error
	ListFilePaths(ctx context.Context) ([]string, error)
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) GetFiles(ctx context.Context) ([]models.File, error) {
	var files []models.File
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}

func (r *fileRepository) GetFileByID(ctx context.Context, id string) (*models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).Preload("Category").First(&file, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) Save(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *fileRepository) UpdateFile(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Save(file).Error
}

func (r *fileRepository) DeleteFile(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.File{}, "id = ?", id).Error
}

func (r *fileRepository) ListFilePaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).
		Model(&models.File{}).
		Pluck("file_path", &paths).Error
	return paths, err
}
