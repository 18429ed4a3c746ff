package repositories

import (
	"context"
	"errors"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	Save(ctx context.Context, cat *models.Category) error
	UpdateCategory(ctx context.Context, cat *models.Category) error
	CountFiles(ctx context.Context, categoryID string) (int64, error)
	FileCounts(ctx context.Context) (map[string]int64, error)
	// DeleteWithFiles removes the dependent file rows and the category row in
	// one transaction and returns the removed files so the caller can clean
	// up their bytes afterwards.
	DeleteWithFiles(ctx context.Context, id string) ([]models.File, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepository) Save(ctx context.Context, cat *models.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, cat *models.Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *categoryRepository) CountFiles(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.File{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}

func (r *categoryRepository) FileCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		N          int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.File{}).
		Select("category_id, COUNT(*) AS n").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.N
	}
	return counts, nil
}

func (r *categoryRepository) DeleteWithFiles(ctx context.Context, id string) ([]models.File, error) {
	var files []models.File
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&files, "category_id = ?", id).Error; err != nil {
			return err
		}
		if len(files) > 0 {
			if err := tx.Delete(&models.File{}, "category_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
