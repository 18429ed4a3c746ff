package repositories

import (
	"context"
	"errors"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"gorm.io/gorm"
)

type WikiRepository interface {
	GetArticles(ctx context.Context) ([]models.WikiArticle, error)
	GetArticleByID(ctx context.Context, id string) (*models.WikiArticle, error)
	Save(ctx context.Context, article *models.WikiArticle) error
	UpdateArticle(ctx context.Context, article *models.WikiArticle) error
	DeleteArticle(ctx context.Context, id string) error
}

type wikiRepository struct {
	db *gorm.DB
}

func NewWikiRepository(db *gorm.DB) WikiRepository {
	return &wikiRepository{db: db}
}

func (r *wikiRepository) GetArticles(ctx context.Context) ([]models.WikiArticle, error) {
	var articles []models.WikiArticle
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("title ASC").
		Find(&articles).Error
	return articles, err
}

func (r *wikiRepository) GetArticleByID(ctx context.Context, id string) (*models.WikiArticle, error) {
	var article models.WikiArticle
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *wikiRepository) Save(ctx context.Context, article *models.WikiArticle) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *wikiRepository) UpdateArticle(ctx context.Context, article *models.WikiArticle) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *wikiRepository) DeleteArticle(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.WikiArticle{}, "id = ?", id).Error
}
