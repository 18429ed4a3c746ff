package services

import (
	"context"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/google/uuid"
)

// WikiService owns the knowledge base. Icon images are uploaded separately
// through the icon upload endpoint; by the time an article is written its
// icon is already a durable path (or a plain emoji).
type WikiService struct {
	repo repositories.WikiRepository
}

func NewWikiService(repo repositories.WikiRepository) *WikiService {
	return &WikiService{repo: repo}
}

func (s *WikiService) ListArticles(ctx context.Context) ([]models.WikiArticle, error) {
	articles, err := s.repo.GetArticles(ctx)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.WikiArticle{}
	}
	return articles, nil
}

func (s *WikiService) CreateArticle(ctx context.Context, body models.WikiArticlePost) (*models.WikiArticle, error) {
	if invalids := requireFields(map[string]string{
		"title":   body.Title,
		"content": body.Content,
	}); len(invalids) > 0 {
		return nil, problem.NewBadRequest("body", "title and content are required", invalids...)
	}

	article := &models.WikiArticle{
		Id:          uuid.New().String(),
		Title:       body.Title,
		Description: body.Description,
		Content:     body.Content,
		Icon:        models.ParseIconRef(body.Icon),
		Color:       models.DefaultColor,
		Category:    body.Category,
	}
	if body.Color != "" {
		article.Color = body.Color
	}
	if body.SortOrder != nil {
		article.SortOrder = *body.SortOrder
	}

	if err := s.repo.Save(ctx, article); err != nil {
		return nil, problem.NewInternalServerError("cannot save article: " + err.Error())
	}
	return article, nil
}

func (s *WikiService) UpdateArticle(ctx context.Context, body *models.WikiArticleUpdate) (*models.WikiArticle, error) {
	article, err := s.repo.GetArticleByID(ctx, body.Id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, problem.NewNotFound(body.Id, "wiki article not found")
	}

	applyString(&article.Title, body.Title)
	applyString(&article.Description, body.Description)
	applyString(&article.Content, body.Content)
	applyString(&article.Category, body.Category)
	applyString(&article.Color, body.Color)
	if body.Icon != nil {
		article.Icon = models.ParseIconRef(*body.Icon)
	}
	if body.SortOrder != nil {
		article.SortOrder = *body.SortOrder
	}
	if article.Title == "" || article.Content == "" {
		return nil, problem.NewBadRequest("body", "title and content cannot be emptied")
	}

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		return nil, problem.NewInternalServerError("cannot update article: " + err.Error())
	}
	return article, nil
}

func (s *WikiService) DeleteArticle(ctx context.Context, id string) error {
	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return problem.NewNotFound(id, "wiki article not found")
	}
	return s.repo.DeleteArticle(ctx, id)
}
