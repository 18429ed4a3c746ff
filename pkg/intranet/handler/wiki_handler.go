package handler

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/gin-gonic/gin"
)

// WikiController binds HTTP requests to the WikiService
type WikiController struct {
	Service *services.WikiService
}

func NewWikiController(s *services.WikiService) *WikiController {
	return &WikiController{Service: s}
}

// ListArticles handles GET /wiki
func (c *WikiController) ListArticles(ctx *gin.Context) ([]models.WikiArticle, error) {
	return c.Service.ListArticles(ctx.Request.Context())
}

// CreateArticle handles POST /wiki
func (c *WikiController) CreateArticle(ctx *gin.Context, body *models.WikiArticlePost) (*models.WikiArticle, error) {
	return c.Service.CreateArticle(ctx.Request.Context(), *body)
}

// UpdateArticle handles PUT /wiki/:id
func (c *WikiController) UpdateArticle(ctx *gin.Context, body *models.WikiArticleUpdate) (*models.WikiArticle, error) {
	return c.Service.UpdateArticle(ctx.Request.Context(), body)
}

// DeleteArticle handles DELETE /wiki/:id
func (c *WikiController) DeleteArticle(ctx *gin.Context, params *models.WikiArticleParams) error {
	return c.Service.DeleteArticle(ctx.Request.Context(), params.Id)
}
