package handler

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/gin-gonic/gin"
)

// CategoriesController binds HTTP requests to the CategoryService
type CategoriesController struct {
	Service *services.CategoryService
}

func NewCategoriesController(s *services.CategoryService) *CategoriesController {
	return &CategoriesController{Service: s}
}

// ListCategories handles GET /categories
func (c *CategoriesController) ListCategories(ctx *gin.Context) ([]models.CategorySummary, error) {
	return c.Service.ListCategories(ctx.Request.Context())
}

// CreateCategory handles POST /categories
func (c *CategoriesController) CreateCategory(ctx *gin.Context, body *models.CategoryPost) (*models.Category, error) {
	return c.Service.CreateCategory(ctx.Request.Context(), *body)
}

// UpdateCategory handles PUT /categories/:id
func (c *CategoriesController) UpdateCategory(ctx *gin.Context, body *models.CategoryUpdate) (*models.Category, error) {
	return c.Service.UpdateCategory(ctx.Request.Context(), body)
}

// DeleteCategory handles DELETE /categories/:id. The cascade query flag is
// the only thing that authorizes deleting dependent files.
func (c *CategoriesController) DeleteCategory(ctx *gin.Context, params *models.CategoryDeleteParams) error {
	return c.Service.DeleteCategory(ctx.Request.Context(), params.Id, params.Cascade)
}
