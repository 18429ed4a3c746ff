package handler

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/gin-gonic/gin"
)

// ApplicationsController binds HTTP requests to the ApplicationService
type ApplicationsController struct {
	Service *services.ApplicationService
}

func NewApplicationsController(s *services.ApplicationService) *ApplicationsController {
	return &ApplicationsController{Service: s}
}

// ListApplications handles GET /applications
func (c *ApplicationsController) ListApplications(ctx *gin.Context) ([]models.Application, error) {
	return c.Service.ListApplications(ctx.Request.Context())
}

// CreateApplication handles POST /applications
func (c *ApplicationsController) CreateApplication(ctx *gin.Context, body *models.ApplicationPost) (*models.Application, error) {
	return c.Service.CreateApplication(ctx.Request.Context(), *body)
}

// UpdateApplication handles PUT /applications/:id
func (c *ApplicationsController) UpdateApplication(ctx *gin.Context, body *models.ApplicationUpdate) (*models.Application, error) {
	return c.Service.UpdateApplication(ctx.Request.Context(), body)
}

// DeleteApplication handles DELETE /applications/:id
func (c *ApplicationsController) DeleteApplication(ctx *gin.Context, params *models.ApplicationParams) error {
	return c.Service.DeleteApplication(ctx.Request.Context(), params.Id)
}
