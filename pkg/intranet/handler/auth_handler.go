package handler

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/gin-gonic/gin"
)

// AuthController binds the one-time registration endpoint to the AuthService
type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// Register handles POST /auth/register
func (c *AuthController) Register(ctx *gin.Context, body *models.RegisterInput) (*models.RegisteredUser, error) {
	return c.Service.Register(ctx.Request.Context(), *body)
}
