package handler

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/gin-gonic/gin"
)

// StreamsController binds HTTP requests to the StreamService
type StreamsController struct {
	Service *services.StreamService
}

func NewStreamsController(s *services.StreamService) *StreamsController {
	return &StreamsController{Service: s}
}

// ListStreams handles GET /streams
func (c *StreamsController) ListStreams(ctx *gin.Context) (*models.StreamList, error) {
	return c.Service.ListStreams(ctx.Request.Context())
}
