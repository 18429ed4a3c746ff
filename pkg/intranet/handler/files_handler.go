package handler

import (
	"io"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
	"github.com/gin-gonic/gin"
)

// FilesController binds HTTP requests to the FileService and the icon
// upload path of the store.
type FilesController struct {
	Service *services.FileService
	Store   *storage.Store
}

func NewFilesController(s *services.FileService, store *storage.Store) *FilesController {
	return &FilesController{Service: s, Store: store}
}

// ListFiles handles GET /files
func (c *FilesController) ListFiles(ctx *gin.Context) ([]models.File, error) {
	return c.Service.ListFiles(ctx.Request.Context())
}

// CreateFile handles the multipart POST /files
func (c *FilesController) CreateFile(ctx *gin.Context) (*models.File, error) {
	in := services.CreateFileInput{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		CategoryID:  ctx.PostForm("categoryId"),
	}
	fh, err := ctx.FormFile("file")
	if err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, problem.NewBadRequest("body", "cannot read uploaded file: "+err.Error())
		}
		defer f.Close()
		payload, err := io.ReadAll(f)
		if err != nil {
			return nil, problem.NewBadRequest("body", "cannot read uploaded file: "+err.Error())
		}
		in.Payload = payload
		in.OriginalName = fh.Filename
		in.ContentType = fh.Header.Get("Content-Type")
	}
	return c.Service.CreateFile(ctx.Request.Context(), in)
}

// UpdateFile handles PUT /files/:id (metadata only)
func (c *FilesController) UpdateFile(ctx *gin.Context, body *models.FileUpdate) (*models.File, error) {
	return c.Service.UpdateFile(ctx.Request.Context(), body)
}

// DeleteFile handles DELETE /files/:id
func (c *FilesController) DeleteFile(ctx *gin.Context, params *models.FileParams) error {
	return c.Service.DeleteFile(ctx.Request.Context(), params.Id)
}

// UploadIcon handles the multipart POST /uploads/icons
func (c *FilesController) UploadIcon(ctx *gin.Context) (*storage.StoredObject, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return nil, problem.NewBadRequest("body", "file is required",
			problem.InvalidParam{Name: "file", Reason: "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return nil, problem.NewBadRequest("body", "cannot read uploaded file: "+err.Error())
	}
	defer f.Close()
	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, problem.NewBadRequest("body", "cannot read uploaded file: "+err.Error())
	}

	obj, err := c.Store.Save(payload, fh.Filename, fh.Header.Get("Content-Type"), storage.KindIcon)
	if err != nil {
		return nil, err
	}
	return &obj, nil
}
