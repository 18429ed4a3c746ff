package services

import (
	"context"
	"log"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
	"github.com/google/uuid"
)

// CreateFileInput is the multipart upload flattened for the service layer.
type CreateFileInput struct {
	Name         string
	Description  string
	CategoryID   string
	Payload      []byte
	OriginalName string
	ContentType  string
}

// FileService owns library documents. Creation always goes through the
// store: bytes land first, the row after, so a failed write never leaves a
// row pointing at nothing.
type FileService struct {
	repo       repositories.FileRepository
	categories repositories.CategoryRepository
	store      *storage.Store
}

func NewFileService(repo repositories.FileRepository, categories repositories.CategoryRepository, store *storage.Store) *FileService {
	return &FileService{repo: repo, categories: categories, store: store}
}

func (s *FileService) ListFiles(ctx context.Context) ([]models.File, error) {
	files, err := s.repo.GetFiles(ctx)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []models.File{}
	}
	return files, nil
}

func (s *FileService) CreateFile(ctx context.Context, in CreateFileInput) (*models.File, error) {
	var invalids []problem.InvalidParam
	if in.Name == "" {
		invalids = append(invalids, problem.InvalidParam{Name: "name", Reason: "name is required"})
	}
	if in.CategoryID == "" {
		invalids = append(invalids, problem.InvalidParam{Name: "categoryId", Reason: "categoryId is required"})
	}
	if len(in.Payload) == 0 {
		invalids = append(invalids, problem.InvalidParam{Name: "file", Reason: "file is required"})
	}
	if len(invalids) > 0 {
		return nil, problem.NewBadRequest("body", "file, name and category are required", invalids...)
	}

	cat, err := s.categories.GetCategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, problem.NewBadRequest("body", "unknown category",
			problem.InvalidParam{Name: "categoryId", Reason: "category does not exist"})
	}

	obj, err := s.store.Save(in.Payload, in.OriginalName, in.ContentType, storage.KindFile)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		Id:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		FilePath:    obj.Path,
		FileSize:    obj.Size,
		MimeType:    obj.MimeType,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.Save(ctx, file); err != nil {
		// No row means nothing references the bytes; take them back out.
		if _, rerr := s.store.Remove(obj.Path); rerr != nil {
			log.Printf("[WARN] could not clean up %s after failed insert: %v", obj.Path, rerr)
		}
		return nil, problem.NewInternalServerError("cannot save file: " + err.Error())
	}

	file.Category = cat
	return file, nil
}

// UpdateFile moves metadata only; the input type has no path/size/mime
// fields, so derived columns cannot change after creation.
func (s *FileService) UpdateFile(ctx context.Context, body *models.FileUpdate) (*models.File, error) {
	file, err := s.repo.GetFileByID(ctx, body.Id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, problem.NewNotFound(body.Id, "file not found")
	}

	applyString(&file.Name, body.Name)
	applyString(&file.Description, body.Description)
	if body.CategoryID != nil {
		cat, err := s.categories.GetCategoryByID(ctx, *body.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, problem.NewBadRequest("body", "unknown category",
				problem.InvalidParam{Name: "categoryId", Reason: "category does not exist"})
		}
		file.CategoryID = *body.CategoryID
		file.Category = cat
	}
	if file.Name == "" {
		return nil, problem.NewBadRequest("body", "name cannot be emptied")
	}

	if err := s.repo.UpdateFile(ctx, file); err != nil {
		return nil, problem.NewInternalServerError("cannot update file: " + err.Error())
	}
	return file, nil
}

// DeleteFile removes the row first and the bytes after: byte removal is best
// effort and its failure must never block the row deletion.
func (s *FileService) DeleteFile(ctx context.Context, id string) error {
	file, err := s.repo.GetFileByID(ctx, id)
	if err != nil {
		return err
	}
	if file == nil {
		return problem.NewNotFound(id, "file not found")
	}

	if err := s.repo.DeleteFile(ctx, id); err != nil {
		return problem.NewInternalServerError("cannot delete file: " + err.Error())
	}

	res, rerr := s.store.Remove(file.FilePath)
	if rerr != nil {
		log.Printf("[WARN] could not remove bytes for file %s (%s): %v", file.Id, file.FilePath, rerr)
	} else if res == storage.RemoveNotFound {
		log.Printf("[WARN] bytes for file %s (%s) were already gone", file.Id, file.FilePath)
	}
	return nil
}
