package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService owns the file-library categories, including the cascade
// policy: a non-empty category is only deleted when the caller explicitly
// asks for the cascade.
type CategoryService struct {
	repo  repositories.CategoryRepository
	store *storage.Store
}

func NewCategoryService(repo repositories.CategoryRepository, store *storage.Store) *CategoryService {
	return &CategoryService{repo: repo, store: store}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	cats, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.FileCounts(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.CategorySummary, len(cats))
	for i, cat := range cats {
		summaries[i] = models.CategorySummary{Category: cat, FileCount: counts[cat.Id]}
	}
	return summaries, nil
}

func (s *CategoryService) FileCountFor(ctx context.Context, categoryID string) (int64, error) {
	return s.repo.CountFiles(ctx, categoryID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, body models.CategoryPost) (*models.Category, error) {
	if body.Name == "" {
		return nil, problem.NewBadRequest("body", "name is required",
			problem.InvalidParam{Name: "name", Reason: "name is required"})
	}

	cat := &models.Category{
		Id:    uuid.New().String(),
		Name:  body.Name,
		Color: models.DefaultColor,
		Icon:  body.Icon,
	}
	if body.Color != "" {
		cat.Color = body.Color
	}

	if err := s.repo.Save(ctx, cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, problem.NewBadRequest("body", "a category with this name already exists",
				problem.InvalidParam{Name: "name", Reason: "must be unique"})
		}
		return nil, problem.NewInternalServerError("cannot save category: " + err.Error())
	}
	return cat, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, body *models.CategoryUpdate) (*models.Category, error) {
	cat, err := s.repo.GetCategoryByID(ctx, body.Id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, problem.NewNotFound(body.Id, "category not found")
	}

	applyString(&cat.Name, body.Name)
	applyString(&cat.Color, body.Color)
	applyString(&cat.Icon, body.Icon)
	if cat.Name == "" {
		return nil, problem.NewBadRequest("body", "name cannot be emptied")
	}

	if err := s.repo.UpdateCategory(ctx, cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, problem.NewBadRequest("body", "a category with this name already exists",
				problem.InvalidParam{Name: "name", Reason: "must be unique"})
		}
		return nil, problem.NewInternalServerError("cannot update category: " + err.Error())
	}
	return cat, nil
}

// DeleteCategory removes a category. With cascade the dependent file rows go
// in the same transaction as the category row; the stored bytes are cleaned
// up afterwards, best effort, so a failed unlink never resurrects a row.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string, cascade bool) error {
	cat, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return problem.NewNotFound(id, "category not found")
	}

	n, err := s.repo.CountFiles(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 && !cascade {
		return problem.NewConflict(id,
			fmt.Sprintf("category has %d associated files; pass cascade=true to delete them as well", n))
	}

	files, err := s.repo.DeleteWithFiles(ctx, id)
	if err != nil {
		return problem.NewInternalServerError("cannot delete category: " + err.Error())
	}

	for _, f := range files {
		res, rerr := s.store.Remove(f.FilePath)
		if rerr != nil {
			log.Printf("[WARN] could not remove bytes for file %s (%s): %v", f.Id, f.FilePath, rerr)
		} else if res == storage.RemoveNotFound {
			log.Printf("[WARN] bytes for file %s (%s) were already gone", f.Id, f.FilePath)
		}
	}
	return nil
}
