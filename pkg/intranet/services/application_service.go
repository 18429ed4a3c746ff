package services

import (
	"context"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/google/uuid"
)

// ApplicationService owns the landing-page application catalog.
type ApplicationService struct {
	repo repositories.ApplicationRepository
}

func NewApplicationService(repo repositories.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func (s *ApplicationService) ListApplications(ctx context.Context) ([]models.Application, error) {
	apps, err := s.repo.GetApplications(ctx)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (s *ApplicationService) CreateApplication(ctx context.Context, body models.ApplicationPost) (*models.Application, error) {
	if invalids := requireFields(map[string]string{
		"name": body.Name,
		"url":  body.Url,
	}); len(invalids) > 0 {
		return nil, problem.NewBadRequest("body", "name and url are required", invalids...)
	}

	app := &models.Application{
		Id:          uuid.New().String(),
		Name:        body.Name,
		Description: body.Description,
		Url:         body.Url,
		Icon:        body.Icon,
		Category:    body.Category,
		Color:       models.DefaultColor,
	}
	if body.SsoEnabled != nil {
		app.SsoEnabled = *body.SsoEnabled
	}
	if body.Color != "" {
		app.Color = body.Color
	}
	if body.SortOrder != nil {
		app.SortOrder = *body.SortOrder
	}

	if err := s.repo.Save(ctx, app); err != nil {
		return nil, problem.NewInternalServerError("cannot save application: " + err.Error())
	}
	return app, nil
}

func (s *ApplicationService) UpdateApplication(ctx context.Context, body *models.ApplicationUpdate) (*models.Application, error) {
	app, err := s.repo.GetApplicationByID(ctx, body.Id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, problem.NewNotFound(body.Id, "application not found")
	}

	applyString(&app.Name, body.Name)
	applyString(&app.Description, body.Description)
	applyString(&app.Url, body.Url)
	applyString(&app.Icon, body.Icon)
	applyString(&app.Category, body.Category)
	applyString(&app.Color, body.Color)
	if body.SsoEnabled != nil {
		app.SsoEnabled = *body.SsoEnabled
	}
	if body.SortOrder != nil {
		app.SortOrder = *body.SortOrder
	}
	if app.Name == "" || app.Url == "" {
		return nil, problem.NewBadRequest("body", "name and url cannot be emptied")
	}

	if err := s.repo.UpdateApplication(ctx, app); err != nil {
		return nil, problem.NewInternalServerError("cannot update application: " + err.Error())
	}
	return app, nil
}

func (s *ApplicationService) DeleteApplication(ctx context.Context, id string) error {
	app, err := s.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return problem.NewNotFound(id, "application not found")
	}
	return s.repo.DeleteApplication(ctx, id)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func requireFields(fields map[string]string) []problem.InvalidParam {
	var invalids []problem.InvalidParam
	for name, value := range fields {
		if value == "" {
			invalids = append(invalids, problem.InvalidParam{Name: name, Reason: name + " is required"})
		}
	}
	return invalids
}
