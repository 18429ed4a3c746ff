package services_test

import (
	"context"
	"testing"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAppRepo implements repositories.ApplicationRepository for testing
type stubAppRepo struct {
	getAll  func(ctx context.Context) ([]models.Application, error)
	getByID func(ctx context.Context, id string) (*models.Application, error)
	save    func(ctx context.Context, app *models.Application) error
	update  func(ctx context.Context, app *models.Application) error
	delete  func(ctx context.Context, id string) error
}

func (s *stubAppRepo) GetApplications(ctx context.Context) ([]models.Application, error) {
	if s.getAll != nil {
		return s.getAll(ctx)
	}
	return nil, nil
}
func (s *stubAppRepo) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, nil
}
func (s *stubAppRepo) Save(ctx context.Context, app *models.Application) error {
	if s.save != nil {
		return s.save(ctx, app)
	}
	return nil
}
func (s *stubAppRepo) UpdateApplication(ctx context.Context, app *models.Application) error {
	if s.update != nil {
		return s.update(ctx, app)
	}
	return nil
}
func (s *stubAppRepo) DeleteApplication(ctx context.Context, id string) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

func TestCreateApplication_Defaults(t *testing.T) {
	var saved *models.Application
	repo := &stubAppRepo{
		save: func(ctx context.Context, app *models.Application) error {
			saved = app
			return nil
		},
	}
	service := services.NewApplicationService(repo)

	created, err := service.CreateApplication(context.Background(), models.ApplicationPost{
		Name: "Wiki",
		Url:  "https://wiki.example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.NotEmpty(t, created.Id)
	assert.False(t, created.SsoEnabled)
	assert.Equal(t, "#0ea5e9", created.Color)
	assert.Equal(t, 0, created.SortOrder)
}

func TestCreateApplication_MissingUrl(t *testing.T) {
	service := services.NewApplicationService(&stubAppRepo{})

	_, err := service.CreateApplication(context.Background(), models.ApplicationPost{Name: "Wiki"})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
}

func TestCreateApplication_OverridesDefaults(t *testing.T) {
	repo := &stubAppRepo{}
	service := services.NewApplicationService(repo)

	sso := true
	order := 7
	created, err := service.CreateApplication(context.Background(), models.ApplicationPost{
		Name:       "Mail",
		Url:        "https://mail.example.com",
		SsoEnabled: &sso,
		Color:      "#ff0000",
		SortOrder:  &order,
	})
	require.NoError(t, err)
	assert.True(t, created.SsoEnabled)
	assert.Equal(t, "#ff0000", created.Color)
	assert.Equal(t, 7, created.SortOrder)
}

func TestUpdateApplication_NotFound(t *testing.T) {
	repo := &stubAppRepo{
		getByID: func(ctx context.Context, id string) (*models.Application, error) {
			return nil, nil
		},
	}
	service := services.NewApplicationService(repo)

	_, err := service.UpdateApplication(context.Background(), &models.ApplicationUpdate{Id: "missing"})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUpdateApplication_Partial(t *testing.T) {
	existing := &models.Application{
		Id:        "a1",
		Name:      "Mail",
		Url:       "https://mail.example.com",
		Color:     "#0ea5e9",
		SortOrder: 3,
	}
	repo := &stubAppRepo{
		getByID: func(ctx context.Context, id string) (*models.Application, error) {
			return existing, nil
		},
	}
	service := services.NewApplicationService(repo)

	name := "Webmail"
	updated, err := service.UpdateApplication(context.Background(), &models.ApplicationUpdate{
		Id:   "a1",
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Webmail", updated.Name)
	// untouched fields keep their values
	assert.Equal(t, "https://mail.example.com", updated.Url)
	assert.Equal(t, 3, updated.SortOrder)
}
