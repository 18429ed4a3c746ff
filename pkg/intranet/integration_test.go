package intranet_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	intranet "github.com/developer-overheid-nl/don-intranet/pkg/intranet"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/handler"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/httpclient"
	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/testutil"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errorHookOnce sync.Once

func setupErrorHook() {
	errorHookOnce.Do(func() {
		tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
			var be tonic.BindError
			var verrs validator.ValidationErrors
			if errors.As(err, &be) || errors.As(err, &verrs) {
				apiErr := problem.NewBadRequest("body", err.Error())
				c.Header("Content-Type", "application/problem+json")
				return apiErr.Status, apiErr
			}

			if apiErr, ok := err.(problem.APIError); ok {
				c.Header("Content-Type", "application/problem+json")
				return apiErr.Status, apiErr
			}

			internal := problem.NewInternalServerError(err.Error())
			c.Header("Content-Type", "application/problem+json")
			return internal.Status, internal
		})
	})
}

type integrationEnv struct {
	server *httptest.Server
	client *http.Client
	token  string
}

// stubMediaTransport plays the media server for the streams route.
type stubMediaTransport struct{}

func (stubMediaTransport) RoundTrip(*http.Request) (*http.Response, error) {
	body := `{"itemCount":1,"items":[{"name":"cam-entrance","source":{"type":"rtspSession"},"tracks":["H264"],"ready":true,"readyTime":null,"bytesReceived":10,"bytesSent":20,"readers":[]}]}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func newIntegrationEnv(t *testing.T) *integrationEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	setupErrorHook()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Application{},
		&models.Category{},
		&models.File{},
		&models.WikiArticle{},
		&models.User{},
	))

	store := storage.New(t.TempDir(), 0)

	appRepo := repositories.NewApplicationRepository(db)
	catRepo := repositories.NewCategoryRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	wikiRepo := repositories.NewWikiRepository(db)
	userRepo := repositories.NewUserRepository(db)

	mtx := httpclient.NewMediaMTXClient("http://mediamtx.internal:9997", "", "")
	mtx.HTTPClient = &http.Client{Transport: stubMediaTransport{}}

	controllers := intranet.Controllers{
		Applications: handler.NewApplicationsController(services.NewApplicationService(appRepo)),
		Categories:   handler.NewCategoriesController(services.NewCategoryService(catRepo, store)),
		Files:        handler.NewFilesController(services.NewFileService(fileRepo, catRepo, store), store),
		Wiki:         handler.NewWikiController(services.NewWikiService(wikiRepo)),
		Auth:         handler.NewAuthController(services.NewAuthService(userRepo)),
		Streams:      handler.NewStreamsController(services.NewStreamService(mtx)),
	}

	router := intranet.NewRouter("test-version", controllers)
	server := testutil.NewTestServer(t, router)

	return &integrationEnv{
		server: server,
		client: &http.Client{Timeout: 2 * time.Second},
		token:  signToken(t, "intranet:read intranet:write"),
	}
}

func signToken(t *testing.T, scope string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"scope": scope})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func (e *integrationEnv) doJSON(t *testing.T, method, path string, payload any, authed bool) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *integrationEnv) doGet(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *integrationEnv) doUpload(t *testing.T, path string, fields map[string]string, filename, contentType string, payload []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	err = json.Unmarshal(data, &out)
	require.NoErrorf(t, err, "body=%s", string(data))
	return out
}

func TestLibraryLifecycle(t *testing.T) {
	env := newIntegrationEnv(t)

	var categoryID string
	t.Run("create category", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodPost, "/v1/categories", map[string]string{
			"name": "Policies", "color": "#ff0000",
		}, true)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "test-version", resp.Header.Get("API-Version"))

		cat := decodeBody[models.Category](t, resp)
		require.NotEmpty(t, cat.Id)
		require.Equal(t, "#ff0000", cat.Color)
		categoryID = cat.Id
	})

	payload := make([]byte, 1024)
	t.Run("upload file", func(t *testing.T) {
		resp := env.doUpload(t, "/v1/files", map[string]string{
			"name":       "Employee Handbook",
			"categoryId": categoryID,
		}, "handbook.pdf", "application/pdf", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		file := decodeBody[models.File](t, resp)
		require.Equal(t, int64(1024), file.FileSize)
		require.Equal(t, "application/pdf", file.MimeType)
		require.True(t, strings.HasPrefix(file.FilePath, "/uploads/"))
	})

	t.Run("file list carries the category", func(t *testing.T) {
		resp := env.doGet(t, "/v1/files")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		files := decodeBody[[]models.File](t, resp)
		require.Len(t, files, 1)
		require.NotNil(t, files[0].Category)
		require.Equal(t, "Policies", files[0].Category.Name)
	})

	t.Run("category list counts files", func(t *testing.T) {
		resp := env.doGet(t, "/v1/categories")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cats := decodeBody[[]models.CategorySummary](t, resp)
		require.Len(t, cats, 1)
		require.Equal(t, int64(1), cats[0].FileCount)
	})

	t.Run("delete without cascade refused", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodDelete, "/v1/categories/"+categoryID, nil, true)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		prob := decodeBody[problem.APIError](t, resp)
		require.Equal(t, 409, prob.Status)
	})

	t.Run("delete with cascade takes the files along", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodDelete, "/v1/categories/"+categoryID+"?cascade=true", nil, true)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		listResp := env.doGet(t, "/v1/files")
		files := decodeBody[[]models.File](t, listResp)
		require.Empty(t, files)
	})
}

func TestRegistrationIsOneShot(t *testing.T) {
	env := newIntegrationEnv(t)

	t.Run("short password rejected", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodPost, "/v1/auth/register", map[string]string{
			"email": "admin@example.com", "password": "short",
		}, false)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("first registration succeeds", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodPost, "/v1/auth/register", map[string]string{
			"email": "admin@example.com", "password": "a long enough password",
		}, false)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		user := decodeBody[models.RegisteredUser](t, resp)
		require.Equal(t, "admin", user.Role)
		require.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("second registration is closed", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodPost, "/v1/auth/register", map[string]string{
			"email": "other@example.com", "password": "another long password",
		}, false)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		prob := decodeBody[problem.APIError](t, resp)
		require.Equal(t, "Registration closed", prob.Title)
	})
}

func TestApplicationDefaultsOverHTTP(t *testing.T) {
	env := newIntegrationEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/v1/applications", map[string]string{
		"name": "Wiki", "url": "https://wiki.example.com",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	app := decodeBody[models.Application](t, resp)
	require.Equal(t, "#0ea5e9", app.Color)
	require.False(t, app.SsoEnabled)
	require.Zero(t, app.SortOrder)
}

func TestAuthGates(t *testing.T) {
	env := newIntegrationEnv(t)

	t.Run("write requires a token", func(t *testing.T) {
		resp := env.doJSON(t, http.MethodPost, "/v1/applications", map[string]string{
			"name": "Wiki", "url": "https://wiki.example.com",
		}, false)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("api key reads but never writes", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, env.server.URL+"/v1/applications", nil)
		require.NoError(t, err)
		req.Header.Set("x-api-key", "gateway-key")
		resp, err := env.client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		req, err = http.NewRequest(http.MethodPost, env.server.URL+"/v1/applications", bytes.NewBufferString(`{}`))
		require.NoError(t, err)
		req.Header.Set("x-api-key", "gateway-key")
		req.Header.Set("Content-Type", "application/json")
		resp, err = env.client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("read scope cannot write", func(t *testing.T) {
		readOnly := signToken(t, "intranet:read")
		req, err := http.NewRequest(http.MethodPost, env.server.URL+"/v1/applications", bytes.NewBufferString(`{}`))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+readOnly)
		req.Header.Set("Content-Type", "application/json")
		resp, err := env.client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestStreamsOverHTTP(t *testing.T) {
	env := newIntegrationEnv(t)

	resp := env.doGet(t, "/v1/streams")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[models.StreamList](t, resp)
	require.Equal(t, 1, list.ItemCount)
	require.Len(t, list.Streams, 1)
	require.Equal(t, "cam-entrance", list.Streams[0].Name)
	require.Equal(t, "rtspSession", list.Streams[0].Type)
}
