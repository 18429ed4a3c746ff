package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/handler"
	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/jobs"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/loopfz/gadgeto/tonic"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	intranet "github.com/developer-overheid-nl/don-intranet/pkg/intranet"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/database"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/httpclient"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
)

func invalidParamsFromBinding(err error, sample any) []problem.InvalidParam {
	// Try to match validator.ValidationErrors directly.
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// No validator errors? Report generically.
		return []problem.InvalidParam{{Name: "body", Reason: err.Error()}}
	}

	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make([]problem.InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		// StructField -> json tag
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
				name = strings.Split(tag, ",")[0]
			}
		}
		out = append(out, problem.InvalidParam{
			Name:   name,
			Reason: humanReason(fe),
		})
	}
	return out
}

func humanReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL (e.g. https://…)"
	default:
		return fe.Error()
	}
}

func init() {
	tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
		// 1) Bind/validate errors → 400 with proper invalidParams
		var be tonic.BindError
		if errors.As(err, &be) || isValidationErr(err) {
			invalids := invalidParamsFromBinding(err, models.ApplicationPost{})
			apiErr := problem.NewBadRequest("body", "Invalid input", invalids...)
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// 2) Our own APIError → pass-through
		if apiErr, ok := err.(problem.APIError); ok {
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// 3) Everything else → 500
		internal := problem.NewInternalServerError(err.Error())
		c.Header("Content-Type", "application/problem+json")
		return internal.Status, internal
	})
}

func isValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	dbcon := "postgres://" +
		os.Getenv("DB_USERNAME") + ":" +
		os.Getenv("DB_PASSWORD") + "@" +
		os.Getenv("DB_HOSTNAME") + "/" +
		os.Getenv("DB_DBNAME") + "?search_path=" +
		os.Getenv("DB_SCHEMA")
	db, err := database.Connect(dbcon)
	if err != nil {
		log.Fatalf("no database connection: %v", err)
	}

	maxFileSize := int64(storage.DefaultMaxFileSize)
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("invalid MAX_FILE_SIZE %q: %v", v, err)
		}
		maxFileSize = parsed
	}
	store := storage.New(envOr("UPLOAD_DIR", "public/uploads"), maxFileSize)

	appRepo := repositories.NewApplicationRepository(db)
	catRepo := repositories.NewCategoryRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	wikiRepo := repositories.NewWikiRepository(db)
	userRepo := repositories.NewUserRepository(db)

	mtx := httpclient.NewMediaMTXClient(
		envOr("MEDIAMTX_API_URL", "https://localhost:9997"),
		os.Getenv("MEDIAMTX_USERNAME"),
		os.Getenv("MEDIAMTX_PASSWORD"),
	)

	controllers := intranet.Controllers{
		Applications: handler.NewApplicationsController(services.NewApplicationService(appRepo)),
		Categories:   handler.NewCategoriesController(services.NewCategoryService(catRepo, store)),
		Files:        handler.NewFilesController(services.NewFileService(fileRepo, catRepo, store), store),
		Wiki:         handler.NewWikiController(services.NewWikiService(wikiRepo)),
		Auth:         handler.NewAuthController(services.NewAuthService(userRepo)),
		Streams:      handler.NewStreamsController(services.NewStreamService(mtx)),
	}

	jobs.ScheduleDailySweep(context.Background(), services.NewSweepService(fileRepo, wikiRepo, store))

	router := intranet.NewRouter(envOr("API_VERSION", "1.0.0"), controllers)

	addr := ":" + envOr("PORT", "1337")
	log.Println("Server is running on " + addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
