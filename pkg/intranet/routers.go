package intranet

import (
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/handler"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/middleware"
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var (
	apiVersionHeader = fizz.Header(
		"API-Version",
		"The API version of the response",
		"", // empty string means: primitive string in the spec
	)

	notFoundResponse = fizz.Response(
		"404",
		"Not Found",
		nil, // no inline schema
		nil, // no content media type
		nil, // no extra headers
	)
)

// Controllers bundles the per-domain controllers the router mounts.
type Controllers struct {
	Applications *handler.ApplicationsController
	Categories   *handler.CategoriesController
	Files        *handler.FilesController
	Wiki         *handler.WikiController
	Auth         *handler.AuthController
	Streams      *handler.StreamsController
}

func NewRouter(apiVersion string, c Controllers) *fizz.Fizz {
	g := gin.Default()
	g.Use(APIVersionMiddleware(apiVersion))
	f := fizz.NewFromEngine(g)

	info := &openapi.Info{
		Title:       "Intranet API v1",
		Description: "API behind the company intranet: applications, file library, wiki and stream status",
		Version:     apiVersion,
	}

	root := f.Group("/v1", "Intranet v1", "Intranet V1 routes")

	// Bootstrap registration is deliberately unauthenticated: it only works
	// while no admin account exists.
	root.POST("/auth/register",
		[]fizz.OperationOption{
			fizz.Summary("Register the one-time admin account"),
			apiVersionHeader,
		},
		tonic.Handler(c.Auth.Register, 201),
	)

	// Read-only endpoints
	read := root.Group("", "Read", "Read-only endpoints", middleware.RequireAccess("intranet:read"))
	read.GET("/applications",
		[]fizz.OperationOption{
			fizz.Summary("List all applications"),
			apiVersionHeader,
		},
		tonic.Handler(c.Applications.ListApplications, 200),
	)
	read.GET("/categories",
		[]fizz.OperationOption{
			fizz.Summary("List all file categories with their file counts"),
			apiVersionHeader,
		},
		tonic.Handler(c.Categories.ListCategories, 200),
	)
	read.GET("/files",
		[]fizz.OperationOption{
			fizz.Summary("List all files including their category"),
			apiVersionHeader,
		},
		tonic.Handler(c.Files.ListFiles, 200),
	)
	read.GET("/wiki",
		[]fizz.OperationOption{
			fizz.Summary("List all wiki articles"),
			apiVersionHeader,
		},
		tonic.Handler(c.Wiki.ListArticles, 200),
	)
	read.GET("/streams",
		[]fizz.OperationOption{
			fizz.Summary("Current media stream status"),
			apiVersionHeader,
		},
		tonic.Handler(c.Streams.ListStreams, 200),
	)

	// Write endpoints
	write := root.Group("", "Write", "Admin endpoints", middleware.RequireAccess("intranet:write"))
	write.POST("/applications",
		[]fizz.OperationOption{
			fizz.Summary("Create an application"),
			apiVersionHeader,
		},
		tonic.Handler(c.Applications.CreateApplication, 201),
	)
	write.PUT("/applications/:id",
		[]fizz.OperationOption{
			fizz.Summary("Update an application"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Applications.UpdateApplication, 200),
	)
	write.DELETE("/applications/:id",
		[]fizz.OperationOption{
			fizz.Summary("Delete an application"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Applications.DeleteApplication, 204),
	)

	write.POST("/categories",
		[]fizz.OperationOption{
			fizz.Summary("Create a file category"),
			apiVersionHeader,
		},
		tonic.Handler(c.Categories.CreateCategory, 201),
	)
	write.PUT("/categories/:id",
		[]fizz.OperationOption{
			fizz.Summary("Update a file category"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Categories.UpdateCategory, 200),
	)
	write.DELETE("/categories/:id",
		[]fizz.OperationOption{
			fizz.Summary("Delete a file category, cascading to its files when cascade=true"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Categories.DeleteCategory, 204),
	)

	write.POST("/files",
		[]fizz.OperationOption{
			fizz.Summary("Upload a file into the library"),
			apiVersionHeader,
		},
		tonic.Handler(c.Files.CreateFile, 201),
	)
	write.PUT("/files/:id",
		[]fizz.OperationOption{
			fizz.Summary("Update file metadata"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Files.UpdateFile, 200),
	)
	write.DELETE("/files/:id",
		[]fizz.OperationOption{
			fizz.Summary("Delete a file and its stored bytes"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Files.DeleteFile, 204),
	)
	write.POST("/uploads/icons",
		[]fizz.OperationOption{
			fizz.Summary("Upload an icon image"),
			apiVersionHeader,
		},
		tonic.Handler(c.Files.UploadIcon, 201),
	)

	write.POST("/wiki",
		[]fizz.OperationOption{
			fizz.Summary("Create a wiki article"),
			apiVersionHeader,
		},
		tonic.Handler(c.Wiki.CreateArticle, 201),
	)
	write.PUT("/wiki/:id",
		[]fizz.OperationOption{
			fizz.Summary("Update a wiki article"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Wiki.UpdateArticle, 200),
	)
	write.DELETE("/wiki/:id",
		[]fizz.OperationOption{
			fizz.Summary("Delete a wiki article"),
			apiVersionHeader,
			notFoundResponse,
		},
		tonic.Handler(c.Wiki.DeleteArticle, 204),
	)

	f.GET("/v1/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
