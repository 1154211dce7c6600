package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"catalog/internal/api/v1/handler"
	"catalog/internal/config"
	"catalog/internal/middleware"
	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/internal/service"
)

// New wires the Firestore client, repositories, services and handlers into
// the HTTP handler tree. The returned client is owned by the caller and must
// be closed on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *firestore.Client, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("App environment loaded")

	// 1. Open the Firestore client. The client is constructed here and
	// injected everywhere it is needed; nothing holds it as global state.
	var opts []option.ClientOption
	if cfg.ServiceAccountKeyPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountKeyPath))
	}
	client, err := firestore.NewClient(context.Background(), cfg.GCPProjectID, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Firestore client")
		return nil, nil, err
	}
	logger.Info().Str("project", cfg.GCPProjectID).Msg("Firestore client initialized")

	// 2. Initialize validator with the course catalog rules
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := model.RegisterValidations(validate); err != nil {
		return nil, nil, err
	}

	// 3. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(client, cfg.CoursesCollection, logger)
	catalogRepo := repository.NewCatalogRepo(client, cfg.CatalogCollection)

	courseSvc := service.NewCourseService(courseRepo, catalogRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	departmentHandler := handler.NewDepartmentHandler()
	healthHandler := handler.NewHealthHandler(client)

	// 4. Create ServeMux router
	mux := http.NewServeMux()

	// Create a subrouter for API v1 with the /v1 prefix
	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux)
	departmentHandler.RegisterRoutes(apiV1Mux)
	healthHandler.RegisterRoutes(apiV1Mux)

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Redirect /api/* to /v1/* for backward compatibility
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/")
		http.Redirect(w, r, "/v1/"+rest, http.StatusMovedPermanently)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Hello World"})
			return
		}
		// Avoid redirect loops by checking if already under /v1 or /api
		if strings.HasPrefix(r.URL.Path, "/v1/") || strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/v1"+r.URL.Path, http.StatusMovedPermanently)
	})

	// 5. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), client, nil
}
