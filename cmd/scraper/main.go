package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"catalog/internal/config"
	"catalog/internal/logger"
	"catalog/internal/model"
	"catalog/internal/pipeline/consolidate"
	"catalog/internal/pipeline/export"
	"catalog/internal/pipeline/upload"
	"catalog/internal/repository"
)

func main() {
	// Parse mode flag
	mode := flag.String("mode", "", "Pipeline mode: consolidate|export|upload")
	input := flag.String("input", ".", "Directory containing input HTML or CSV files")
	output := flag.String("output", "department_data_processed", "Output directory for exported CSV files")
	flag.Parse()

	// Initialize logger
	logger := logger.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	// Initialize validator with the course catalog rules
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := model.RegisterValidations(validate); err != nil {
		logger.Fatal().Msgf("Failed to register validations: %v", err)
	}

	// Set up context with graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Dispatch to the selected pipeline
	var runErr error
	switch *mode {
	case "consolidate":
		client := newFirestoreClient(ctx, logger, cfg)
		defer client.Close()
		repo := repository.NewCatalogRepo(client, cfg.CatalogCollection)
		runErr = consolidate.Run(ctx, logger, repo, *input)
	case "export":
		runErr = export.Run(logger, validate, *input, *output)
	case "upload":
		client := newFirestoreClient(ctx, logger, cfg)
		defer client.Close()
		repo := repository.NewCourseRepo(client, cfg.CoursesCollection, logger)
		runErr = upload.Run(ctx, logger, validate, repo, *input)
	default:
		logger.Fatal().Msgf("Invalid mode: %s", *mode)
	}

	if runErr != nil {
		logger.Fatal().Msgf("%s pipeline failed: %v", *mode, runErr)
	}

	logger.Info().Msgf("%s pipeline finished", *mode)
}

func newFirestoreClient(ctx context.Context, log zerolog.Logger, cfg *config.Config) *firestore.Client {
	var opts []option.ClientOption
	if cfg.ServiceAccountKeyPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountKeyPath))
	}
	client, err := firestore.NewClient(ctx, cfg.GCPProjectID, opts...)
	if err != nil {
		log.Fatal().Msgf("Failed to create Firestore client: %v", err)
	}
	return client
}
