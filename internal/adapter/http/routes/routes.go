package routes

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gems85/bolt-quotes-proxy/docs" // This will be auto-generated
	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/handlers"
	repository2 "github.com/gems85/bolt-quotes-proxy/internal/adapter/persistence/repository"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/database"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/links"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

var router = gin.Default()

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", "bolt-quotes-proxy").Logger()

type serverConfig struct {
	Port          int    `envconfig:"PORT" default:"8080"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	LinksBackend  string `envconfig:"LINKS_BACKEND" default:"memory"`
}

// Run will start the server
func Run() {
	var cfg serverConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to read server configuration")
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(cfg serverConfig) {
	airtableCfg, err := airtable.ConfigFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read record store configuration")
	}
	client, err := airtable.New(airtableCfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure record store client")
	}

	projectRepo := repository2.NewProjectAirtableRepository(client, airtableCfg.ProjectsTable)
	photoRepo := repository2.NewPhotoAirtableRepository(client, airtableCfg.PhotosTable)
	quoteRepo := repository2.NewQuoteAirtableRepository(client, airtableCfg.QuotesTable, logger)
	configRepo := repository2.NewConfigAirtableRepository(client, airtableCfg.CompanyConfigTable)
	specRepo := repository2.NewVehicleSpecAirtableRepository(client, airtableCfg.VehicleSpecsTable)

	linkStore := newLinkStore(cfg)

	quoteUseCase := usecase.NewQuoteUseCase(projectRepo, quoteRepo, configRepo, specRepo, linkStore, cfg.PublicBaseURL, logger)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, photoRepo, configRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler)
	addQuoteRoutes(v1, quoteHandler)
}

// newLinkStore picks the shareable-link backend. Tokens in the memory store
// do not survive a restart; DynamoDB makes them durable.
func newLinkStore(cfg serverConfig) interfaces.ILinkStore {
	switch cfg.LinksBackend {
	case "dynamodb":
		logger.Info().Msg("using dynamodb link store")
		return repository2.NewLinkDynamoRepository(database.ConnectDynamoDB())
	case "memory":
		logger.Info().Msg("using in-memory link store")
		return links.NewMemoryStore()
	default:
		logger.Fatal().Msg(fmt.Sprintf("unknown LINKS_BACKEND %q, expected memory or dynamodb", cfg.LinksBackend))
		return nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
