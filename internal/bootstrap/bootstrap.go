package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mert/unirecords/internal/app/controllers"
	appRoutes "github.com/mert/unirecords/internal/app/routes"
	appServices "github.com/mert/unirecords/internal/app/services"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/config"
	appMiddleware "github.com/mert/unirecords/internal/middleware"
	"github.com/mert/unirecords/internal/pkg/logger"
	"github.com/mert/unirecords/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                *store.Store
	ProfessorService     *appServices.ProfessorService
	StudentService       *appServices.StudentService
	CourseService        *appServices.CourseService
	EnrollmentService    *appServices.EnrollmentService
	AnalyticsService     *appServices.AnalyticsService
	ProfessorController  *appControllers.ProfessorController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AnalyticsController  *appControllers.AnalyticsController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory entity store and, when enabled, seeds it
// with the default data set.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	st := store.New()

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(st, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed default data")
			return nil, err
		}
	}

	lgr.Info().Bool("seeded", cfg.Seed.Enabled).Msg("Entity store initialized")
	return st, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(st *store.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.ProfessorService = appServices.NewProfessorService(st)
	deps.StudentService = appServices.NewStudentService(st)
	deps.CourseService = appServices.NewCourseService(st)
	deps.EnrollmentService = appServices.NewEnrollmentService(st)
	deps.AnalyticsService = appServices.NewAnalyticsService(st)

	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.ProfessorController,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AnalyticsController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
