package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduhub_backend/internal/config"
	"eduhub_backend/internal/controller"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/service"
	"eduhub_backend/pkg/database"
	"eduhub_backend/pkg/logger"
	"eduhub_backend/pkg/monitoring"
	"eduhub_backend/pkg/security"
	"eduhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Client   *mongo.Client
	DB       *mongo.Database
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	lesson     *repository.LessonRepository
	assignment *repository.AssignmentRepository
	enrollment *repository.EnrollmentRepository
	submission *repository.SubmissionRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	user       *service.UserService
	course     *service.CourseService
	lesson     *service.LessonService
	assignment *service.AssignmentService
	enrollment *service.EnrollmentService
	submission *service.SubmissionService
	analytics  *service.AnalyticsService
	storage    *service.StorageService
	export     *service.ExportService
	seed       *service.SeedService
}

type controllers struct {
	user       *controller.UserController
	course     *controller.CourseController
	lesson     *controller.LessonController
	enrollment *controller.EnrollmentController
	submission *controller.SubmissionController
	analytics  *controller.AnalyticsController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *mongo.Database) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		lesson:     repository.NewLessonRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		submission: repository.NewSubmissionRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		user:       service.NewUserService(repos.user),
		course:     service.NewCourseService(repos.course, repos.user),
		lesson:     service.NewLessonService(repos.lesson),
		assignment: service.NewAssignmentService(repos.assignment),
		enrollment: service.NewEnrollmentService(repos.enrollment),
		submission: service.NewSubmissionService(repos.submission),
		analytics:  service.NewAnalyticsService(repos.analytics, rdb),
		storage:    storage,
		export:     service.NewExportService(db, storage),
		seed: service.NewSeedService(
			db,
			repos.user,
			repos.course,
			repos.lesson,
			repos.assignment,
			repos.enrollment,
			repos.submission,
			cfg.Seed,
		),
	}, nil
}

func (a *App) initControllers(s *services, client *mongo.Client) *controllers {
	return &controllers{
		user:       controller.NewUserController(s.user),
		course:     controller.NewCourseController(s.course, s.analytics),
		lesson:     controller.NewLessonController(s.lesson),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		submission: controller.NewSubmissionController(s.submission, s.assignment),
		analytics:  controller.NewAnalyticsController(s.analytics),
		admin:      controller.NewAdminController(s.export, s.seed),
		health:     controller.NewHealthController(client),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	client, db, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		logger.Log.Error("Failed to initialize mongodb", zap.Error(err))
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Error("Failed to initialize redis", zap.Error(err))
			return nil, err
		}
	}

	app := &App{
		Config: cfg,
		Client: client,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		return nil, err
	}
	app.services = svcs
	ctrls := app.initControllers(svcs, client)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("eduhub-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
	}

	app.registerRoutes(router, ctrls)

	return app, nil
}

// Seed repopulates the sample data outside the HTTP surface, for the
// -seed and -seed-only flags.
func (a *App) Seed(ctx context.Context) (map[string]int, error) {
	return a.services.seed.Populate(ctx)
}

// Export dumps the database once, for the -export flag.
func (a *App) Export(ctx context.Context) (string, map[string]int, error) {
	return a.services.export.ExportAll(ctx)
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Client.Disconnect(ctx); err != nil {
		logger.Log.Error("mongodb disconnect failed", zap.Error(err))
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("redis close failed", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
