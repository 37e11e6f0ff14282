package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/controller"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/seed"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/pkg/database"
	"quiz_api_backend/pkg/logger"
	"quiz_api_backend/pkg/monitoring"
	"quiz_api_backend/pkg/security"
	"quiz_api_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	question *repository.QuestionRepository
	session  *repository.SessionRepository
	answer   *repository.AnswerRepository
}

type services struct {
	question   *service.QuestionService
	session    *service.QuizSessionService
	answer     *service.AnswerService
	statistics *service.StatisticsService
}

type controllers struct {
	question   *controller.QuestionController
	session    *controller.QuizSessionController
	answer     *controller.AnswerController
	statistics *controller.StatisticsController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question: repository.NewQuestionRepository(db),
		session:  repository.NewSessionRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.question = service.NewQuestionService(repos.question)
	s.session = service.NewQuizSessionService(repos.session, repos.answer)
	s.answer = service.NewAnswerService(repos.answer, repos.session, repos.question)
	s.statistics = service.NewStatisticsService(repos.question, repos.session, repos.answer)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		question:   controller.NewQuestionController(s.question),
		session:    controller.NewQuizSessionController(s.session),
		answer:     controller.NewAnswerController(s.answer),
		statistics: controller.NewStatisticsController(s.statistics),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Seed.OnStartup {
		if err := seed.Run(db, cfg.Seed.Force); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quiz-api", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
