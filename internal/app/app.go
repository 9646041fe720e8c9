package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/controller"
	"lexigrain_schedule/internal/repository"
	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/pkg/logger"
	"lexigrain_schedule/pkg/monitoring"
	"lexigrain_schedule/pkg/security"
	"lexigrain_schedule/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Store    service.StorageProvider
	services *services
}

type repositories struct {
	schedule   *repository.ScheduleRepository
	onboarding *repository.OnboardingRepository
	auth       *repository.AuthRepository
	lesson     *repository.LessonRepository
}

type services struct {
	backend    *service.BackendService
	auth       *service.AuthService
	lesson     *service.LessonService
	onboarding *service.OnboardingService
	schedule   *service.ScheduleService
}

type controllers struct {
	schedule   *controller.ScheduleController
	onboarding *controller.OnboardingController
	auth       *controller.AuthController
	lesson     *controller.LessonController
	health     *controller.HealthController
}

func (a *App) initRepositories(store service.StorageProvider) *repositories {
	return &repositories{
		schedule:   repository.NewScheduleRepository(store),
		onboarding: repository.NewOnboardingRepository(store),
		auth:       repository.NewAuthRepository(store),
		lesson:     repository.NewLessonRepository(store),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.backend = service.NewBackendService(cfg.Backend)
	s.auth = service.NewAuthService(repos.auth, s.backend)
	s.backend.SetTokenSource(s.auth.BearerToken)
	s.lesson = service.NewLessonService(repos.lesson, s.backend)
	s.onboarding = service.NewOnboardingService(repos.onboarding, s.backend)
	s.schedule = service.NewScheduleService(repos.schedule, repos.onboarding, s.backend, s.lesson, cfg.Schedule)

	return s
}

func (a *App) initControllers(s *services, store service.StorageProvider) *controllers {
	return &controllers{
		schedule:   controller.NewScheduleController(s.schedule),
		onboarding: controller.NewOnboardingController(s.onboarding),
		auth:       controller.NewAuthController(s.auth),
		lesson:     controller.NewLessonController(s.lesson),
		health:     controller.NewHealthController(store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// OnConfigChange 配置热更新回调，目前只有后端地址和超时可热切换
func (a *App) OnConfigChange(cfg *config.Config) {
	a.services.backend.UpdateConfig(cfg.Backend)
	logger.Log.Info("Backend config reloaded",
		zap.String("baseUrl", cfg.Backend.BaseURL),
		zap.Int("timeoutSeconds", cfg.Backend.TimeoutSeconds))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	store, err := service.NewStorageProvider(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage provider", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  store,
	}

	repos := app.initRepositories(store)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, store)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lexigrain-schedule", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	// 等待进行中的远端同步收尾
	if a.services != nil {
		a.services.schedule.Flush()
		a.services.onboarding.Flush()
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
