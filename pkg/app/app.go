// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/stagevault/pkg/api"
	appcache "github.com/yeisme/stagevault/pkg/cache"
	"github.com/yeisme/stagevault/pkg/configs"
	"github.com/yeisme/stagevault/pkg/internal/jobs"
	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/router"
	"github.com/yeisme/stagevault/pkg/internal/storage"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/metrics"
	"github.com/yeisme/stagevault/pkg/middleware"
	"github.com/yeisme/stagevault/pkg/scheduler"
	"github.com/yeisme/stagevault/pkg/tracing"
)

type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	if err := migrate(manager); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.Register(sched, manager); err != nil {
		fmt.Printf("Error registering jobs: %v\n", err)
		os.Exit(1)
	}

	sched.Start()

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.GzipMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.AuthMiddleware(config.Auth),
		middleware.RoleMiddleware(),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
	)

	api.RegisterGroup(engine, router.Options{ResponseCache: responseCache(manager)})

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Close 停止调度器并释放存储资源.
func (a *App) Close() error {
	if a.sched != nil {
		if err := a.sched.Stop(); err != nil {
			log.Logger().Warn().Err(err).Msg("stop scheduler failed")
		}
	}

	if a.manager != nil {
		return a.manager.Close()
	}

	return nil
}

// migrate 同步数据库表结构.
func migrate(manager *storage.Manager) error {
	dbc := manager.GetDBClient()
	if dbc == nil {
		return fmt.Errorf("db client not initialized")
	}

	return model.AutoMigrate(dbc.GetDB())
}

// responseCache 基于 KV 构建只读端点的响应缓存中间件, KV 不可用时返回 nil.
func responseCache(manager *storage.Manager) gin.HandlerFunc {
	kvc := manager.GetKVClient()
	if kvc == nil {
		return nil
	}

	return middleware.CacheMiddleware(middleware.DefaultCacheConfig(appcache.NewCache(kvc)))
}
