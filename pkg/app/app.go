// Package app 提供应用程序的初始化和装配.
package app

import (
	contextPkg "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mshahid/portfolio-server/pkg/api"
	"github.com/mshahid/portfolio-server/pkg/cache"
	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/jobs"
	"github.com/mshahid/portfolio-server/pkg/internal/router"
	"github.com/mshahid/portfolio-server/pkg/internal/storage"
	"github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/mail"
	"github.com/mshahid/portfolio-server/pkg/metrics"
	"github.com/mshahid/portfolio-server/pkg/middleware"
	"github.com/mshahid/portfolio-server/pkg/queue"
	"github.com/mshahid/portfolio-server/pkg/scheduler"
	"github.com/mshahid/portfolio-server/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Engine *gin.Engine

	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// 初始化追踪
	config := configs.GetConfig()
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

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.CORSMiddleware(config.Server),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.StorageMiddleware(manager),
	)

	if config.RateLimit.Enabled {
		engine.Use(middleware.RateLimitMiddleware(config.RateLimit))
	}

	if config.CircuitBreaker.Enabled {
		engine.Use(middleware.CircuitBreakerMiddleware(config.CircuitBreaker))
	}

	// 定时任务
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		l.Error().Err(err).Msg("register cron jobs failed")
	}

	sched.Start()
	engine.Use(middleware.SchedulerMiddleware(sched))

	// 业务路由
	api.RegisterGroup(engine, router.Options{
		Auth:  middleware.AuthMiddleware(config.Auth),
		Cache: buildAnalyticsCache(manager, config),
	})
	router.RegisterSwaggerRoute(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	// 联系通知订阅
	if config.Mail.Enabled {
		go runContactNotifier(context.WithStorageManager(ctx, manager), manager)
	}

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// buildAnalyticsCache 基于 KV 存储构建统计接口的响应缓存中间件.
func buildAnalyticsCache(manager *storage.Manager, config *configs.AppConfig) gin.HandlerFunc {
	kvClient := manager.GetKVClient()
	if kvClient == nil || config.Analytics.CacheTTLSeconds <= 0 {
		return nil
	}

	cfg := middleware.DefaultCacheConfig(cache.NewCache(kvClient))
	cfg.TTL = time.Duration(config.Analytics.CacheTTLSeconds) * time.Second
	cfg.VaryHeaders = []string{config.Auth.HeaderName}

	return middleware.CacheMiddleware(cfg)
}

// runContactNotifier 消费联系事件并发送邮件通知.
func runContactNotifier(ctx contextPkg.Context, manager *storage.Manager) {
	l := log.Logger()

	mqClient := manager.GetMQClient()
	if mqClient == nil {
		l.Warn().Msg("mail notify enabled but mq not initialized")
		return
	}

	notifier := mail.NewNotifier(configs.GetConfig().Mail)

	msgs, err := mqClient.Subscribe(ctx, queue.TopicContactReceived)
	if err != nil {
		l.Error().Err(err).Msg("subscribe contact events failed")
		return
	}

	for msg := range msgs {
		ev, err := queue.ParseContactReceived(msg)
		if err != nil {
			l.Error().Err(err).Msg("parse contact event failed")
			msg.Ack()

			continue
		}

		if err := notifier.NotifyContact(ctx, ev.Payload); err != nil {
			l.Error().Err(err).Uint("message_id", ev.Payload.MessageID).Msg("send contact notification failed")
		}

		msg.Ack()
	}
}

// Run 启动 HTTP 服务并在收到退出信号后优雅关停.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Logger().Info().Str("addr", srv.Addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Logger().Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if err := a.sched.Stop(); err != nil {
		log.Logger().Warn().Err(err).Msg("scheduler stop failed")
	}

	if err := a.manager.Close(); err != nil {
		log.Logger().Warn().Err(err).Msg("storage close failed")
	}

	return nil
}
