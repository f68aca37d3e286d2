package svc

import (
	"context"
	"os"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/config"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/cache"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/db"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/storage"
	"github.com/Shreyash123-code/AICTE-project1/internal/middleware"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config  *config.Config
	DB      *gorm.DB
	Cache   *cache.RedisCache // 可以为 nil，handler 都要判
	Storage storage.BlobStore

	// 私有字段，用于存储需要关闭的资源
	tracerProvider *trace.TracerProvider
}

// NewServiceContext 这里是所有初始化的总入口
func NewServiceContext(cfg *config.Config) *ServiceContext {
	dbConn := db.InitMySQL(cfg)

	rdb, err := cache.New(cfg)
	if err != nil {
		zap.L().Warn("Redis connection failed, continuing without Redis", zap.Error(err))
		rdb = nil
	} else {
		zap.L().Info("Redis connected successfully")
	}

	minioSvc, err := storage.NewFileStorage(
		cfg.MinioEndpoint,  // 内部连接用: "minio:9000"
		cfg.MinioPublicURL, // 外部展示用: "http://localhost:9000" (上线改成服务器IP)
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioBucket,
	)
	if err != nil {
		zap.L().Fatal("failed to init object storage", zap.Error(err))
	}

	jaegerURL := os.Getenv("JAEGER_ENDPOINT")
	if jaegerURL == "" {
		jaegerURL = "http://localhost:14268/api/traces"
	}

	// 初始化 Tracer
	tp, err := middleware.InitTracer("studnotes-api", jaegerURL)
	if err != nil {
		zap.L().Fatal("failed to init tracer", zap.Error(err))
	}

	return &ServiceContext{
		Config:         cfg,
		DB:             dbConn,
		Cache:          rdb,
		Storage:        minioSvc,
		tracerProvider: tp,
	}
}

func (s *ServiceContext) Close() {
	// 关闭 Tracer，把剩下的数据发出去
	if s.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.tracerProvider.Shutdown(ctx); err != nil {
			zap.L().Error("Tracer shutdown error", zap.Error(err))
		}
	}
}
