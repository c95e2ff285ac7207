package main

import (
	"log"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/config"
	"github.com/anand-nandz/Inkspire/internal/db"
	"github.com/anand-nandz/Inkspire/internal/handler"
	"github.com/anand-nandz/Inkspire/internal/logger"
	"github.com/anand-nandz/Inkspire/internal/notify"
	"github.com/anand-nandz/Inkspire/internal/otp"
	"github.com/anand-nandz/Inkspire/internal/router"
	"github.com/anand-nandz/Inkspire/internal/service"
	"github.com/anand-nandz/Inkspire/internal/storage"
	"github.com/go-redis/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init()

	// 初始化数据库
	if err := db.Init(cfg.Database.Path); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping().Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	pendingStore := otp.NewRedisStore(redisClient)

	// 未配置消息队列时回退到空发布器（开发环境）
	var publisher notify.Publisher = notify.NopPublisher{}
	if cfg.RabbitMQ.Url != "" {
		rabbit, err := notify.NewRabbitPublisher(cfg.RabbitMQ.Url, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		logger.Log.Warn("rabbitmq url empty, otp delivery disabled")
	}

	blob, err := storage.NewS3BlobStore(cfg.S3.Region, cfg.S3.Bucket, cfg.SignTTL())
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	resolver := service.NewMediaResolver(blob, cfg.S3.ArticlePrefix, cfg.S3.ProfilePrefix)
	users := service.NewUserService(db.DB, blob, resolver, pendingStore, publisher, cfg.S3.ProfilePrefix)
	articles := service.NewArticleService(db.DB, blob, resolver, cfg.S3.ArticlePrefix)

	tokens := auth.NewManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	h := handler.New(users, articles, tokens, cfg.RefreshTTL())

	// 设置并运行 Gin 服务器
	r := router.Setup(h, tokens, cfg.CORS.Origins)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
