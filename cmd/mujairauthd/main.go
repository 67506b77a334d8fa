package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/config"
	"github.com/TambakLabs/mujairAuth/internal/server"
	"github.com/TambakLabs/mujairAuth/mailer"
	"github.com/TambakLabs/mujairAuth/metrics/export/prometheus"
	"github.com/TambakLabs/mujairAuth/store/postgres"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var cfgPath string
	flag.StringVar(&cfgPath, "c", "configs/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	defer redisClient.Close()

	engineCfg := mujairAuth.DefaultConfig()
	engineCfg.Token.Secret = []byte(cfg.App.Secret)
	engineCfg.Token.TTL = time.Duration(cfg.App.TokenTTL)
	engineCfg.Session.TTL = time.Duration(cfg.App.SessionTTL)
	engineCfg.Metrics.Enabled = cfg.Metrics.Enabled
	engineCfg.Metrics.EnableLatencyHistograms = cfg.Metrics.LatencyHistograms

	var mail mujairAuth.Mailer
	if cfg.SMTP.Host != "" {
		smtp, err := mailer.NewSMTP(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			BaseURL:  cfg.App.BaseURL,
		})
		if err != nil {
			logger.Fatal("failed to build smtp mailer", zap.Error(err))
		}
		mail = smtp
	} else {
		logger.Warn("smtp.host not set, emails go to the process log")
		mail = mailer.NewLog(cfg.App.BaseURL)
	}

	engine, err := mujairAuth.New().
		WithConfig(engineCfg).
		WithRedis(redisClient).
		WithAccountStore(postgres.NewAccountStore(db)).
		WithPendingStore(postgres.NewPendingStore(db)).
		WithMailer(mail).
		Build()
	if err != nil {
		logger.Fatal("failed to build auth engine", zap.Error(err))
	}

	if interval := time.Duration(cfg.App.PendingPurgeInterval); interval > 0 {
		go runPendingPurge(ctx, engine, logger, interval)
	}

	srv := server.NewServer(engine, logger)
	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus {
		srv.MountMetrics(prometheus.NewPrometheusExporter(engine).Handler())
	}

	if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("application stopped")
}

// runPendingPurge sweeps expired pending registrations until ctx is
// cancelled. The rows are dead weight either way; this keeps the table from
// growing unbounded.
func runPendingPurge(ctx context.Context, engine *mujairAuth.Engine, logger *zap.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := engine.PurgeExpiredPending(ctx)
			if err != nil {
				logger.Warn("pending registration purge failed", zap.Error(err))
				continue
			}
			if purged > 0 {
				logger.Info("purged expired pending registrations", zap.Int64("count", purged))
			}
		}
	}
}
