package cmd

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-krushivishwa/config"
	"go-krushivishwa/routes"
	"go-krushivishwa/services"
	"go-krushivishwa/store"
	"go-krushivishwa/utils"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := buildServices(cfg, st, logger)
	if err != nil {
		return err
	}

	r := routes.SetupRouter(svc, logger)

	logger.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Backend),
		zap.String("mode", cfg.Server.Mode),
	)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// openStore 根据配置选择存储后端
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMySQL:
		db, err := config.OpenDB(ctx, cfg.MySQL, logger)
		if err != nil {
			return nil, err
		}
		if err := config.AutoMigrate(ctx, db, logger); err != nil {
			db.Close()
			return nil, err
		}
		return store.NewMySQLStore(db), nil
	case config.BackendRedis:
		rs, err := store.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		return rs, nil
	default:
		return store.NewMemoryStore(), nil
	}
}

func buildServices(cfg *config.Config, st store.Store, logger *zap.Logger) (routes.Services, error) {
	auth, err := services.NewAuthService(services.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	}, st, logger)
	if err != nil {
		return routes.Services{}, err
	}

	reader := services.NewReportReader(cfg.Soil.MaxReportBytes, logger)
	return routes.Services{
		Auth:      auth,
		Soil:      services.NewSoilService(st, reader, logger),
		Dashboard: services.NewDashboardService(),
		Chatbot:   services.NewChatbot(),
		Shell:     services.NewShellService(st, logger),
	}, nil
}
