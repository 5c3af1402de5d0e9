package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CauehCraft/AgendaAberta/config"
	"github.com/CauehCraft/AgendaAberta/internal/api/handler"
	"github.com/CauehCraft/AgendaAberta/internal/api/router"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
	"github.com/CauehCraft/AgendaAberta/internal/service"
	"github.com/CauehCraft/AgendaAberta/pkg/database"
	"github.com/CauehCraft/AgendaAberta/pkg/jwt"
	applogger "github.com/CauehCraft/AgendaAberta/pkg/logger"
	"github.com/CauehCraft/AgendaAberta/pkg/redis"
)

func main() {
	// 1. Variáveis de ambiente locais (.env é opcional)
	_ = godotenv.Load()

	// 2. Carrega a configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 3. Inicializa o logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicação...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 4. Conecta ao banco
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("falha na conexão com o banco", zap.Error(err))
	}
	logger.Info("conexão com o banco estabelecida")

	// 4.1 Executa as migrações
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("falha ao obter o sql.DB subjacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("falha nas migrações do banco", zap.Error(err))
	}

	// 5. Conecta ao Redis (opcional: sem Redis o serviço sobe degradado,
	// sem lista de bloqueio de tokens nem limitação de taxa)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("falha na conexão com o Redis, bloqueio de tokens indisponível", zap.Error(err))
		rdb = nil
	}

	// 6. Gerenciador de JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. Injeção de dependências: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 8. Rotas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. Servidor HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	// 10. Aguarda sinal do sistema para desligar
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de desligamento recebido, encerrando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no desligamento do servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor encerrado")
}
