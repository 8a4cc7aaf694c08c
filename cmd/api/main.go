package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yield-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms"
	"github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/pmsclient"
	"github.com/vfg2006/yield-manager-api/infrastructure/repository"
	"github.com/vfg2006/yield-manager-api/internal/api"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/scheduler"
	"github.com/vfg2006/yield-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	strategyRepo := repository.NewStrategyRepository(pgConn)
	runRepo := repository.NewOptimizationRunRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	registry := yielding.NewRegistry(strategyRepo, yielding.NewEvaluator(nil))
	loadStrategies(ctx, registry)

	// Sem PMS configurado o motor opera apenas com dados sintéticos
	var (
		primary  yielding.DataSource
		executor yielding.ActionExecutor
	)
	if cfg.PMS.Enabled {
		pmsIntegrator := pms.New(pmsclient.NewClient(cfg.PMS))
		primary = pmsIntegrator
		executor = pmsIntegrator
		logrus.WithField("url", cfg.PMS.URL).Info("Integração com PMS habilitada")
	} else {
		logrus.Warn("Integração com PMS desabilitada, usando dados sintéticos")
	}

	source := yielding.NewFallbackSource(primary, yielding.NewSyntheticSource(), cfg.Yield.FallbackEnabled, cfg.Yield.FetchTimeout)
	yieldService := yielding.NewService(cfg.Yield, registry, source, executor, runRepo)

	yieldRefreshService := scheduler.NewYieldRefreshService(yieldService, cfg.YieldRefresh)
	if err := yieldRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de yield")
	} else {
		logrus.Info("Agendador de recálculo de yield iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		yieldService,
		authenticator,
		yieldRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// loadStrategies carrega as estratégias persistidas; com o banco vazio, grava as estratégias padrão
func loadStrategies(ctx context.Context, registry *yielding.Registry) {
	loaded, err := registry.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar estratégias")
	}

	if loaded == 0 {
		if err := registry.Install(ctx, yielding.DefaultStrategies(time.Now().UTC())...); err != nil {
			logrus.WithError(err).Fatal("Erro ao gravar estratégias padrão")
		}
		logrus.Info("Nenhuma estratégia cadastrada, estratégias padrão gravadas")
		return
	}

	logrus.WithField("strategies", loaded).Info("Estratégias carregadas")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
