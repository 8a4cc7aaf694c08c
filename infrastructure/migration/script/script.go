package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yield-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/yield-manager-api/infrastructure/repository"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"golang.org/x/crypto/bcrypt"
)

type migration struct {
	name      string
	statement string
}

var migrations = []migration{
	{
		name: "tabela strategies",
		statement: `
			CREATE TABLE IF NOT EXISTS strategies (
				id          TEXT PRIMARY KEY,
				name        TEXT NOT NULL,
				conditions  JSONB NOT NULL DEFAULT '[]',
				actions     JSONB NOT NULL DEFAULT '[]',
				priority    INTEGER NOT NULL DEFAULT 0,
				active      BOOLEAN NOT NULL DEFAULT TRUE,
				valid_from  TIMESTAMPTZ NOT NULL,
				valid_to    TIMESTAMPTZ NOT NULL,
				created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at  TIMESTAMPTZ NULL,
				CONSTRAINT strategies_valid_window CHECK (valid_from <= valid_to)
			)`,
	},
	{
		name: "tabela optimization_runs",
		statement: `
			CREATE TABLE IF NOT EXISTS optimization_runs (
				id                SERIAL PRIMARY KEY,
				property_id       TEXT NOT NULL,
				target_date       DATE NOT NULL,
				current_revenue   DOUBLE PRECISION NOT NULL,
				optimized_revenue DOUBLE PRECISION NOT NULL,
				uplift_percent    DOUBLE PRECISION NOT NULL,
				strategy_ids      TEXT[] NOT NULL DEFAULT '{}',
				actions_applied   INTEGER NOT NULL DEFAULT 0,
				synthetic         BOOLEAN NOT NULL DEFAULT FALSE,
				trigger           TEXT NOT NULL,
				created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		name:      "índice optimization_runs por propriedade",
		statement: `CREATE INDEX IF NOT EXISTS optimization_runs_property_created_idx ON optimization_runs (property_id, created_at DESC)`,
	},
	{
		name: "tabela users",
		statement: `
			CREATE TABLE IF NOT EXISTS users (
				id            SERIAL PRIMARY KEY,
				name          TEXT NOT NULL,
				lastname      TEXT NOT NULL,
				email         TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				active        BOOLEAN NOT NULL DEFAULT FALSE,
				role_id       INTEGER NOT NULL DEFAULT 3,
				property_ids  TEXT[] NOT NULL DEFAULT '{}',
				deleted       BOOLEAN NOT NULL DEFAULT FALSE,
				deleted_at    TIMESTAMPTZ NULL,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if _, err := tx.ExecContext(ctx, m.statement); err != nil {
				logrus.WithError(err).WithField("migration", m.name).Error("Erro ao aplicar migração")
				return err
			}
			logrus.WithField("migration", m.name).Info("Migração aplicada")
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migrações revertidas")
	}

	seedStrategies(ctx, conn)
	seedAdmin(ctx, conn)

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")
}

// seedStrategies grava as estratégias padrão apenas quando a tabela está vazia
func seedStrategies(ctx context.Context, conn *postgres.Connection) {
	var count int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM strategies`).Scan(&count); err != nil {
		logrus.WithError(err).Fatal("Erro ao contar estratégias")
	}

	if count > 0 {
		logrus.WithField("strategies", count).Info("Estratégias já cadastradas, seed ignorado")
		return
	}

	repo := repository.NewStrategyRepository(conn)
	now := time.Now().UTC()

	for _, strategy := range yielding.DefaultStrategies(now) {
		strategy.CreatedAt = now
		strategy.UpdatedAt = now

		if err := repo.SaveOrUpdate(ctx, strategy); err != nil {
			logrus.WithError(err).WithField("strategy_id", strategy.ID).Fatal("Erro ao inserir estratégia padrão")
		}
		logrus.WithField("strategy_id", strategy.ID).Info("Estratégia padrão inserida")
	}
}

// seedAdmin cria o administrador inicial a partir de ADMIN_EMAIL e ADMIN_PASSWORD, quando definidos
func seedAdmin(ctx context.Context, conn *postgres.Connection) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, administrador não criado")
		return
	}

	repo := repository.NewUserRepository(conn)

	existing, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao consultar administrador")
	}
	if existing != nil {
		logrus.WithField("email", email).Info("Administrador já existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
	}

	admin, err := repo.CreateUser(ctx, &domain.User{
		Name:         "Admin",
		Lastname:     "Yield",
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
		PropertyIDs:  []string{},
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	logrus.WithField("user_id", admin.ID).Info("Administrador criado")
}
