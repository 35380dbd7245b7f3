package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

// schemaStatements criam o histórico de deploys; todos são idempotentes
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS deployments (
	id             VARCHAR(32) PRIMARY KEY,
	namespace      VARCHAR(255) NOT NULL,
	business_name  VARCHAR(255) NOT NULL DEFAULT '',
	ad_account_id  VARCHAR(64)  NOT NULL DEFAULT '',
	strategy_id    VARCHAR(64)  NOT NULL DEFAULT '',
	status         VARCHAR(32)  NOT NULL,
	campaign_ids   TEXT[]       NOT NULL DEFAULT '{}',
	ads_created    INTEGER      NOT NULL DEFAULT 0,
	failed_ads     TEXT[]       NOT NULL DEFAULT '{}',
	error          TEXT         NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_deployments_namespace_created_at ON deployments (namespace, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_deployments_status_created_at ON deployments (status, created_at DESC)`,
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if lifetime := cfg.ConnMaxLifetime(); lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema aplica o schema numa única transação
func (c *Connection) EnsureSchema(ctx context.Context) error {
	err := c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(schemaStatements)).Debug("postgres: schema de deployments verificado")
	return nil
}

// RunInTransaction executa fn numa transação; erro ou panic desfazem tudo
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = tx.Rollback()
			panic(recovered)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logrus.WithError(rollbackErr).Error("postgres: erro ao desfazer transação")
		}
		return err
	}

	return tx.Commit()
}
