package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

const migrationTimeout = 30 * time.Second

// Aplica o schema do histórico de deploys sem subir a API
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema de deployments")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}
