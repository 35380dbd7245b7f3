package main

import (
	"context"
	"errors"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-launcher-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-launcher-api/infrastructure/repository"
	"github.com/vfg2006/ads-launcher-api/infrastructure/store"
	"github.com/vfg2006/ads-launcher-api/internal/api"
	"github.com/vfg2006/ads-launcher-api/internal/api/handler"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/scheduler"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/deploying"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/strategizing"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisStore, err := store.InitRedis(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	logrus.Info("Conexão com Redis estabelecida com sucesso")

	pgConn := pgconn(ctx, cfg.Database)

	businessRepo := repository.NewBusinessRepository(redisStore)
	assetRepo := repository.NewAssetRepository(redisStore)
	campaignRepo := repository.NewLaunchedCampaignRepository(redisStore)
	deploymentRepo := repository.NewDeploymentRepository(pgConn)
	locker := store.NewRedisLocker(redisStore)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	catalog := strategizing.NewCatalog()
	catalog.LogAudit()

	workspaceService := workspace.NewService(businessRepo, assetRepo, campaignRepo, catalog, copyGenerator(ctx, cfg))

	orchestrator := deploying.NewOrchestrator(metaIntegrator, catalog, deploying.Options{
		CampaignPrefix:   cfg.Deployment.CampaignPrefix,
		MinAdSetBudget:   cfg.Deployment.MinAdSetBudget,
		DefaultCountries: cfg.Deployment.DefaultCountries,
		FallbackToken:    cfg.Meta.AccessToken,
	})
	deployService := deploying.NewService(orchestrator, workspaceService, catalog, locker, deploymentRepo, cfg)

	leadTracker := tracking.NewService(workspaceService, metaIntegrator)

	authenticator := authenticating.NewService(cfg)

	orphanAuditService := scheduler.NewOrphanAuditService(deploymentRepo, cfg)
	if err := orphanAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria de campanhas órfãs")
	} else {
		logrus.Info("Agendador de auditoria de campanhas órfãs iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Deployer:      deployService,
		Strategies:    catalog,
		Workspace:     workspaceService,
		MetaExplorer:  metaIntegrator,
		Tracker:       leadTracker,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{OrphanAudit: orphanAuditService},
		HealthChecks: map[string]handler.HealthCheck{
			"redis":    redisStore.Ping,
			"postgres": pgConn.Ping,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	// fechados em ordem inversa: agendador, postgres, redis
	server.OnShutdown(redisStore.Close)
	server.OnShutdown(func() {
		if err := pgConn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com o banco de dados")
		}
	})
	server.OnShutdown(cancel)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// copyGenerator devolve nil quando o Gemini não está configurado; a geração de textos responde 501
func copyGenerator(ctx context.Context, cfg *config.Config) workspace.CopyGenerator {
	copywriter, err := gemini.NewCopywriter(ctx, cfg.Gemini)
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		logrus.Warn("GEMINI_API_KEY não configurada, geração de textos desativada")
		return nil
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente do Gemini, geração de textos desativada")
		return nil
	}
	return copywriter
}

// chdirToSource permite encontrar o .env relativo ao binário em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// pgconn cria a conexão com o banco de dados e garante o schema do histórico
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
