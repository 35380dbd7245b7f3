package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/api/handler"
	"github.com/vfg2006/ads-launcher-api/internal/api/handler/router"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/deploying"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/strategizing"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
	"github.com/vfg2006/ads-launcher-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	closers         []func()
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Deployer      deploying.Deployer
	Strategies    strategizing.StrategyService
	Workspace     workspace.Manager
	MetaExplorer  handler.MetaExplorer
	Tracker       tracking.Tracker
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	HealthChecks  map[string]handler.HealthCheck
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthChecks)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Deployments(services.Deployer)...),
		router.WithRoutes(handler.Strategies(services.Strategies)...),
		router.WithRoutes(handler.Workspace(services.Workspace)...),
		router.WithRoutes(handler.Meta(services.MetaExplorer, services.Workspace)...),
		router.WithRoutes(handler.Leads(services.Tracker)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	// sem WriteTimeout: o stream de deploy dura até o prazo do próprio deploy
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		shutdownTimeout: config.Server.ShutdownTimeout(),
	}

	return srv, nil
}

// OnShutdown registra funções chamadas depois que o HTTP para, na ordem inversa do registro
func (s *Server) OnShutdown(closer func()) {
	s.closers = append(s.closers, closer)
}

// Run bloqueia até um sinal de término, o cancelamento de ctx ou uma falha do listener
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		logrus.WithField("signal", sig.String()).Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err, ok := <-listenErr:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			s.runClosers()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown espera os deploys em andamento até o prazo de ctx e depois fecha as dependências
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.runClosers()
	return err
}

func (s *Server) runClosers() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
