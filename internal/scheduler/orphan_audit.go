// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/infrastructure/repository"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
)

// flaggedStatuses são os deploys que podem ter deixado campanhas sem anúncios no Meta
var flaggedStatuses = []domain.DeploymentStatus{
	domain.DeploymentOrphaned,
	domain.DeploymentRollbackFailed,
}

type OrphanAuditConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// OrphanAuditService procura periodicamente campanhas remotas que ficaram sem anúncios
type OrphanAuditService struct {
	scheduler          *gocron.Scheduler
	config             OrphanAuditConfig
	records            repository.DeploymentRepository
	now                func() time.Time
	auditRunning       bool
	auditMutex         sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastFound          int
	lastError          string
}

func NewOrphanAuditService(records repository.DeploymentRepository, appConfig *config.Config) *OrphanAuditService {
	auditConfig := OrphanAuditConfig{
		CronSchedule: appConfig.OrphanAudit.CronSchedule,
		LookbackDays: appConfig.OrphanAudit.LookbackDays,
		Enabled:      appConfig.OrphanAudit.Enabled,
	}
	if auditConfig.LookbackDays <= 0 {
		auditConfig.LookbackDays = 7
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"lookback_days": auditConfig.LookbackDays,
		"enabled":       auditConfig.Enabled,
	}).Info("Configuração da auditoria de campanhas órfãs carregada")

	return &OrphanAuditService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    auditConfig,
		records:   records,
		now:       time.Now,
	}
}

func (s *OrphanAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de auditoria de campanhas órfãs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria de campanhas órfãs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil {
			logrus.WithError(err).Error("Erro na auditoria de campanhas órfãs")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de campanhas órfãs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de auditoria de campanhas órfãs")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit lista os deploys sinalizados dentro da janela e atualiza o gauge.
// Devolve nil sem erro quando outra execução já está em andamento.
func (s *OrphanAuditService) RunAudit(ctx context.Context) ([]*domain.DeploymentRecord, error) {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		logrus.Warn("Auditoria de campanhas órfãs já está em execução")
		return nil, nil
	}
	s.auditRunning = true
	s.lastRunStartedAt = s.now()
	s.auditMutex.Unlock()

	records, err := s.audit(ctx)

	s.auditMutex.Lock()
	s.auditRunning = false
	s.lastRunCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastFound = len(records)
	}
	s.auditMutex.Unlock()

	return records, err
}

func (s *OrphanAuditService) audit(ctx context.Context) ([]*domain.DeploymentRecord, error) {
	since := s.now().AddDate(0, 0, -s.config.LookbackDays)

	records, err := s.records.ListFlagged(ctx, since, flaggedStatuses)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar deploys sinalizados: %w", err)
	}

	for _, record := range records {
		logrus.WithFields(logrus.Fields{
			"deployment_id": record.ID,
			"namespace":     record.Namespace,
			"ad_account_id": record.AdAccountID,
			"campaign_ids":  record.CampaignIDs,
			"status":        record.Status,
			"created_at":    record.CreatedAt.Format(time.RFC3339),
		}).Warn("Campanha possivelmente órfã no Meta")
	}

	metrics.OrphanedCampaigns.Set(float64(len(records)))

	logrus.WithFields(logrus.Fields{
		"found": len(records),
		"since": since.Format(time.DateOnly),
	}).Info("Auditoria de campanhas órfãs concluída")

	return records, nil
}

// TriggerManualSync inicia manualmente uma auditoria
func (s *OrphanAuditService) TriggerManualSync() {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		logrus.Info("Auditoria de campanhas órfãs já em andamento, ignorando solicitação manual")
		return
	}
	s.auditMutex.Unlock()

	logrus.Info("Iniciando auditoria manual de campanhas órfãs")
	go func() {
		if _, err := s.RunAudit(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na auditoria manual de campanhas órfãs")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *OrphanAuditService) GetStatus() map[string]any {
	s.auditMutex.Lock()
	defer s.auditMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"lookback_days":         s.config.LookbackDays,
		"running":               s.auditRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_found":            s.lastFound,
		"last_error":            s.lastError,
	}
}
