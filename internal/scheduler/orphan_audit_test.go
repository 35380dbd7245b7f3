package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-launcher-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestAuditService(ctrl *gomock.Controller, lookbackDays int) (*OrphanAuditService, *mocks.MockDeploymentRepository) {
	records := mocks.NewMockDeploymentRepository(ctrl)
	cfg := &config.Config{OrphanAudit: config.OrphanAudit{CronSchedule: "0 7 * * *", LookbackDays: lookbackDays}}

	service := NewOrphanAuditService(records, cfg)
	service.now = func() time.Time { return time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC) }

	return service, records
}

func TestOrphanAuditService_RunAudit(t *testing.T) {
	tests := []struct {
		name         string
		lookbackDays int
		wantSince    time.Time
		records      []*domain.DeploymentRecord
		repoErr      error
		wantFound    int
		wantErr      bool
	}{
		{
			name:         "encontra deploys órfãos e com rollback falho",
			lookbackDays: 3,
			wantSince:    time.Date(2025, 3, 7, 7, 0, 0, 0, time.UTC),
			records: []*domain.DeploymentRecord{
				{ID: "d1", Status: domain.DeploymentOrphaned, CampaignIDs: []string{"c1"}},
				{ID: "d2", Status: domain.DeploymentRollbackFailed, CampaignIDs: []string{"c2"}},
			},
			wantFound: 2,
		},
		{
			name:         "janela padrão de sete dias",
			lookbackDays: 0,
			wantSince:    time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC),
			records:      []*domain.DeploymentRecord{},
			wantFound:    0,
		},
		{
			name:         "erro no repositório",
			lookbackDays: 1,
			wantSince:    time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),
			repoErr:      errors.New("connection refused"),
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, records := newTestAuditService(ctrl, tt.lookbackDays)
			records.EXPECT().
				ListFlagged(gomock.Any(), tt.wantSince, flaggedStatuses).
				Return(tt.records, tt.repoErr)

			found, err := service.RunAudit(context.Background())
			status := service.GetStatus()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, status["last_error"], "connection refused")
				return
			}

			require.NoError(t, err)
			assert.Len(t, found, tt.wantFound)
			assert.Equal(t, float64(tt.wantFound), testutil.ToFloat64(metrics.OrphanedCampaigns))
			assert.Equal(t, tt.wantFound, status["last_found"])
			assert.Equal(t, false, status["running"])
			assert.Equal(t, "", status["last_error"])
		})
	}
}

func TestOrphanAuditService_SkipsWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestAuditService(ctrl, 7)
	service.auditRunning = true

	found, err := service.RunAudit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, found)

	service.TriggerManualSync()
}

func TestOrphanAuditService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestAuditService(ctrl, 7)
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}
