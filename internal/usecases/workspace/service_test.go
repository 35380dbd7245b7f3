package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace/mocks"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	business  *mocks.MockBusinessStore
	assets    *mocks.MockAssetLibrary
	campaigns *mocks.MockCampaignLog
	catalog   *mocks.MockStrategyResolver
	generator *mocks.MockCopyGenerator
}

func newTestService(ctrl *gomock.Controller, withGenerator bool) (*Service, serviceMocks) {
	m := serviceMocks{
		business:  mocks.NewMockBusinessStore(ctrl),
		assets:    mocks.NewMockAssetLibrary(ctrl),
		campaigns: mocks.NewMockCampaignLog(ctrl),
		catalog:   mocks.NewMockStrategyResolver(ctrl),
		generator: mocks.NewMockCopyGenerator(ctrl),
	}

	var generator CopyGenerator
	if withGenerator {
		generator = m.generator
	}

	return NewService(m.business, m.assets, m.campaigns, m.catalog, generator), m
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var wsErr *WorkspaceError
	require.True(t, errors.As(err, &wsErr), "esperado WorkspaceError, recebido %v", err)
	return wsErr.Code
}

func TestService_SaveBusiness(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.BusinessProfile
		setup     func(m serviceMocks)
		wantToken string
		wantErr   error
		wantCode  string
	}{
		{
			name:  "mantém o token salvo quando a atualização não informa",
			input: &domain.BusinessProfile{Name: "Loja", Meta: domain.MetaConfig{AdAccountID: "987"}},
			setup: func(m serviceMocks) {
				m.business.EXPECT().Get(gomock.Any(), "lic-1").
					Return(&domain.BusinessProfile{Meta: domain.MetaConfig{AccessToken: "antigo"}}, nil)
				m.business.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(nil)
			},
			wantToken: "antigo",
		},
		{
			name:  "novo token substitui o salvo",
			input: &domain.BusinessProfile{Name: "Loja", Meta: domain.MetaConfig{AccessToken: " novo "}},
			setup: func(m serviceMocks) {
				m.business.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(nil)
			},
			wantToken: "novo",
		},
		{
			name:  "primeiro cadastro sem token",
			input: &domain.BusinessProfile{Name: "Loja"},
			setup: func(m serviceMocks) {
				m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(nil, nil)
				m.business.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(nil)
			},
			wantToken: "",
		},
		{
			name:     "perfil ausente",
			input:    nil,
			setup:    func(m serviceMocks) {},
			wantErr:  ErrBusinessRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "orçamento negativo",
			input:    &domain.BusinessProfile{Name: "Loja", Budget: -1},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrInvalidBusiness,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:  "erro ao gravar",
			input: &domain.BusinessProfile{Name: "Loja", Meta: domain.MetaConfig{AccessToken: "tok"}},
			setup: func(m serviceMocks) {
				m.business.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(errors.New("redis down"))
			},
			wantErr:  ErrSaveBusiness,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, false)
			tt.setup(m)

			saved, err := service.SaveBusiness(context.Background(), "lic-1", tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, errorCode(t, err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, saved.Meta.AccessToken)
		})
	}
}

func TestService_GetBusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, false)
	m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(nil, errors.New("redis down"))

	_, err := service.GetBusiness(context.Background(), "lic-1")
	assert.ErrorIs(t, err, ErrLoadBusiness)
}

func TestService_SaveAsset(t *testing.T) {
	tests := []struct {
		name        string
		asset       *domain.CreativeAsset
		setup       func(m serviceMocks)
		wantCreated bool
		wantErr     error
		wantCode    string
	}{
		{
			name:  "imagem nova recebe id, plataforma e data",
			asset: &domain.CreativeAsset{Kind: domain.MediaImage, URL: "https://cdn.example.com/1.png", Body: "Copy"},
			setup: func(m serviceMocks) {
				m.assets.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(true, nil)
			},
			wantCreated: true,
		},
		{
			name:  "URL já salva",
			asset: &domain.CreativeAsset{ID: "a1", Kind: domain.MediaVideo, URL: "https://cdn.example.com/1.mp4"},
			setup: func(m serviceMocks) {
				m.assets.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(false, nil)
			},
			wantCreated: false,
		},
		{
			name:     "mídia sem URL",
			asset:    &domain.CreativeAsset{Kind: domain.MediaImage, Body: "Copy"},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrInvalidAsset,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "texto sem corpo",
			asset:    &domain.CreativeAsset{Kind: domain.MediaText, Title: "Titulo"},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrInvalidAsset,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "tipo desconhecido",
			asset:    &domain.CreativeAsset{Kind: "audio", URL: "x"},
			setup:    func(m serviceMocks) {},
			wantErr:  ErrInvalidAsset,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:  "erro ao gravar",
			asset: &domain.CreativeAsset{Kind: domain.MediaText, Body: "Copy"},
			setup: func(m serviceMocks) {
				m.assets.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(false, errors.New("redis down"))
			},
			wantErr:  ErrSaveAsset,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, false)
			tt.setup(m)

			saved, created, err := service.SaveAsset(context.Background(), "lic-1", tt.asset)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, errorCode(t, err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.NotEmpty(t, saved.ID)
			assert.Equal(t, domain.PlatformMeta, saved.Platform)
			assert.False(t, saved.CreatedAt.IsZero())
		})
	}
}

func TestService_DeleteAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, false)
	ctx := context.Background()

	m.assets.EXPECT().Delete(gomock.Any(), "lic-1", "a1").Return(true, nil)
	assert.NoError(t, service.DeleteAsset(ctx, "lic-1", "a1"))

	m.assets.EXPECT().Delete(gomock.Any(), "lic-1", "nao-existe").Return(false, nil)
	err := service.DeleteAsset(ctx, "lic-1", "nao-existe")
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, err))

	m.assets.EXPECT().Delete(gomock.Any(), "lic-1", "a2").Return(false, errors.New("redis down"))
	assert.ErrorIs(t, service.DeleteAsset(ctx, "lic-1", "a2"), ErrDeleteAsset)
}

func TestService_Campaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, false)
	ctx := context.Background()
	campaign := &domain.LaunchedCampaign{ID: "c1"}

	m.campaigns.EXPECT().Save(gomock.Any(), "lic-1", campaign).Return(nil)
	require.NoError(t, service.SaveLaunchedCampaign(ctx, "lic-1", campaign))

	m.campaigns.EXPECT().List(gomock.Any(), "lic-1").Return([]*domain.LaunchedCampaign{campaign}, nil)
	campaigns, err := service.ListCampaigns(ctx, "lic-1")
	require.NoError(t, err)
	assert.Equal(t, []*domain.LaunchedCampaign{campaign}, campaigns)

	m.campaigns.EXPECT().List(gomock.Any(), "lic-2").Return(nil, errors.New("redis down"))
	_, err = service.ListCampaigns(ctx, "lic-2")
	assert.ErrorIs(t, err, ErrLoadCampaigns)
}

func TestService_GenerateCopy(t *testing.T) {
	business := &domain.BusinessProfile{Name: "Loja", StrategyID: "launch_master"}
	strategy := &domain.MarketingStrategy{ID: "launch_master"}

	t.Run("gera, completa e salva os textos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, true)
		m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(business, nil)
		m.catalog.EXPECT().Resolve("launch_master").Return(strategy)
		m.generator.EXPECT().GenerateCopy(gomock.Any(), business, strategy, 3).Return([]*domain.CreativeAsset{
			{Title: "Oferta", Body: "Compre hoje"},
			{Title: "Frete", Body: "Frete grátis"},
		}, nil)
		m.assets.EXPECT().Save(gomock.Any(), "lic-1", gomock.Any()).Return(true, nil).Times(2)

		copies, err := service.GenerateCopy(context.Background(), "lic-1", 0, true)
		require.NoError(t, err)
		require.Len(t, copies, 2)
		for _, c := range copies {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, domain.MediaText, c.Kind)
			assert.Equal(t, domain.PlatformMeta, c.Platform)
		}
	})

	t.Run("limita a quantidade e não salva sem pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, true)
		m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(business, nil)
		m.catalog.EXPECT().Resolve("launch_master").Return(strategy)
		m.generator.EXPECT().GenerateCopy(gomock.Any(), business, strategy, maxCopyCount).Return([]*domain.CreativeAsset{}, nil)

		_, err := service.GenerateCopy(context.Background(), "lic-1", 50, false)
		require.NoError(t, err)
	})

	t.Run("sem gerador configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl, false)
		_, err := service.GenerateCopy(context.Background(), "lic-1", 3, false)
		assert.ErrorIs(t, err, ErrCopyUnavailable)
		assert.Equal(t, apiErrors.ErrNotConfigured, errorCode(t, err))
	})

	t.Run("negócio não configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, true)
		m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(nil, nil)

		_, err := service.GenerateCopy(context.Background(), "lic-1", 3, false)
		assert.ErrorIs(t, err, ErrBusinessNotConfigured)
	})

	t.Run("falha do gerador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, true)
		m.business.EXPECT().Get(gomock.Any(), "lic-1").Return(business, nil)
		m.catalog.EXPECT().Resolve("launch_master").Return(strategy)
		m.generator.EXPECT().GenerateCopy(gomock.Any(), business, strategy, 3).Return(nil, errors.New("quota"))

		_, err := service.GenerateCopy(context.Background(), "lic-1", 3, false)
		assert.ErrorIs(t, err, ErrGenerateCopy)
		assert.Equal(t, apiErrors.ErrExternalService, errorCode(t, err))
	})
}
