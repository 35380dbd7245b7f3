package strategizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name       string
		id         string
		expectedID string
	}{
		{name: "Estratégia existente", id: "lead_magnet", expectedID: "lead_magnet"},
		{name: "Estratégia desconhecida usa a primeira", id: "nao_existe", expectedID: "launch_master"},
		{name: "Id vazio usa a primeira", id: "", expectedID: "launch_master"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := catalog.Resolve(tt.id)
			require.NotNil(t, strategy)
			assert.Equal(t, tt.expectedID, strategy.ID)
		})
	}
}

func TestCatalog_ResolveEmptyCatalog(t *testing.T) {
	catalog := &Catalog{}
	assert.Nil(t, catalog.Resolve("launch_master"))

	_, ok := catalog.FirstCompatible(domain.PlatformMeta)
	assert.False(t, ok)
}

func TestCatalog_FirstCompatible(t *testing.T) {
	catalog := NewCatalog(
		domain.MarketingStrategy{ID: "g", Platforms: []domain.Platform{domain.PlatformGoogle}},
		domain.MarketingStrategy{ID: "omni", Platforms: []domain.Platform{domain.PlatformOmnichannel}},
		domain.MarketingStrategy{ID: "meta", Platforms: []domain.Platform{domain.PlatformMeta}},
	)

	strategy, ok := catalog.FirstCompatible(domain.PlatformMeta)
	require.True(t, ok)
	assert.Equal(t, "omni", strategy.ID)

	strategy, ok = catalog.FirstCompatible(domain.PlatformGoogle)
	require.True(t, ok)
	assert.Equal(t, "g", strategy.ID)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	catalog := NewCatalog()

	strategy, ok := catalog.Get("launch_master")
	require.True(t, ok)
	strategy.Structure[0].BudgetPercentage = 0
	strategy.Structure[0].Targeting.Type = domain.TargetingRetargeting

	again, _ := catalog.Get("launch_master")
	assert.Equal(t, 40.0, again.Structure[0].BudgetPercentage)
	assert.Equal(t, domain.TargetingBroad, again.Structure[0].Targeting.Type)
}

func TestAuditStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy domain.MarketingStrategy
		ok       bool
		message  string
	}{
		{
			name:     "Sem estrutura",
			strategy: domain.MarketingStrategy{ID: "a", Platforms: []domain.Platform{domain.PlatformMeta}},
			message:  "Sin estructura de adsets.",
		},
		{
			name: "Percentuais zerados",
			strategy: domain.MarketingStrategy{
				ID:        "b",
				Platforms: []domain.Platform{domain.PlatformMeta},
				Structure: []domain.AdSetBlueprint{{Name: "x", BudgetPercentage: 0}, {Name: "y", BudgetPercentage: -5}},
			},
			message: "Presupuestos inválidos (<= 0).",
		},
		{
			name: "Sem plataformas",
			strategy: domain.MarketingStrategy{
				ID:        "c",
				Structure: []domain.AdSetBlueprint{{Name: "x", BudgetPercentage: 100}},
			},
			message: "Sin plataformas definidas.",
		},
		{
			name: "Percentuais com sinais misturados",
			strategy: domain.MarketingStrategy{
				ID:        "e",
				Platforms: []domain.Platform{domain.PlatformMeta},
				Structure: []domain.AdSetBlueprint{{Name: "x", BudgetPercentage: 80}, {Name: "y", BudgetPercentage: -20}, {Name: "z", BudgetPercentage: math.NaN()}},
			},
			ok:      true,
			message: "OK (3 adsets, presupuesto 60%)",
		},
		{
			name: "Negativo anula o positivo",
			strategy: domain.MarketingStrategy{
				ID:        "f",
				Platforms: []domain.Platform{domain.PlatformMeta},
				Structure: []domain.AdSetBlueprint{{Name: "x", BudgetPercentage: 30}, {Name: "y", BudgetPercentage: -30}},
			},
			message: "Presupuestos inválidos (<= 0).",
		},
		{
			name: "Estratégia válida",
			strategy: domain.MarketingStrategy{
				ID:        "d",
				Platforms: []domain.Platform{domain.PlatformMeta},
				Structure: []domain.AdSetBlueprint{{Name: "x", BudgetPercentage: 60}, {Name: "y", BudgetPercentage: 50}},
			},
			ok:      true,
			message: "OK (2 adsets, presupuesto 110%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AuditStrategy(tt.strategy)
			assert.Equal(t, tt.strategy.ID, result.ID)
			assert.Equal(t, tt.ok, result.OK)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestCatalog_AuditDefaults(t *testing.T) {
	results := NewCatalog().Audit()
	require.Len(t, results, len(DefaultStrategies()))

	for _, result := range results {
		assert.True(t, result.OK, result.ID)
	}
	assert.Equal(t, "OK (3 adsets, presupuesto 100%)", results[0].Message)
}
