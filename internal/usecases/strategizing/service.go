package strategizing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const (
	auditNoStructure    = "Sin estructura de adsets."
	auditInvalidBudgets = "Presupuestos inválidos (<= 0)."
	auditNoPlatforms    = "Sin plataformas definidas."
)

type StrategyService interface {
	List() []domain.MarketingStrategy
	Get(id string) (*domain.MarketingStrategy, bool)
	Resolve(id string) *domain.MarketingStrategy
	FirstCompatible(platform domain.Platform) (*domain.MarketingStrategy, bool)
	Audit() []domain.StrategyAudit
}

// Catalog é somente leitura depois de criado
type Catalog struct {
	strategies []domain.MarketingStrategy
}

func NewCatalog(strategies ...domain.MarketingStrategy) *Catalog {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Catalog{strategies: strategies}
}

func (c *Catalog) List() []domain.MarketingStrategy {
	out := make([]domain.MarketingStrategy, len(c.strategies))
	for i := range c.strategies {
		out[i] = clone(c.strategies[i])
	}
	return out
}

func (c *Catalog) Get(id string) (*domain.MarketingStrategy, bool) {
	for i := range c.strategies {
		if c.strategies[i].ID == id {
			strategy := clone(c.strategies[i])
			return &strategy, true
		}
	}
	return nil, false
}

// Resolve devolve a estratégia escolhida pelo negócio ou a primeira do catálogo
func (c *Catalog) Resolve(id string) *domain.MarketingStrategy {
	if strategy, ok := c.Get(id); ok {
		return strategy
	}
	if len(c.strategies) == 0 {
		return nil
	}

	logrus.WithField("strategy_id", id).Debug("strategies: estratégia não encontrada, usando a primeira do catálogo")
	strategy := clone(c.strategies[0])
	return &strategy
}

func (c *Catalog) FirstCompatible(platform domain.Platform) (*domain.MarketingStrategy, bool) {
	for i := range c.strategies {
		if c.strategies[i].Supports(platform) {
			strategy := clone(c.strategies[i])
			return &strategy, true
		}
	}
	return nil, false
}

// Audit confere se cada estratégia pode ser publicada
func (c *Catalog) Audit() []domain.StrategyAudit {
	results := make([]domain.StrategyAudit, 0, len(c.strategies))
	for _, strategy := range c.strategies {
		results = append(results, AuditStrategy(strategy))
	}
	return results
}

func AuditStrategy(strategy domain.MarketingStrategy) domain.StrategyAudit {
	if len(strategy.Structure) == 0 {
		return domain.StrategyAudit{ID: strategy.ID, Message: auditNoStructure}
	}

	// negativos entram na soma; só NaN conta como zero
	var total float64
	for _, adSet := range strategy.Structure {
		if !math.IsNaN(adSet.BudgetPercentage) {
			total += adSet.BudgetPercentage
		}
	}
	if total <= 0 {
		return domain.StrategyAudit{ID: strategy.ID, Message: auditInvalidBudgets}
	}

	if len(strategy.Platforms) == 0 {
		return domain.StrategyAudit{ID: strategy.ID, Message: auditNoPlatforms}
	}

	return domain.StrategyAudit{
		ID:      strategy.ID,
		OK:      true,
		Message: fmt.Sprintf("OK (%d adsets, presupuesto %s%%)", len(strategy.Structure), strconv.FormatFloat(total, 'f', -1, 64)),
	}
}

// LogAudit registra o resultado da auditoria na inicialização
func (c *Catalog) LogAudit() {
	for _, result := range c.Audit() {
		entry := logrus.WithFields(logrus.Fields{
			"strategy_id": result.ID,
			"ok":          result.OK,
		})
		if result.OK {
			entry.Debug("strategies: " + result.Message)
			continue
		}
		entry.Warn("strategies: " + result.Message)
	}
}

func clone(strategy domain.MarketingStrategy) domain.MarketingStrategy {
	strategy.Platforms = append([]domain.Platform(nil), strategy.Platforms...)
	structure := make([]domain.AdSetBlueprint, len(strategy.Structure))
	for i, adSet := range strategy.Structure {
		if adSet.Targeting != nil {
			targeting := *adSet.Targeting
			adSet.Targeting = &targeting
		}
		structure[i] = adSet
	}
	strategy.Structure = structure
	return strategy
}
