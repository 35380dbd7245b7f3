package deploying

import (
	"math"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const (
	fallbackAdSetName = "Default Broad"
	totalPercentage   = 100
)

func fallbackAdSet() domain.NormalizedAdSet {
	return domain.NormalizedAdSet{
		Name:        fallbackAdSetName,
		Percentage:  totalPercentage,
		FunnelStage: domain.FunnelCold,
		Targeting:   &domain.TargetingSpec{Type: domain.TargetingBroad},
	}
}

// NormalizeStructure reescala os percentuais para inteiros >= 1 que somam exatamente 100.
// Sem blocos com percentual positivo, devolve um único bloco "Default Broad".
func NormalizeStructure(raw []domain.AdSetBlueprint) []domain.NormalizedAdSet {
	valid := make([]domain.AdSetBlueprint, 0, len(raw))
	var sum float64
	for _, blueprint := range raw {
		if blueprint.BudgetPercentage > 0 && !math.IsInf(blueprint.BudgetPercentage, 1) {
			valid = append(valid, blueprint)
			sum += blueprint.BudgetPercentage
		}
	}

	// com mais de 100 blocos o piso de 1% não cabe em 100
	if len(valid) == 0 || len(valid) > totalPercentage {
		return []domain.NormalizedAdSet{fallbackAdSet()}
	}

	shares := make([]int, len(valid))
	remainders := make([]float64, len(valid))
	total := 0
	for i, blueprint := range valid {
		exact := blueprint.BudgetPercentage / sum * totalPercentage
		share := int(math.Round(exact))
		if share < 1 {
			share = 1
		}
		shares[i] = share
		remainders[i] = exact - float64(share)
		total += share
	}

	// distribui o desvio de arredondamento pelos maiores restos
	for total != totalPercentage {
		idx := -1
		if total < totalPercentage {
			for i := range shares {
				if idx == -1 || remainders[i] > remainders[idx] {
					idx = i
				}
			}
			shares[idx]++
			remainders[idx]--
			total++
			continue
		}

		for i := range shares {
			if shares[i] > 1 && (idx == -1 || remainders[i] < remainders[idx]) {
				idx = i
			}
		}
		shares[idx]--
		remainders[idx]++
		total--
	}

	normalized := make([]domain.NormalizedAdSet, len(valid))
	for i, blueprint := range valid {
		stage := blueprint.FunnelStage
		if stage == "" {
			stage = domain.FunnelCold
		}
		targeting := blueprint.Targeting
		if targeting == nil {
			targeting = &domain.TargetingSpec{Type: domain.TargetingBroad}
		}
		normalized[i] = domain.NormalizedAdSet{
			Name:        blueprint.Name,
			Percentage:  shares[i],
			FunnelStage: stage,
			Targeting:   targeting,
		}
	}

	return normalized
}

// DailyBudget calcula o orçamento diário do AdSet respeitando o mínimo aceito pela plataforma
func DailyBudget(total int64, percentage int, minimum int64) int64 {
	budget := int64(math.Round(float64(total) * float64(percentage) / totalPercentage))
	if budget < minimum {
		return minimum
	}
	return budget
}
