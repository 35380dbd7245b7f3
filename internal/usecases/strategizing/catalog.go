package strategizing

import "github.com/vfg2006/ads-launcher-api/internal/domain"

// DefaultStrategies é a biblioteca de estratégias validadas oferecida na configuração inicial
func DefaultStrategies() []domain.MarketingStrategy {
	return []domain.MarketingStrategy{
		{
			ID:                    "launch_master",
			Name:                  "Launch Master",
			Category:              "Lanzamiento",
			Description:           "Público amplio con Advantage+, intereses del nicho y retargeting de interacciones.",
			RequiredCreativeCount: 6,
			Objective:             domain.ObjectiveSales,
			MinBudget:             50000,
			Platforms:             []domain.Platform{domain.PlatformMeta},
			SegmentationLogic:     "Frío amplio + intereses del persona + retargeting de engagers",
			Structure: []domain.AdSetBlueprint{
				{
					Name:             "Broad Advantage+",
					BudgetPercentage: 40,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingBroad},
				},
				{
					Name:             "Intereses Nicho",
					BudgetPercentage: 35,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingInterests},
				},
				{
					Name:             "Retargeting Instagram",
					BudgetPercentage: 25,
					FunnelStage:      domain.FunnelWarm,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingRetargeting},
				},
			},
		},
		{
			ID:                    "traffic_blitz",
			Name:                  "Traffic Blitz",
			Category:              "Tráfico",
			Description:           "Tráfico barato a la landing para calentar audiencias y alimentar el pixel.",
			RequiredCreativeCount: 4,
			Objective:             domain.ObjectiveTraffic,
			MinBudget:             20000,
			Platforms:             []domain.Platform{domain.PlatformMeta},
			SegmentationLogic:     "Intereses combinados con jóvenes adultos y público amplio",
			Structure: []domain.AdSetBlueprint{
				{
					Name:             "Intereses 18-34",
					BudgetPercentage: 60,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingInterests, AgeMin: 18, AgeMax: 34},
				},
				{
					Name:             "Broad Descubrimiento",
					BudgetPercentage: 40,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingBroad},
				},
			},
		},
		{
			ID:                    "lead_magnet",
			Name:                  "Lead Magnet",
			Category:              "Captación",
			Description:           "Captación de leads con oferta de entrada y recuperación de visitantes.",
			RequiredCreativeCount: 4,
			Objective:             domain.ObjectiveLeads,
			MinBudget:             30000,
			Platforms:             []domain.Platform{domain.PlatformMeta},
			SegmentationLogic:     "Intereses del nicho en frío y retargeting de visitantes",
			Structure: []domain.AdSetBlueprint{
				{
					Name:             "Leads Frío",
					BudgetPercentage: 70,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingInterests},
				},
				{
					Name:             "Leads Retargeting",
					BudgetPercentage: 30,
					FunnelStage:      domain.FunnelHot,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingRetargeting},
				},
			},
		},
		{
			ID:                    "omnichannel_scale",
			Name:                  "Omnichannel Scale",
			Category:              "Escala",
			Description:           "Escalado con presupuesto repartido por etapa del embudo.",
			RequiredCreativeCount: 8,
			Objective:             domain.ObjectiveSales,
			MinBudget:             100000,
			Platforms:             []domain.Platform{domain.PlatformOmnichannel},
			SegmentationLogic:     "Embudo completo frío, tibio y caliente",
			Structure: []domain.AdSetBlueprint{
				{
					Name:             "TOF Broad",
					BudgetPercentage: 50,
					FunnelStage:      domain.FunnelCold,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingBroad},
				},
				{
					Name:             "MOF Intereses",
					BudgetPercentage: 30,
					FunnelStage:      domain.FunnelWarm,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingInterests},
				},
				{
					Name:             "BOF Retargeting",
					BudgetPercentage: 20,
					FunnelStage:      domain.FunnelHot,
					Targeting:        &domain.TargetingSpec{Type: domain.TargetingRetargeting},
				},
			},
		},
		{
			ID:                    "google_search_intent",
			Name:                  "Search Intent",
			Category:              "Búsqueda",
			Description:           "Captura de demanda activa en búsqueda.",
			RequiredCreativeCount: 3,
			Objective:             domain.ObjectiveTraffic,
			MinBudget:             30000,
			Platforms:             []domain.Platform{domain.PlatformGoogle},
			Structure: []domain.AdSetBlueprint{
				{Name: "Search Exacta", BudgetPercentage: 100, FunnelStage: domain.FunnelHot},
			},
		},
		{
			ID:                    "tiktok_spark",
			Name:                  "Spark Ads",
			Category:              "Social",
			Description:           "Contenido nativo impulsado con Spark Ads.",
			RequiredCreativeCount: 5,
			Objective:             domain.ObjectiveAwareness,
			MinBudget:             20000,
			Platforms:             []domain.Platform{domain.PlatformTikTok},
			Structure: []domain.AdSetBlueprint{
				{Name: "Spark Broad", BudgetPercentage: 100, FunnelStage: domain.FunnelCold},
			},
		},
	}
}
