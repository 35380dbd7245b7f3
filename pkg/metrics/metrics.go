package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// execuções de deploy por resultado (succeeded, failed, rolled_back, ...)
	Deployments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launcher_deployments_total",
			Help: "Total campaign deployments by outcome",
		},
		[]string{"outcome"},
	)

	DeploymentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "launcher_deployment_duration_seconds",
			Help:    "Histogram of full deployment durations",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	AdsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "launcher_ads_created_total",
			Help: "Total ads created on the ad platform",
		},
	)

	// falhas por etapa (video, creative, ad, adset, campaign)
	AdFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launcher_ad_failures_total",
			Help: "Total per-asset deployment failures by stage",
		},
		[]string{"stage"},
	)

	Rollbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launcher_rollbacks_total",
			Help: "Total campaign rollbacks by result",
		},
		[]string{"result"},
	)

	// requisições à Graph API por operação e resultado
	PlatformRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launcher_platform_requests_total",
			Help: "Total ad platform API requests",
		},
		[]string{"operation", "status"},
	)

	// leads do WhatsApp por resultado (sent, rejected, failed)
	WhatsAppLeads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launcher_whatsapp_leads_total",
			Help: "Total WhatsApp leads forwarded to the conversions API by result",
		},
		[]string{"result"},
	)

	OrphanedCampaigns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "launcher_orphaned_campaigns",
			Help: "Campaigns left without ads found by the last orphan audit",
		},
	)
)
