package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-launcher-api/internal/api/handler/router"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/deploying"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/strategizing"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
	"github.com/vfg2006/ads-launcher-api/pkg/middleware"
)

func Healthcheck(checks map[string]HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Deployments(service deploying.Deployer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/deployments",
			Method:      http.MethodPost,
			Handler:     LaunchDeployment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
		{
			Path:        "/v1/deployments/validate",
			Method:      http.MethodPost,
			Handler:     ValidateDeployment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
		{
			Path:        "/v1/deployments",
			Method:      http.MethodGet,
			Handler:     ListDeployments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
	}
}

func Strategies(service strategizing.StrategyService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/strategies",
			Method:      http.MethodGet,
			Handler:     ListStrategies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
		{
			Path:        "/v1/strategies/audit",
			Method:      http.MethodGet,
			Handler:     AuditStrategies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Workspace(service workspace.Manager) []router.Route {
	licensed := []func(http.Handler) http.Handler{middleware.LicensedOnly()}

	return []router.Route{
		{Path: "/v1/business", Method: http.MethodGet, Handler: GetBusiness(service), Middlewares: licensed},
		{Path: "/v1/business", Method: http.MethodPut, Handler: SaveBusiness(service), Middlewares: licensed},
		{Path: "/v1/assets", Method: http.MethodGet, Handler: ListAssets(service), Middlewares: licensed},
		{Path: "/v1/assets", Method: http.MethodPost, Handler: SaveAsset(service), Middlewares: licensed},
		{Path: "/v1/assets/copy", Method: http.MethodPost, Handler: GenerateCopy(service), Middlewares: licensed},
		{Path: "/v1/assets/:id", Method: http.MethodDelete, Handler: DeleteAsset(service), Middlewares: licensed},
		{Path: "/v1/campaigns", Method: http.MethodGet, Handler: ListCampaigns(service), Middlewares: licensed},
	}
}

func Meta(explorer MetaExplorer, service workspace.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/assets",
			Method:      http.MethodGet,
			Handler:     ListMetaAssets(explorer, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
		{
			Path:        "/v1/meta/validate",
			Method:      http.MethodPost,
			Handler:     ValidateMetaConnection(explorer, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
	}
}

func Leads(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads/whatsapp",
			Method:      http.MethodPost,
			Handler:     TrackWhatsAppLead(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.LicensedOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
