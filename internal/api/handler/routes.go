package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/internal/usecases/summarizing"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
)

func Healthcheck(store Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: middleware.MetricsHandler(),
		},
	}
}

func Sales(lister listing.Lister, cataloger cataloging.Cataloger, summarizer summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(lister),
		},
		{
			Path:    "/v1/sales/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(cataloger),
		},
		{
			Path:    "/v1/sales/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(summarizer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/" + CronJobTypeCatalog + "/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeCatalog),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
