package handler

import (
	"net/http"

	"github.com/vfg2006/store-indicators-api/infrastructure/repository"
	"github.com/vfg2006/store-indicators-api/internal/api/handler/router"
	"github.com/vfg2006/store-indicators-api/internal/scheduler"
	"github.com/vfg2006/store-indicators-api/internal/usecases/ranking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Rankings(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings",
			Method:  http.MethodGet,
			Handler: GetLatestRankings(service),
		},
	}
}

func ReportRuns(repo repository.ReportRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/last-run",
			Method:  http.MethodGet,
			Handler: GetLastReportRun(repo),
		},
	}
}

func CronJobs(service *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/report/sync",
			Method:  http.MethodPost,
			Handler: RunReportSync(service),
		},
		{
			Path:    "/v1/cron/report/status",
			Method:  http.MethodGet,
			Handler: GetReportSyncStatus(service),
		},
	}
}
