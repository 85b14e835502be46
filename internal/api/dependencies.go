package api

import (
	"os"

	"lumenstudio/darkroom/internal/common"
	"lumenstudio/darkroom/internal/db"
	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/logging"
	"lumenstudio/darkroom/internal/metrics"
	"lumenstudio/darkroom/internal/services"
)

type Repositories struct {
	Shows       *repositories.ShowRepository
	Allocations *repositories.AllocationRepository
	Clients     *repositories.ClientRepository
	Users       *repositories.UserRepository
	Roles       *repositories.RoleRepository
	Payments    *repositories.PaymentRepository
	Evaluations *repositories.EvaluationRepository
	Configs     *repositories.ConfigRepository
	Reports     *repositories.ReportRepository
	Keys        *repositories.KeysRepo
}

type Services struct {
	Cache       common.CacheInterface
	Conf        *common.StudioConfigService
	Allocations *services.AllocationService
	Shows       *services.ShowService
	Clients     *services.ClientService
	Payments    *services.PaymentService
	Evaluations *services.EvaluationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Shows:       repositories.NewShowRepository(db.PgDB),
		Allocations: repositories.NewAllocationRepository(db.PgDB),
		Clients:     repositories.NewClientRepository(db.PgDB),
		Users:       repositories.NewUserRepository(db.PgDB),
		Roles:       repositories.NewRoleRepository(db.PgDB),
		Payments:    repositories.NewPaymentRepository(db.PgDB),
		Evaluations: repositories.NewEvaluationRepository(db.PgDB),
		Configs:     repositories.NewConfigRepository(db.DB),
		Reports:     repositories.NewReportRepository(db.DB),
		Keys:        repositories.NewApiKeysRepo(db.DB),
	}

	// Redis when configured, in-memory otherwise
	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis cache unavailable, falling back to in-memory", "error", err.Error())
			cacheSvc = common.NewCacheService(600, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(600, 600)
	}

	confSvc := common.NewStudioConfigService(repos.Configs, cacheSvc)
	allocSvc := services.NewAllocationService(db.PgDB, repos.Shows, repos.Allocations, confSvc, metricsReg)

	svcs := &Services{
		Cache:       cacheSvc,
		Conf:        confSvc,
		Allocations: allocSvc,
		Shows:       services.NewShowService(repos.Shows, repos.Roles, repos.Users, repos.Clients, allocSvc),
		Clients:     services.NewClientService(repos.Clients),
		Payments:    services.NewPaymentService(repos.Payments, repos.Shows),
		Evaluations: services.NewEvaluationService(repos.Evaluations, repos.Shows),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil

}
