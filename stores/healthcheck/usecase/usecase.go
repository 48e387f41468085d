package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check pings every store and returns the first failure along with the
// full status.
func (im *impl) Check(context ctx.Ctx) (hcdomain.Status, error) {
	dbErr := im.repo.PingDB(context)
	cacheErr := im.repo.PingCache(context)

	status := hcdomain.Status{
		Mongo: dbErr == nil,
		Redis: cacheErr == nil,
	}
	if dbErr != nil {
		return status, dbErr
	}
	return status, cacheErr
}
