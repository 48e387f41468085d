package healthcheck

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// Status reports which backing stores answered the last check.
type Status struct {
	Mongo bool `json:"mongo"`
	Redis bool `json:"redis"`
}

func (s Status) Healthy() bool {
	return s.Mongo && s.Redis
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}
