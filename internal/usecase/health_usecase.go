package usecase

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"resume-builder-backend/pkg/redis"
)

type HealthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Database      string `json:"database"`
	Redis         string `json:"redis"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}

type healthUsecase struct {
	db      *pgxpool.Pool
	started time.Time
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db, started: time.Now()}
}

// Check reports uptime plus store reachability. The overall status goes
// unhealthy only when the database is down; redis is optional.
func (u *healthUsecase) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(u.started).Seconds()),
		Database:      "up",
		Redis:         "not_configured",
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := u.db.Ping(pingCtx); err != nil {
		status.Status = "unhealthy"
		status.Database = "down"
	}

	if redis.Client() != nil {
		status.Redis = "up"
		if err := redis.HealthCheck(pingCtx); err != nil {
			status.Redis = "down"
		}
	}

	return status
}
