package jobs

import (
	"fmt"

	"github.com/csa-rae/gantt-api/internal/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterPoolStatsJob registers a periodic job that logs database
// connection pool statistics. The Gantt endpoint leans entirely on the
// shared pool, so pool exhaustion is the one operational failure mode
// worth watching here.
func RegisterPoolStatsJob(scheduler *Scheduler, db *gorm.DB, logger *zap.Logger, cronExpr string) error {
	if err := scheduler.AddJob("db-pool-stats", cronExpr, func() {
		stats, err := database.HealthCheckWithStats(db)
		if err != nil {
			logger.Warn("database pool stats check failed", zap.Error(err))
			return
		}
		logger.Info("database pool stats",
			zap.Int("max_open_connections", stats.MaxOpenConnections),
			zap.Int("open_connections", stats.OpenConnections),
			zap.Int("in_use", stats.InUse),
			zap.Int("idle", stats.Idle),
			zap.Int64("wait_count", stats.WaitCount),
			zap.Int64("wait_duration_ms", stats.WaitDuration.Milliseconds()),
		)
	}); err != nil {
		return fmt.Errorf("failed to register pool stats job: %w", err)
	}
	return nil
}
