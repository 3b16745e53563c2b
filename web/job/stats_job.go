package job

import (
	"quote-hunt/logger"
	"quote-hunt/web/service"
)

// StatsJob periodically logs the ledger counters so operators can follow hunt
// progress from the logs without opening the panel.
type StatsJob struct {
	collectionService service.CollectionService
}

func NewStatsJob() *StatsJob {
	return new(StatsJob)
}

func (j *StatsJob) Run() {
	stats, err := j.collectionService.Statistics()
	if err != nil {
		logger.Warning("collect statistics failed:", err)
		return
	}
	logger.Infof("hunt progress: %d users, %d collections", stats.TotalUsers, stats.TotalCollections)
}
