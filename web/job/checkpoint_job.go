// Package job contains scheduled maintenance jobs run by the server's cron.
package job

import (
	"quote-hunt/database"
	"quote-hunt/logger"
)

// CheckpointJob flushes the sqlite WAL back into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
		return
	}
	logger.Debug("wal checkpoint done")
}
