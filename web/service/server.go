package service

import (
	"os"
	"time"

	"quote-hunt/config"
	"quote-hunt/logger"
	"quote-hunt/web/entity"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var serverStart = time.Now()

// ServerService reports process and host health for the admin panel.
type ServerService struct{}

// GetStatus collects CPU, memory, uptime, database size and the collect
// attempt counter.
func (s *ServerService) GetStatus() *entity.ServerStatus {
	status := &entity.ServerStatus{
		Uptime:          uint64(time.Since(serverStart).Seconds()),
		CollectAttempts: CollectAttempts(),
		Version:         config.GetVersion(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	if info, err := os.Stat(config.GetDBPath()); err == nil {
		status.DBSize = info.Size()
	}

	return status
}

// GetLogs returns up to count recent log entries at or below the given level
// from the in-memory buffer.
func (s *ServerService) GetLogs(count int, level string) []string {
	return logger.GetLogs(count, level)
}
