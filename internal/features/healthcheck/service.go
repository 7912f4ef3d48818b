package healthcheck

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"cofoundry/internal/cache"
	"cofoundry/internal/storage"
)

const probeTimeout = 3 * time.Second

type ComponentStatus struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

type ResourceUsage struct {
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

type HealthReport struct {
	Healthy   bool            `json:"healthy"`
	Database  ComponentStatus `json:"database"`
	Cache     ComponentStatus `json:"cache"`
	Resources ResourceUsage   `json:"resources"`
	CheckedAt time.Time       `json:"checkedAt"`
}

type HealthcheckService struct{}

func (s *HealthcheckService) CheckHealth() *HealthReport {
	report := &HealthReport{
		Database:  s.checkDatabase(),
		Cache:     s.checkCache(),
		Resources: s.readResourceUsage(),
		CheckedAt: time.Now().UTC(),
	}

	report.Healthy = report.Database.Healthy && report.Cache.Healthy

	return report
}

func (s *HealthcheckService) checkDatabase() ComponentStatus {
	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return ComponentStatus{Healthy: false, Detail: err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := sqlDb.PingContext(ctx); err != nil {
		return ComponentStatus{Healthy: false, Detail: err.Error()}
	}

	return ComponentStatus{Healthy: true}
}

func (s *HealthcheckService) checkCache() ComponentStatus {
	client := cache.GetCache()
	if client == nil {
		// No cache backend configured; degraded but not failing.
		return ComponentStatus{Healthy: true, Detail: "cache disabled"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		return ComponentStatus{Healthy: false, Detail: err.Error()}
	}

	return ComponentStatus{Healthy: true}
}

func (s *HealthcheckService) readResourceUsage() ResourceUsage {
	usage := ResourceUsage{}

	if memory, err := mem.VirtualMemory(); err == nil {
		usage.MemoryUsedPercent = memory.UsedPercent
	}
	if diskUsage, err := disk.Usage("/"); err == nil {
		usage.DiskUsedPercent = diskUsage.UsedPercent
	}

	return usage
}
