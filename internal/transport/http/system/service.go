package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
	httptransport "krishi-officer-go/internal/transport/http"
)

// Status is the system health snapshot served by the status endpoint.
type Status struct {
	Status     string `json:"status"`
	Uptime     string `json:"uptime"`
	HostUptime string `json:"host_uptime,omitempty"`
	CPUPercent string `json:"cpu_percent,omitempty"`
	MemPercent string `json:"mem_percent,omitempty"`
	Goroutines int    `json:"goroutines"`
	GoVersion  string `json:"go_version"`
}

// Service exposes the process health endpoint.
type Service struct {
	logger  *logging.Logger
	started time.Time
}

func NewService(logger *logging.Logger) (*Service, error) {
	if logger == nil {
		return nil, errors.New(errors.KindConfig, "system.new", "logger is required")
	}
	return &Service{
		logger:  logger,
		started: time.Now(),
	}, nil
}

// Register mounts the status route on the given router group.
func (s *Service) Register(ctx context.Context, router *gin.RouterGroup) error {
	router.GET("/system/status", s.handleStatus)

	s.logger.InfoTag("SYSTEM", "status route registered")
	return nil
}

// handleStatus reports process uptime and host resource usage.
// @Summary System status
// @Tags System
// @Produce json
// @Success 200 {object} Status
// @Router /api/system/status [get]
func (s *Service) handleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	status := Status{
		Status:     "ok",
		Uptime:     time.Since(s.started).Round(time.Second).String(),
		Goroutines: runtime.NumGoroutine(),
		GoVersion:  runtime.Version(),
	}

	// Host metrics are best effort; the endpoint stays useful without them.
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		status.HostUptime = (time.Duration(uptime) * time.Second).String()
	}
	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		status.CPUPercent = fmt.Sprintf("%.1f%%", percents[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.MemPercent = fmt.Sprintf("%.1f%%", vm.UsedPercent)
	}

	httptransport.RespondJSON(c, status)
}
