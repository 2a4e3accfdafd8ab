package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	apimodels "github.com/deffiedeff2/event-app/api/models"
)

// handleStatus reports uptime, host memory, data-disk usage and the state of
// the background jobs.
func (s *Server) handleStatus(c *gin.Context) {
	resp := apimodels.StatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Jobs:          s.engine.Jobs(),
	}

	if vm, err := mem.VirtualMemoryWithContext(c.Request.Context()); err != nil {
		log.Warn("failed to read memory stats", "error", err)
	} else {
		resp.MemoryUsedBytes = vm.Used
	}

	if usage, err := disk.UsageWithContext(c.Request.Context(), s.cfg.DataDir); err != nil {
		log.Warn("failed to read disk usage", "error", err)
	} else {
		resp.DataDiskFree = usage.Free
		resp.DataDiskUsedPct = usage.UsedPercent
	}

	c.JSON(http.StatusOK, resp)
}
