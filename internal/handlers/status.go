package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mukuru1/UbuzimaHC-2/internal/config"
	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// Prober confirms backend reachability with a minimal read-only query.
type Prober interface {
	Probe(ctx context.Context) error
}

// StatusHandler reports what a client needs to decide whether to warn that
// the backend is missing or misconfigured: credential status plus a single
// connectivity probe. One probe attempt per request, no retries.
type StatusHandler struct {
	cfg    *config.Config
	prober Prober
}

func NewStatusHandler(cfg *config.Config, prober Prober) *StatusHandler {
	return &StatusHandler{cfg: cfg, prober: prober}
}

func (h *StatusHandler) GetStatus(c *gin.Context) {
	configured, reason := h.cfg.Status()

	response := models.StatusResponse{
		Configured: configured,
		Reason:     reason,
	}

	if configured && h.prober != nil {
		probe := models.ProbeResult{OK: true}
		if err := h.prober.Probe(c.Request.Context()); err != nil {
			// Raw backend message so clients can show it verbatim.
			probe = models.ProbeResult{OK: false, Error: err.Error()}
		}
		response.Probe = &probe
	}

	c.JSON(http.StatusOK, response)
}
