package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the pipeline entrypoint. Root-level path, the
// shortcut posts straight to it.
func RegisterRoutes(r *gin.Engine, h *handler) {
	r.POST("/brain-dump", h.BrainDump)
}
