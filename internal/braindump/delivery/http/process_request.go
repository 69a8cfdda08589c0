package http

import (
	"github.com/gin-gonic/gin"
)

// processBrainDumpReq binds and validates the brain dump request body.
func (h *handler) processBrainDumpReq(c *gin.Context) (brainDumpReq, error) {
	var req brainDumpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
