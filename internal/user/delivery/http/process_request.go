package http

import (
	"github.com/gin-gonic/gin"
)

// processVerifyUserReq binds and validates the verify-user request body.
func (h *handler) processVerifyUserReq(c *gin.Context) (verifyUserReq, error) {
	var req verifyUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRegisterCompleteReq binds and validates the register-complete request body.
func (h *handler) processRegisterCompleteReq(c *gin.Context) (registerCompleteReq, error) {
	var req registerCompleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
