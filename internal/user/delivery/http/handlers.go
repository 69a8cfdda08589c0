package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"braindump/internal/user"
	"braindump/pkg/response"
)

// VerifyUser godoc
// @Summary     Verify a device
// @Description Checks whether the device belongs to a registered user with calendar access.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body verifyUserReq true "Device id"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /verify-user [POST]
func (h *handler) VerifyUser(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyUserReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// The shortcut expects a bare status object, not the generic envelope.
	status := statusNeedsRegistration
	if h.uc.VerifyDevice(ctx, req.UserID) {
		status = statusOK
	}
	c.JSON(http.StatusOK, statusResp{Status: status})
}

// RegisterPage godoc
// @Summary     Registration page
// @Description Serves the HTML onboarding form.
// @Tags        User
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /register [GET]
func (h *handler) RegisterPage(c *gin.Context) {
	c.File("static/register.html")
}

// RegisterComplete godoc
// @Summary     Complete registration
// @Description Verifies real calendar access for the given email, then stores the user record.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerCompleteReq true "Registration data"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Calendar not accessible"
// @Router      /register/complete [POST]
func (h *handler) RegisterComplete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if _, err := h.uc.Register(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResp{Status: statusOK})
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrCalendarInaccessible):
		response.Forbidden(c, err)
	case errors.Is(err, user.ErrMissingPhone):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
