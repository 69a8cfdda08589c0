package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"braindump/internal/braindump"
	"braindump/internal/model"
	"braindump/pkg/response"
)

// BrainDump godoc
// @Summary     Process a brain dump
// @Description Classifies a transcribed voice message, validates it and executes the resulting actions.
// @Tags        BrainDump
// @Accept      json
// @Produce     json
// @Param       body body brainDumpReq true "Transcribed text and device id"
// @Success     200 {object} braindump.GenericResponse "Shape varies by intent: note and reminder have bespoke contracts"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /brain-dump [POST]
func (h *handler) BrainDump(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBrainDumpReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// Identity gate: resolve the technical device id to the phone-number
	// user id before any processing happens.
	record, err := h.users.ResolveDevice(ctx, req.UserID)
	if err != nil || !record.CalendarEnabled {
		h.l.Infof(ctx, "delivery.http.BrainDump: device %q unrecognized or not ready, asking for registration", req.UserID)
		c.JSON(http.StatusOK, needsRegistrationResp{
			Success:         false,
			Message:         msgNeedsRegistration,
			Status:          "NEEDS_REGISTRATION",
			RegistrationURL: h.registrationURL,
		})
		return
	}

	sc := model.Scope{UserID: record.UserID}
	out, err := h.uc.Process(ctx, sc, braindump.ProcessInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	// The variant shapes are the contract; no envelope around them.
	c.JSON(http.StatusOK, out)
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, braindump.ErrEmptyText):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
