package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	"day-planner/pkg/response"
)

// Capture godoc
// @Summary     Capture tasks from free-form text
// @Description Extracts tasks and events from a text or voice transcript, normalizes their times for the caller's timezone, and persists them under a new entry.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body captureReq true "Capture payload"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Extraction failed"
// @Router      /api/v1/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCaptureReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Capture(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCaptureResp(output))
}
