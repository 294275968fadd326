package http

import (
	"github.com/gin-gonic/gin"
)

// processCaptureReq binds and validates the capture request body.
func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
