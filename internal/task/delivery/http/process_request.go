package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body plus URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errors.New("id is required")
	}
	return req, nil
}

type dayViewReq struct {
	Timezone string `form:"timezone" binding:"omitempty,max=64"`
}

// processDayViewReq binds the day-view query parameters and URI param.
func (h *handler) processDayViewReq(c *gin.Context) (dayViewReq, string, error) {
	var req dayViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, "", err
	}
	return req, c.Param("dayKey"), nil
}
