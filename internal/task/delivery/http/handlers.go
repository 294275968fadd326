package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	"day-planner/internal/task"
	"day-planner/pkg/response"
)

// Create godoc
// @Summary     Create a task or event
// @Description Creates one task or event from local wall-clock timestamps interpreted in the given timezone.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Task))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Task))
}

// Update godoc
// @Summary     Update a task or event
// @Description Partial update with merge semantics: absent fields keep their stored value, explicit nulls clear. The merged time state must stay valid.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task or event
// @Description Soft-deletes; the item disappears from all day views.
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DayView godoc
// @Summary     One local calendar day
// @Description Resolves the day key to a UTC window in the given timezone and returns every live item classified into display groups.
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       dayKey   path  string true  "Calendar day (YYYY-MM-DD)"
// @Param       timezone query string false "IANA timezone, e.g. Asia/Tokyo"
// @Success     200 {object} dayViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/days/{dayKey} [GET]
func (h *handler) DayView(c *gin.Context) {
	ctx := c.Request.Context()

	req, dayKey, err := h.processDayViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DayView(ctx, middleware.GetScope(c), task.DayViewInput{
		DayKey:   dayKey,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DayView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayViewResp(output))
}

// Today godoc
// @Summary     Today's day view
// @Description Same as the day view, resolved to the current day in the given timezone.
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       timezone query string false "IANA timezone, e.g. Asia/Tokyo"
// @Success     200 {object} dayViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	var req dayViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DayView(ctx, middleware.GetScope(c), task.DayViewInput{Timezone: req.Timezone})
	if err != nil {
		h.l.Errorf(ctx, "uc.DayView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayViewResp(output))
}
