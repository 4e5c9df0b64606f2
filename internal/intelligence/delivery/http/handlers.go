package http

import (
	"github.com/gin-gonic/gin"

	"productivity-intelligence/pkg/response"
)

// Estimate godoc
// @Summary     Score a single task
// @Description Estimates duration, classifies complexity/cognitive load/urgency and attaches recommendations for one task.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User whose history informs the estimate"
// @Param       body body estimateReq true "Task to score"
// @Success     200 {object} estimateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intelligence/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Estimate(ctx, scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Estimate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// EstimateBatch godoc
// @Summary     Score many tasks
// @Description Estimates a batch of tasks with bounded concurrency. Results preserve input order.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User whose history informs the estimates"
// @Param       body body batchReq true "Tasks to score"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intelligence/estimate/batch [POST]
func (h *handler) EstimateBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EstimateBatch(ctx, scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EstimateBatch: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newBatchResp(output))
}

// Schedule godoc
// @Summary     Book a focus slot
// @Description Books a morning/afternoon/evening focus window for an estimated task on the user's calendar.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Calendar owner"
// @Param       body body scheduleReq true "Slot to book"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intelligence/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
