package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/response"
)

// scope builds the caller scope. The user header is optional; anonymous
// requests are scored without history.
func scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}

// processEstimateReq binds and validates the single-task estimate body.
func (h *handler) processEstimateReq(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processBatchReq binds and validates the batch estimate body.
func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScheduleReq binds the schedule body and parses its date.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	date, err := time.Parse(response.DateFormat, req.Date)
	if err != nil {
		return req, fmt.Errorf("invalid date %q, expected %s", req.Date, response.DateFormat)
	}
	req.date = date
	return req, nil
}
