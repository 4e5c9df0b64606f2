package http

import (
	"github.com/gin-gonic/gin"

	"productivity-intelligence/pkg/response"
)

// Summary godoc
// @Summary     Get productivity analytics
// @Description Computes the productivity snapshot for a user over a date range: metrics, patterns, recommendations, distribution and efficiency scores.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       userID path  string true  "User ID"
// @Param       from   query string false "Range start, YYYY-MM-DD or relative such as 'yesterday' (default: 7 days ago)"
// @Param       to     query string false "Range end, YYYY-MM-DD or relative (default: now)"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/{userID} [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Aggregate(ctx, sc, req.toAggregateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Aggregate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Report godoc
// @Summary     Get productivity report
// @Description Renders the user's snapshot into a human-readable report with insights, achievements and trend deltas against the preceding window.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       userID path  string true  "User ID"
// @Param       from   query string false "Range start, YYYY-MM-DD or relative (default: 7 days ago)"
// @Param       to     query string false "Range end, YYYY-MM-DD or relative (default: now)"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/{userID}/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Report(ctx, sc, req.toReportInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReportResp(output))
}
