package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/response"
)

const defaultRangeDays = 7

type rangeReq struct {
	from time.Time
	to   time.Time
}

// processRangeReq resolves the caller scope and the analytics window.
// Bounds accept absolute dates or the relative phrases the date parser
// understands; omitted bounds default to the trailing week.
func (h *handler) processRangeReq(c *gin.Context) (model.Scope, rangeReq, error) {
	sc := model.Scope{UserID: c.Param("userID")}

	now := time.Now()
	req := rangeReq{
		from: now.AddDate(0, 0, -defaultRangeDays),
		to:   now,
	}

	if raw := c.Query("from"); raw != "" {
		from, err := h.parseBound(raw, now)
		if err != nil {
			return sc, req, err
		}
		req.from = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := h.parseBound(raw, now)
		if err != nil {
			return sc, req, err
		}
		// A named day as upper bound means the whole of that day.
		req.to = h.parser.EndOfDay(to)
	}

	return sc, req, nil
}

// parseBound accepts YYYY-MM-DD first, then falls back to relative
// phrases ("yesterday", "today").
func (h *handler) parseBound(raw string, base time.Time) (time.Time, error) {
	if t, err := time.Parse(response.DateFormat, raw); err == nil {
		return t, nil
	}
	t, err := h.parser.Parse(raw, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid range bound %q: %w", raw, err)
	}
	return t, nil
}
