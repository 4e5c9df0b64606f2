package usecase

import (
	"fmt"
	"time"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/pkg/gcalendar"
)

func gcalendarEventRequest(input intelligence.ScheduleInput, start, end time.Time, timezone string) gcalendar.CreateEventRequest {
	summary := fmt.Sprintf("Focus: %s", input.Title)
	if input.Title == "" {
		summary = "Focus session"
	}
	return gcalendar.CreateEventRequest{
		Summary:     summary,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    timezone,
	}
}
