package usecase

import (
	"context"
	"fmt"
	"time"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/internal/intelligence/recommend"
	"productivity-intelligence/internal/model"
)

// slotStartHour maps a suggested slot to its default local start hour.
var slotStartHour = map[string]int{
	recommend.SlotMorning:   9,
	recommend.SlotAfternoon: 14,
	recommend.SlotEvening:   19,
}

// Schedule books a focus window for an estimated task. A calendar failure
// degrades to a window without a booking link; it is never an error.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input intelligence.ScheduleInput) (intelligence.ScheduleOutput, error) {
	hour, ok := slotStartHour[input.Slot]
	if !ok {
		return intelligence.ScheduleOutput{}, fmt.Errorf("%w: %q", intelligence.ErrUnknownSlot, input.Slot)
	}
	if input.Date.IsZero() {
		return intelligence.ScheduleOutput{}, intelligence.ErrZeroDate
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 25
	}

	loc := time.UTC
	if uc.opts.Timezone != "" {
		if l, err := time.LoadLocation(uc.opts.Timezone); err == nil {
			loc = l
		} else {
			uc.l.Warnf(ctx, "intelligence.Schedule: unknown timezone %q, using UTC", uc.opts.Timezone)
		}
	}

	start := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), hour, 0, 0, 0, loc)
	end := start.Add(time.Duration(duration) * time.Minute)
	out := intelligence.ScheduleOutput{Start: start, End: end}

	if uc.calendar == nil {
		return out, nil
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendarEventRequest(input, start, end, uc.opts.Timezone))
	if err != nil {
		uc.l.Warnf(ctx, "intelligence.Schedule: calendar unavailable, returning window without link: %v", err)
		return out, nil
	}

	out.EventID = event.ID
	out.EventLink = event.HtmlLink
	return out, nil
}
