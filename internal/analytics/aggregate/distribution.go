package aggregate

import (
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// Distribution sums session minutes into category, hour-of-day and
// day-of-week buckets for charting collaborators.
func Distribution(sessions []model.SessionRecord) analytics.TimeDistribution {
	d := analytics.TimeDistribution{
		ByCategory:  map[string]float64{},
		ByHour:      map[int]float64{},
		ByDayOfWeek: map[string]float64{},
	}

	for _, s := range sessions {
		minutes := s.Minutes()
		if minutes <= 0 {
			continue
		}
		category := string(s.Category)
		if category == "" {
			category = string(model.CategoryGeneral)
		}
		d.ByCategory[category] += minutes
		d.ByHour[s.StartedAt.Hour()] += minutes
		d.ByDayOfWeek[s.StartedAt.Weekday().String()] += minutes
	}

	return d
}
