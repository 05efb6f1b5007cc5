package schedule

import (
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
)

// Horizon is how many calendar days ahead a schedule is projected.
const Horizon = 90

// CompletedRecord is a workout the user actually logged.
type CompletedRecord struct {
	Date Date `json:"date" toml:"date"`
	Week int  `json:"week" toml:"week"`
	Day  int  `json:"day" toml:"day"`
}

func (r CompletedRecord) Position() curriculum.Position {
	return curriculum.Position{Week: r.Week, Day: r.Day}
}

type GenerateInput struct {
	StartDate Date
	Today     Date
	Records   []CompletedRecord
	RestDays  RestDays
}

// Generate builds a schedule from completed records and projects the rest of
// the curriculum forward from max(today, start date). Records always win over
// projections and are kept even when they fall on a rest day.
func Generate(in GenerateInput) (Schedule, error) {
	s := make(Schedule, len(in.Records)+Horizon)

	var (
		last    CompletedRecord
		hasLast bool
	)
	for _, r := range in.Records {
		pos := r.Position()
		if err := pos.Validate(); err != nil {
			return nil, fmt.Errorf("completed workout on %s: %w", r.Date, err)
		}
		if existing, ok := s[r.Date]; !ok || pos.Sequence() > existing.Sequence() {
			s[r.Date] = pos
		}
		if !hasLast || r.Date.After(last.Date) ||
			(r.Date == last.Date && pos.Sequence() > last.Position().Sequence()) {
			last = r
			hasLast = true
		}
	}

	next := curriculum.First
	if hasLast {
		next = last.Position().Next()
	}

	s.fillForward(MaxDate(in.Today, in.StartDate), Horizon, next, in.RestDays)
	return s, nil
}
