package schedule_test

import (
	"testing"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(week, day int) curriculum.Position {
	return curriculum.Position{Week: week, Day: day}
}

func jan(day int) schedule.Date {
	return schedule.NewDate(2025, time.January, day)
}

func TestGenerate_Scenario(t *testing.T) {
	s, err := schedule.Generate(schedule.GenerateInput{
		StartDate: jan(6),
		Today:     jan(6),
		RestDays:  schedule.NewRestDays(time.Sunday),
	})
	require.NoError(t, err)

	for day := 1; day <= 6; day++ {
		assert.Equal(t, pos(1, day), s[jan(5+day)], "Jan %d", 5+day)
	}
	_, onSunday := s[jan(12)]
	assert.False(t, onSunday)
	assert.Equal(t, pos(2, 1), s[jan(13)])
}

func TestGenerate_NeverOnRestDays(t *testing.T) {
	restSets := []schedule.RestDays{
		schedule.NewRestDays(time.Sunday),
		schedule.NewRestDays(time.Saturday, time.Sunday),
		schedule.NewRestDays(time.Monday, time.Wednesday, time.Friday),
		schedule.NewRestDays(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
	}
	for _, rest := range restSets {
		s, err := schedule.Generate(schedule.GenerateInput{
			StartDate: jan(1),
			Today:     jan(15),
			RestDays:  rest,
		})
		require.NoError(t, err)
		require.NotEmpty(t, s)
		for d := range s {
			assert.False(t, rest.IsRest(d), "%s is a rest day (%v)", d, rest.Weekdays())
		}

		// projected order follows the curriculum
		entries := s.Entries()
		for i := 1; i < len(entries); i++ {
			assert.Equal(t, entries[i-1].Position.Next(), entries[i].Position)
		}
	}
}

func TestGenerate_CatchesUpToToday(t *testing.T) {
	today := schedule.NewDate(2025, time.February, 1)
	s, err := schedule.Generate(schedule.GenerateInput{
		StartDate: jan(6),
		Today:     today,
		Records: []schedule.CompletedRecord{
			{Date: jan(6), Week: 1, Day: 1},
			{Date: jan(7), Week: 1, Day: 2},
		},
		RestDays: schedule.NewRestDays(time.Sunday),
	})
	require.NoError(t, err)

	assert.Equal(t, pos(1, 1), s[jan(6)])
	assert.Equal(t, pos(1, 2), s[jan(7)])
	for d := jan(8); d.Before(today); d = d.AddDays(1) {
		_, ok := s[d]
		assert.False(t, ok, "nothing should be projected into the past (%s)", d)
	}
	assert.Equal(t, pos(1, 3), s[today])
}

func TestGenerate_RecordsAreAuthoritative(t *testing.T) {
	sunday := jan(12)
	s, err := schedule.Generate(schedule.GenerateInput{
		StartDate: jan(6),
		Today:     jan(13),
		Records: []schedule.CompletedRecord{
			{Date: jan(9), Week: 3, Day: 4},
			{Date: sunday, Week: 3, Day: 5},
		},
		RestDays: schedule.NewRestDays(time.Sunday),
	})
	require.NoError(t, err)

	assert.Equal(t, pos(3, 4), s[jan(9)])
	assert.Equal(t, pos(3, 5), s[sunday])
	assert.Equal(t, pos(3, 6), s[jan(13)])
}

func TestGenerate_Wraps(t *testing.T) {
	s, err := schedule.Generate(schedule.GenerateInput{
		Today:   jan(2),
		Records: []schedule.CompletedRecord{{Date: jan(1), Week: 6, Day: 6}},
	})
	require.NoError(t, err)
	assert.Equal(t, pos(1, 1), s[jan(2)])
}

func TestGenerate_TieOnLatestDate(t *testing.T) {
	s, err := schedule.Generate(schedule.GenerateInput{
		Today: jan(2),
		Records: []schedule.CompletedRecord{
			{Date: jan(1), Week: 2, Day: 3},
			{Date: jan(1), Week: 2, Day: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, pos(2, 3), s[jan(1)])
	assert.Equal(t, pos(2, 4), s[jan(2)])
}

func TestGenerate_EmptyRestDaysFillsHorizon(t *testing.T) {
	s, err := schedule.Generate(schedule.GenerateInput{Today: jan(1)})
	require.NoError(t, err)
	assert.Len(t, s, schedule.Horizon)

	_, ok := s[jan(1).AddDays(schedule.Horizon)]
	assert.False(t, ok)
}

func TestGenerate_EveryDayRestKeepsOnlyRecords(t *testing.T) {
	records := []schedule.CompletedRecord{
		{Date: jan(6), Week: 1, Day: 1},
		{Date: jan(7), Week: 1, Day: 2},
	}
	s, err := schedule.Generate(schedule.GenerateInput{
		StartDate: jan(6),
		Today:     jan(8),
		Records:   records,
		RestDays:  everyDayOff,
	})
	require.NoError(t, err)
	assert.Equal(t, schedule.Schedule{
		jan(6): pos(1, 1),
		jan(7): pos(1, 2),
	}, s)
}

func TestGenerate_InvalidRecord(t *testing.T) {
	_, err := schedule.Generate(schedule.GenerateInput{
		Today:   jan(2),
		Records: []schedule.CompletedRecord{{Date: jan(1), Week: 7, Day: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, address.ErrRange)
}

func TestRecompute(t *testing.T) {
	in := schedule.GenerateInput{
		StartDate: jan(6),
		Today:     jan(6),
		RestDays:  schedule.NewRestDays(time.Sunday),
	}
	want, err := schedule.Generate(in)
	require.NoError(t, err)

	for _, trigger := range schedule.Triggers {
		got, err := schedule.Recompute(trigger, in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = schedule.Recompute("because", in)
	assert.ErrorIs(t, err, schedule.ErrPrecondition)

	_, err = schedule.ParseTrigger("rest_days_changed")
	assert.NoError(t, err)
	_, err = schedule.ParseTrigger("nope")
	assert.ErrorIs(t, err, schedule.ErrPrecondition)
}
