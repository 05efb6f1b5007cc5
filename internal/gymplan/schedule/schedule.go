package schedule

import (
	"sort"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
)

// Schedule maps calendar days to curriculum positions. Entries on or before
// today mirror completed workouts, later ones are projections.
type Schedule map[Date]curriculum.Position

// Entry is one (date, position) pair of a schedule.
type Entry struct {
	Date     Date                `json:"date"`
	Position curriculum.Position `json:"position"`
}

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for d, p := range s {
		out[d] = p
	}
	return out
}

// Entries returns the schedule in chronological order.
func (s Schedule) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for d, p := range s {
		entries = append(entries, Entry{Date: d, Position: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// latest returns the last entry strictly before the given date, or the last
// entry overall when before is the zero Date.
func (s Schedule) latest(before Date) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for d, p := range s {
		if !before.IsZero() && !d.Before(before) {
			continue
		}
		if !found || d.After(best.Date) {
			best = Entry{Date: d, Position: p}
			found = true
		}
	}
	return best, found
}

// dropFrom deletes every entry on or after from, except the fixed ones.
func (s Schedule) dropFrom(from Date, fixed fixedDays) {
	for d := range s {
		if !d.Before(from) && !fixed.has(d) {
			delete(s, d)
		}
	}
}

// fixedDays are the days an edit must leave alone: completed workouts and
// every day before today.
type fixedDays struct {
	today     Date
	completed map[Date]bool
}

func newFixedDays(today Date, completed []Date) fixedDays {
	f := fixedDays{today: today, completed: make(map[Date]bool, len(completed))}
	for _, d := range completed {
		f.completed[d] = true
	}
	return f
}

func (f fixedDays) has(d Date) bool {
	if f.completed[d] {
		return true
	}
	return !f.today.IsZero() && d.Before(f.today)
}

// fillForward assigns consecutive positions starting at next to free,
// non-rest days in [from, from+days).
func (s Schedule) fillForward(from Date, days int, next curriculum.Position, rest RestDays) {
	for i := 0; i < days; i++ {
		d := from.AddDays(i)
		if _, taken := s[d]; taken {
			continue
		}
		if rest.IsRest(d) {
			continue
		}
		s[d] = next
		next = next.Next()
	}
}
