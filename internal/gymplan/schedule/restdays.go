package schedule

import (
	"time"

	"github.com/2beens/gymplan/internal/gymplan/address"
)

// RestDays is a set of weekdays (Sunday=0 ... Saturday=6) stored as a bitmask.
type RestDays uint8

const allWeekdays RestDays = 1<<7 - 1

func NewRestDays(days ...time.Weekday) RestDays {
	var r RestDays
	for _, d := range days {
		r |= 1 << uint(d)
	}
	return r & allWeekdays
}

// RestDaysFromInts validates weekday numbers coming from storage or requests.
func RestDaysFromInts(days []int) (RestDays, error) {
	var r RestDays
	for _, d := range days {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return 0, address.NewRangeError("weekday", d, int(time.Sunday), int(time.Saturday))
		}
		r |= 1 << uint(d)
	}
	return r, nil
}

func (r RestDays) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return r&(1<<uint(d)) != 0
}

func (r RestDays) IsRest(d Date) bool {
	return r.Contains(d.Weekday())
}

func (r RestDays) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r.Contains(d) {
			n++
		}
	}
	return n
}

func (r RestDays) IsEmpty() bool {
	return r&allWeekdays == 0
}

// All reports whether every weekday is a rest day, leaving no training day.
func (r RestDays) All() bool {
	return r&allWeekdays == allWeekdays
}

func (r RestDays) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, r.Len())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (r RestDays) Ints() []int {
	days := make([]int, 0, r.Len())
	for _, d := range r.Weekdays() {
		days = append(days, int(d))
	}
	return days
}
