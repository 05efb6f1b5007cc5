package curriculum

import (
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/address"
)

// CycleLength is the number of workouts in one full curriculum pass.
const CycleLength = address.MaxWeek * address.MaxDay

// Position is one (week, day) slot of the curriculum.
type Position struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

var First = Position{Week: 1, Day: 1}

func (p Position) Validate() error {
	return address.CheckWeekDay(p.Week, p.Day)
}

// Next returns the following position; day 6 wraps to day 1 of the next
// week and week 6 wraps to week 1.
func (p Position) Next() Position {
	if p.Day < address.MaxDay {
		return Position{Week: p.Week, Day: p.Day + 1}
	}
	return Position{Week: (p.Week % address.MaxWeek) + 1, Day: address.MinDay}
}

// Sequence is the 1-based global index of the position within a cycle (1..36).
func (p Position) Sequence() int {
	return (p.Week-1)*address.MaxDay + p.Day
}

func (p Position) Table() (address.TableAddress, error) {
	return address.Table(p.Week, p.Day)
}

func (p Position) String() string {
	return fmt.Sprintf("W%dD%d", p.Week, p.Day)
}
