package schedule

import (
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
)

type ToggleOptions struct {
	// CustomMode turns off rest-day checks and downstream regeneration.
	CustomMode bool
	RestDays   RestDays
	// Days before Today and the Completed dates are history: they are never
	// added, removed or shifted. A zero Today only protects Completed.
	Today     Date
	Completed []Date
}

type MoveOptions struct {
	CustomMode bool
	RestDays   RestDays
	Today      Date
	Completed  []Date
}

// Toggle removes the workout on date, or adds the next one in sequence when
// the date is free. The input schedule is never modified.
func Toggle(s Schedule, date Date, opts ToggleOptions) (Schedule, error) {
	if date.IsZero() {
		return nil, &PreconditionError{Op: "toggle", Detail: "date is required"}
	}

	fixed := newFixedDays(opts.Today, opts.Completed)
	if fixed.has(date) {
		return nil, &ConflictError{Reason: ReasonHistory, Date: date, Position: s[date]}
	}

	out := s.Clone()

	if removed, ok := out[date]; ok {
		delete(out, date)
		if opts.CustomMode {
			return out, nil
		}
		// everything after the removed day shifts forward by one slot
		out.dropFrom(date.AddDays(1), fixed)
		out.fillForward(date.AddDays(1), Horizon, removed, opts.RestDays)
		return out, nil
	}

	if opts.CustomMode {
		next := curriculum.First
		if prev, ok := out.latest(Date{}); ok {
			next = prev.Position.Next()
		}
		out[date] = next
		return out, nil
	}

	if opts.RestDays.IsRest(date) {
		return nil, &ConflictError{Reason: ReasonRestDay, Date: date}
	}

	next := curriculum.First
	if prev, ok := out.latest(date); ok {
		next = prev.Position.Next()
	}
	out.dropFrom(date, fixed)
	out[date] = next
	out.fillForward(date.AddDays(1), Horizon, next.Next(), opts.RestDays)
	return out, nil
}

// Move reschedules the workout on from to the date to. In standard mode every
// later workout is carried along, keeping its order and skipping rest days.
func Move(s Schedule, from, to Date, opts MoveOptions) (Schedule, error) {
	pos, ok := s[from]
	if !ok {
		return nil, &PreconditionError{Op: "move", Detail: fmt.Sprintf("no workout scheduled on %s", from)}
	}
	if to.IsZero() {
		return nil, &PreconditionError{Op: "move", Detail: "target date is required"}
	}

	fixed := newFixedDays(opts.Today, opts.Completed)
	if fixed.has(from) {
		return nil, &ConflictError{Reason: ReasonHistory, Date: from, Position: pos}
	}
	if fixed.has(to) {
		return nil, &ConflictError{Reason: ReasonHistory, Date: to, Position: pos}
	}

	if opts.CustomMode {
		out := s.Clone()
		delete(out, from)
		out[to] = pos
		return out, nil
	}

	if to == from {
		return nil, &ConflictError{Reason: ReasonSameDate, Date: to, Position: pos}
	}
	if opts.RestDays.All() {
		return nil, &PreconditionError{Op: "move", Detail: "every weekday is a rest day"}
	}
	if opts.RestDays.IsRest(to) {
		return nil, &ConflictError{Reason: ReasonRestDay, Date: to, Position: pos}
	}
	if to.Before(from) {
		// Chronological order is the sequence order, also across the wrap
		// from W6D6 back to W1D1, so the moved workout cannot pass any
		// workout scheduled in [to, from).
		for _, e := range s.Entries() {
			if e.Date.Before(to) || !e.Date.Before(from) {
				continue
			}
			return nil, &ConflictError{
				Reason:           ReasonSequence,
				Date:             to,
				Position:         pos,
				ConflictDate:     e.Date,
				ConflictPosition: e.Position,
			}
		}
	}

	out := s.Clone()
	var carried []curriculum.Position
	for _, e := range s.Entries() {
		if e.Date.Before(from) || fixed.has(e.Date) {
			continue
		}
		carried = append(carried, e.Position)
		delete(out, e.Date)
	}

	if err := out.replay(to, carried, opts.RestDays); err != nil {
		return nil, err
	}
	return out, nil
}

// replay places positions in order on free, non-rest days starting at from.
func (s Schedule) replay(from Date, positions []curriculum.Position, rest RestDays) error {
	if len(positions) > 0 && rest.All() {
		return &PreconditionError{Op: "move", Detail: "every weekday is a rest day"}
	}

	limit := len(positions)*7 + len(s) + 7
	d := from
	for i, steps := 0, 0; i < len(positions); steps++ {
		if steps > limit {
			return &PreconditionError{Op: "move", Detail: fmt.Sprintf("no free day found after %s", d)}
		}
		_, taken := s[d]
		if !taken && !rest.IsRest(d) {
			s[d] = positions[i]
			i++
		}
		d = d.AddDays(1)
	}
	return nil
}
