package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/fatih/color"
)

const cellWidth = 8

var (
	headerColor = color.New(color.Bold, color.Underline)
	faint       = color.New(color.Faint)
	todayColor  = color.New(color.ReverseVideo)

	// one color per (phase, workout type)
	workoutColors = map[curriculum.Phase]map[curriculum.WorkoutType]*color.Color{
		curriculum.Phase1: {
			curriculum.MultiJoint: color.New(color.FgGreen),
			curriculum.Isolation:  color.New(color.FgCyan),
		},
		curriculum.Phase2: {
			curriculum.MultiJoint: color.New(color.FgYellow),
			curriculum.Isolation:  color.New(color.FgMagenta),
		},
	}
)

// cellText is the uncolored content of one calendar day.
func cellText(day int, pos curriculum.Position, scheduled, rest bool) string {
	switch {
	case scheduled:
		return fmt.Sprintf("%2d %s", day, pos)
	case rest:
		return fmt.Sprintf("%2d rest", day)
	default:
		return fmt.Sprintf("%2d", day)
	}
}

func cellColor(pos curriculum.Position, scheduled, rest bool) *color.Color {
	if !scheduled {
		if rest {
			return faint
		}
		return nil
	}
	w, err := curriculum.Describe(pos.Week, pos.Day)
	if err != nil {
		return nil
	}
	return workoutColors[w.Phase][w.Type]
}

// renderMonth prints one month, weeks starting on Monday. Past workouts are
// the completed ones, future ones are projections.
func renderMonth(
	w io.Writer,
	sched schedule.Schedule,
	year int,
	month time.Month,
	today schedule.Date,
	rest schedule.RestDays,
) {
	first := schedule.NewDate(year, month, 1)
	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintln(w, headerColor.Sprint(title))

	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		fmt.Fprint(w, padRight(wd, cellWidth))
	}
	fmt.Fprintln(w)

	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7
	fmt.Fprint(w, strings.Repeat(" ", offset*cellWidth))

	col := offset
	for d := first; d.Time().Month() == month; d = d.AddDays(1) {
		pos, scheduled := sched[d]
		isRest := rest.IsRest(d)
		text := padRight(cellText(d.Time().Day(), pos, scheduled, isRest), cellWidth)

		c := cellColor(pos, scheduled, isRest)
		switch {
		case d == today:
			fmt.Fprint(w, todayColor.Sprint(strings.TrimRight(text, " ")))
			fmt.Fprint(w, strings.Repeat(" ", len(text)-len(strings.TrimRight(text, " "))))
		case c != nil:
			fmt.Fprint(w, c.Sprint(text))
		default:
			fmt.Fprint(w, text)
		}

		col++
		if col == 7 {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}

func renderLegend(w io.Writer) {
	fmt.Fprintln(w)
	for _, phase := range []curriculum.Phase{curriculum.Phase1, curriculum.Phase2} {
		for _, wt := range []curriculum.WorkoutType{curriculum.MultiJoint, curriculum.Isolation} {
			fmt.Fprintf(w, "%s  ", workoutColors[phase][wt].Sprintf("phase %d %s", phase, wt))
		}
	}
	fmt.Fprintln(w)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
