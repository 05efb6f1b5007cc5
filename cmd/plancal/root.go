package main

import (
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	startFlag   string
	todayFlag   string
	monthFlag   string
	recordsFlag string
	restFlag    []int
	monthsFlag  int
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "plancal",
	Short: "Print a projected gymplan calendar",
	Long: `plancal projects the 6-week gymplan curriculum onto a month calendar.

Completed workouts come from an optional TOML records file:

  [[completed]]
  date = "2025-03-03"
  week = 1
  day = 1

EXAMPLES:

  plancal --start 2025-03-03                    # current month, Sunday rest
  plancal --start 2025-03-03 --rest 0,3         # rest on Sundays and Wednesdays
  plancal --start 2025-03-03 --records done.toml --today 2025-03-20 --months 2`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag {
			color.NoColor = true
		}

		start, err := schedule.ParseDate(startFlag)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}

		today := schedule.DateOf(time.Now())
		if todayFlag != "" {
			if today, err = schedule.ParseDate(todayFlag); err != nil {
				return fmt.Errorf("invalid --today: %w", err)
			}
		}

		restDays, err := schedule.RestDaysFromInts(restFlag)
		if err != nil {
			return fmt.Errorf("invalid --rest: %w", err)
		}
		if restDays.All() {
			return fmt.Errorf("invalid --rest: at least one training day is needed")
		}

		month := today.Time()
		if monthFlag != "" {
			if month, err = time.Parse("2006-01", monthFlag); err != nil {
				return fmt.Errorf("invalid --month: %w", err)
			}
		}

		var records []schedule.CompletedRecord
		if recordsFlag != "" {
			if records, err = loadRecords(recordsFlag); err != nil {
				return err
			}
		}

		sched, err := schedule.Generate(schedule.GenerateInput{
			StartDate: start,
			Today:     today,
			Records:   records,
			RestDays:  restDays,
		})
		if err != nil {
			return fmt.Errorf("generate schedule: %w", err)
		}

		out := cmd.OutOrStdout()
		for i := 0; i < monthsFlag; i++ {
			if i > 0 {
				fmt.Fprintln(out)
			}
			m := month.AddDate(0, i, 0)
			renderMonth(out, sched, m.Year(), m.Month(), today, restDays)
		}
		renderLegend(out)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&startFlag, "start", "s", "", "program start date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&todayFlag, "today", "", "treat this date as today (YYYY-MM-DD)")
	rootCmd.Flags().StringVarP(&monthFlag, "month", "m", "", "first month to print (YYYY-MM), defaults to the month of today")
	rootCmd.Flags().StringVar(&recordsFlag, "records", "", "TOML file with completed workouts")
	rootCmd.Flags().IntSliceVarP(&restFlag, "rest", "r", []int{0}, "rest weekdays, 0=Sunday .. 6=Saturday")
	rootCmd.Flags().IntVarP(&monthsFlag, "months", "n", 1, "number of months to print")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	_ = rootCmd.MarkFlagRequired("start")
}
