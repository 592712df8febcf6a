package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/rgehrsitz/folha/internal/output"
	"github.com/rgehrsitz/folha/internal/shift"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var monthCmd = &cobra.Command{
	Use:   "month [MM] [YYYY]",
	Short: "Classify a month into business and non-business days",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := strconv.Atoi(args[0])
		if err != nil || month < 1 || month > 12 {
			return fmt.Errorf("invalid month %q", args[0])
		}
		year, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[1])
		}
		state, _ := cmd.Flags().GetString("state")

		table, err := holidayTable(cmd)
		if err != nil {
			return err
		}
		if table == nil {
			table = calendar.DefaultTable()
		}

		mc := table.ClassifyMonth(month, year, state)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%02d/%d %s\n", mc.Month, mc.Year, strings.ToUpper(mc.StateCode))
		fmt.Fprintf(w, "Business days:     %d\n", mc.BusinessDays)
		fmt.Fprintf(w, "Non-business days: %d\n", mc.NonBusinessDays)
		fmt.Fprintf(w, "DSR factor:        %s\n", mc.DSRFactor().StringFixed(4))
		return nil
	},
}

var sundaysCmd = &cobra.Command{
	Use:   "sundays [start] [end]",
	Short: "Count the Sundays worked between two YYYY-MM-DD dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := calendar.ParseDate(args[0])
		if err != nil {
			return err
		}
		end, err := calendar.ParseDate(args[1])
		if err != nil {
			return err
		}
		if end.Before(start) {
			return fmt.Errorf("%w: %s is before %s", calendar.ErrInvalidRange, args[1], args[0])
		}

		scale, _ := cmd.Flags().GetString("scale")
		parity, _ := cmd.Flags().GetString("parity")
		ws := domain.WorkScale(strings.ToUpper(scale))
		st := domain.ShiftScheduleType(strings.ToUpper(parity))

		n := calendar.CountSundaysBetween(start, end, ws, st)
		logger.Debug("counted sundays", zap.String("scale", string(ws)), zap.String("parity", string(st)), zap.Int("count", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Sundays worked: %d\n", n)
		return nil
	},
}

var shiftCmd = &cobra.Command{
	Use:   "shift [start] [end]",
	Short: "Split a daily HH:MM schedule into day and night hours",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := shift.Schedule{Start: args[0], End: args[1]}
		s.ExtendNight, _ = cmd.Flags().GetBool("extend")

		if brk, _ := cmd.Flags().GetString("break"); brk != "" {
			from, to, ok := strings.Cut(brk, "-")
			if !ok {
				return fmt.Errorf("invalid break %q, want HH:MM-HH:MM", brk)
			}
			s.BreakStart, s.BreakEnd = from, to
		}

		h, err := shift.Analyze(s)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Day hours:   %s\n", output.FormatHours(h.DayHours))
		fmt.Fprintf(w, "Night hours: %s\n", output.FormatHours(h.NightHours))
		fmt.Fprintf(w, "Total hours: %s\n", output.FormatHours(h.TotalHours))
		return nil
	},
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays [YYYY]",
	Short: "List the national, mobile and state holidays of a year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		state, _ := cmd.Flags().GetString("state")

		table, err := holidayTable(cmd)
		if err != nil {
			return err
		}
		if table == nil {
			table = calendar.DefaultTable()
		}

		w := cmd.OutOrStdout()
		for _, h := range table.HolidaysIn(year, state) {
			fmt.Fprintf(w, "%s  %-8s  %s\n", h.Date.Format(calendar.DateLayout), h.Kind, h.Name)
		}
		return nil
	},
}

func init() {
	monthCmd.Flags().String("state", "", "Two-letter state code for state holidays")
	monthCmd.Flags().String("holidays", "", "Path to a holiday table replacing the embedded one")

	sundaysCmd.Flags().String("scale", string(domain.ScaleStandard), "Work scale (STANDARD, TWELVE_BY_THIRTYSIX)")
	sundaysCmd.Flags().String("parity", "", "12x36 day-of-month parity (ODD, EVEN)")

	shiftCmd.Flags().String("break", "", "Unpaid break as HH:MM-HH:MM")
	shiftCmd.Flags().Bool("extend", false, "Keep night rates past 05:00 for shifts starting at night")

	holidaysCmd.Flags().String("state", "", "Two-letter state code for state holidays")
	holidaysCmd.Flags().String("holidays", "", "Path to a holiday table replacing the embedded one")
}
