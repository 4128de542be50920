package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"littlelemon/internal/availability"

	"github.com/spf13/cobra"
)

func newSlotsCmd() *cobra.Command {
	var (
		date   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the open reservation times for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = availability.FormatDate(time.Now())
			}
			times, err := availability.ForDateString(date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(map[string]any{"date": date, "times": times})
			}
			if len(times) == 0 {
				fmt.Fprintf(out, "%s: fully booked\n", date)
				return nil
			}
			for _, t := range times {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of one time per line")
	return cmd
}
