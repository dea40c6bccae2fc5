package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mind-engage/kwash-dashboard/internal/gauge"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

type gaugeLine struct {
	Indicator string         `json:"indicator"`
	Reading   *gauge.Reading `json:"reading"`
}

func newGaugeCmd(a *app) *cobra.Command {
	var indicator string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Print the holistic agreement gauge of each indicator",
		Args:  cobra.NoArgs,
	}
	applyCatalog := catalogFlags(cmd, a)
	cmd.Flags().StringVar(&indicator, "indicator", "", "only this indicator (exact name)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON lines")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		applyCatalog()
		c, conn, err := a.loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeDB(conn)

		names := survey.Indicators(c.Psychosocial)
		if cmd.Flags().Changed("indicator") {
			names = []string{indicator}
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			for _, n := range names {
				line := gaugeLine{Indicator: n}
				if r, _, ok := view.HolisticReading(c.Psychosocial, n); ok {
					line.Reading = &r
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDICATOR\tSCORE\tBAND\tANGLE")
		for _, n := range names {
			r, _, ok := view.HolisticReading(c.Psychosocial, n)
			if !ok {
				fmt.Fprintf(tw, "%s\t-\t-\t-\n", n)
				continue
			}
			fmt.Fprintf(tw, "%s\t%d%%\t%s\t%.1f\n", n, r.Score, r.Band, r.Angle)
		}
		return tw.Flush()
	}
	return cmd
}
