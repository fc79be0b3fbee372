package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/cosmic-portfolio/internal/anim"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
)

func newTimelineCmd() *cobra.Command {
	var (
		asJSON  bool
		handOff time.Duration
	)
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the compiled splash sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := anim.Compile(splash.DefaultTimeline())
			if err != nil {
				return fmt.Errorf("compile splash timeline: %w", err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tSTEP\tTARGET\tSTART\tEND\tEASE")
			for _, e := range s.Entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%v\t%s\n", e.Index+1, e.Name, e.Target, e.Start, e.End, e.Ease)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "total %v, hand-off to %s at %v\n", s.Total, splash.HomeRoute, s.Total+handOff)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the schedule as JSON")
	cmd.Flags().DurationVar(&handOff, "hand-off", 500*time.Millisecond, "delay between the last step and navigation")
	return cmd
}
