package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/reveal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print how often each section was revealed",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Int("days", 30, "number of days to report")
	statsCmd.Flags().Bool("daily", false, "break counts down per day")
}

func runStats(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	daily, _ := cmd.Flags().GetBool("daily")

	cfg := loadConfig()
	path := cfg.DatabasePath
	if path == "" {
		path = "data/reveals.db"
	}
	store, err := reveal.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if daily {
		rows, err := store.Daily(cmd.Context(), days)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "DAY\tSECTION\tREVEALS")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.Day, r.Section, r.Count)
		}
		return nil
	}

	counts, err := store.Counts(cmd.Context(), days)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "SECTION\tREVEALS (last %d days)\n", days)
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Section, c.Count)
	}
	return nil
}
