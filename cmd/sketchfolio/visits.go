package sketchfolio

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/runsha/sketchfolio/db"
	"github.com/spf13/cobra"
)

// visitsCmd represents the visits command.
var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Show how often each section was viewed",
	RunE: func(_ *cobra.Command, _ []string) error {
		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		views, err := storage.GatherViews()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SECTION\tVIEWS\tVISITORS")

		for _, v := range views {
			fmt.Fprintf(w, "%s\t%d\t%d\n", v.Section.Label(), v.Views, v.UniqueVisitors)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(visitsCmd)

	visitsCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./sketchfolio.sqlite",
		"Path to the view statistics database")
}
