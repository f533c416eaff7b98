package sketchfolio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/runsha/sketchfolio/content"
	"github.com/runsha/sketchfolio/db"
	"github.com/runsha/sketchfolio/web"
	"github.com/runsha/sketchfolio/web/routes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	noTracking    bool
	retentionDays int
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page",
	Long:  `Run a web server rendering the portfolio. The section is chosen with the ?section= query parameter.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		slog.Debug("Config", "file", viper.ConfigFileUsed(), "settings", viper.AllSettings())

		profile, err := content.LoadProfileFile(profilePath)
		if err != nil {
			return err
		}

		handler := &routes.ServerHandler{Profile: profile}

		if !noTracking {
			retention, err := retentionPeriod(retentionDays)
			if err != nil {
				return err
			}

			storage, err := db.NewStorageFromPath(storagePath)
			if err != nil {
				return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
			}
			defer storage.Close()

			deleted, err := storage.PurgeOlderThan(retention)
			if err != nil {
				return err
			}

			slog.Info("Purged old views", "deleted", deleted, "retentionDays", retentionDays)

			handler.Tracker, err = routes.NewViewTracker(storage, viper.GetString("salt"))
			if err != nil {
				return err
			}
		}

		return web.StartServer(cmd.Context(), port, handler, dev)
	},
}

// retentionPeriod converts --retention-days; anything below one day would wipe every view.
func retentionPeriod(days int) (time.Duration, error) {
	if days < 1 {
		return 0, fmt.Errorf("retention-days must be at least 1, got %d", days)
	}

	return time.Duration(days) * 24 * time.Hour, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().StringVar(&profilePath,
		"profile",
		"",
		"Path to a profile TOML file (default is the bundled profile)")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./sketchfolio.sqlite",
		"Path to the view statistics database")

	serveCmd.Flags().BoolVar(&noTracking,
		"no-tracking",
		false,
		"Do not record section views")

	serveCmd.Flags().IntVar(&retentionDays,
		"retention-days",
		365,
		"Delete recorded views older than this many days on start")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")
}
