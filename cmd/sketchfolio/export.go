package sketchfolio

import (
	"log/slog"

	"github.com/runsha/sketchfolio/content"
	"github.com/runsha/sketchfolio/web"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var outDir string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as static HTML files",
	Long: `Render every section to its own HTML file so the portfolio can be hosted
without a server. index.html shows the About section.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		profile, err := content.LoadProfileFile(profilePath)
		if err != nil {
			return err
		}

		bar := progressbar.Default(int64(len(web.ExportFiles())), "Exporting")

		err = web.Export(cmd.Context(), profile, outDir, func(file string) {
			slog.Debug("Page written", "file", file)

			_ = bar.Add(1)
		})
		if err != nil {
			return err
		}

		return bar.Finish()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&outDir, "out", "o", "./public", "Directory to write the site to")
	exportCmd.Flags().StringVar(&profilePath,
		"profile",
		"",
		"Path to a profile TOML file (default is the bundled profile)")
}
