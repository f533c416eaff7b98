package sketchfolio

import (
	"github.com/runsha/sketchfolio/content"
	"github.com/runsha/sketchfolio/tui"
	"github.com/spf13/cobra"
)

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the portfolio sections in the terminal",
	RunE: func(_ *cobra.Command, _ []string) error {
		profile, err := content.LoadProfileFile(profilePath)
		if err != nil {
			return err
		}

		return tui.Run(profile)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&profilePath,
		"profile",
		"",
		"Path to a profile TOML file (default is the bundled profile)")
}
