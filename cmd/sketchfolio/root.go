package sketchfolio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/runsha/sketchfolio/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	verbose     bool
	profilePath string
	storagePath string
	port        int
	dev         bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sketchfolio",
	Short: "Serve a hand-drawn personal portfolio",
	Long: `Sketchfolio renders a one-page portfolio with About, Skills and Projects sections.
It can serve the page, export it as static files, or preview it in the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		slog.SetDefault(logging.NewLogger(os.Stderr, verbose))

		return bindFlags(cmd)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sketchfolio.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".sketchfolio")
	}

	viper.SetEnvPrefix("sketchfolio")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}

		createExampleConfig()
	}
}

const exampleConfig = `# port = 9000
# profile = "./profile.toml"
# storage = "./sketchfolio.sqlite"
# retention-days = 365
# salt = "change-me"
`

func createExampleConfig() {
	configPath := "./.sketchfolio.toml"

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		slog.Warn("Could not create example config file", "path", configPath, "error", err)

		return
	}

	slog.Info("Example config file created", "path", configPath)
}

// bindFlags sets flags from config values when they were not given on the command line.
func bindFlags(cmd *cobra.Command) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed {
			return
		}

		// viper keys are case-insensitive, only hyphens need to go
		configName := strings.ReplaceAll(f.Name, "-", "")

		for _, name := range []string{f.Name, configName} {
			if !viper.IsSet(name) {
				continue
			}

			val := viper.Get(name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindErr = fmt.Errorf("could not set flag %s from config: %w", f.Name, err)

				return
			}

			slog.Debug("Flag set from config", "flag", f.Name, "value", val)

			return
		}
	})

	return bindErr
}
