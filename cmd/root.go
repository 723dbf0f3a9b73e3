package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/fidlr/playstats/internal/snapshot"
	"github.com/fidlr/playstats/internal/source"
)

var cfgFile string
var sourceLocator string
var fromAddress string
var sendgridApiKey string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playstats",
	Short: "Derives listening statistics from a play history log",
	Long: `Aggregates a listening history export (CSV file, scrobble database,
or HTTP URL) into rankings, genre trends, first-seen timelines, and an
artist relationship graph.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.playstats.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&sourceLocator, "source", "s", "listening_history.csv",
		"listening log to read: CSV path, .db/.sqlite path, or http(s) URL")
	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))

	rootCmd.PersistentFlags().StringVar(&fromAddress, "from", "", "From email address")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))

	rootCmd.PersistentFlags().StringVar(&sendgridApiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", rootCmd.PersistentFlags().Lookup("sendgrid_api_key"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".playstats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".playstats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// buildSnapshot runs the whole pipeline against the configured source:
// open, normalize, aggregate, publish, read back.
func buildSnapshot() (*snapshot.Snapshot, error) {
	src, err := source.Open(viper.GetString("source"))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	store := snapshot.NewStore(0)
	if err := store.Rebuild(src); err != nil {
		return nil, fmt.Errorf("building snapshot: %w", err)
	}
	return store.Current()
}
