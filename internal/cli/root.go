// Package cli implements the phrasemill command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phrasemill",
	Short: "Phrasemill - deterministic phrase mining for documents",
	Long: `Phrasemill extracts recurring multi-word expressions from documents:
prepositional phrases, phrasal verbs, statistical collocations, and
noun phrases.

It normalizes extracted text, segments it into sentences, mines phrase
candidates with four strategies, and ranks them by type, length, and
frequency. Results are deterministic for identical input.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("phrasemill v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.phrasemill/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.phrasemill")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PHRASEMILL_*
	viper.SetEnvPrefix("PHRASEMILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		cfgFile = viper.ConfigFileUsed()
		if verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfgFile)
		}
	}
}
