// Package cmd contains all CLI commands for the study-korean tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/ippo615/study-korean/internal/config"
	"github.com/ippo615/study-korean/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hangul",
	Short: "Take Hangul syllables apart and put them back together",
	Long: `study-korean is a CLI for exploring how Hangul is put together.

Every precomposed syllable block (가..힣) encodes a lead consonant, a
vowel and an optional trailing consonant. The tool decomposes syllables
into those jamo, composes syllables from jamo, and exports vocabulary
drill decks for Anki.

Running 'hangul' without arguments launches the interactive explorer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/study-korean)")
}

// initConfig resolves the config directory and ENV overrides.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("STUDY_KOREAN")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}
