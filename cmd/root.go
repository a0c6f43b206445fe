// Package cmd provides the krds command-line interface.
//
// Configuration is read from, highest priority first:
//  1. Command-line flags (--config, --log-level, --current, ...)
//  2. KRDS_CONFIG_FILE: path to a custom configuration file
//  3. Individual environment variables following KRDS_<SECTION>_<OPTION>,
//     e.g. KRDS_NAV_FILE or KRDS_WATCH_DEBOUNCE
//  4. .krds.yml in the current directory
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/krds/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "krds",
	Short: "Inspect KRDS side navigation trees",
	Long: `krds loads a side navigation definition and answers the questions a
rendered menu has to answer: which sections start expanded, which item is
current, what the breadcrumb trail looks like, and whether the definition is
well formed.

Quick Start:
  krds validate navigation.yml              Check the file for problems
  krds resolve --current /pension/history   Print the initially open branches
  krds show --current /pension/history      Draw the menu as it would render
  krds trail --current /pension/history     Print the breadcrumb trail
  krds watch                                Re-resolve whenever the file changes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .krds.yml, can also use KRDS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
}

// initConfig selects the config file and registers defaults and KRDS_
// environment overrides. A missing config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("KRDS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".krds")
	}

	config.Prepare(viper.GetViper())
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
