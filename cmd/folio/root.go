package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A single-page portfolio server built with Go, Echo, and templ",
	Long: `folio renders a one-page portfolio from a content file, reveals
sections as they scroll into view and delivers contact messages to a
form backend.

Configuration is read from folio.yaml, then FOLIO_* environment
variables (a .env file in the working directory is loaded first).

Examples:
  folio init mysite
  folio serve --addr :8080
  folio export dist
  folio stats --days 7`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml, can also use FOLIO_CONFIG_FILE)")
	rootCmd.PersistentFlags().String("content", "", "content YAML file (default: embedded sample content)")
	viper.BindPFlag("content_path", rootCmd.PersistentFlags().Lookup("content"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if env := os.Getenv("FOLIO_CONFIG_FILE"); env != "" {
		viper.SetConfigFile(env)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("folio")
	}

	folio.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the site configuration from flags, env and file.
func loadConfig() folio.SiteConfig {
	return folio.LoadConfig(viper.GetViper())
}
