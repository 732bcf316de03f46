// Package cmd provides the command-line interface for StyleMart.
//
// Configuration sources, in increasing precedence: stylemart.yml in the
// working directory, STYLEMART_* environment variables (dots become
// underscores, e.g. STYLEMART_SERVER_PORT), and command-line flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stylemart/stylemart/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stylemart",
	Short: "A small demo shop: signup, catalog, cart and checkout",
	Long: `StyleMart is a demo e-commerce web application. Users sign up and log
in against a file-backed credential store, browse a JSON product catalog,
keep a cart in their session and confirm orders.

Quick start:
  stylemart serve                 Start the web server on :8080`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is stylemart.yml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := config.InitViper(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
