// Package cmd contains the ledger cli app
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	url        string
	privateURL string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node public API.")
	rootCmd.PersistentFlags().StringVarP(&privateURL, "private-url", "r", "http://localhost:9080", "Url of the node private API.")
}

var rootCmd = &cobra.Command{
	Use:   "ledgercli",
	Short: "Command line client for the ledger node",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
