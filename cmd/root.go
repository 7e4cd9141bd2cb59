/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chamados",
	Short: "Support-ticket (chamados) API server",
	Long: `chamados is the backend for the support-ticket system.

It exposes a REST API over /api/chamados and /api/usuarios backed by
PostgreSQL, with optional ticket event publishing to a message bus.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
