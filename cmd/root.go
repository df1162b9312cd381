/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	rootLogLevel string
	rootNoCache  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ampview",
	Short: "Browse an Ampache music server from the terminal",
	Long: `ampview is a command-line browser for Ampache music servers.

It speaks the Ampache XML API: it authenticates with the server's
challenge handshake, then lets you search artists, list their albums
and songs, resolve streaming URLs, and drive localplay from the shell.

Server address and credentials live in ~/.config/ampview/config.yaml
or in AMPVIEW_* environment variables (AMPVIEW_SERVER,
AMPVIEW_USERNAME, AMPVIEW_PASSWORD).`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootNoCache, "no-cache", false, "Bypass the local response cache")
}
