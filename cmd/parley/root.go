package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley is a slot-filling dialog manager",
	Long: `Parley runs multi-step conversational tasks defined as dialogs:
ordered steps that collect named slots, execute a handler once their
slots are filled, and optionally chain into a follow-up step.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("dialog", "d", "dialog.yaml", "Path to the dialog definition file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
