package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"parley/internal/presentation/tui"
	"parley/pkg/domain"
	"parley/pkg/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a dialog interactively in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		engine, err := loadEngine(cmd, logger)
		if err != nil {
			fmt.Printf("Error initializing parley: %v\n", err)
			os.Exit(1)
		}

		plain, _ := cmd.Flags().GetBool("plain")

		handler := runner.NewTextHandler(nil, nil)
		if !plain {
			tui.PrintBanner()
			handler.Renderer = tui.NewRenderer()
		}

		r := &runner.Runner{
			Handler: handler,
			Logger:  logger,
		}

		sess := domain.NewSession(uuid.NewString())
		if err := r.Run(cmd.Context(), engine, sess); err != nil {
			fmt.Printf("Conversation error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("plain", false, "Disable the banner and markdown rendering")
}
