package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gloomboard",
		Short: "Sports mood dashboard server",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(reportCmd())

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func reportCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a one-shot mood report from the upstream feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), baseURL, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&baseURL, "feed", "", "upstream feed base URL (default: from config)")
	return cmd
}
