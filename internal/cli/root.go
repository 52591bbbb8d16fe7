// Package cli holds the cobra commands of the resignation backend binary.
package cli

import (
	"github.com/spf13/cobra"
)

const app = "resignation-backend"

var (
	// Used for flags.
	environment string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resignation-backend analyzes employment contracts and validates resignation emails with an LLM",
		// Serving is the default action.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&environment, "env", "local", "environment name, selects the .env.<env> file")
}
