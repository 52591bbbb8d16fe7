package cli

import (
	"fmt"

	"github.com/futig/resignation-backend/internal/builder"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := builder.Build(environment)
		if err != nil {
			return fmt.Errorf("failed to build application: %w", err)
		}
		return a.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
