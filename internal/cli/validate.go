package cli

import (
	"github.com/futig/resignation-backend/internal/builder"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate-resignation FILE",
	Short: "Validate a resignation .eml file and optionally notify the agent service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		safeAddress, _ := cmd.Flags().GetString("safe-address")

		p, err := builder.BuildPipelines(cmd.Context(), environment)
		if err != nil {
			return err
		}
		defer p.Logger.Sync()

		content, err := readDocument(p, args[0], entity.DocumentKindResignation)
		if err != nil {
			return err
		}

		result, err := p.Resignation.Validate(withLogger(cmd, p.Logger), content, safeAddress)
		if err != nil {
			p.Logger.Error("resignation validation failed", zap.Error(err), zap.String("kind", string(entity.KindOf(err))))
			return err
		}

		return writeJSON(cmd.OutOrStdout(), result.Response(safeAddress))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("safe-address", "", "notify the agent service with this address when the resignation is approved")
}
