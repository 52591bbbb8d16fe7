package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/futig/resignation-backend/internal/builder"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/formatter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze-contract FILE",
	Short: "Analyze a contract PDF and print the resignation checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var fm formatter.Formatter
		if format != "json" {
			var err error
			if fm, err = formatter.NewFactory().Create(entity.ResultFormat(format)); err != nil {
				return err
			}
		}

		p, err := builder.BuildPipelines(cmd.Context(), environment)
		if err != nil {
			return err
		}
		defer p.Logger.Sync()

		content, err := readDocument(p, args[0], entity.DocumentKindContract)
		if err != nil {
			return err
		}

		result, err := p.Contract.Analyze(withLogger(cmd, p.Logger), content)
		if err != nil {
			p.Logger.Error("contract analysis failed", zap.Error(err), zap.String("kind", string(entity.KindOf(err))))
			return err
		}

		if fm == nil {
			return writeJSON(cmd.OutOrStdout(), result)
		}

		data, err := fm.Format(result.ResignationChecklist)
		if err != nil {
			return fmt.Errorf("render checklist: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), output, data)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("format", "f", "json", "output format: json, markdown, pdf or docx")
	analyzeCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
