package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/export"
	"github.com/sells-group/enrich-cli/internal/input"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch <companies-file>",
	Short: "Enrich every company listed in a file and export the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		names, err := input.ReadCompanies(args[0])
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Pipeline.RunBatch(ctx, names)
		if err != nil {
			return err
		}

		recs, err := env.Pipeline.Export(ctx)
		if err != nil {
			return err
		}

		outPath := batchOutput
		if outPath == "" {
			outPath = cfg.Export.Path
		}
		written, err := export.Write(recs, outPath)
		if err != nil {
			return err
		}

		zap.L().Info("batch export written",
			zap.String("run_id", result.RunID),
			zap.String("path", written),
			zap.Int("records", len(recs)),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output spreadsheet path (default from config)")
	rootCmd.AddCommand(batchCmd)
}
