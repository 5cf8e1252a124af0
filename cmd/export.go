package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored company records to a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		gateway := initGateway(ctx)
		defer gateway.Close()

		recs, err := gateway.Export(ctx)
		if err != nil {
			return err
		}

		outPath := exportOutput
		if outPath == "" {
			outPath = cfg.Export.Path
		}
		written, err := export.Write(recs, outPath)
		if err != nil {
			return err
		}

		zap.L().Info("export written",
			zap.String("path", written),
			zap.Int("records", len(recs)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output spreadsheet path (default from config)")
	rootCmd.AddCommand(exportCmd)
}
