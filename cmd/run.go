package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <company-name>",
	Short: "Enrich a single company and print the merged record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := env.Pipeline.Run(ctx, args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(rec), "encode record")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
