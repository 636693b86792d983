package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openshelf/bibresolve/internal/config"
	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/logging"
	"github.com/openshelf/bibresolve/pkg/schedule"
)

var buildInput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build per-subject schedule files from a classification dataset",
	Long: `Build streams a MARCXML classification dataset and writes one flat
schedule file per top-level subject letter into the schedules directory.
Each line maps a classification code to its full subject hierarchy.

Existing schedule files are replaced. Do not run lookups against the
same directory while a build is in progress.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInput, "input", "i", "", "MARCXML classification dataset (required)")
	_ = buildCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	dir := config.SchedulesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return biberrors.WrapIO("create", dir, err)
	}

	f, err := os.Open(buildInput)
	if err != nil {
		return biberrors.WrapIO("open", buildInput, err)
	}
	defer f.Close()

	logging.Info().Str("input", buildInput).Str("schedules", dir).Msg("building schedule files")

	if err := schedule.NewBuilder().Extract(cmd.Context(), f, dir); err != nil {
		return err
	}

	logging.Info().Str("schedules", dir).Msg("schedule files built")
	return nil
}
