package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/bibresolve/internal/config"
	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/lcc"
	"github.com/openshelf/bibresolve/pkg/schedule"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup CODE",
	Short: "Resolve a classification code to its subject hierarchy",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	code := lcc.NormalizeRaw(args[0])
	if code == "" {
		return &biberrors.ValidationError{Field: "code", Value: args[0], Message: "empty after normalization"}
	}

	idx := schedule.NewIndex(config.SchedulesDir())
	line, err := idx.Lookup(code)
	if err != nil {
		return err
	}
	if line == "" {
		return fmt.Errorf("%s: %w", code, biberrors.ErrNotFound)
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
