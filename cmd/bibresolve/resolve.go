package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openshelf/bibresolve/internal/config"
	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/logging"
	"github.com/openshelf/bibresolve/pkg/reconciler"
	"github.com/openshelf/bibresolve/pkg/schedule"
	"github.com/openshelf/bibresolve/pkg/sources"
	"github.com/openshelf/bibresolve/pkg/sources/googlebooks"
	"github.com/openshelf/bibresolve/pkg/sources/loc"
	"github.com/openshelf/bibresolve/pkg/sources/openlibrary"
)

var interactive bool

var resolveCmd = &cobra.Command{
	Use:   "resolve ISBN",
	Short: "Reconcile metadata for one book from per-source payload files",
	Long: `Resolve reads one payload file per configured source from the payloads
directory (<source-id>.json), parses each into a metadata candidate, and
reconciles them into a single record printed as YAML.

A missing or unparsable payload excludes that source from voting. With
--interactive, voting ties and doubtful authors are put to the terminal;
otherwise the first candidate in source order wins and nothing blocks.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("payloads", ".", "directory holding per-source payload files")
	resolveCmd.Flags().BoolVar(&interactive, "interactive", false, "resolve ties at the terminal")
	_ = viper.BindPFlag(config.KeyPayloads, resolveCmd.Flags().Lookup("payloads"))
	rootCmd.AddCommand(resolveCmd)
}

// parsers returns the payload parser for every known source.
func parsers() map[sources.ID]sources.Parser {
	all := []sources.Parser{loc.New(), openlibrary.New(), googlebooks.New()}
	out := make(map[sources.ID]sources.Parser, len(all))
	for _, p := range all {
		out[p.ID()] = p
	}
	return out
}

// loadCandidate reads and parses one source's payload file. Any failure
// makes that source unavailable; the caller excludes it from voting.
func loadCandidate(parser sources.Parser, path string) (*sources.Candidate, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, biberrors.WrapSource(parser.ID().String(), biberrors.WrapIO("read", path, err))
	}

	candidate, err := parser.Parse(payload)
	if err != nil {
		return nil, biberrors.WrapSource(parser.ID().String(), err)
	}
	return candidate, nil
}

func loadRegistry() (*sources.Registry, error) {
	if path := config.RegistryPath(); path != "" {
		return sources.LoadRegistry(path)
	}
	return sources.Default(), nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	isbn := args[0]

	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	known := parsers()
	candidates := make(map[sources.ID]*sources.Candidate, len(registry.IDs()))
	for _, id := range registry.IDs() {
		parser, ok := known[id]
		if !ok {
			logging.Warn().Str("source", id.String()).Msg("no parser for registered source")
			continue
		}

		path := filepath.Join(config.PayloadsDir(), id.String()+".json")
		candidate, err := loadCandidate(parser, path)
		if err != nil {
			logging.Warn().Str("source", id.String()).Str("path", path).Err(err).
				Msg("source unavailable, excluded from voting")
			candidates[id] = nil
			continue
		}
		candidates[id] = candidate
	}

	var opts []reconciler.Option
	if interactive {
		opts = append(opts, reconciler.WithArbiter(newTerminalArbiter(cmd.InOrStdin(), cmd.ErrOrStderr())))
	}

	engine, err := reconciler.New(schedule.NewIndex(config.SchedulesDir()), registry, opts...)
	if err != nil {
		return err
	}

	record, err := engine.Resolve(cmd.Context(), isbn, candidates)
	if err != nil {
		if biberrors.IsNoData(err) {
			return fmt.Errorf("%s: %w", isbn, err)
		}
		return err
	}

	out, err := yaml.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
