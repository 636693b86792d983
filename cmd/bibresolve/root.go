package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openshelf/bibresolve/internal/config"
	"github.com/openshelf/bibresolve/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bibresolve",
	Short: "Bibliographic classification and metadata resolution",
	Long: `Bibresolve builds a durable Library of Congress classification index
from the MARCXML classification dataset, resolves classification codes to
their full subject hierarchy, and reconciles title, author, and subject
metadata for a book from multiple bibliographic sources.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling so batch runs can be aborted
	// between lookups
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.bibresolve.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().String("schedules", "schedules", "directory holding per-subject schedule files")
	rootCmd.PersistentFlags().String("registry", "", "source registry YAML file (default is the built-in registry)")

	for _, key := range []string{"verbose", "quiet", config.KeySchedules, config.KeyRegistry} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", key, err))
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bibresolve")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("bibresolve")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	cfg := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}

	logging.Configure(cfg)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil && verbose {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
		}
	}
}
