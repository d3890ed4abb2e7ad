// Package main provides rgquery, a command line client that runs a single query against a graph and prints the
// decoded result table.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/specterops/redisgraph"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "rgquery"
)

type options struct {
	configPath string
	url        string
	graphName  string
	logLevel   string
	bootstrap  bool
	stats      bool
	mutate     bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           appName + " <query>",
		Short:         "Run a query against a RedisGraph graph",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&opts.url, "url", "", "Redis connection URL, overrides "+envRedisURL)
	flags.StringVarP(&opts.graphName, "graph", "g", "", "Graph name, overrides "+envGraph)
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.Flags().BoolVar(&opts.bootstrap, "bootstrap", false, "Create the graph before running the query if it does not exist")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print query statistics after the result table")
	cmd.Flags().BoolVar(&opts.mutate, "mutate", false, "Discard returned values and print only statistics")

	cmd.AddCommand(deleteCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func deleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the configured graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}

			graphSession, err := redisgraph.OpenConfig(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open graph %s: %w", cfg.Graph, err)
			}

			defer closeGraph(graphSession)

			if err := graphSession.Delete(cmd.Context()); err != nil {
				return fmt.Errorf("delete graph %s: %w", cfg.Graph, err)
			}

			slog.Info("Graph deleted", slog.String("graph", cfg.Graph))
			return nil
		},
	}
}

func runQuery(cmd *cobra.Command, opts *options, query string) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	if opts.bootstrap {
		cfg.Bootstrap = true
	}

	graphSession, err := redisgraph.OpenConfig(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open graph %s: %w", cfg.Graph, err)
	}

	defer closeGraph(graphSession)

	if opts.mutate {
		if statistics, err := graphSession.MutateWithStatistics(cmd.Context(), query); err != nil {
			return err
		} else {
			return renderStatistics(cmd.OutOrStdout(), statistics)
		}
	}

	resultSet, err := graphSession.Query(cmd.Context(), query)
	if err != nil {
		return err
	}

	if err := renderTable(cmd.OutOrStdout(), resultSet); err != nil {
		return err
	}

	if opts.stats {
		return renderStatistics(cmd.OutOrStdout(), resultSet.Statistics)
	}

	return nil
}

func resolveConfig(opts *options) (redisgraph.Config, error) {
	cfg, err := loadConfig(opts.configPath, os.Getenv)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	applyFlags(&cfg, opts)

	if cfg.Graph == "" {
		return cfg, fmt.Errorf("no graph name given: set --graph, %s or the graph config key", envGraph)
	}

	return cfg, nil
}

func closeGraph(graphSession *redisgraph.Graph) {
	if err := graphSession.Close(); err != nil {
		slog.Warn("Failed to close connection", slog.String("error", err.Error()))
	}
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo

	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
