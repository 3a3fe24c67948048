package main

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/internal/cli"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/loader"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "spesengine",
	Short: "Catalog relationship resolution",
	Long: `spesengine - Catalog Relationship Resolution

Spesengine resolves hierarchical catalog relationships: the attribute
definitions effective for an item type, and the association rules that
govern a chosen source scope.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupCatalog = "catalog"
	groupUtility = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover spesengine.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCatalog, Title: "Catalog:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	// Catalog commands
	resolveCmd.GroupID = groupCatalog
	rulesCmd.GroupID = groupCatalog
	validateCmd.GroupID = groupCatalog
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(validateCmd)

	// Utility commands
	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// loadSnapshot loads the catalog snapshot for a command, preferring an
// explicit database over a snapshot file.
func loadSnapshot(snapshotFlag, dbFlag string) (*spesengine.Snapshot, error) {
	if dbFlag != "" || cfg.Database.URL != "" || cfg.Database.Host != "" {
		dsn := dbFlag
		if dsn == "" {
			var err error
			dsn, err = cfg.DSN()
			if err != nil {
				return nil, cli.ConfigError("database configuration", err)
			}
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, cli.DBConnectError("connecting to database", err)
		}
		defer func() { _ = db.Close() }()

		snap, err := loader.Load(context.Background(), db, loader.WithPageSize(cfg.Loader.PageSize))
		if err != nil {
			return nil, cli.DBConnectError("loading catalog", err)
		}
		return snap, nil
	}

	path := cfg.ResolvedSnapshot(snapshotFlag)
	snap, err := loader.LoadFile(path)
	if err != nil {
		return nil, cli.SnapshotParseError("loading snapshot", err)
	}
	return snap, nil
}
