package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dangerclosesec/hub/internal/config"
	"github.com/dangerclosesec/hub/internal/database"
	"github.com/dangerclosesec/hub/internal/logging"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/repository"
	"github.com/dangerclosesec/hub/internal/seed"
	"github.com/dangerclosesec/hub/internal/service"
	"github.com/dangerclosesec/hub/internal/validation"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dataDir string
	refresh bool
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	seedCmd.Flags().BoolVar(&refresh, "refresh", false, "Remove existing records of the kind before seeding")
	seedCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding the JSON fixtures (default $DATA_DIR)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:           "hubctl",
	Short:         "hubctl manages the community directory database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the directory tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := setup()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema migrated successfully")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:       "seed <people|communities|schools|all>",
	Short:     "Load fixtures from the data directory",
	Long:      `Upsert every entry of <data-dir>/<kind>.json by name. Entries without a name are skipped.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"people", "communities", "schools", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := seedKinds(args[0])
		if err != nil {
			return err
		}

		cfg, db, err := setup()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := database.Migrate(db); err != nil {
			return err
		}

		if dataDir == "" {
			dataDir = cfg.DataDir
		}

		store := service.NewEntityStore(
			repository.NewPersonRepository(db),
			repository.NewCommunityRepository(db),
			repository.NewSchoolRepository(db),
			validation.New(),
		)
		loader := seed.NewLoader(store, dataDir, slog.Default())

		out := cmd.OutOrStdout()
		failed := 0
		for _, kind := range kinds {
			res, err := loader.Load(cmd.Context(), kind, seed.Options{Refresh: refresh})
			if err != nil {
				return err
			}

			if refresh {
				fmt.Fprintf(out, "Deleted %d existing %s.\n", res.Deleted, seed.FixtureName(kind))
			}
			if res.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d entries without a name.\n", res.Skipped)
			}
			for _, f := range res.Failures {
				fmt.Fprintf(out, "Entry %d (%q) failed: %v\n", f.Index, f.Name, f.Err)
			}
			fmt.Fprintln(out, res.String())
			failed += len(res.Failures)
		}

		if failed > 0 {
			return fmt.Errorf("%d fixture entries failed", failed)
		}
		return nil
	},
}

func seedKinds(arg string) ([]model.Kind, error) {
	if arg == "all" {
		return model.Kinds, nil
	}
	kind, err := seed.ParseKind(arg)
	if err != nil {
		return nil, err
	}
	return []model.Kind{kind}, nil
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	slog.SetDefault(logging.New(os.Stderr, level))

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up database: %w", err)
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
