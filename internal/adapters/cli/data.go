package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jplacht/prunplanner-go/internal/adapters/fio"
	"github.com/jplacht/prunplanner-go/internal/infrastructure/database"
)

// NewDataCommand creates the data command with subcommands
func NewDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage local game data",
		Long: `Import FIO game-data exports into the local database.

Examples:
  prunplanner data import --kind buildings --file buildings.json
  prunplanner data import --kind exchange --file exchange.json
  prunplanner data migrate`,
	}

	cmd.AddCommand(newDataImportCommand())
	cmd.AddCommand(newDataFetchCommand())
	cmd.AddCommand(newDataMigrateCommand())

	return cmd
}

// newDataImportCommand creates the data import subcommand
func newDataImportCommand() *cobra.Command {
	var kind string
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import one FIO JSON export",
		Long: `Import a FIO JSON export into the local database. Kind selects the
dataset: buildings, recipes, materials, exchange or planets. Existing
rows are replaced.

Examples:
  prunplanner data import --kind buildings --file buildings.json
  prunplanner data import --kind planets --file planets.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" || file == "" {
				return fmt.Errorf("--kind and --file flags are required")
			}

			svc, err := openServices()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(svc.db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open export: %w", err)
			}
			defer f.Close()

			importer := fio.NewImporter(svc.db)
			count, err := runImport(cmdContext(), importer, kind, f)
			if err != nil {
				return err
			}

			fmt.Printf("imported %d %s\n", count, kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "",
		"Dataset kind: buildings, recipes, materials, exchange or planets (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to FIO JSON export (required)")

	return cmd
}

// newDataFetchCommand creates the data fetch subcommand
func newDataFetchCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download one dataset from the FIO API and import it",
		Long: `Download the full export for a dataset directly from the FIO REST
API and import it into the local database. Kind selects the dataset:
buildings, recipes, materials, exchange or planets.

Examples:
  prunplanner data fetch --kind buildings
  prunplanner data fetch --kind exchange`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				return fmt.Errorf("--kind flag is required")
			}

			svc, err := openServices()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(svc.db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			client := fio.NewClient(svc.cfg.FIO.BaseURL, svc.cfg.FIO.Timeout)
			body, err := client.Fetch(cmdContext(), kind)
			if err != nil {
				return err
			}
			defer body.Close()

			importer := fio.NewImporter(svc.db)
			count, err := runImport(cmdContext(), importer, kind, body)
			if err != nil {
				return err
			}

			fmt.Printf("fetched and imported %d %s\n", count, kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "",
		"Dataset kind: buildings, recipes, materials, exchange or planets (required)")

	return cmd
}

func runImport(ctx context.Context, importer *fio.Importer, kind string, r io.Reader) (int, error) {
	switch kind {
	case "buildings":
		return importer.ImportBuildings(ctx, r)
	case "recipes":
		return importer.ImportRecipes(ctx, r)
	case "materials":
		return importer.ImportMaterials(ctx, r)
	case "exchange":
		return importer.ImportExchange(ctx, r)
	case "planets":
		return importer.ImportPlanets(ctx, r)
	default:
		return 0, fmt.Errorf("unknown dataset kind %q", kind)
	}
}

// newDataMigrateCommand creates the data migrate subcommand
func newDataMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(svc.db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}
			fmt.Println("schema up to date")
			return nil
		},
	}
}
