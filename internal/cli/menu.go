package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"littlelemon/internal/domain"
	"littlelemon/internal/importer"
	menurepo "littlelemon/internal/repository/menu"
	"littlelemon/internal/seed"

	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect and import the menu",
	}
	cmd.AddCommand(newMenuListCmd(), newMenuImportCmd())
	return cmd
}

func newMenuListCmd() *cobra.Command {
	var fromDB bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the weekly specials, or the menu stored in Postgres with --db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var repo menurepo.Repository
			if fromDB {
				pool, logger, cleanup, err := openDB(ctx)
				if err != nil {
					return err
				}
				defer cleanup()
				repo = menurepo.NewPostgres(pool, logger)
			} else {
				repo = menurepo.NewMemory()
				if _, err := seed.LoadMenu(ctx, repo); err != nil {
					return err
				}
			}
			items, err := repo.List(ctx)
			if err != nil {
				return err
			}
			return printMenu(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().BoolVar(&fromDB, "db", false, "read the menu from DB_DSN")
	return cmd
}

func newMenuImportCmd() *cobra.Command {
	var (
		filePath string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a menu CSV (id,title,description,price,image) into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			var repo menurepo.Repository
			if dryRun {
				repo = menurepo.NewMemory()
			} else {
				pool, logger, cleanup, err := openDB(ctx)
				if err != nil {
					return err
				}
				defer cleanup()
				repo = menurepo.NewPostgres(pool, logger)
			}

			start := time.Now()
			count, err := importer.NewCSVImporter(f, repo).Run(ctx)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d menu items in %s\n", count, time.Since(start).Truncate(time.Millisecond))
			if dryRun {
				items, err := repo.List(ctx)
				if err != nil {
					return err
				}
				return printMenu(cmd.OutOrStdout(), items)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "path to the menu CSV")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse into memory and print instead of writing to Postgres")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printMenu(w io.Writer, items []domain.MenuItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t$%s\n", it.ID, it.Title, it.Price.StringFixed(2))
	}
	return tw.Flush()
}
