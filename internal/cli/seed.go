package cli

import (
	"fmt"

	"littlelemon/internal/migrate"
	"littlelemon/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the weekly specials into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, logger, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if migrateFirst {
				if _, err := migrate.Apply(ctx, pool, logger); err != nil {
					return fmt.Errorf("apply migrations: %w", err)
				}
			}
			if err := seed.Apply(ctx, pool, logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply migrations before seeding")
	return cmd
}
