package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/db"
)

// SeedCmd returns the seed command for development fixtures.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with development fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			if err := db.SeedFixtures(database); err != nil {
				return err
			}
			fmt.Println("✓ Seeded development fixtures")
			return nil
		},
	}
}
