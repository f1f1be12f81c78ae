package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/wire"
)

// CheckInCmd returns the checkin command.
func CheckInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin [energy] [blocks]",
		Short: "Record today's energy and available blocks",
		Long:  "Records the day's capacity. A second check-in on the same date replaces the first.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _ := cmd.Flags().GetString("note")

			energy, err := models.ParseEnergyLevel(args[0])
			if err != nil {
				return err
			}
			var blocks int
			if _, err := fmt.Sscanf(args[1], "%d", &blocks); err != nil {
				return fmt.Errorf("invalid block count %q", args[1])
			}

			checkin, err := wire.CheckInService().SubmitCheckIn(cmd.Context(), primary.SubmitCheckInRequest{
				Date:            time.Now(),
				Energy:          energy,
				AvailableBlocks: blocks,
				FocusNote:       note,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Checked in for %s: %s energy, %d blocks\n",
				checkin.Date.Format("2006-01-02"), checkin.Energy, checkin.AvailableBlocks)
			return nil
		},
	}
	cmd.Flags().String("note", "", "Focus note for the day")
	return cmd
}
